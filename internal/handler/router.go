package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

const callbackBodyLimit = 64 << 10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so fx can inject them as one value.
type Handlers struct {
	fx.In

	Listings *api.ListingHandler
	Bookings *api.BookingHandler
	Payments *api.PaymentHandler
	Reviews  *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/listings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Listings.List},
			{Method: http.MethodPost, Path: "", Handler: h.Listings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Listings.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Listings.Replace},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Listings.Patch},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Listings.Delete},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Listings.ListBookings},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Listings.ListReviews},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Bookings.Replace},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Bookings.Patch},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
			{Method: http.MethodPost, Path: "/:id/initiate-payment", Handler: h.Bookings.InitiatePayment},
		})

		addRoutes(apiGroup.Group("/payments"), []route{
			{Method: http.MethodGet, Path: "/verify", Handler: h.Payments.Verify},
			{Method: http.MethodPost, Path: "/verify", Handler: h.Payments.Verify, Mw: []gin.HandlerFunc{middleware.MaxBodySize(callbackBodyLimit)}},
			{Method: http.MethodGet, Path: "/:reference", Handler: h.Payments.Get},
		})

		addRoutes(apiGroup.Group("/reviews"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reviews.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reviews.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reviews.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reviews.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
