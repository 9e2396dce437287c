package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the request id under.
const RequestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if c != nil {
		resp.Error.RequestID = c.GetString(RequestIDKey)
	}
	return resp
}

// AbortWithError keeps err on c.Errors so the error middleware can log its stack.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// InvalidRequest reports a body or query that failed binding or validation.
func InvalidRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

func NotFound(c *gin.Context, err error, resource string) {
	AbortWithError(c, http.StatusNotFound, err, resource+" not found", nil)
}
