package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	initializePath = "/transaction/initialize"
	verifyPath     = "/transaction/verify/"

	defaultInitiateError = "Payment initiation failed"
	defaultVerifyError   = "Payment verification failed"
)

// ChapaClient speaks the hosted-checkout API of Chapa and compatible providers.
type ChapaClient struct {
	baseURL   string
	secretKey string
	currency  string
	http      *http.Client
}

func NewChapaClient(cfg config.PaymentConfig) *ChapaClient {
	return &ChapaClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		currency:  cfg.DefaultCurrency,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type initializeRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
}

type envelope struct {
	Status  string         `json:"status"`
	Message any            `json:"message"`
	Data    map[string]any `json:"data"`
}

func (c *ChapaClient) Initiate(ctx context.Context, req commands.PaymentRequest) commands.GatewayResult {
	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}
	body := initializeRequest{
		Amount:      req.Amount.String(),
		Currency:    currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		TxRef:       req.Reference.String(),
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.CallbackURL,
	}

	env, result, ok := c.do(ctx, http.MethodPost, c.baseURL+initializePath, body, req.Reference)
	if !ok {
		return result
	}
	if env.Status != commands.ProviderStatusSuccess {
		msg := messageOf(env, defaultInitiateError)
		slog.Error("Payment initiation rejected", "booking_reference", req.Reference.String(), "error", msg)
		return commands.GatewayResult{Success: false, Error: msg, Payload: env.Data}
	}

	checkoutURL, _ := env.Data["checkout_url"].(string)
	slog.Info("Payment initiated", "booking_reference", req.Reference.String())
	return commands.GatewayResult{
		Success:     true,
		CheckoutURL: checkoutURL,
		Payload:     env.Data,
	}
}

func (c *ChapaClient) Verify(ctx context.Context, ref payment.Reference) commands.GatewayResult {
	env, result, ok := c.do(ctx, http.MethodGet, c.baseURL+verifyPath+ref.String(), nil, ref)
	if !ok {
		return result
	}
	if env.Status != commands.ProviderStatusSuccess {
		msg := messageOf(env, defaultVerifyError)
		slog.Error("Payment verification rejected", "booking_reference", ref.String(), "error", msg)
		return commands.GatewayResult{Success: false, Error: msg, Payload: env.Data}
	}

	status, _ := env.Data["status"].(string)
	status = strings.ToLower(status)
	slog.Info("Payment verification answered", "booking_reference", ref.String(), "provider_status", status)
	return commands.GatewayResult{
		Success:        true,
		ProviderStatus: status,
		TransactionID:  stringOf(env.Data["id"]),
		Payload:        env.Data,
	}
}

// do returns ok=false with a filled result when the exchange itself failed.
func (c *ChapaClient) do(ctx context.Context, method, url string, payload any, ref payment.Reference) (envelope, commands.GatewayResult, bool) {
	var env envelope

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return env, failure(ref, "Unexpected error: "+err.Error(), false), false
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return env, failure(ref, "Unexpected error: "+err.Error(), false), false
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return env, failure(ref, "Request error: "+err.Error(), true), false
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, failure(ref, "Request error: "+err.Error(), true), false
	}
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		msg := fmt.Sprintf("Request error: provider returned %d", resp.StatusCode)
		if decodeErr == nil {
			if m := messageOf(env, ""); m != "" {
				msg = fmt.Sprintf("%s: %s", msg, m)
			}
		}
		return env, failure(ref, msg, resp.StatusCode >= http.StatusInternalServerError), false
	}
	if decodeErr != nil {
		return env, failure(ref, "Unexpected error: "+decodeErr.Error(), false), false
	}
	return env, commands.GatewayResult{}, true
}

func failure(ref payment.Reference, msg string, unavailable bool) commands.GatewayResult {
	slog.Error("Payment provider call failed", "booking_reference", ref.String(), "error", msg)
	return commands.GatewayResult{Success: false, Error: msg, Unavailable: unavailable}
}

// messageOf copes with providers returning message as a string or a field map.
func messageOf(env envelope, fallback string) string {
	switch m := env.Message.(type) {
	case string:
		if m != "" {
			return m
		}
	case nil:
	default:
		if b, err := json.Marshal(m); err == nil {
			return string(b)
		}
	}
	return fallback
}

func stringOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

