//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse decodes a 2xx body into target when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the {"error":{"message":...}} envelope written by httperr.
// An empty expectedMsg only checks the status and the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "decode error response: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

// AssertStatusError checks the {"status":"error","error":...} body the payment
// endpoints return when the gateway refuses a transaction.
func AssertStatusError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErr string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp resdto.StatusError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "decode status error: %s", w.Body.String())
	assert.Equal(t, "error", resp.Status)
	if expectedErr != "" {
		assert.Equal(t, expectedErr, resp.Error)
	}
}
