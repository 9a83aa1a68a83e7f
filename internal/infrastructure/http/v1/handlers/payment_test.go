package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreo/internal/core/apperror"
	"ferreo/internal/core/id"
	"ferreo/internal/infrastructure/http/v1/middleware"
)

// The create handler must reject malformed IDs before the payment is
// applied. In particular a bad invoiceId must not be dropped silently,
// since that would turn a triggered payment into an untriggered one.
func newCreatePaymentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.ErrorHandler())

	h := NewPaymentHandler(NewBaseHandler(), nil, nil)
	r.POST("/documents/payments", h.Create)
	return r
}

func postPayment(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/documents/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func TestCreatePayment_RejectsMalformedInvoiceID(t *testing.T) {
	r := newCreatePaymentRouter(t)

	w := postPayment(t, r, map[string]any{
		"date":       "2026-01-15T00:00:00Z",
		"customerId": id.New().String(),
		"invoiceId":  "not-a-uuid",
		"methodLines": []map[string]any{
			{"method": "CASH", "amount": 500},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decodeErrorCode(t, w))
}

func TestCreatePayment_RejectsMalformedCustomerID(t *testing.T) {
	r := newCreatePaymentRouter(t)

	w := postPayment(t, r, map[string]any{
		"date":       "2026-01-15T00:00:00Z",
		"customerId": "not-a-uuid",
		"methodLines": []map[string]any{
			{"method": "CASH", "amount": 500},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decodeErrorCode(t, w))
}
