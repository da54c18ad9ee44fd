package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/marketplace-backend/internal/platform/apperr"
	"github.com/georgemunganga/marketplace-backend/internal/platform/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFailLogsOnlyServerErrors(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter("test", &buf)

	rec := httptest.NewRecorder()
	Fail(rec, log, "order", apperr.NotFound("order %s not found", "x"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"order x not found"}`, rec.Body.String())
	assert.Zero(t, buf.Len())

	rec = httptest.NewRecorder()
	Fail(rec, log, "order", apperr.Persistence(errors.New("connection reset"), "insert order"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"entity":"order"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestRespondWritesMoneyAsNumbers(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, http.StatusOK, map[string]decimal.Decimal{"totalPrice": decimal.RequireFromString("30.00")})
	assert.JSONEq(t, `{"totalPrice":30}`, rec.Body.String())
}

func TestDecodeIsValidation(t *testing.T) {
	var v struct{ Status string }
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":`))
	assert.ErrorIs(t, Decode(req, &v), apperr.ErrValidation)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"shipped"}`))
	assert.NoError(t, Decode(req, &v))
	assert.Equal(t, "shipped", v.Status)
}
