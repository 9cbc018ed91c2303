package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pricing/internal/delivery/api/middleware"
	"pricing/internal/delivery/api/validator"
	"pricing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testOperatorID = uuid.MustParse("7d7b0f0e-4c56-4a5e-9f3f-2f6e1c0b9a11")

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withAdmin(c echo.Context) echo.Context {
	middleware.SetOperator(c, testOperatorID, entity.Roles{entity.RolePricingAdmin})

	return c
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func withAdminRequest(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(method, target, body)

	return withAdmin(c), rec
}
