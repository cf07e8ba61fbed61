package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medication-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/compare", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("index out of range")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})
	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.NotContains(rec.Body.String(), "index out of range")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(42)
	})
	s.NoError(handler(c))

	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanicPassesThrough() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	s.NoError(handler(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AbortHandlerIsRepanicked() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.Panics(func() {
		_ = handler(c)
	})
}
