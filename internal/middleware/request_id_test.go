package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-history/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *RequestIDTestSuite) serve(header string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	err := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)

	return seen, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	traceID, rec := s.serve("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestKeepsCallerTraceID() {
	traceID, rec := s.serve("mobile-7f3a")

	s.Equal("mobile-7f3a", traceID)
	s.Equal("mobile-7f3a", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestReplacesOversizedTraceID() {
	traceID, _ := s.serve(strings.Repeat("x", maxTraceIDLength+1))

	_, err := uuid.Parse(traceID)
	s.NoError(err)
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}

func (s *RequestIDTestSuite) TestRequestLogger_RecordsLatencyByRoute() {
	ctrl := gomock.NewController(s.T())
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().RecordGauge("http.request.seconds", gomock.Any(), map[string]string{
		"route":  "/api/v1/history/date-ranges",
		"status": "2xx",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/date-ranges", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/history/date-ranges")
	c.Set("user_id", uuid.New())

	err := RequestLogger(metrics)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RequestIDTestSuite) TestRequestLogger_HandsErrorsToEcho() {
	ctrl := gomock.NewController(s.T())
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().RecordGauge("http.request.seconds", gomock.Any(), map[string]string{
		"route":  "",
		"status": "4xx",
	})

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	err := RequestLogger(metrics)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
