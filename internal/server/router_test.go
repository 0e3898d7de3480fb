package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-history/internal/cache"
	"finance-history/internal/config"
	"finance-history/internal/database"
	"finance-history/internal/dto"
	"finance-history/internal/handlers"
	"finance-history/internal/middleware"
	"finance-history/internal/models"
	"finance-history/internal/repositories"
	"finance-history/internal/services"
	"finance-history/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RouterTestSuite drives the full stack over HTTP against an in-memory database
type RouterTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	db     *database.DB
	router *echo.Echo
	build  func(Options) *echo.Echo
	token  string
	userID uuid.UUID
	now    time.Time
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	s.now = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	clock := func() time.Time { return s.now }

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().AddCounter(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	tokenService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "finance-backend",
		AccessTokenDuration: time.Hour,
	})

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	resolver := services.NewDateRangeResolver(clock)
	pipeline := services.NewFilterPipeline(
		resolver,
		services.NewRepositoryTransactionSource(transactionRepo),
		services.NewTransactionFilter(),
		services.NewTransactionAggregator(),
		metrics,
	)
	preferences := services.NewPreferenceService(repositories.NewPreferenceRepository(s.db.DB), models.DateRangeThisMonth, metrics)
	sessions := cache.NewLRUCache[uuid.UUID, models.SelectionSession](100, 10*time.Minute)

	routes := Handlers{
		History:    handlers.NewHistoryHandler(pipeline, preferences, resolver),
		Preference: handlers.NewPreferenceHandler(preferences),
		Selection:  handlers.NewSelectionHandler(services.NewSelectionService(sessions, time.Now, metrics)),
		Health:     handlers.NewHealthCheckHandler(s.db, nil),
	}
	s.build = func(opts Options) *echo.Echo {
		opts.MetricsHandler = http.NotFoundHandler()
		return NewRouter(routes, tokenService, metrics, opts)
	}
	s.router = s.build(Options{})

	s.userID = uuid.New()
	s.token, _, err = tokenService.GenerateAccessToken(s.userID, "owner@example.com")
	s.Require().NoError(err)

	s.seed()
}

func (s *RouterTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.ctrl.Finish()
}

func (s *RouterTestSuite) seed() {
	food := uuid.New()
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	database.CreateTestTransaction(s.T(), s.db, s.userID, "30", march.AddDate(0, 0, 2), database.WithParentCategory(food, "Food & Beverage"))
	database.CreateTestTransaction(s.T(), s.db, s.userID, "15", march.AddDate(0, 0, 9), database.WithParentCategory(food, "Food & Beverage"))
	database.CreateTestTransaction(s.T(), s.db, s.userID, "1000", march, database.WithType(models.TransactionTypeIncome))
	database.CreateTestTransaction(s.T(), s.db, s.userID, "80", march.AddDate(0, 0, -5))
	database.CreateTestTransaction(s.T(), s.db, uuid.New(), "999", march.AddDate(0, 0, 3))
}

func (s *RouterTestSuite) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) history(target string) models.AggregatedResult {
	rec := s.do(http.MethodGet, target, "", true)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data models.AggregatedResult `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func (s *RouterTestSuite) TestHistory_ThisMonth() {
	result := s.history("/api/v1/history/transactions?range=this_month")

	s.Equal(int64(3), result.Totals.Count)
	s.True(decimal.NewFromInt(1000).Equal(result.Totals.Income))
	s.True(decimal.NewFromInt(45).Equal(result.Totals.Expense))
	s.True(decimal.NewFromInt(955).Equal(result.Totals.Net))
	s.Len(result.Categories, 2)
}

func (s *RouterTestSuite) TestHistory_ExpenseOnlyOverTwenty() {
	result := s.history("/api/v1/history/transactions?range=this_month&type=expense&amountFilter=over&min=20")

	s.Equal(int64(1), result.Totals.Count)
	s.True(decimal.NewFromInt(-30).Equal(result.Totals.Net))
	s.Equal([]string{"Over 20.00", "Expense"}, result.Chips)
}

func (s *RouterTestSuite) TestHistory_RemembersExplicitRange() {
	february := s.history("/api/v1/history/transactions?range=last_month")
	s.Equal(int64(1), february.Totals.Count)

	rec := s.do(http.MethodGet, "/api/v1/preferences/date-range", "", true)
	s.Require().Equal(http.StatusOK, rec.Code)
	var pref struct {
		Data dto.DateRangePreferenceResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pref))
	s.Equal(models.DateRangeLastMonth, pref.Data.Range)

	again := s.history("/api/v1/history/transactions")
	s.Equal(int64(1), again.Totals.Count)
	s.True(decimal.NewFromInt(-80).Equal(again.Totals.Net))
}

func (s *RouterTestSuite) TestRequiresAuthentication() {
	rec := s.do(http.MethodGet, "/api/v1/history/transactions", "", false)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
	s.NotEmpty(rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestUnknownRouteIsJSON() {
	rec := s.do(http.MethodGet, "/api/v2/nothing", "", true)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_004")
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *RouterTestSuite) TestDevRoutesAbsentByDefault() {
	rec := s.do(http.MethodPost, "/api/v1/dev/history/seed", "", true)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
}

func (s *RouterTestSuite) TestSelectionRoundTrip() {
	rec := s.do(http.MethodPost, "/api/v1/selections", `{"kind":"category"}`, true)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var begun struct {
		Data models.SelectionSession `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &begun))

	rec = s.do(http.MethodPut, "/api/v1/selections/"+begun.Data.ID.String(), `{"selectedId":"food","selectedLabel":"Food & Beverage"}`, true)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/selections/"+begun.Data.ID.String(), "", true)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *RouterTestSuite) TestRateLimitAppliesBeforeAuthentication() {
	s.router = s.build(Options{RateLimiter: middleware.NewRateLimiter(1)})

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/history/date-ranges", "", false).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/history/date-ranges", "", false).Code)

	rec := s.do(http.MethodGet, "/api/v1/history/date-ranges", "", false)
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_006")

	// the same client is throttled even with valid credentials
	s.Equal(http.StatusTooManyRequests, s.do(http.MethodGet, "/api/v1/history/date-ranges", "", true).Code)
}
