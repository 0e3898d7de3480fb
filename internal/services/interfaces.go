package services

import (
	"context"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateRangeResolverInterface turns a date range token into concrete bounds
type DateRangeResolverInterface interface {
	Resolve(token models.DateRangeToken, customStart, customEnd *time.Time) (models.DateRange, error)
}

// TransactionFilterInterface evaluates transactions against a FilterSpec
type TransactionFilterInterface interface {
	Matches(tx *models.Transaction, spec models.FilterSpec) bool
	Apply(txs []models.Transaction, spec models.FilterSpec) []models.Transaction
}

// TransactionAggregatorInterface groups transactions by parent category and computes totals
type TransactionAggregatorInterface interface {
	Aggregate(txs []models.Transaction) AggregationOutput
}

// TransactionSource fetches a user's transactions for a resolved date window.
// Implementations own transport, authentication and timeouts.
type TransactionSource interface {
	FetchTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error)
}

// FilterPipelineInterface runs resolve, fetch, filter and aggregate for one history view
type FilterPipelineInterface interface {
	Run(ctx context.Context, req PipelineRequest) (*PipelineResult, error)
}

// PreferenceServiceInterface stores the last date range a user picked
type PreferenceServiceInterface interface {
	GetLastDateRange(ctx context.Context, userID uuid.UUID) (*models.DateRangePreference, error)
	SetLastDateRange(ctx context.Context, userID uuid.UUID, pref models.DateRangePreference) error
}

// SelectionServiceInterface manages short-lived picker sessions
type SelectionServiceInterface interface {
	Begin(userID uuid.UUID, kind models.SelectionKind) (*models.SelectionSession, error)
	Complete(userID, sessionID uuid.UUID, selectedID, selectedLabel string) (*models.SelectionSession, error)
	Get(userID, sessionID uuid.UUID) (*models.SelectionSession, error)
	Clear(userID, sessionID uuid.UUID) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TransactionGeneratorInterface generates realistic income and expense history
type TransactionGeneratorInterface interface {
	GenerateHistory(userID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction
	GenerateMonthlyIncome(userID uuid.UUID, startDate, endDate time.Time) []*models.Transaction
	GenerateTransactionType() string
	GenerateAmount(transactionType string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
	GetCategoryPool() []CategoryTemplate
	GetWalletPool() []WalletTemplate
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
