package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"finance-history/internal/models"
	"finance-history/internal/services"
	"finance-history/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FilterPipelineTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	source   *service_mocks.MockTransactionSource
	metrics  *service_mocks.MockMetricsRecorderInterface
	pipeline services.FilterPipelineInterface
	ctx      context.Context
	userID   uuid.UUID
	now      time.Time
}

func TestFilterPipelineSuite(t *testing.T) {
	suite.Run(t, new(FilterPipelineTestSuite))
}

func (s *FilterPipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = service_mocks.NewMockTransactionSource(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	s.pipeline = services.NewFilterPipeline(
		services.NewDateRangeResolver(func() time.Time { return s.now }),
		s.source,
		services.NewTransactionFilter(),
		services.NewTransactionAggregator(),
		s.metrics,
	)
}

func (s *FilterPipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FilterPipelineTestSuite) expectRunMetrics(status string) {
	s.metrics.EXPECT().IncrementCounter("history.pipeline.run", map[string]string{"status": status})
	s.metrics.EXPECT().RecordProcessingTime("history.pipeline", gomock.Any())
}

func (s *FilterPipelineTestSuite) expectSuccessMetrics() {
	s.metrics.EXPECT().RecordGauge("history.transactions_fetched", gomock.Any(), gomock.Nil()).AnyTimes()
	s.metrics.EXPECT().AddCounter("history.transactions_filtered_out", gomock.Any(), gomock.Nil()).AnyTimes()
	s.expectRunMetrics("success")
}

func (s *FilterPipelineTestSuite) tx(parentName, transactionType, value, note string) models.Transaction {
	parentID := models.StableID("category:" + parentName)
	return models.Transaction{
		ID:                 uuid.New(),
		UserID:             s.userID,
		TransactionType:    transactionType,
		Amount:             decimal.RequireFromString(value),
		CategoryID:         uuid.New(),
		CategoryName:       parentName + " leaf",
		ParentCategoryID:   &parentID,
		ParentCategoryName: parentName,
		WalletID:           models.StableID("wallet:Cash"),
		WalletName:         "Cash",
		Note:               note,
		TransactionDate:    s.now.AddDate(0, 0, -2),
	}
}

func (s *FilterPipelineTestSuite) TestRun_FetchesResolvedWindowOnce() {
	s.source.EXPECT().
		FetchTransactions(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q services.TransactionQuery) ([]models.Transaction, error) {
			s.Equal(s.userID, q.UserID)
			s.True(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(q.Start))
			s.Equal(31, q.End.Day())
			s.Nil(q.ParentCategoryID)
			return nil, nil
		}).
		Times(1)
	s.expectSuccessMetrics()

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisMonth,
	})

	s.Require().NoError(err)
	s.Equal(services.PipelineStatusSuccess, result.Status)
	s.False(result.Failed())
	s.Require().NotNil(result.Result)
	s.Empty(result.Result.Categories)
	s.Equal(result.ResolvedRange, result.Result.ResolvedRange)
}

func (s *FilterPipelineTestSuite) TestRun_FiltersAndAggregates() {
	raw := []models.Transaction{
		s.tx("Food", models.TransactionTypeExpense, "50", "lunch"),
		s.tx("Food", models.TransactionTypeExpense, "30", "dinner"),
		s.tx("Transport", models.TransactionTypeIncome, "20", "refund"),
	}
	s.source.EXPECT().FetchTransactions(s.ctx, gomock.Any()).Return(raw, nil)
	s.metrics.EXPECT().RecordGauge("history.transactions_fetched", 3.0, gomock.Nil())
	s.metrics.EXPECT().AddCounter("history.transactions_filtered_out", 1.0, gomock.Nil())
	s.expectRunMetrics("success")

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisMonth,
		Spec:   models.FilterSpec{Scope: models.TypeScope{Type: models.TransactionTypeExpense}},
	})

	s.Require().NoError(err)
	s.Equal(3, result.FetchedCount)
	s.Require().Len(result.Result.Categories, 1)
	s.Equal("Food", result.Result.Categories[0].ParentCategoryName)
	s.Equal(int64(2), result.Result.Categories[0].TotalCount)
	s.True(decimal.NewFromInt(80).Equal(result.Result.Totals.Expense))
	s.True(result.Result.Totals.Income.IsZero())
	s.Equal([]string{"Expense"}, result.Result.Chips)
}

func (s *FilterPipelineTestSuite) TestRun_CategoryScopeNarrowsQuery() {
	foodID := models.StableID("category:Food")

	s.source.EXPECT().
		FetchTransactions(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q services.TransactionQuery) ([]models.Transaction, error) {
			s.Require().NotNil(q.ParentCategoryID)
			s.Equal(foodID, *q.ParentCategoryID)
			return []models.Transaction{s.tx("Food", models.TransactionTypeExpense, "12", "")}, nil
		})
	s.expectSuccessMetrics()

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisWeek,
		Spec:   models.FilterSpec{Scope: models.ParentCategoryScope{ParentCategoryID: foodID}},
	})

	s.Require().NoError(err)
	s.Require().Len(result.Result.Categories, 1)
	s.Equal(foodID, result.Result.Categories[0].ParentCategoryID)
	s.Equal([]string{"Category: Food"}, result.Result.Chips)
}

func (s *FilterPipelineTestSuite) TestRun_CategoryChipWithoutRowsStaysGeneric() {
	s.source.EXPECT().FetchTransactions(s.ctx, gomock.Any()).Return(nil, nil)
	s.expectSuccessMetrics()

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisWeek,
		Spec:   models.FilterSpec{Scope: models.ParentCategoryScope{ParentCategoryID: uuid.New()}},
	})

	s.Require().NoError(err)
	s.Equal([]string{"Category"}, result.Result.Chips)
}

func (s *FilterPipelineTestSuite) TestRun_FetchFailureYieldsNoPartialResult() {
	backendErr := errors.New("backend unavailable")
	s.source.EXPECT().FetchTransactions(s.ctx, gomock.Any()).Return(nil, backendErr)
	s.expectRunMetrics("fetch_failed")

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeToday,
	})

	s.Require().NoError(err)
	s.True(result.Failed())
	s.Equal(services.PipelineStatusFetchFailed, result.Status)
	s.Nil(result.Result)
	s.ErrorIs(result.FetchErr, services.ErrFetchFailed)
	s.ErrorIs(result.FetchErr, backendErr)
	s.Equal(models.DateRangeToday, result.Token)
}

func (s *FilterPipelineTestSuite) TestRun_InvalidTokenNeverFetches() {
	s.expectRunMetrics("invalid_argument")

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeCustom,
	})

	s.ErrorIs(err, services.ErrInvalidArgument)
	s.Nil(result)
}

func (s *FilterPipelineTestSuite) TestRun_MalformedAmountsAreCountedAsZero() {
	record := models.TransactionRecord{
		ID:              "tx-1",
		UserID:          s.userID.String(),
		Amount:          json.RawMessage(`"N/A"`),
		TransactionType: "expense",
		CategoryID:      "food",
		CategoryName:    "Food",
		WalletID:        "cash",
		WalletName:      "Cash",
		TransactionDate: "2024-03-12",
	}
	good := s.tx("Food", models.TransactionTypeExpense, "7.25", "")

	s.source.EXPECT().FetchTransactions(s.ctx, gomock.Any()).Return([]models.Transaction{record.ToTransaction(), good}, nil)
	s.metrics.EXPECT().AddCounter("history.malformed_records", 1.0, gomock.Nil())
	s.expectSuccessMetrics()

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisMonth,
	})

	s.Require().NoError(err)
	s.Equal(1, result.MalformedCount)
	s.Equal(int64(2), result.Result.Totals.Count)
	s.True(decimal.RequireFromString("7.25").Equal(result.Result.Totals.Expense))
}

func (s *FilterPipelineTestSuite) TestRun_UnrecognizedTypeIsFlagged() {
	record := models.TransactionRecord{
		ID:              "tx-2",
		UserID:          s.userID.String(),
		Amount:          json.RawMessage(`50`),
		TransactionType: "transfer",
		CategoryID:      "moves",
		CategoryName:    "Moves",
		WalletID:        "cash",
		WalletName:      "Cash",
		TransactionDate: "2024-03-12",
	}
	good := s.tx("Food", models.TransactionTypeExpense, "7.25", "")

	s.source.EXPECT().FetchTransactions(s.ctx, gomock.Any()).Return([]models.Transaction{record.ToTransaction(), good}, nil)
	s.metrics.EXPECT().AddCounter("history.malformed_records", 1.0, gomock.Nil())
	s.expectSuccessMetrics()

	result, err := s.pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeThisMonth,
	})

	s.Require().NoError(err)
	s.Equal(1, result.MalformedCount)
	s.Equal(int64(2), result.Result.Totals.Count)
	s.True(result.Result.Totals.Income.IsZero())
	s.True(decimal.RequireFromString("7.25").Equal(result.Result.Totals.Expense))
}

func (s *FilterPipelineTestSuite) TestRun_SourceFuncAdapter() {
	calls := 0
	pipeline := services.NewFilterPipeline(
		services.NewDateRangeResolver(func() time.Time { return s.now }),
		services.TransactionSourceFunc(func(context.Context, services.TransactionQuery) ([]models.Transaction, error) {
			calls++
			return []models.Transaction{s.tx("Food", models.TransactionTypeExpense, "5", "Paid taxi fare")}, nil
		}),
		services.NewTransactionFilter(),
		services.NewTransactionAggregator(),
		s.metrics,
	)
	s.expectSuccessMetrics()

	result, err := pipeline.Run(s.ctx, services.PipelineRequest{
		UserID: s.userID,
		Token:  models.DateRangeYesterday,
		Spec:   models.FilterSpec{NoteSubstring: "TAXI"},
	})

	s.Require().NoError(err)
	s.Equal(1, calls)
	s.Equal(int64(1), result.Result.Totals.Count)
	s.Equal([]string{`Note: "TAXI"`}, result.Result.Chips)
}
