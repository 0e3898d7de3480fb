package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
)

var ErrFetchFailed = errors.New("failed to fetch transactions")

// PipelineStatus tells callers whether a run produced a result
type PipelineStatus string

const (
	PipelineStatusSuccess     PipelineStatus = "success"
	PipelineStatusFetchFailed PipelineStatus = "fetch_failed"
)

// TransactionQuery is what a TransactionSource is asked for.
// ParentCategoryID narrows the fetch for the category view.
type TransactionQuery struct {
	UserID           uuid.UUID
	Start            time.Time
	End              time.Time
	ParentCategoryID *uuid.UUID
}

// TransactionSourceFunc adapts a plain function to TransactionSource
type TransactionSourceFunc func(ctx context.Context, query TransactionQuery) ([]models.Transaction, error)

func (f TransactionSourceFunc) FetchTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error) {
	return f(ctx, query)
}

// PipelineRequest describes one history view
type PipelineRequest struct {
	UserID      uuid.UUID
	Token       models.DateRangeToken
	CustomStart *time.Time
	CustomEnd   *time.Time
	Spec        models.FilterSpec
}

// PipelineResult is either a full result or a fetch failure, never a partial one.
// Result is nil unless Status is PipelineStatusSuccess.
type PipelineResult struct {
	Status         PipelineStatus
	Token          models.DateRangeToken
	ResolvedRange  models.DateRange
	Result         *models.AggregatedResult
	FetchErr       error
	FetchedCount   int
	MalformedCount int
}

// Failed returns true when the fetch step failed
func (r *PipelineResult) Failed() bool {
	return r.Status == PipelineStatusFetchFailed
}

type filterPipeline struct {
	resolver   DateRangeResolverInterface
	source     TransactionSource
	filter     TransactionFilterInterface
	aggregator TransactionAggregatorInterface
	metrics    MetricsRecorderInterface
}

func NewFilterPipeline(
	resolver DateRangeResolverInterface,
	source TransactionSource,
	filter TransactionFilterInterface,
	aggregator TransactionAggregatorInterface,
	metrics MetricsRecorderInterface,
) FilterPipelineInterface {
	return &filterPipeline{
		resolver:   resolver,
		source:     source,
		filter:     filter,
		aggregator: aggregator,
		metrics:    metrics,
	}
}

// Run resolves the window, performs the single fetch, then filters and aggregates.
// Resolve errors come back as errors. A failed fetch comes back as a PipelineResult with
// Status PipelineStatusFetchFailed and nothing after the fetch runs. There are no retries.
func (p *filterPipeline) Run(ctx context.Context, req PipelineRequest) (*PipelineResult, error) {
	startTime := time.Now()

	resolved, err := p.resolver.Resolve(req.Token, req.CustomStart, req.CustomEnd)
	if err != nil {
		p.recordRun("invalid_argument", startTime)
		return nil, err
	}

	query := TransactionQuery{
		UserID: req.UserID,
		Start:  resolved.Start,
		End:    resolved.End,
	}
	if scope, ok := req.Spec.Scope.(models.ParentCategoryScope); ok {
		parentID := scope.ParentCategoryID
		query.ParentCategoryID = &parentID
	}

	raw, err := p.source.FetchTransactions(ctx, query)
	if err != nil {
		slog.Error("history fetch failed",
			"user_id", req.UserID,
			"token", req.Token,
			"start_date", resolved.Start.Format("2006-01-02"),
			"end_date", resolved.End.Format("2006-01-02"),
			"error", err)
		p.recordRun(string(PipelineStatusFetchFailed), startTime)

		return &PipelineResult{
			Status:        PipelineStatusFetchFailed,
			Token:         req.Token,
			ResolvedRange: resolved,
			FetchErr:      asFetchError(err),
		}, nil
	}

	malformed := p.reportMalformed(req.UserID, raw)

	filtered := p.filter.Apply(raw, req.Spec)
	aggregated := p.aggregator.Aggregate(filtered)

	p.metrics.RecordGauge("history.transactions_fetched", float64(len(raw)), nil)
	p.metrics.AddCounter("history.transactions_filtered_out", float64(len(raw)-len(filtered)), nil)
	p.recordRun(string(PipelineStatusSuccess), startTime)

	slog.Info("history pipeline completed",
		"user_id", req.UserID,
		"token", req.Token,
		"fetched", len(raw),
		"matched", len(filtered),
		"categories", len(aggregated.Categories),
		"duration_ms", time.Since(startTime).Milliseconds())

	return &PipelineResult{
		Status:         PipelineStatusSuccess,
		Token:          req.Token,
		ResolvedRange:  resolved,
		FetchedCount:   len(raw),
		MalformedCount: malformed,
		Result: &models.AggregatedResult{
			Categories:    aggregated.Categories,
			Totals:        aggregated.Totals,
			ResolvedRange: resolved,
			Chips:         nameCategoryScope(req.Spec, raw).Chips(),
		},
	}, nil
}

func (p *filterPipeline) recordRun(status string, startTime time.Time) {
	p.metrics.IncrementCounter("history.pipeline.run", map[string]string{"status": status})
	p.metrics.RecordProcessingTime("history.pipeline", time.Since(startTime))
}

func asFetchError(err error) error {
	if errors.Is(err, ErrFetchFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrFetchFailed, err)
}

// reportMalformed logs and counts fetched rows that needed lenient repair and
// returns how many did.
func (p *filterPipeline) reportMalformed(userID uuid.UUID, txs []models.Transaction) int {
	var badAmounts, badTypes, malformed int
	for i := range txs {
		if txs[i].AmountMalformed {
			badAmounts++
		}
		if txs[i].TypeUnrecognized {
			badTypes++
		}
		if txs[i].IsMalformed() {
			malformed++
		}
	}

	if badAmounts > 0 {
		slog.Warn("transactions with malformed amounts counted as zero",
			"user_id", userID,
			"malformed_count", badAmounts)
	}
	if badTypes > 0 {
		slog.Warn("transactions with unrecognized type left out of income and expense totals",
			"user_id", userID,
			"unrecognized_count", badTypes)
	}
	if malformed > 0 {
		p.metrics.AddCounter("history.malformed_records", float64(malformed), nil)
	}
	return malformed
}

// nameCategoryScope labels a category scope with the parent name found in the
// fetched rows, so the chip reads "Category: Food" instead of a bare "Category".
func nameCategoryScope(spec models.FilterSpec, txs []models.Transaction) models.FilterSpec {
	scope, ok := spec.Scope.(models.ParentCategoryScope)
	if !ok || scope.ParentCategoryName != "" {
		return spec
	}
	for i := range txs {
		if txs[i].PartitionKey() == scope.ParentCategoryID && txs[i].PartitionName() != "" {
			scope.ParentCategoryName = txs[i].PartitionName()
			spec.Scope = scope
			break
		}
	}
	return spec
}
