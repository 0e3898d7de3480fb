package services

import (
	"context"

	"finance-history/internal/models"
	"finance-history/internal/repositories"
)

type repositoryTransactionSource struct {
	repo repositories.TransactionRepositoryInterface
}

// NewRepositoryTransactionSource serves history fetches from the local transactions table
func NewRepositoryTransactionSource(repo repositories.TransactionRepositoryInterface) TransactionSource {
	return &repositoryTransactionSource{repo: repo}
}

func (s *repositoryTransactionSource) FetchTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error) {
	return s.repo.FindInRange(ctx, query.UserID, query.Start, query.End, query.ParentCategoryID)
}
