package dto

import "time"

// SeedHistoryResponse reports what the dev seeder wrote
type SeedHistoryResponse struct {
	TransactionsCreated int       `json:"transactionsCreated"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
}

// ClearHistoryResponse reports what the dev seeder removed
type ClearHistoryResponse struct {
	TransactionsDeleted int64 `json:"transactionsDeleted"`
}
