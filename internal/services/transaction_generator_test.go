package services

import (
	"testing"
	"time"

	"finance-history/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator *transactionGenerator
	userID    uuid.UUID
	start     time.Time
	end       time.Time
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = NewSeededTransactionGenerator(42).(*transactionGenerator)
	s.userID = uuid.New()
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
}

func (s *TransactionGeneratorTestSuite) TestCategoryPool_CoversBothDirections() {
	types := make(map[string]bool)
	for _, c := range s.generator.GetCategoryPool() {
		s.NotEmpty(c.Name)
		s.NotEqual(uuid.Nil, c.ID)
		s.True(c.MaxAmount >= c.MinAmount, "bad range for %s", c.Name)
		types[c.TransactionType] = true
	}

	s.True(types[models.TransactionTypeIncome])
	s.True(types[models.TransactionTypeExpense])
}

func (s *TransactionGeneratorTestSuite) TestCategoryPool_HasTopLevelAndChildCategories() {
	var topLevel, children int
	for _, c := range s.generator.GetCategoryPool() {
		if c.ParentID == nil {
			topLevel++
		} else {
			children++
			s.NotEmpty(c.ParentName)
		}
	}

	s.Positive(topLevel)
	s.Positive(children)
}

func (s *TransactionGeneratorTestSuite) TestCategoryIDs_AreStableAcrossGenerators() {
	other := NewSeededTransactionGenerator(7)

	s.Equal(s.generator.GetCategoryPool()[0].ID, other.GetCategoryPool()[0].ID)
	s.Equal(s.generator.GetWalletPool()[0].ID, other.GetWalletPool()[0].ID)
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactionType_ValidTypes() {
	for i := 0; i < 200; i++ {
		s.True(models.IsValidTransactionType(s.generator.GenerateTransactionType()))
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_PositiveWithTwoDecimals() {
	for i := 0; i < 100; i++ {
		amount := s.generator.GenerateAmount(models.TransactionTypeExpense)
		s.True(amount.IsPositive())
		s.LessOrEqual(-amount.Exponent(), int32(2))
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTimestamp_WithinDateRange() {
	for i := 0; i < 200; i++ {
		ts := s.generator.GenerateTimestamp(s.start, s.end)
		s.False(ts.Before(s.start))
		s.False(ts.After(s.end))
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateTimestamp_EmptyRange() {
	s.Equal(s.start, s.generator.GenerateTimestamp(s.start, s.start))
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistory_ChronologicalAndValid() {
	transactions := s.generator.GenerateHistory(s.userID, s.start, s.end, 150)
	s.Len(transactions, 150)

	for i, tx := range transactions {
		s.NoError(tx.Validate())
		s.Equal(s.userID, tx.UserID)
		if i > 0 {
			s.False(tx.TransactionDate.Before(transactions[i-1].TransactionDate))
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistory_ParentFieldsMatchCategory() {
	byID := make(map[uuid.UUID]CategoryTemplate)
	for _, c := range s.generator.GetCategoryPool() {
		byID[c.ID] = c
	}

	for _, tx := range s.generator.GenerateHistory(s.userID, s.start, s.end, 100) {
		c, ok := byID[tx.CategoryID]
		s.Require().True(ok)
		s.Equal(c.TransactionType, tx.TransactionType)
		if c.ParentID == nil {
			s.Nil(tx.ParentCategoryID)
			s.Equal(c.ID, tx.PartitionKey())
		} else {
			s.Equal(*c.ParentID, tx.PartitionKey())
			s.Equal(c.ParentName, tx.PartitionName())
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateHistory_ZeroCount() {
	s.Empty(s.generator.GenerateHistory(s.userID, s.start, s.end, 0))
}

func (s *TransactionGeneratorTestSuite) TestGenerateMonthlyIncome_OnePerMonth() {
	salaries := s.generator.GenerateMonthlyIncome(s.userID, s.start, s.end)
	s.Len(salaries, 3)

	for i, tx := range salaries {
		s.Equal(models.TransactionTypeIncome, tx.TransactionType)
		s.Equal(1, tx.TransactionDate.Day())
		s.Equal(time.Month(i+1), tx.TransactionDate.Month())
		s.NoError(tx.Validate())
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateMonthlyIncome_SkipsFirstBeforeStart() {
	salaries := s.generator.GenerateMonthlyIncome(s.userID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), s.end)
	s.Len(salaries, 2)
}
