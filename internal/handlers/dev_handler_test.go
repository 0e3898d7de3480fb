package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"finance-history/internal/dto"
	"finance-history/internal/models"
	"finance-history/internal/repositories/repository_mocks"
	"finance-history/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	echo    *echo.Echo
	repo    *repository_mocks.MockTransactionRepositoryInterface
	handler *DevHandler
	userID  uuid.UUID
	now     time.Time
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.handler = NewDevHandler(s.repo, services.NewSeededTransactionGenerator(7))
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.handler.now = func() time.Time { return s.now }
	s.userID = uuid.New()
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) TestSeedHistory() {
	var stored []models.Transaction
	s.repo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(txs []models.Transaction) error {
		stored = txs
		return nil
	})

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/api/v1/dev/history/seed?count=50&days=60", nil, s.userID)

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusCreated, rec.Code)

	// 50 generated entries plus the salaries of February and March
	s.Len(stored, 52)
	for _, tx := range stored {
		s.Equal(s.userID, tx.UserID)
		s.False(tx.TransactionDate.Before(s.now.AddDate(0, 0, -60)))
		s.False(tx.TransactionDate.After(s.now))
	}

	var resp dto.SeedHistoryResponse
	decodeData(s.T(), rec, &resp)
	s.Equal(52, resp.TransactionsCreated)
	s.Equal(s.now, resp.EndDate)
}

func (s *DevHandlerTestSuite) TestSeedHistory_ClampsParameters() {
	s.repo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(txs []models.Transaction) error {
		s.GreaterOrEqual(len(txs), 1)
		return nil
	})

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/?count=0&days=-3", nil, s.userID)

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestSeedHistory_StoreError() {
	s.repo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("constraint violation"))

	c, rec := newAuthedContext(s.echo, http.MethodPost, "/?count=5", nil, s.userID)

	s.Require().NoError(s.handler.SeedHistory(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *DevHandlerTestSuite) TestClearHistory() {
	s.repo.EXPECT().DeleteByUser(s.userID).Return(int64(12), nil)

	c, rec := newAuthedContext(s.echo, http.MethodDelete, "/api/v1/dev/history", nil, s.userID)

	s.Require().NoError(s.handler.ClearHistory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ClearHistoryResponse
	decodeData(s.T(), rec, &resp)
	s.Equal(int64(12), resp.TransactionsDeleted)
}

func (s *DevHandlerTestSuite) TestRequiresUser() {
	c, rec := newAuthedContext(s.echo, http.MethodDelete, "/", nil, uuid.Nil)

	s.Require().NoError(s.handler.ClearHistory(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
