package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock   *fakeClock
	metrics *recordingMetrics
	cb      *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = newFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	s.metrics = newRecordingMetrics()
	s.cb = newCircuitBreaker(CircuitBreakerConfig{
		Name:            "test_backend",
		MaxFailures:     3,
		ResetTimeout:    10 * time.Second,
		HalfOpenMaxSucc: 2,
	}, s.metrics, s.clock.Now)
}

func (s *CircuitBreakerTestSuite) openBreaker() {
	for i := 0; i < 3; i++ {
		s.cb.RecordFailure()
	}
	s.Require().Equal(StateOpen, s.cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestStartsClosedAndPublishesState() {
	s.Equal(StateClosed, s.cb.GetState())
	s.False(s.cb.IsOpen())

	gauge, ok := s.metrics.lastGauge("circuit_breaker.state")
	s.Require().True(ok)
	s.Equal(float64(StateClosed), gauge.value)
	s.Equal("test_backend", gauge.tags["service"])
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.cb.RecordFailure()
	s.cb.RecordFailure()
	s.Equal(StateClosed, s.cb.GetState())
	s.Equal(2, s.cb.GetFailureCount())

	s.cb.RecordFailure()
	s.True(s.cb.IsOpen())

	gauge, _ := s.metrics.lastGauge("circuit_breaker.state")
	s.Equal(float64(StateOpen), gauge.value)
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCountWhenClosed() {
	s.cb.RecordFailure()
	s.cb.RecordFailure()
	s.cb.RecordSuccess()

	s.Equal(0, s.cb.GetFailureCount())
	s.cb.RecordFailure()
	s.Equal(StateClosed, s.cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	s.openBreaker()

	s.clock.Advance(5 * time.Second)
	s.True(s.cb.IsOpen())

	s.clock.Advance(6 * time.Second)
	s.False(s.cb.IsOpen())
	s.Equal(StateHalfOpen, s.cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterEnoughSuccesses() {
	s.openBreaker()
	s.clock.Advance(11 * time.Second)
	s.Require().False(s.cb.IsOpen())

	s.cb.RecordSuccess()
	s.Equal(StateHalfOpen, s.cb.GetState())
	s.cb.RecordSuccess()
	s.Equal(StateClosed, s.cb.GetState())
	s.Equal(0, s.cb.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.openBreaker()
	s.clock.Advance(11 * time.Second)
	s.Require().False(s.cb.IsOpen())

	s.cb.RecordFailure()
	s.Equal(StateOpen, s.cb.GetState())
	s.True(s.cb.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	s.openBreaker()

	s.cb.Reset()

	s.Equal(StateClosed, s.cb.GetState())
	s.Equal(0, s.cb.GetFailureCount())
	s.False(s.cb.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestNilMetricsIsAllowed() {
	cb := NewCircuitBreaker(DefaultCircuitBreakerConfig(), nil)
	for i := 0; i < 5; i++ {
		cb.RecordFailure()
	}
	s.True(cb.IsOpen())
	s.Equal("open", cb.GetState().String())
}
