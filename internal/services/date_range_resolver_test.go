package services

import (
	"testing"
	"time"

	"finance-history/internal/models"

	"github.com/stretchr/testify/suite"
)

type DateRangeResolverTestSuite struct {
	suite.Suite
	now      time.Time
	resolver DateRangeResolverInterface
}

func TestDateRangeResolverSuite(t *testing.T) {
	suite.Run(t, new(DateRangeResolverTestSuite))
}

func (s *DateRangeResolverTestSuite) SetupTest() {
	// Friday
	s.now = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	s.resolver = NewDateRangeResolver(func() time.Time { return s.now })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
}

func (s *DateRangeResolverTestSuite) TestResolve_PresetTokens() {
	tests := []struct {
		token         models.DateRangeToken
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{models.DateRangeToday, date(2024, 3, 15), endOf(2024, 3, 15)},
		{models.DateRangeYesterday, date(2024, 3, 14), endOf(2024, 3, 14)},
		{models.DateRangeThisWeek, date(2024, 3, 11), endOf(2024, 3, 17)},
		{models.DateRangeLastWeek, date(2024, 3, 4), endOf(2024, 3, 10)},
		{models.DateRangeThisMonth, date(2024, 3, 1), endOf(2024, 3, 31)},
		{models.DateRangeLastMonth, date(2024, 2, 1), endOf(2024, 2, 29)},
		{models.DateRangeThisYear, date(2024, 1, 1), endOf(2024, 12, 31)},
		{models.DateRangeLastYear, date(2023, 1, 1), endOf(2023, 12, 31)},
	}

	for _, tt := range tests {
		s.Run(string(tt.token), func() {
			got, err := s.resolver.Resolve(tt.token, nil, nil)
			s.Require().NoError(err)
			s.True(tt.expectedStart.Equal(got.Start), "start: got %s", got.Start)
			s.True(tt.expectedEnd.Equal(got.End), "end: got %s", got.End)
		})
	}
}

func (s *DateRangeResolverTestSuite) TestResolve_LastWeekFromWednesday() {
	s.now = time.Date(2024, 5, 22, 9, 0, 0, 0, time.UTC)

	got, err := s.resolver.Resolve(models.DateRangeLastWeek, nil, nil)
	s.Require().NoError(err)

	s.Equal(time.Monday, got.Start.Weekday())
	s.Equal(time.Sunday, got.End.Weekday())
	s.True(date(2024, 5, 13).Equal(got.Start))
	s.True(endOf(2024, 5, 19).Equal(got.End))

	_, week := got.Start.ISOWeek()
	_, current := s.now.ISOWeek()
	s.Equal(current-1, week)
}

func (s *DateRangeResolverTestSuite) TestResolve_ThisWeekOnSunday() {
	s.now = time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)

	got, err := s.resolver.Resolve(models.DateRangeThisWeek, nil, nil)
	s.Require().NoError(err)
	s.True(date(2024, 3, 11).Equal(got.Start))
	s.True(endOf(2024, 3, 17).Equal(got.End))
}

func (s *DateRangeResolverTestSuite) TestResolve_LastMonthAcrossYearBoundary() {
	s.now = time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	got, err := s.resolver.Resolve(models.DateRangeLastMonth, nil, nil)
	s.Require().NoError(err)
	s.True(date(2023, 12, 1).Equal(got.Start))
	s.True(endOf(2023, 12, 31).Equal(got.End))
}

func (s *DateRangeResolverTestSuite) TestResolve_IsIdempotentForFixedClock() {
	for _, token := range models.AllDateRangeTokens() {
		if token == models.DateRangeCustom {
			continue
		}
		first, err := s.resolver.Resolve(token, nil, nil)
		s.Require().NoError(err)
		second, err := s.resolver.Resolve(token, nil, nil)
		s.Require().NoError(err)
		s.Equal(first, second, "token %s", token)
	}
}

func (s *DateRangeResolverTestSuite) TestResolve_KeepsClockLocation() {
	loc := time.FixedZone("UTC+7", 7*60*60)
	s.now = time.Date(2024, 3, 15, 1, 0, 0, 0, loc)

	got, err := s.resolver.Resolve(models.DateRangeToday, nil, nil)
	s.Require().NoError(err)
	s.Equal(loc, got.Start.Location())
	s.Equal(15, got.Start.Day())
}

func (s *DateRangeResolverTestSuite) TestResolve_CustomReturnsBoundsVerbatim() {
	start := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 20, 18, 0, 0, 0, time.UTC)

	got, err := s.resolver.Resolve(models.DateRangeCustom, &start, &end)
	s.Require().NoError(err)
	s.Equal(start, got.Start)
	s.Equal(end, got.End)
}

func (s *DateRangeResolverTestSuite) TestResolve_CustomInvertedIsNotRejected() {
	start := date(2024, 2, 20)
	end := date(2024, 2, 10)

	got, err := s.resolver.Resolve(models.DateRangeCustom, &start, &end)
	s.Require().NoError(err)
	s.True(got.IsInverted())
}

func (s *DateRangeResolverTestSuite) TestResolve_CustomMissingBounds() {
	start := date(2024, 2, 10)

	_, err := s.resolver.Resolve(models.DateRangeCustom, &start, nil)
	s.ErrorIs(err, ErrMissingCustomBounds)
	s.ErrorIs(err, ErrInvalidArgument)

	_, err = s.resolver.Resolve(models.DateRangeCustom, nil, nil)
	s.ErrorIs(err, ErrInvalidArgument)
}

func (s *DateRangeResolverTestSuite) TestResolve_UnknownToken() {
	_, err := s.resolver.Resolve(models.DateRangeToken("next_decade"), nil, nil)
	s.ErrorIs(err, ErrInvalidArgument)
	s.Contains(err.Error(), "next_decade")
}

func (s *DateRangeResolverTestSuite) TestNewDateRangeResolver_NilClockUsesNow() {
	resolver := NewDateRangeResolver(nil)

	got, err := resolver.Resolve(models.DateRangeToday, nil, nil)
	s.Require().NoError(err)
	s.WithinDuration(time.Now(), got.Start, 24*time.Hour)
}
