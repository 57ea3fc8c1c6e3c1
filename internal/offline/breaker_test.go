package offline

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type BreakerFetcherTestSuite struct {
	suite.Suite
	upstream *stubFetcher
	breaker  *BreakerFetcher
	clock    time.Time
}

func (s *BreakerFetcherTestSuite) SetupTest() {
	s.upstream = newStubFetcher()
	s.upstream.serve(ChartLibraryURL, "chart()")
	s.clock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.breaker = NewBreakerFetcher(s.upstream, BreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	s.breaker.now = func() time.Time { return s.clock }
}

func TestBreakerFetcherSuite(t *testing.T) {
	suite.Run(t, new(BreakerFetcherTestSuite))
}

func (s *BreakerFetcherTestSuite) fetch(url string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	s.Require().NoError(err)
	return s.breaker.Fetch(context.Background(), req)
}

func (s *BreakerFetcherTestSuite) TestFetch_PassesThroughWhenClosed() {
	resp, err := s.fetch(ChartLibraryURL)

	s.Require().NoError(err)
	s.Equal("chart()", string(resp.Body))
	s.Equal(BreakerClosed, s.breaker.State())
}

func (s *BreakerFetcherTestSuite) TestFetch_OpensAfterConsecutiveFailures() {
	s.upstream.failures[IconFontURL] = errors.New("dial tcp: connection refused")

	_, err := s.fetch(IconFontURL)
	s.Error(err)
	_, err = s.fetch(IconFontURL)
	s.Error(err)

	s.Equal(BreakerOpen, s.breaker.State())

	_, err = s.fetch(ChartLibraryURL)
	s.ErrorIs(err, ErrBreakerOpen)
	s.Zero(s.upstream.callCount(ChartLibraryURL))
}

func (s *BreakerFetcherTestSuite) TestFetch_ServerErrorCountsAsFailure() {
	s.upstream.responses[IconFontURL] = &Response{URL: IconFontURL, StatusCode: http.StatusBadGateway}

	resp, err := s.fetch(IconFontURL)
	s.Require().NoError(err)
	s.Equal(http.StatusBadGateway, resp.StatusCode)

	_, _ = s.fetch(IconFontURL)
	s.Equal(BreakerOpen, s.breaker.State())
}

func (s *BreakerFetcherTestSuite) TestFetch_SuccessResetsFailureCount() {
	s.upstream.failures[IconFontURL] = errors.New("timeout")

	_, _ = s.fetch(IconFontURL)
	_, err := s.fetch(ChartLibraryURL)
	s.Require().NoError(err)
	_, _ = s.fetch(IconFontURL)

	s.Equal(BreakerClosed, s.breaker.State())
}

func (s *BreakerFetcherTestSuite) TestFetch_RetriesAfterResetTimeout() {
	s.upstream.failures[IconFontURL] = errors.New("timeout")
	_, _ = s.fetch(IconFontURL)
	_, _ = s.fetch(IconFontURL)
	s.Require().Equal(BreakerOpen, s.breaker.State())

	s.clock = s.clock.Add(2 * time.Minute)

	resp, err := s.fetch(ChartLibraryURL)
	s.Require().NoError(err)
	s.Equal("chart()", string(resp.Body))
	s.Equal(BreakerClosed, s.breaker.State())
}

func (s *BreakerFetcherTestSuite) TestFetch_FailedRetryReopens() {
	s.upstream.failures[IconFontURL] = errors.New("timeout")
	_, _ = s.fetch(IconFontURL)
	_, _ = s.fetch(IconFontURL)

	s.clock = s.clock.Add(2 * time.Minute)
	_, err := s.fetch(IconFontURL)

	s.Error(err)
	s.NotErrorIs(err, ErrBreakerOpen)
	s.Equal(BreakerOpen, s.breaker.State())
}

func (s *BreakerFetcherTestSuite) TestBreakerState_String() {
	s.Equal("closed", BreakerClosed.String())
	s.Equal("open", BreakerOpen.String())
	s.Equal("half_open", BreakerHalfOpen.String())
}
