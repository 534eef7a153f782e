package ownership

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"leaguedash/internal/model"
	"leaguedash/internal/storage/memory"
	"leaguedash/internal/testutil"
)

type stubFetcher struct {
	stats map[string]map[model.PlayerID]model.OwnershipStat
	err   error
}

func (f *stubFetcher) FetchOwnership(ctx context.Context, season string) (map[model.PlayerID]model.OwnershipStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats[season], nil
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	fetcher *stubFetcher
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.fetcher = &stubFetcher{stats: map[string]map[model.PlayerID]model.OwnershipStat{}}
	s.service = New(s.storage, s.fetcher, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRefreshStoresStats() {
	s.fetcher.stats["2025"] = map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 99.5, Started: 98.1},
		"2": {PlayerID: "2", Owned: 42.0, Started: 10.3},
	}

	n, err := s.service.Refresh(s.ctx, "2025")
	s.Require().NoError(err)
	s.Equal(2, n)

	stat, err := s.service.Get(s.ctx, "2025", "1")
	s.Require().NoError(err)
	s.Equal(99.5, stat.Owned)
	s.Equal(98.1, stat.Started)
}

func (s *ServiceSuite) TestRefreshSeasonsIndependent() {
	s.fetcher.stats["2024"] = map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 80},
	}
	s.fetcher.stats["2025"] = map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 95},
	}

	_, err := s.service.Refresh(s.ctx, "2024")
	s.Require().NoError(err)
	_, err = s.service.Refresh(s.ctx, "2025")
	s.Require().NoError(err)

	older, err := s.service.Get(s.ctx, "2024", "1")
	s.Require().NoError(err)
	s.Equal(80.0, older.Owned)

	newer, err := s.service.Get(s.ctx, "2025", "1")
	s.Require().NoError(err)
	s.Equal(95.0, newer.Owned)
}

func (s *ServiceSuite) TestRefreshFetchErrorLeavesStoreUntouched() {
	s.fetcher.stats["2025"] = map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 50},
	}
	_, err := s.service.Refresh(s.ctx, "2025")
	s.Require().NoError(err)

	s.fetcher.err = errors.New("upstream down")
	n, err := s.service.Refresh(s.ctx, "2025")
	s.ErrorContains(err, "upstream down")
	s.Zero(n)

	stat, err := s.service.Get(s.ctx, "2025", "1")
	s.Require().NoError(err)
	s.Equal(50.0, stat.Owned)
}

func (s *ServiceSuite) TestGetMissingPlayer() {
	_, err := s.service.Get(s.ctx, "2025", "nope")
	s.ErrorIs(err, model.ErrOwnershipNotFound)
}

func (s *ServiceSuite) TestGetAll() {
	s.fetcher.stats["2025"] = map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 10},
		"2": {PlayerID: "2", Owned: 20},
	}
	_, err := s.service.Refresh(s.ctx, "2025")
	s.Require().NoError(err)

	all, err := s.service.GetAll(s.ctx, "2025")
	s.Require().NoError(err)
	s.Len(all, 2)
}
