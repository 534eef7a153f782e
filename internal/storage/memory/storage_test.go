package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"leaguedash/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	players := map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Saquon", LastName: "Barkley", Team: "PHI", Position: "RB", Status: model.PlayerStatusActive},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Saquon", retrieved.FirstName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetAllPlayersCopies() {
	err := s.storage.SavePlayers(s.ctx, map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Josh", Position: "QB", Status: model.PlayerStatusActive},
	})
	s.Require().NoError(err)

	all, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)

	// Mutating the returned map must not affect the store
	delete(all, "1")
	retrieved, err := s.storage.GetPlayer(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Josh", retrieved.FirstName)
}

func (s *StorageSuite) TestMetaRoundTrip() {
	_, err := s.storage.GetMeta(s.ctx)
	s.ErrorIs(err, model.ErrMetaNotFound)

	err = s.storage.SaveMeta(s.ctx, model.CacheMeta{LastUpdated: 12345, Version: "1.0"})
	s.Require().NoError(err)

	meta, err := s.storage.GetMeta(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(12345), meta.LastUpdated)
	s.Equal("1.0", meta.Version)
}

func (s *StorageSuite) TestOwnershipBySeason() {
	err := s.storage.SaveOwnership(s.ctx, "2025", map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 75, Started: 50},
	})
	s.Require().NoError(err)

	stat, err := s.storage.GetOwnership(s.ctx, "2025", "1")
	s.Require().NoError(err)
	s.InDelta(75.0, stat.Owned, 0.001)

	_, err = s.storage.GetOwnership(s.ctx, "2024", "1")
	s.ErrorIs(err, model.ErrOwnershipNotFound)

	all, err := s.storage.GetAllOwnership(s.ctx, "2025")
	s.Require().NoError(err)
	s.Len(all, 1)
}
