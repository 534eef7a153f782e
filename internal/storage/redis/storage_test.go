package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"leaguedash/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestNewInvalidURL() {
	_, err := New(Config{URL: "not-a-redis-url"})
	s.ErrorIs(err, model.ErrStoreUnavailable)
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	players := map[model.PlayerID]model.Player{
		"4046": {
			ID:        "4046",
			FirstName: "Patrick",
			LastName:  "Mahomes",
			Team:      "KC",
			Position:  "QB",
			Status:    model.PlayerStatusActive,
			Height:    strPtr(`6'2"`),
			Age:       intPtr(30),
		},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "4046")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("4046"), retrieved.ID)
	s.Equal("Patrick", retrieved.FirstName)
	s.Equal("Mahomes", retrieved.LastName)
	s.Require().NotNil(retrieved.Height)
	s.Equal(`6'2"`, *retrieved.Height)
	s.Require().NotNil(retrieved.Age)
	s.Equal(30, *retrieved.Age)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetAllPlayers() {
	players := map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Josh", LastName: "Allen", Position: "QB", Status: model.PlayerStatusActive},
		"2": {ID: "2", FirstName: "Saquon", LastName: "Barkley", Position: "RB", Status: model.PlayerStatusActive},
		"3": {ID: "3", FirstName: "Justin", LastName: "Tucker", Position: "K", Status: model.PlayerStatusActive},
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	all, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal("Barkley", all["2"].LastName)
}

func (s *StorageSuite) TestGetAllPlayersEmpty() {
	all, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *StorageSuite) TestSavePlayersOverwrites() {
	first := map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Josh", LastName: "Allen", Team: "BUF", Position: "QB", Status: model.PlayerStatusActive},
	}
	err := s.storage.SavePlayers(s.ctx, first)
	s.Require().NoError(err)

	second := map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Josh", LastName: "Allen", Team: "NYJ", Position: "QB", Status: model.PlayerStatusActive},
	}
	err = s.storage.SavePlayers(s.ctx, second)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("NYJ", retrieved.Team)

	all, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StorageSuite) TestSavePlayersManyBatches() {
	// More players than one write batch
	cfg := DefaultConfig()
	cfg.WriteBatchSize = 10
	s.storage.cfg = cfg

	players := make(map[model.PlayerID]model.Player, 35)
	for i := 0; i < 35; i++ {
		id := model.PlayerID(string(rune('a'+i/10)) + string(rune('0'+i%10)))
		players[id] = model.Player{ID: id, FirstName: "P", Position: "WR", Status: model.PlayerStatusActive}
	}

	err := s.storage.SavePlayers(s.ctx, players)
	s.Require().NoError(err)

	all, err := s.storage.GetAllPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 35)
}

func (s *StorageSuite) TestSavePlayersStoreClosed() {
	s.mini.Close()

	players := map[model.PlayerID]model.Player{
		"1": {ID: "1", FirstName: "Josh", Position: "QB", Status: model.PlayerStatusActive},
	}
	err := s.storage.SavePlayers(s.ctx, players)
	s.ErrorIs(err, model.ErrStoreIO)
}

// Metadata tests

func (s *StorageSuite) TestSaveAndGetMeta() {
	meta := model.CacheMeta{LastUpdated: 1756700000000, Version: "1.0"}
	err := s.storage.SaveMeta(s.ctx, meta)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMeta(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1756700000000), retrieved.LastUpdated)
	s.Equal("1.0", retrieved.Version)
}

func (s *StorageSuite) TestGetMetaNotFound() {
	_, err := s.storage.GetMeta(s.ctx)
	s.ErrorIs(err, model.ErrMetaNotFound)
}

func (s *StorageSuite) TestGetMetaStoreClosed() {
	s.mini.Close()

	_, err := s.storage.GetMeta(s.ctx)
	s.ErrorIs(err, model.ErrStoreIO)
}

// Ownership tests

func (s *StorageSuite) TestSaveAndGetOwnership() {
	stats := map[model.PlayerID]model.OwnershipStat{
		"4046": {PlayerID: "4046", Owned: 99.8, Started: 97.2},
		"6813": {PlayerID: "6813", Owned: 54.1, Started: 30.6},
	}

	err := s.storage.SaveOwnership(s.ctx, "2025", stats)
	s.Require().NoError(err)

	stat, err := s.storage.GetOwnership(s.ctx, "2025", "4046")
	s.Require().NoError(err)
	s.InDelta(99.8, stat.Owned, 0.001)
	s.InDelta(97.2, stat.Started, 0.001)
}

func (s *StorageSuite) TestOwnershipSeasonsIndependent() {
	err := s.storage.SaveOwnership(s.ctx, "2024", map[model.PlayerID]model.OwnershipStat{
		"1": {PlayerID: "1", Owned: 80, Started: 60},
	})
	s.Require().NoError(err)

	_, err = s.storage.GetOwnership(s.ctx, "2025", "1")
	s.ErrorIs(err, model.ErrOwnershipNotFound)

	all, err := s.storage.GetAllOwnership(s.ctx, "2024")
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *StorageSuite) TestGetOwnershipNotFound() {
	_, err := s.storage.GetOwnership(s.ctx, "2025", "nonexistent")
	s.ErrorIs(err, model.ErrOwnershipNotFound)
}
