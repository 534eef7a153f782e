// Package standings aggregates cached players with freshly fetched
// roster and user data into per-team view models.
package standings

import (
	"context"
	"log/slog"
	"sort"

	"leaguedash/internal/model"
	"leaguedash/internal/services/catalog"
)

// LeagueClient fetches roster and user data for one league
type LeagueClient interface {
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
}

// Service builds the league standings view
type Service struct {
	catalog *catalog.Service
	league  LeagueClient
	logger  *slog.Logger
}

// New creates a new standings Service
func New(catalogService *catalog.Service, league LeagueClient, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalogService,
		league:  league,
		logger:  logger,
	}
}

// Load returns the sorted team list for one league, refreshing the
// player cache first if the freshness policy requires it
func (s *Service) Load(ctx context.Context, leagueID string) ([]model.Team, error) {
	players, refreshed, err := s.catalog.CachedPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if refreshed {
		s.logger.Info("player cache refreshed", slog.String("league_id", leagueID))
	}

	rosters, err := s.league.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	users, err := s.league.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return ComputeTeams(rosters, users, players), nil
}

// ComputeTeams combines rosters, users and the cached player mapping
// into per-team view models sorted by wins, then total fantasy points.
// Rosters with an unresolvable owner get a placeholder user, and player
// ids missing from the cache are dropped; neither fails the aggregation.
func ComputeTeams(rosters []model.Roster, users []model.User, players map[model.PlayerID]model.Player) []model.Team {
	usersByID := make(map[string]model.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	teams := make([]model.Team, 0, len(rosters))
	for _, roster := range rosters {
		user, ok := usersByID[roster.OwnerID]
		if !ok {
			user = model.UnknownUser()
		}

		starterIDs := make(map[model.PlayerID]struct{}, len(roster.Starters))
		for _, id := range roster.Starters {
			starterIDs[id] = struct{}{}
		}

		team := model.Team{
			Roster:   roster,
			User:     user,
			Players:  resolvePlayers(roster.Players, players),
			Starters: resolvePlayers(roster.Starters, players),
		}
		for _, player := range team.Players {
			if _, isStarter := starterIDs[player.ID]; !isStarter {
				team.Bench = append(team.Bench, player)
			}
		}

		teams = append(teams, team)
	}

	// Ties keep input order, so the sort must be stable
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i].Roster.Settings, teams[j].Roster.Settings
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.TotalPoints() > b.TotalPoints()
	})

	return teams
}

// resolvePlayers maps ids to cached players, silently dropping ids the
// cache does not have (the cache may lag the roster)
func resolvePlayers(ids []model.PlayerID, players map[model.PlayerID]model.Player) []model.Player {
	resolved := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := players[id]; ok {
			resolved = append(resolved, player)
		}
	}
	return resolved
}
