package response

import "leaguedash/internal/model"

// Player is a player in an API response
type Player struct {
	ID       string `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
	Position string `json:"position"`
}

// Team is one team in the standings response
type Team struct {
	RosterID      int      `json:"roster_id"`
	OwnerID       string   `json:"owner_id,omitempty"`
	DisplayName   string   `json:"display_name"`
	TeamName      string   `json:"team_name,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	FantasyPoints float64  `json:"fantasy_points"`
	Starters      []Player `json:"starters"`
	Bench         []Player `json:"bench"`
}

// Standings is the standings response body
type Standings struct {
	LeagueID string `json:"league_id"`
	Teams    []Team `json:"teams"`
}

// RefreshResult reports the outcome of a refresh action
type RefreshResult struct {
	Players int `json:"players"`
}

// Health is the health check response body
type Health struct {
	Status string `json:"status"`
}

// PlayerFromModel converts a model player to its response shape
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.FullName(),
		Team:     p.Team,
		Position: p.Position,
	}
}

// TeamFromModel converts a model team to its response shape
func TeamFromModel(t model.Team) Team {
	team := Team{
		RosterID:      t.Roster.ID,
		OwnerID:       t.Roster.OwnerID,
		DisplayName:   t.User.DisplayName,
		TeamName:      t.User.Metadata.TeamName,
		Avatar:        t.User.Avatar,
		Wins:          t.Roster.Settings.Wins,
		Losses:        t.Roster.Settings.Losses,
		Ties:          t.Roster.Settings.Ties,
		FantasyPoints: t.Roster.Settings.TotalPoints(),
		Starters:      make([]Player, 0, len(t.Starters)),
		Bench:         make([]Player, 0, len(t.Bench)),
	}
	for _, p := range t.Starters {
		team.Starters = append(team.Starters, PlayerFromModel(p))
	}
	for _, p := range t.Bench {
		team.Bench = append(team.Bench, PlayerFromModel(p))
	}
	return team
}

// StandingsFromModel converts a sorted team list to the response shape
func StandingsFromModel(leagueID string, teams []model.Team) Standings {
	out := Standings{
		LeagueID: leagueID,
		Teams:    make([]Team, 0, len(teams)),
	}
	for _, t := range teams {
		out.Teams = append(out.Teams, TeamFromModel(t))
	}
	return out
}
