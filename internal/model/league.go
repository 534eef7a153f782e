package model

// Roster is one team's roster within a league, as reported by the
// league data source
type Roster struct {
	ID       int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	LeagueID string         `json:"league_id"`
	Starters []PlayerID     `json:"starters"`
	Players  []PlayerID     `json:"players"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries a roster's season record and scoring totals.
// FantasyPointsDecimal is hundredths of a point; total points are
// FantasyPoints + FantasyPointsDecimal/100.
type RosterSettings struct {
	Wins                 int `json:"wins"`
	Losses               int `json:"losses"`
	Ties                 int `json:"ties"`
	FantasyPoints        int `json:"fpts"`
	FantasyPointsDecimal int `json:"fpts_decimal"`
}

// TotalPoints returns the roster's fantasy point total including the
// fractional component
func (s RosterSettings) TotalPoints() float64 {
	return float64(s.FantasyPoints) + float64(s.FantasyPointsDecimal)/100
}

// User is a league member as reported by the league data source
type User struct {
	ID          string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar,omitempty"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata holds free-form user attributes; only the team name is
// meaningful here
type UserMetadata struct {
	TeamName string `json:"team_name,omitempty"`
}

// UnknownUser is the placeholder substituted when a roster's owner
// cannot be resolved
func UnknownUser() User {
	return User{DisplayName: "Unknown"}
}

// Team is the derived per-roster view model served to consumers.
// Starters and Bench are resolved against the cached player catalog;
// ids with no cached player are dropped.
type Team struct {
	Roster   Roster
	User     User
	Players  []Player
	Starters []Player
	Bench    []Player
}
