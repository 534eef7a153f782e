package model

// PlayerID uniquely identifies a player in the catalog
type PlayerID string

// PlayerStatusActive is the only roster status persisted to the store
const PlayerStatusActive = "Active"

// Player is the canonical player shape after normalization.
// Optional fields are pointers so that "unknown" is distinguishable
// from zero or empty string.
type Player struct {
	ID        PlayerID `json:"player_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Team      string   `json:"team,omitempty"` // empty for free agents
	Position  string   `json:"position"`
	Status    string   `json:"status"`

	// Height is textual feet'inches" form, absent if the source value
	// did not match that form
	Height *string `json:"height,omitempty"`

	Age                *int       `json:"age,omitempty"`
	Weight             *string    `json:"weight,omitempty"`
	YearsExp           *int       `json:"years_exp,omitempty"`
	College            *string    `json:"college,omitempty"`
	Number             *int       `json:"number,omitempty"`
	DepthChartPosition *string    `json:"depth_chart_position,omitempty"`
	InjuryStatus       *string    `json:"injury_status,omitempty"`
	Valuation          *Valuation `json:"valuation,omitempty"`
}

// FullName reconstructs the display name from the split parts
func (p Player) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Valuation holds ranking data from the valuation source
type Valuation struct {
	Value        int `json:"value"`
	OverallRank  int `json:"overall_rank,omitempty"`
	PositionRank int `json:"position_rank,omitempty"`
}
