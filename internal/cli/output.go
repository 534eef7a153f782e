package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Standings:
		o.printStandings(v)
	case RefreshResult:
		o.printRefreshResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Standings response type (matches API)
type Standings struct {
	LeagueID string `json:"league_id"`
	Teams    []Team `json:"teams"`
}

// Team response type
type Team struct {
	RosterID      int     `json:"roster_id"`
	DisplayName   string  `json:"display_name"`
	TeamName      string  `json:"team_name,omitempty"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	FantasyPoints float64 `json:"fantasy_points"`
}

// RefreshResult response type
type RefreshResult struct {
	Players int `json:"players"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printStandings(s Standings) {
	fmt.Printf("League: %s\n", s.LeagueID)
	fmt.Printf("%-4s %-24s %-20s %3s %3s %3s %10s\n", "#", "Manager", "Team", "W", "L", "T", "Points")
	for i, t := range s.Teams {
		fmt.Printf("%-4d %-24s %-20s %3d %3d %3d %10.2f\n",
			i+1, t.DisplayName, t.TeamName, t.Wins, t.Losses, t.Ties, t.FantasyPoints)
	}
}

func (o *Output) printRefreshResult(r RefreshResult) {
	fmt.Printf("Refreshed %d players\n", r.Players)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
