package catalog

import (
	"strconv"
	"strings"

	"leaguedash/internal/model"
)

// Field extraction rules. The upstream catalog has shipped entries with
// different field names across versions; each canonical field is read
// from a priority-ordered list of source keys so the mapping stays
// declarative and testable per field.
var (
	idKeys       = []string{"player_id", "id"}
	nameKeys     = []string{"full_name", "name", "display_name"}
	teamKeys     = []string{"team", "team_abbr"}
	positionKeys = []string{"position", "pos"}
	statusKeys   = []string{"status"}
	heightKeys   = []string{"height"}
	weightKeys   = []string{"weight"}
	ageKeys      = []string{"age"}
	yearsExpKeys = []string{"years_exp", "experience"}
	collegeKeys  = []string{"college"}
	numberKeys   = []string{"number", "jersey_number"}
	depthKeys    = []string{"depth_chart_position"}
	injuryKeys   = []string{"injury_status"}
)

// normalizeEntry maps one raw catalog entry to the canonical player
// shape. Entries without a usable id or display name are not an error;
// the second return is false and the entry is skipped.
func normalizeEntry(entry map[string]any) (model.Player, bool) {
	id, ok := stringField(entry, idKeys...)
	if !ok {
		return model.Player{}, false
	}

	first, last, ok := extractName(entry)
	if !ok {
		return model.Player{}, false
	}

	team, _ := stringField(entry, teamKeys...)
	position, _ := stringField(entry, positionKeys...)
	status, _ := stringField(entry, statusKeys...)

	player := model.Player{
		ID:                 model.PlayerID(id),
		FirstName:          first,
		LastName:           last,
		Team:               team,
		Position:           position,
		Status:             status,
		Height:             stringPtrField(entry, heightKeys...),
		Weight:             stringPtrField(entry, weightKeys...),
		Age:                intPtrField(entry, ageKeys...),
		YearsExp:           intPtrField(entry, yearsExpKeys...),
		College:            stringPtrField(entry, collegeKeys...),
		Number:             intPtrField(entry, numberKeys...),
		DepthChartPosition: stringPtrField(entry, depthKeys...),
		InjuryStatus:       stringPtrField(entry, injuryKeys...),
		Valuation:          extractValuation(entry),
	}

	return player, true
}

// extractName resolves the player name: a combined display field takes
// priority, falling back to separate first/last fields. A combined name
// is split on whitespace; the first token is the first name and the
// remaining tokens joined form the last name.
func extractName(entry map[string]any) (first, last string, ok bool) {
	if name, found := stringField(entry, nameKeys...); found {
		parts := strings.Fields(name)
		if len(parts) == 0 {
			return "", "", false
		}
		return parts[0], strings.Join(parts[1:], " "), true
	}

	first, firstOK := stringField(entry, "first_name")
	last, _ = stringField(entry, "last_name")
	if !firstOK {
		return "", "", false
	}
	return first, last, true
}

// extractValuation reads the optional valuation sub-object, or a bare
// numeric value field from older catalog versions
func extractValuation(entry map[string]any) *model.Valuation {
	if sub, ok := entry["valuation"].(map[string]any); ok {
		valuation := model.Valuation{}
		if v := intPtrField(sub, "value"); v != nil {
			valuation.Value = *v
		}
		if v := intPtrField(sub, "overall_rank", "rank"); v != nil {
			valuation.OverallRank = *v
		}
		if v := intPtrField(sub, "position_rank"); v != nil {
			valuation.PositionRank = *v
		}
		return &valuation
	}

	if v := intPtrField(entry, "value"); v != nil {
		return &model.Valuation{Value: *v}
	}
	return nil
}

// stringField returns the first non-empty string value found under the
// given keys. Numeric values are accepted and formatted, since some
// catalog versions ship ids as numbers.
func stringField(entry map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		switch v := entry[key].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}

// stringPtrField is stringField with "no value" preserved as nil
func stringPtrField(entry map[string]any, keys ...string) *string {
	if v, ok := stringField(entry, keys...); ok {
		return &v
	}
	return nil
}

// intPtrField returns the first parseable integer under the given keys,
// tolerating numeric strings, or nil when absent
func intPtrField(entry map[string]any, keys ...string) *int {
	for _, key := range keys {
		switch v := entry[key].(type) {
		case float64:
			n := int(v)
			return &n
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return &n
			}
		}
	}
	return nil
}
