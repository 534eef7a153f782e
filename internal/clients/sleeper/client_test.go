package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguedash/internal/clients"
	"leaguedash/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL})
}

func TestGetRosters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/league/12345/rosters", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"roster_id": 1, "owner_id": "u1", "league_id": "12345",
			 "starters": ["100", "101"], "players": ["100", "101", "102"],
			 "settings": {"wins": 10, "losses": 3, "ties": 0, "fpts": 1502, "fpts_decimal": 25}}
		]`))
	})

	rosters, err := client.GetRosters(context.Background(), "12345")
	require.NoError(t, err)
	require.Len(t, rosters, 1)
	assert.Equal(t, 1, rosters[0].ID)
	assert.Equal(t, "u1", rosters[0].OwnerID)
	assert.Equal(t, []model.PlayerID{"100", "101"}, rosters[0].Starters)
	assert.Equal(t, 10, rosters[0].Settings.Wins)
	assert.InDelta(t, 1502.25, rosters[0].Settings.TotalPoints(), 0.001)
}

func TestGetRostersLeagueNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.GetRosters(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrLeagueNotFound)
}

func TestGetRostersNullBody(t *testing.T) {
	// The upstream API returns a literal null for unknown leagues on
	// some endpoints rather than a 404
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	_, err := client.GetRosters(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrLeagueNotFound)
}

func TestGetUsers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/league/12345/users", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"user_id": "u1", "display_name": "Alice", "avatar": "abc",
			 "metadata": {"team_name": "Gridiron Giants"}}
		]`))
	})

	users, err := client.GetUsers(context.Background(), "12345")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].DisplayName)
	assert.Equal(t, "Gridiron Giants", users[0].Metadata.TeamName)
}

func TestGetUsersServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetUsers(context.Background(), "12345")
	fetchErr, ok := clients.AsFetchError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestFetchOwnership(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/nfl/research/regular/2025", r.URL.Path)
		_, _ = w.Write([]byte(`{"4046": {"owned": 99.9, "started": 98.1}, "6813": {"owned": 42.0, "started": 17.5}}`))
	})

	stats, err := client.FetchOwnership(context.Background(), "2025")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.InDelta(t, 99.9, stats["4046"].Owned, 0.001)
	assert.Equal(t, model.PlayerID("6813"), stats["6813"].PlayerID)
}

func TestFetchOwnershipBadBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[1, 2, 3]`))
	})

	_, err := client.FetchOwnership(context.Background(), "2025")
	assert.ErrorIs(t, err, model.ErrInvalidResponseFormat)
}
