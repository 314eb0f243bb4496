// path: internal/httpx/server_test.go
package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"hpchess/internal/config"
	"hpchess/internal/game"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig
	return NewServer(game.NewEngine(), &cfg)
}

func TestHandleMoveReturnsOutcomeAndState(t *testing.T) {
	srv := newTestServer(t)

	reqBody := `{"from":"e2","to":"e4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	srv.handleMove(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Outcome game.MoveOutcome `json:"outcome"`
		State   game.BoardState  `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.True(t, payload.Outcome.Moved)
	require.True(t, payload.Outcome.WasDoublePawnStep)
	require.Equal(t, game.Black, payload.State.Turn)
	require.Len(t, payload.State.Pieces, 32)
}

func TestHandleMoveRejectsIllegal(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "bad json", body: `{"from":`, code: http.StatusBadRequest},
		{name: "bad from", body: `{"from":"z9","to":"e4"}`, code: http.StatusBadRequest},
		{name: "empty origin", body: `{"from":"e4","to":"e5"}`, code: http.StatusNotFound},
		{name: "illegal move", body: `{"from":"e2","to":"e5"}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/move", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			srv.handleMove(rr, req)
			require.Equal(t, tt.code, rr.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
			require.NotEmpty(t, payload["error"])
		})
	}
}

func TestHandleMovesListsOptionsWithPreviews(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/moves?from=b1", nil)
	rr := httptest.NewRecorder()
	srv.handleMoves(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		From  string            `json:"from"`
		Moves []game.MoveOption `json:"moves"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Equal(t, "b1", payload.From)
	require.Len(t, payload.Moves, 2)
	for _, opt := range payload.Moves {
		require.False(t, opt.Preview.IsCombat)
	}
}

func TestHandlePreviewReportsCombat(t *testing.T) {
	srv := newTestServer(t)
	mustPlay(t, srv.engine, "e2", "e4")
	mustPlay(t, srv.engine, "d7", "d5")

	reqBody := `{"from":"e4","to":"d5"}`
	req := httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	srv.handlePreview(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		Preview game.CombatPreview `json:"preview"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.True(t, payload.Preview.IsCombat)
	require.Equal(t, 1, payload.Preview.Damage)
	require.False(t, payload.Preview.Lethal)
	require.Equal(t, 1, payload.Preview.RemainingHP)
}

func TestHandleResetRestoresNewGame(t *testing.T) {
	srv := newTestServer(t)
	mustPlay(t, srv.engine, "e2", "e4")

	req := httptest.NewRequest(http.MethodPost, "/api/reset", nil)
	rr := httptest.NewRecorder()
	srv.handleReset(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		State game.BoardState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Equal(t, game.White, payload.State.Turn)
	require.Nil(t, payload.State.LastMove)
}

func TestHandleDisplayRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/display", strings.NewReader(`{"mode":"mobile"}`))
	rr := httptest.NewRecorder()
	srv.handleDisplay(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/display", nil)
	rr = httptest.NewRecorder()
	srv.handleDisplay(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Equal(t, "mobile", payload["mode"])
}

func TestHandleDisplayRejectsUnknownMode(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/display", strings.NewReader(`{"mode":"vr"}`))
	rr := httptest.NewRecorder()
	srv.handleDisplay(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleBoardSVG(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/board.svg", nil)
	rr := httptest.NewRecorder()
	srv.handleBoardSVG(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	require.Contains(t, rr.Body.String(), "</svg>")
}

func TestIndexServesEmbeddedClient(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "init-data")
	require.Contains(t, body, "/static/app.js")
	require.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))

	req = httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func mustPlay(t *testing.T, eng *game.Engine, from, to string) {
	t.Helper()
	fromSq, ok := game.CoordToSquare(from)
	require.True(t, ok)
	toSq, ok := game.CoordToSquare(to)
	require.True(t, ok)
	_, err := eng.Move(fromSq, toSq)
	require.NoError(t, err)
}
