// path: internal/httpx/server.go
package httpx

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"hpchess/internal/boardsvg"
	"hpchess/internal/config"
	"hpchess/internal/game"
)

//go:embed web
var webFS embed.FS

// Server wires the HTTP layer to the rules engine, the display preferences
// and the embedded web client.
type Server struct {
	engineMu sync.Mutex
	engine   *game.Engine
	cfg      *config.Config
	tmpl     *template.Template
	srvMu    sync.Mutex
	srv      *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	htmlCSP                = "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' data:; connect-src 'self'; frame-ancestors 'none'; base-uri 'none'; form-action 'self'"
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server around an engine and the persisted preferences.
func NewServer(engine *game.Engine, cfg *config.Config) *Server {
	t := template.Must(template.ParseFS(webFS, "web/templates/index.html"))
	return &Server{
		engine: engine,
		cfg:    cfg,
		tmpl:   t,
	}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Printf("HTTP listening on %s", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the ServeMux with UI, JSON APIs, static files.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	// JSON APIs
	mux.HandleFunc("/api/state", s.withJSON(s.handleState))
	mux.HandleFunc("/api/moves", s.withJSON(s.handleMoves))
	mux.HandleFunc("/api/preview", s.withJSON(s.handlePreview))
	mux.HandleFunc("/api/move", s.withJSON(s.handleMove))
	mux.HandleFunc("/api/reset", s.withJSON(s.handleReset))
	mux.HandleFunc("/api/display", s.withJSON(s.handleDisplay))

	// Rendered board image
	mux.HandleFunc("/api/board.svg", s.handleBoardSVG)

	// Static assets under /static/
	staticFS, _ := fs.Sub(webFS, "web/static")
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// ---- UI ----

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	applyHTMLSecurityHeaders(w.Header())
	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()
	init := struct {
		State       game.BoardState `json:"state"`
		DisplayMode string          `json:"displayMode"`
		Theme       string          `json:"theme"`
		ShowHP      bool            `json:"showHp"`
	}{
		State:       state,
		DisplayMode: s.cfg.DisplayMode,
		Theme:       s.cfg.Theme,
		ShowHP:      s.cfg.ShowHP,
	}
	data := map[string]any{
		"Init": mustJSON(init),
	}
	if err := s.tmpl.ExecuteTemplate(w, "index", data); err != nil {
		log.Printf("template exec: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrMoveInProgress), errors.Is(err, game.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, game.ErrNoPieceAtOrigin):
		status = http.StatusNotFound
	}
	writeError(w, status, err.Error())
}

func mustJSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return template.JS(b)
}

func applyHTMLSecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", htmlCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func parseSquare(raw string) (game.Square, bool) {
	return game.CoordToSquare(strings.ToLower(strings.TrimSpace(raw)))
}

// ---- API: state ----

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()
	writeJSON(w, map[string]any{"state": state})
}

// ---- API: moves ----

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	from, ok := parseSquare(r.URL.Query().Get("from"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}

	s.engineMu.Lock()
	options, err := s.engine.MoveOptions(from)
	s.engineMu.Unlock()

	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"from": from.String(), "moves": options})
}

// ---- API: preview ----

type previewBody struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body previewBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	from, ok := parseSquare(body.From)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}
	to, ok := parseSquare(body.To)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid to square")
		return
	}

	s.engineMu.Lock()
	preview, err := s.previewLocked(from, to)
	s.engineMu.Unlock()

	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"preview": preview})
}

// previewLocked resolves to against the legal move list so that the preview
// carries the same move kind (en passant, castle) the commit would use.
func (s *Server) previewLocked(from, to game.Square) (game.CombatPreview, error) {
	moves, err := s.engine.LegalMoves(from)
	if err != nil {
		return game.CombatPreview{}, err
	}
	for _, mv := range moves {
		if mv.To == to {
			return s.engine.PreviewCombat(from, mv)
		}
	}
	return game.CombatPreview{}, game.ErrIllegalMove
}

// ---- API: move ----

type moveBody struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()
	var body moveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	from, ok := parseSquare(body.From)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid from square")
		return
	}
	to, ok := parseSquare(body.To)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid to square")
		return
	}

	s.engineMu.Lock()
	res, err := s.engine.Move(from, to)
	s.engineMu.Unlock()

	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]any{"outcome": res.Outcome, "state": res.State})
}

// ---- API: reset ----

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	s.engineMu.Lock()
	s.engine.Reset()
	state := s.engine.State()
	s.engineMu.Unlock()

	writeJSON(w, map[string]any{"state": state})
}

// ---- API: display preferences ----

type displayBody struct {
	Mode string `json:"mode"`
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, map[string]string{"mode": s.cfg.DisplayMode, "theme": s.cfg.Theme})
	case http.MethodPost:
		defer r.Body.Close()
		var body displayBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := s.cfg.SetDisplayMode(strings.ToLower(strings.TrimSpace(body.Mode))); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.cfg.Save(); err != nil {
			log.Printf("save config: %v", err)
		}
		writeJSON(w, map[string]string{"mode": s.cfg.DisplayMode})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// ---- board image ----

func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.engineMu.Lock()
	state := s.engine.State()
	s.engineMu.Unlock()

	theme := boardsvg.ClassicTheme
	if s.cfg.Theme == config.ThemeDark {
		theme = boardsvg.DarkTheme
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	boardsvg.Render(w, state, theme)
}
