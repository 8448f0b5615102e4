// internal/httpserver/server.go
//
// HTTP server wiring for the Lumiere Wordle engine.
// Responsibilities:
//   - Router + middleware (request IDs, logging, panic recovery, timeouts, JSON, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id},
//     GET /game/{id}/share, DELETE /game/{id}.
//   - Challenge endpoints: POST /challenge, POST /challenge/resolve.
//   - Daily endpoint: GET /daily.
//
// Notes:
//   - Every game route runs behind withPlayer; a game only answers to the
//     player that created it, and a player's new game replaces the old one.
//   - RunSweeper evicts finished and idle games while the server runs.
//   - The solution is never sent while a game is in progress.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lumiere-wordle/internal/challenge"
	"github.com/robalobadob/lumiere-wordle/internal/config"
	"github.com/robalobadob/lumiere-wordle/internal/daily"
	"github.com/robalobadob/lumiere-wordle/internal/game"
	"github.com/robalobadob/lumiere-wordle/internal/share"
	"github.com/robalobadob/lumiere-wordle/internal/store"
	"github.com/robalobadob/lumiere-wordle/internal/words"
)

// Server bundles router, session store, dictionary and token signer.
type Server struct {
	r      *chi.Mux
	store  store.Store
	dict   *words.Dictionary
	cfg    config.Config
	tokens *playerTokens
	now    func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithClock overrides the server's time source (daily word, timers, tokens).
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		dict:   dict,
		cfg:    cfg,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	tokens, err := newPlayerTokens(cfg.TokenSecret, cfg.TokenTTL, cfg.Production(), s.now)
	if err != nil {
		return nil, err
	}
	s.tokens = tokens

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "lumiere-wordle",
			"endpoints": []string{
				"/health", "GET /daily", "POST /game/new", "POST /game/guess",
				"GET /game/{id}", "GET /game/{id}/share", "DELETE /game/{id}",
				"POST /challenge", "POST /challenge/resolve",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		sol, g := s.dict.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"solutions": sol, "guesses": g})
	})

	s.r.Get("/daily", s.handleDaily)

	s.r.Group(func(r chi.Router) {
		r.Use(s.withPlayer)
		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/game/{id}", s.handleGetGame)
		r.Get("/game/{id}/share", s.handleShare)
		r.Delete("/game/{id}", s.handleDeleteGame)
	})

	s.mountChallenge(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Router exposes the internal router (useful for tests and custom listeners).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ DAILY --------------------------------------

type dailyRes struct {
	Date  string `json:"date"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

// handleDaily reports today's date key and rotation index (not the word).
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, dailyRes{
		Date:  daily.DateKey(now),
		Index: daily.Index(now, s.dict.Len()),
		Total: s.dict.Len(),
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "daily" (default) | "challenge"
	Code string `json:"code"` // challenge code or text containing one
}
type newGameRes struct {
	GameID      string    `json:"gameId"`
	Mode        game.Mode `json:"mode"`
	Date        string    `json:"date,omitempty"`
	Code        string    `json:"code,omitempty"`
	MaxAttempts int       `json:"maxAttempts"`
}

// handleNewGame starts a session for the daily word or a challenge code.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_mode")
		return
	}

	res := newGameRes{Mode: mode, MaxAttempts: game.MaxAttempts}
	var solution string
	switch mode {
	case game.Challenge:
		code, word, err := challenge.Resolve(req.Code, s.dict)
		if err != nil {
			writeError(w, http.StatusBadRequest, challengeErrorCode(err))
			return
		}
		solution, res.Code = word, code
	default:
		now := s.now()
		if s.dict.Len() == 0 {
			writeError(w, http.StatusServiceUnavailable, "no_words")
			return
		}
		solution = s.dict.Solution(daily.Index(now, s.dict.Len()))
		res.Date = daily.DateKey(now)
	}

	g := game.New(s.dict, game.WithClock(s.now))
	if err := g.Start(solution, mode, res.Code); err != nil {
		log.Error().Err(err).Str("mode", mode.String()).Msg("start game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	if err := s.store.Save(r.Context(), playerID(r), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	log.Info().Str("gameId", g.ID()).Str("mode", mode.String()).Msg("game started")
	res.GameID = g.ID()
	writeJSON(w, http.StatusCreated, res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Result    game.GuessResult            `json:"result"`
	State     game.Status                 `json:"state"`
	Attempts  int                         `json:"attempts"`
	Remaining int                         `json:"remaining"`
	Keyboard  map[string]game.LetterState `json:"keyboard"`
	Solution  string                      `json:"solution,omitempty"`
}

// handleGuess applies a guess to the caller's game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, playerID(r), func(g *game.Game) error {
		gr, err := g.SubmitGuess(normalizeWord(req.Guess))
		if err != nil {
			return err
		}
		res = guessRes{
			Result:    gr,
			State:     g.Status(),
			Attempts:  len(g.Attempts()),
			Remaining: g.Remaining(),
			Keyboard:  g.Keyboard(),
		}
		if g.Status().Terminal() {
			res.Solution = g.Solution()
			log.Info().Str("gameId", g.ID()).Str("state", g.Status().String()).
				Int("attempts", res.Attempts).Dur("elapsed", g.Elapsed()).Msg("game finished")
		}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// gameRes is the snapshot returned by GET /game/{id}.
type gameRes struct {
	game.Result
	GameID    string                      `json:"gameId"`
	Remaining int                         `json:"remaining"`
	Keyboard  map[string]game.LetterState `json:"keyboard"`
	ElapsedMs int64                       `json:"elapsedMs"`
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var res gameRes
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), playerID(r), func(g *game.Game) error {
		res = gameRes{
			GameID:    g.ID(),
			Result:    g.Result(),
			Remaining: g.Remaining(),
			Keyboard:  g.Keyboard(),
			ElapsedMs: g.Elapsed().Milliseconds(),
		}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type shareRes struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// handleShare returns the share text of a finished game.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var res shareRes
	err := s.store.View(r.Context(), chi.URLParam(r, "id"), playerID(r), func(g *game.Game) error {
		if !g.Status().Terminal() {
			return errInProgress
		}
		result := g.Result()
		res = shareRes{
			Title: share.Title(result, g.Elapsed()),
			Text:  share.Text(result, g.Elapsed()),
		}
		return nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

var errInProgress = errors.New("game still in progress")

// handleDeleteGame abandons the caller's game.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id, playerID(r)); err != nil {
		writeGameError(w, err)
		return
	}
	log.Info().Str("gameId", id).Msg("game abandoned")
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- responses -----------------------------------

// writeGameError maps engine and store errors onto HTTP responses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		writeError(w, http.StatusBadRequest, "wrong_length")
	case errors.Is(err, game.ErrNotInDictionary):
		writeError(w, http.StatusBadRequest, "not_in_dictionary")
	case errors.Is(err, game.ErrGameOver):
		writeError(w, http.StatusConflict, "game_over")
	case errors.Is(err, errInProgress):
		writeError(w, http.StatusConflict, "in_progress")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, store.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		log.Error().Err(err).Msg("game request failed")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
