// internal/httpserver/routes_challenge.go
//
// HTTP routes for challenge codes.
//   - POST /challenge         → create a code for a dictionary word
//   - POST /challenge/resolve → check pasted text for a playable code
//
// Resolve never reveals the decoded word; the player discovers it by playing.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/lumiere-wordle/internal/challenge"
)

// mountChallenge registers all /challenge routes.
func (s *Server) mountChallenge(r chi.Router) {
	r.Route("/challenge", func(r chi.Router) {
		r.Post("/", s.handleCreateChallenge)
		r.Post("/resolve", s.handleResolveChallenge)
	})
}

type createChallengeReq struct {
	Word string `json:"word"`
}
type createChallengeRes struct {
	Code   string `json:"code"`
	Invite string `json:"invite"`
}

// handleCreateChallenge encodes a word the dictionary accepts.
func (s *Server) handleCreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req createChallengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word := normalizeWord(req.Word)
	if !s.dict.IsAllowed(word) {
		writeError(w, http.StatusBadRequest, "not_in_dictionary")
		return
	}
	code, err := challenge.Encode(word)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}
	writeJSON(w, http.StatusOK, createChallengeRes{
		Code:   code,
		Invite: challenge.Invite(code, s.cfg.ShareLink),
	})
}

type resolveChallengeReq struct {
	Text string `json:"text"`
}
type resolveChallengeRes struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// handleResolveChallenge extracts and validates a code from free text.
func (s *Server) handleResolveChallenge(w http.ResponseWriter, r *http.Request) {
	var req resolveChallengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	code, _, err := challenge.Resolve(req.Text, s.dict)
	if err != nil {
		writeError(w, http.StatusBadRequest, challengeErrorCode(err))
		return
	}
	writeJSON(w, http.StatusOK, resolveChallengeRes{Code: code, Valid: true})
}

// challengeErrorCode maps codec errors to API error codes.
func challengeErrorCode(err error) string {
	if errors.Is(err, challenge.ErrUnknownWord) {
		return "unknown_word"
	}
	return "invalid_code"
}
