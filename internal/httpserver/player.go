// internal/httpserver/player.go
//
// Anonymous player identity.
// Every client gets a signed HS256 token naming a random player ID; games are
// bound to the player that created them so nobody else can guess on them.
// The token travels in a cookie for browsers or an Authorization: Bearer
// header for other clients.

package httpserver

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/hkdf"
)

const (
	playerCookieName = "lumiere_player"
	tokenIssuer      = "lumiere-wordle"
)

// ctxPlayerKey is the context key type for the current player ID.
type ctxPlayerKey struct{}

// playerTokens signs and verifies player tokens.
type playerTokens struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// newPlayerTokens derives the signing key from secret with HKDF-SHA256 so the
// raw configured secret never signs anything directly.
func newPlayerTokens(secret string, ttl time.Duration, secure bool, now func() time.Time) (*playerTokens, error) {
	if secret == "" {
		return nil, errors.New("httpserver: empty token secret")
	}
	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("lumiere player token v1"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("httpserver: derive token key: %w", err)
	}
	return &playerTokens{key: key, ttl: ttl, secure: secure, now: now}, nil
}

// issue creates a token for playerID and returns it with its expiry.
func (p *playerTokens) issue(playerID string) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(p.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   playerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(p.key)
	return ss, exp, err
}

// verify returns the player ID carried by a valid token.
func (p *playerTokens) verify(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return p.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("httpserver: token without subject")
	}
	return claims.Subject, nil
}

// setCookie writes the player cookie with appropriate security attributes.
func (p *playerTokens) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if p.secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or the player cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(playerCookieName); err == nil {
		return c.Value
	}
	return ""
}

// withPlayer resolves the caller's player ID, issuing a fresh identity (and
// cookie) when the request carries no valid token. It never rejects.
func (s *Server) withPlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if tok := bearerOrCookie(r); tok != "" {
			if pid, err := s.tokens.verify(tok); err == nil {
				id = pid
			} else {
				log.Debug().Err(err).Msg("discarding invalid player token")
			}
		}
		if id == "" {
			id = uuid.NewString()
			tok, exp, err := s.tokens.issue(id)
			if err != nil {
				log.Error().Err(err).Msg("issue player token")
				writeError(w, http.StatusInternalServerError, "token_failed")
				return
			}
			s.tokens.setCookie(w, tok, exp)
			w.Header().Set("X-Player-Token", tok)
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxPlayerKey{}, id)))
	})
}

// playerID returns the player resolved by withPlayer.
func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxPlayerKey{}).(string)
	return id
}
