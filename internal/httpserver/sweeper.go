package httpserver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunSweeper evicts finished and idle games every cfg.SweepInterval until ctx
// is done. It returns nil on cancellation, so it can sit in an errgroup next
// to the listener.
func (s *Server) RunSweeper(ctx context.Context) error {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one eviction pass and logs the store size.
func (s *Server) sweep(ctx context.Context) int {
	n, err := s.store.Sweep(ctx, s.cfg.FinishedTTL, s.cfg.IdleTTL)
	if err != nil {
		log.Warn().Err(err).Msg("session sweep")
		return 0
	}
	log.Debug().Int("evicted", n).Int("games", s.store.Len()).Msg("session sweep")
	return n
}
