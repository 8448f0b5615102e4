package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/lumiere-wordle/internal/httpserver"
	"github.com/robalobadob/lumiere-wordle/internal/store"
)

const shutdownGrace = 10 * time.Second

func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	port := a.cfg.Port
	if cmd.IsSet("port") {
		port = cmd.String("port")
	}

	srv, err := httpserver.New(store.NewMemoryStore(), a.dict, a.cfg)
	if err != nil {
		return err
	}
	hs := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		solutions, guesses := a.dict.Stats()
		log.Info().Str("port", port).Str("env", a.cfg.AppEnv).
			Int("solutions", solutions).Int("guesses", guesses).
			Msg("starting lumiere server")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return srv.RunSweeper(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}
