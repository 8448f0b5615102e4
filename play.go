package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/robalobadob/lumiere-wordle/internal/challenge"
	"github.com/robalobadob/lumiere-wordle/internal/daily"
	"github.com/robalobadob/lumiere-wordle/internal/game"
	"github.com/robalobadob/lumiere-wordle/internal/share"
	"github.com/robalobadob/lumiere-wordle/internal/termui"
)

func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	g := game.New(a.dict, game.WithClock(a.now))
	heading := "Lumiere Daily"

	if text := cmd.String("code"); text != "" {
		code, word, err := challenge.Resolve(text, a.dict)
		if err != nil {
			return fmt.Errorf("challenge: %w", err)
		}
		if err := g.Start(word, game.Challenge, code); err != nil {
			return err
		}
		heading = "Lumiere Challenge " + code
	} else {
		today, err := a.day(cmd)
		if err != nil {
			return err
		}
		if err := g.Start(daily.Word(today, a.dict.Solutions()), game.Daily, ""); err != nil {
			return err
		}
		heading += " " + daily.DateKey(today)
	}
	log.Debug().Str("game", g.ID()).Str("mode", g.Mode().String()).Msg("terminal game started")

	p := termui.New(a.out)
	fmt.Fprintln(a.out, p.Heading(heading))

	sc := bufio.NewScanner(a.in)
	for !g.Status().Terminal() {
		fmt.Fprintf(a.out, "guess %d/%d> ", len(g.Attempts())+1, game.MaxAttempts)
		if !sc.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if _, err := g.SubmitGuess(line); err != nil {
			fmt.Fprintln(a.out, rejection(err))
			continue
		}
		fmt.Fprintln(a.out, p.Board(g.Attempts()))
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, p.Keyboard(g.LetterState))
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if !g.Status().Terminal() {
		fmt.Fprintln(a.out, "\nGame abandoned.")
		return nil
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, share.Text(g.Result(), g.Elapsed()))
	return nil
}

// rejection turns a refused guess into the message shown to the player.
func rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return fmt.Sprintf("Guesses must be %d letters.", game.WordLength)
	case errors.Is(err, game.ErrNotInDictionary):
		return "Not in word list."
	case errors.Is(err, game.ErrGameOver):
		return "The game is over."
	default:
		return err.Error()
	}
}
