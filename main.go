package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/robalobadob/lumiere-wordle/internal/challenge"
	"github.com/robalobadob/lumiere-wordle/internal/config"
	"github.com/robalobadob/lumiere-wordle/internal/daily"
	"github.com/robalobadob/lumiere-wordle/internal/words"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).command().Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("lumiere exited")
	}
}

// app carries what every subcommand needs once the root Before hook ran.
type app struct {
	in   io.Reader
	out  io.Writer
	now  func() time.Time
	cfg  config.Config
	dict *words.Dictionary
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out, now: time.Now}
}

func (a *app) command() *cli.Command {
	dateFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "date", Usage: "calendar day as YYYY-MM-DD (default: today)"}
	}
	return &cli.Command{
		Name:   "lumiere",
		Usage:  "Wordle rules engine: daily puzzle, challenge codes and an HTTP API",
		Reader: a.in,
		Writer: a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file to load before reading the environment"},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Usage: "listen port (overrides PORT)"},
				},
				Action: a.serve,
			},
			{
				Name:  "play",
				Usage: "play in the terminal, one guess per line",
				Flags: []cli.Flag{
					dateFlag(),
					&cli.StringFlag{Name: "code", Usage: "challenge code or pasted invite text"},
				},
				Action: a.play,
			},
			{
				Name:  "daily",
				Usage: "show the daily puzzle number",
				Flags: []cli.Flag{
					dateFlag(),
					&cli.BoolFlag{Name: "reveal", Usage: "also print the word"},
				},
				Action: a.daily,
			},
			{
				Name:      "encode",
				Usage:     "turn a word into a challenge invite",
				ArgsUsage: "<word>",
				Action:    a.encode,
			},
			{
				Name:      "decode",
				Usage:     "recover the word behind a challenge code or invite",
				ArgsUsage: "<code or text>",
				Action:    a.decode,
			},
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return ctx, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	dict, err := words.Load(cfg.SolutionsFile, cfg.GuessesFile)
	if err != nil {
		return ctx, fmt.Errorf("load word lists: %w", err)
	}
	a.cfg, a.dict = cfg, dict
	return ctx, nil
}

// day resolves the --date flag, defaulting to the current local day.
func (a *app) day(cmd *cli.Command) (time.Time, error) {
	s := cmd.String("date")
	if s == "" {
		return a.now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --date %q: %w", s, err)
	}
	return t, nil
}

func (a *app) daily(_ context.Context, cmd *cli.Command) error {
	today, err := a.day(cmd)
	if err != nil {
		return err
	}
	sol := a.dict.Solutions()
	fmt.Fprintf(a.out, "%s  day %d  word %d/%d\n",
		daily.DateKey(today), daily.DaysSince(today), daily.Index(today, len(sol))+1, len(sol))
	if cmd.Bool("reveal") {
		fmt.Fprintln(a.out, strings.ToUpper(daily.Word(today, sol)))
	}
	return nil
}

func (a *app) encode(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("encode takes exactly one word")
	}
	word := strings.ToLower(strings.TrimSpace(cmd.Args().First()))
	if !a.dict.IsAllowed(word) {
		return fmt.Errorf("%q is not in the word list", word)
	}
	code, err := challenge.Encode(word)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, challenge.Invite(code, a.cfg.ShareLink))
	return nil
}

func (a *app) decode(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("decode needs a code or invite text")
	}
	code, word, err := challenge.Resolve(strings.Join(cmd.Args().Slice(), " "), a.dict)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s  %s\n", code, strings.ToUpper(word))
	return nil
}
