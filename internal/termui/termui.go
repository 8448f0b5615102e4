// Package termui draws scored guesses and the letter keyboard for a terminal.
// Colors follow the writer's capabilities, so piped output stays plain text.
package termui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/lumiere-wordle/internal/game"
)

var keyRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Painter renders tiles for one output stream.
type Painter struct {
	tile    map[game.LetterState]lipgloss.Style
	blank   lipgloss.Style
	keyRow  lipgloss.Style
	heading lipgloss.Style
}

// New builds a Painter for out.
func New(out io.Writer) *Painter {
	r := lipgloss.NewRenderer(out)
	base := r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
	return &Painter{
		tile: map[game.LetterState]lipgloss.Style{
			game.Correct: base.Background(lipgloss.Color("#538d4e")),
			game.Present: base.Background(lipgloss.Color("#b59f3b")),
			game.Absent:  base.Background(lipgloss.Color("#3a3a3c")),
		},
		blank:   r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#d7dadc")),
		keyRow:  r.NewStyle().MarginLeft(1),
		heading: r.NewStyle().Bold(true),
	}
}

func (p *Painter) style(s game.LetterState) lipgloss.Style {
	if st, ok := p.tile[s]; ok {
		return st
	}
	return p.blank
}

// Row renders one scored guess as five tiles.
func (p *Painter) Row(guess string, r game.GuessResult) string {
	cells := make([]string, 0, game.WordLength)
	for i := 0; i < game.WordLength && i < len(guess); i++ {
		cells = append(cells, p.style(r[i]).Render(strings.ToUpper(guess[i:i+1])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Board renders every attempt followed by empty rows up to MaxAttempts.
func (p *Painter) Board(attempts []game.Attempt) string {
	rows := make([]string, 0, game.MaxAttempts)
	for _, a := range attempts {
		rows = append(rows, p.Row(a.Guess, a.Result))
	}
	for len(rows) < game.MaxAttempts {
		rows = append(rows, p.blank.Render(strings.Repeat("· ", game.WordLength)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Keyboard renders the three letter rows colored by state.
func (p *Painter) Keyboard(state func(letter byte) game.LetterState) string {
	rows := make([]string, 0, len(keyRows))
	for _, kr := range keyRows {
		keys := make([]string, 0, len(kr))
		for i := 0; i < len(kr); i++ {
			keys = append(keys, p.style(state(kr[i])).Render(strings.ToUpper(kr[i:i+1])))
		}
		rows = append(rows, p.keyRow.Render(lipgloss.JoinHorizontal(lipgloss.Top, keys...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Heading renders a bold title line.
func (p *Painter) Heading(s string) string { return p.heading.Render(s) }
