// internal/render/render.go
//
// Terminal presentation for the CLI.
// Draws the board, the keyboard, the solver model and statistics. Colours are
// go-color escapes, written through go-colorable and only when the output is a
// terminal (go-isatty).
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wrdl/internal/game"
	"github.com/robalobadob/wrdl/internal/solver"
	"github.com/robalobadob/wrdl/internal/stats"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Printer writes presentation output.
type Printer struct {
	w     io.Writer
	color bool
}

// New wraps w; colored toggles escape codes.
func New(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, color: colored}
}

// Stdout prints to standard output with colour when it is a terminal.
func Stdout() *Printer {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return New(colorable.NewColorable(os.Stdout), tty)
}

func (p *Printer) esc(code string) string {
	if !p.color {
		return ""
	}
	return code
}

// marker is the colour for a verdict; the zero Verdict is unguessed.
func (p *Printer) marker(v game.Verdict) string {
	switch v {
	case game.VerdictExact:
		return p.esc(color.Green)
	case game.VerdictPresent:
		return p.esc(color.Yellow)
	case game.VerdictAbsent:
		return p.esc(color.Gray)
	}
	return ""
}

// tile draws one letter. Without colour the verdict is shown as a suffix:
// = exact, ~ present, . absent.
func (p *Printer) tile(letter byte, v game.Verdict) string {
	if p.color {
		return fmt.Sprintf("[ %s%c%s ]", p.marker(v), letter, p.esc(color.White))
	}
	suffix := ' '
	switch v {
	case game.VerdictExact:
		suffix = '='
	case game.VerdictPresent:
		suffix = '~'
	case game.VerdictAbsent:
		suffix = '.'
	}
	return fmt.Sprintf("[ %c%c]", letter, suffix)
}

// Board draws the header, every guess and the empty rows left.
func (p *Printer) Board(s *game.Session) {
	fmt.Fprintf(p.w, "Playing Wrdl:\nYou have %d guesses to find a %d-letter word.\n\n", s.MaxGuesses(), s.Length())
	for _, g := range s.Guesses() {
		fmt.Fprint(p.w, p.esc(color.Bold))
		for i := 0; i < len(g.Word); i++ {
			fmt.Fprint(p.w, p.tile(g.Word[i], g.Result[i]))
		}
		fmt.Fprintln(p.w, p.esc(color.Reset))
	}
	for i := 0; i < s.Remaining(); i++ {
		fmt.Fprintln(p.w, p.esc(color.Bold)+strings.Repeat("[   ]", s.Length())+p.esc(color.Reset))
	}
	fmt.Fprintln(p.w)
	p.Keyboard(s.GuessedLetters())
}

// Keyboard draws the QWERTY layout coloured by best verdict per letter.
func (p *Printer) Keyboard(letters map[byte]game.Verdict) {
	for i, row := range keyboardRows {
		fmt.Fprint(p.w, p.esc(color.Bold)+strings.Repeat(" ", 3*i))
		for j := 0; j < len(row); j++ {
			fmt.Fprint(p.w, p.tile(row[j], letters[row[j]]))
		}
		fmt.Fprintln(p.w, p.esc(color.Reset))
	}
	fmt.Fprintln(p.w)
}

// Model prints the plausible letters at each position.
func (p *Printer) Model(m *solver.Model) {
	for i := 0; i < m.Length(); i++ {
		fmt.Fprintf(p.w, "%d: %s\n", i, m.Plausible(i))
	}
}

// Answer reveals the secret.
func (p *Printer) Answer(secret string) {
	fmt.Fprintf(p.w, "Answer: %s%s%s%s\n", p.esc(color.Bold), p.esc(color.Red), secret, p.esc(color.Reset))
}

// Win prints the congratulation for solving in n guesses.
func (p *Printer) Win(n int) {
	fmt.Fprintf(p.w, "%s%s%s\n", p.esc(color.Bold), WinMessage(n), p.esc(color.Reset))
}

// Problem prints a rejected guess or other error as one line.
func (p *Printer) Problem(err error) {
	var ge *game.Error
	if errors.As(err, &ge) {
		fmt.Fprintln(p.w, ge.Message())
		return
	}
	fmt.Fprintln(p.w, err)
}

// Stats prints totals, win rate and the distribution of guesses per win.
func (p *Printer) Stats(s stats.Summary) {
	fmt.Fprintln(p.w, "Total games played:", s.Completed)
	fmt.Fprintln(p.w, "Current win streak:", s.Streak)
	fmt.Fprintln(p.w, "Longest win streak:", s.LongestStreak)
	if s.Completed == 0 {
		return
	}
	fmt.Fprintf(p.w, "Win Rate: %.1f%%\n", s.WinRate())
	if s.Wins == 0 {
		return
	}
	fmt.Fprintln(p.w)
	keys := make([]int, 0, len(s.Scores))
	for k := range s.Scores {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(p.w, "%d: %.1f%%\n", k, float64(s.Scores[k])/float64(s.Wins)*100)
	}
}

// WinMessage grades a win by the number of guesses it took.
func WinMessage(n int) string {
	switch n {
	case 0:
		return "Unbelievable!"
	case 1:
		return "Genius!"
	case 2:
		return "Magnificent!"
	case 3:
		return "Impressive."
	case 4:
		return "Splendid."
	case 5:
		return "Great."
	case 6:
		return "Phew..."
	}
	return "Solved!"
}
