package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mnk/game"
	"mnk/utils"

	"github.com/muesli/termenv"
)

var ErrNoInput = errors.New("no more input")

// Console is the text interface of a game: it draws the board, prompts for coordinates and announces results.
type Console struct {
	in  *bufio.Scanner
	out *termenv.Output
}

// NewConsole reads answers from r and writes to w. Marks are coloured only when w is a colour terminal,
// unless a termenv.WithProfile option says otherwise.
func NewConsole(r io.Reader, w io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		in:  bufio.NewScanner(r),
		out: termenv.NewOutput(w, opts...),
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) NewGame() {
	c.Printf("\nNew Game! \n\n")
}

func (c *Console) mark(cell game.Cell) string {
	switch cell {
	case game.X:
		return c.out.String(cell.String()).Foreground(c.out.Color("1")).Bold().String()
	case game.O:
		return c.out.String(cell.String()).Foreground(c.out.Color("4")).Bold().String()
	default:
		return cell.String()
	}
}

// DrawBoard prints every row as "| X | O | * | ".
func (c *Console) DrawBoard(b *game.Board) {
	var sb strings.Builder
	sb.WriteString("\nBoard current state:\n \n")
	for i := 0; i < b.Rows(); i++ {
		sb.WriteString("| ")
		for j := 0; j < b.Cols(); j++ {
			sb.WriteString(c.mark(b.At(i, j)))
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	c.Printf("%s", sb.String())
}

func (c *Console) Announce(o game.Outcome) {
	c.Printf("%s\n", o.Message())
}

func (c *Console) EvaluationTime(d time.Duration) {
	c.Printf("Evaluation time: %s seconds\n", utils.FormatSeconds(d))
}

func (c *Console) Recommend(move game.Move) {
	c.Printf("Recommended action: %s\n", move)
}

// ReadInt prompts until a line holds an integer. It returns ErrNoInput once the input is exhausted.
func (c *Console) ReadInt(prompt string) (int, error) {
	for {
		c.Printf("%s", prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, ErrNoInput
		}

		n, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err == nil {
			return n, nil
		}
		c.Printf("Not a valid number! Try again.\n")
	}
}
