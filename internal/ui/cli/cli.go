// Package cli implements a command-line UI for the board games: it renders boards, traces and
// outcomes, and reads the human player's moves.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/boardbots/internal/blocks"
	"github.com/janpfeifer/boardbots/internal/board"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// UI holds the terminal configuration. Create it with New.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

var (
	moveParser = regexp.MustCompile(`^\s*(-?\d+)[\s,]+(-?\d+)[\s,]*$`)

	// ErrTooManyParsingErrors is returned by ReadMove after 3 failed attempts.
	ErrTooManyParsingErrors = errors.New("failed to read move 3 times")
)

// New creates a UI reading from the standard input and writing to the standard output.
func New(color, clearScreen bool) *UI {
	return NewWithIO(color, clearScreen, os.Stdin, os.Stdout)
}

// NewWithIO creates a UI with the given input and output.
func NewWithIO(color, clearScreen bool, in io.Reader, out io.Writer) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

// terminalWidth returns the width of the output if it is a terminal, or 0.
func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printCentered prints block centered in the terminal width.
func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			ui.printf("\n")
			continue
		}
		ui.printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func (ui *UI) style(player board.Occupant) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !ui.color {
		return s
	}
	switch player {
	case board.PlayerA:
		return s.Foreground(lipgloss.Color("9")).Bold(true)
	case board.PlayerB:
		return s.Foreground(lipgloss.Color("10")).Bold(true)
	}
	return s.Faint(true)
}

// Symbol used to display each occupant.
func Symbol(o board.Occupant) string {
	switch o {
	case board.PlayerA:
		return "X"
	case board.PlayerB:
		return "O"
	}
	return "."
}

// PlayerName returns the symbol and name of the player, colored if enabled.
func (ui *UI) PlayerName(player board.Occupant) string {
	return ui.style(player).Render(fmt.Sprintf("%s (%s)", player, Symbol(player)))
}

// RenderBoard returns the board as text, with coordinates along the borders.
//
// If hexagonal, each row is shifted by half a cell with respect to the previous one, as in a Hex
// rhombus, and cells are indexed (q, r) with q the column. Otherwise cells are indexed (row, column).
// Cells in highlight (e.g.: the last move, or the winning line) are shown in reverse video.
func (ui *UI) RenderBoard(b *board.Board, hexagonal bool, highlight ...board.Pos) string {
	highlighted := make(map[board.Pos]bool, len(highlight))
	for _, pos := range highlight {
		highlighted[pos] = true
	}
	size := b.Size()
	var sb strings.Builder
	sb.WriteString("    ")
	for col := range size {
		fmt.Fprintf(&sb, "%2d", col)
	}
	sb.WriteString("\n")
	for row := range size {
		if hexagonal {
			sb.WriteString(strings.Repeat(" ", row))
		}
		fmt.Fprintf(&sb, "%3d ", row)
		for col := range size {
			pos := board.P(row, col)
			if hexagonal {
				pos = board.P(col, row)
			}
			occupant := b.At(pos)
			style := ui.style(occupant)
			if highlighted[pos] {
				style = style.Reverse(true)
			}
			sb.WriteString(" ")
			symbol := Symbol(occupant)
			if highlighted[pos] && !ui.color {
				symbol = strings.ToLower(symbol)
				if occupant == board.Empty {
					symbol = "*"
				}
			}
			sb.WriteString(style.Render(symbol))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PrintBoard prints the board centered, with the move number on top.
func (ui *UI) PrintBoard(b *board.Board, hexagonal bool, moveNumber int, highlight ...board.Pos) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	ui.printf("\nMove #%d\n\n", moveNumber)
	ui.printCentered(ui.RenderBoard(b, hexagonal, highlight...))
	ui.printf("\n")
}

// PrintTrace prints the engine's explanation of its move in a box.
func (ui *UI) PrintTrace(trace []string) {
	if len(trace) == 0 {
		return
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if ui.color {
		box = box.BorderForeground(lipgloss.Color("13"))
	}
	ui.printCentered(box.Render(strings.Join(trace, "\n")))
}

// PrintOutcome of a finished game.
func (ui *UI) PrintOutcome(outcome board.Outcome) {
	ui.printf("\n")
	style := lipgloss.NewStyle().Padding(1, 2)
	if ui.color {
		style = style.Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0"))
	}
	var msg string
	switch outcome.Result {
	case board.Win:
		msg = fmt.Sprintf("*** %s WINS!! ***", strings.ToUpper(outcome.Winner.String()))
	case board.Draw:
		msg = "*** DRAW! ***"
	default:
		msg = "*** Game not finished ***"
	}
	ui.printCentered(style.Render(msg))
	ui.printf("\n")
}

// ReadMove asks the player for a move, typed as two coordinates ("row col" or "q r" for hex).
// It returns ErrTooManyParsingErrors after 3 invalid inputs, or the reader error (e.g. io.EOF).
func (ui *UI) ReadMove(b *board.Board, player board.Occupant, hexagonal bool) (board.Pos, error) {
	const (
		inputAreaColor = "\033[30;45;2m"        // Purplish background
		inputAreaReset = "\033[39;49;0m\033[0K" // Reset color and clear to the end-of-line.
		inputWidth     = 10
	)
	coords := "row col"
	if hexagonal {
		coords = "q r"
	}
	for range 3 {
		ui.printf("    %s move [%s] > ", ui.PlayerName(player), coords)
		if ui.color {
			ui.printf("%s%s\033[%dD", inputAreaColor, strings.Repeat(" ", inputWidth), inputWidth-1)
		}
		text, err := ui.reader.ReadString('\n')
		if ui.color {
			ui.printf(inputAreaReset)
		}
		if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
			return board.Pos{}, err
		}
		text = strings.TrimSpace(text)
		matches := moveParser.FindStringSubmatch(text)
		if len(matches) != 3 {
			ui.printf("    * Failed to parse your input %q, please type 2 numbers.\n", text)
			continue
		}
		var pos board.Pos
		failed := false
		for ii := range 2 {
			i64, err := strconv.ParseInt(matches[1+ii], 10, 8)
			if err != nil {
				ui.printf("    * Failed to parse coordinate %q in %q\n", matches[1+ii], text)
				failed = true
				break
			}
			pos[ii] = int8(i64)
		}
		if failed {
			continue
		}
		if !b.InBounds(pos) {
			ui.printf("    * Position %s is out of the board.\n", pos)
			continue
		}
		if !b.IsEmptyAt(pos) {
			ui.printf("    * Position %s is already taken.\n", pos)
			continue
		}
		return pos, nil
	}
	return board.Pos{}, ErrTooManyParsingErrors
}

// RenderStack returns the stack of the block game as text. If ghost is given, the cells where the
// piece would land are shown with "@".
func (ui *UI) RenderStack(s *blocks.Stack, ghost *blocks.Placement) string {
	ghostCells := make(map[[2]int]bool)
	if ghost != nil {
		ghost.Shape.Blocks(func(x, y int) {
			ghostCells[[2]int{ghost.X + x, ghost.Y + y}] = true
		})
	}
	filled := lipgloss.NewStyle()
	hint := lipgloss.NewStyle()
	if ui.color {
		filled = filled.Foreground(lipgloss.Color("14"))
		hint = hint.Foreground(lipgloss.Color("11")).Bold(true)
	}
	var sb strings.Builder
	for y := range blocks.Rows {
		sb.WriteString("|")
		for x := range blocks.Cols {
			switch {
			case ghostCells[[2]int{x, y}]:
				sb.WriteString(hint.Render("@"))
			case s[y][x]:
				sb.WriteString(filled.Render("#"))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", blocks.Cols) + "+")
	return sb.String()
}

// PrintBlocks prints the block game: the stack with the advised placement of the current piece, if
// any, and the scores.
func (ui *UI) PrintBlocks(g *blocks.Game, advice *blocks.Placement) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	stack := g.Stack()
	ui.printCentered(ui.RenderStack(&stack, advice))
	status := fmt.Sprintf("pieces=%d  lines=%d  score=%d  current=%s  next=%s",
		g.Pieces(), g.Lines(), g.Score(), g.Current(), g.Next())
	if advice != nil {
		status += "\nadvice: " + advice.String()
	}
	ui.printCentered(status)
}
