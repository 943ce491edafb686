// Package terminal plays the game over a line-oriented text stream such as a
// terminal. Console implements both ports.Player and ports.Reporter.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
)

// Option configures a Console.
type Option func(*Console)

// WithLanguage sets the language of all output. The default is English.
func WithLanguage(tag language.Tag) Option {
	return func(c *Console) {
		c.printer = Printer(tag)
	}
}

// WithHints shows what the final hand would score in each open box before
// asking for one.
func WithHints(enabled bool) Option {
	return func(c *Console) {
		c.hints = enabled
	}
}

type lineResult struct {
	text string
	err  error
}

// Console reads answers from in and writes prompts and the score card to out.
// It serves a single game at a time.
type Console struct {
	in      io.Reader
	out     io.Writer
	printer *message.Printer
	hints   bool

	startOnce sync.Once
	lines     chan lineResult

	// retry is set after a rejected box so the next prompt skips the question.
	retry bool
}

var (
	_ ports.Player   = (*Console)(nil)
	_ ports.Reporter = (*Console)(nil)
)

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:      in,
		out:     out,
		printer: Printer(Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// start launches the reader goroutine. It is started on the first prompt so
// that one-shot commands never touch the input.
func (c *Console) start() {
	c.lines = make(chan lineResult)
	go func() {
		defer close(c.lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			c.lines <- lineResult{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		c.lines <- lineResult{err: err}
	}()
}

// readLine blocks until a line is entered or ctx is done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.startOnce.Do(c.start)
	fmt.Fprint(c.out, ">> ")
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (c *Console) say(key string, args ...interface{}) {
	c.printer.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}

// ChooseReroll implements ports.Player.
func (c *Console) ChooseReroll(ctx context.Context, view ports.RollView) (domain.RerollMask, error) {
	c.say("game.reroll_prompt", view.ThrowsLeft)
	line, err := c.readLine(ctx)
	if err != nil {
		return 0, err
	}
	return ParseReroll(line), nil
}

// ChooseCategory implements ports.Player. Answers that are neither a number
// nor a box name are asked again here; range and filled-box checks belong to
// the game.
func (c *Console) ChooseCategory(ctx context.Context, view ports.TurnView) (int, error) {
	if !c.retry {
		if c.hints {
			c.printHints(view)
		}
		c.say("game.score_prompt")
	}
	c.retry = false

	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		index, err := ParseCategoryInput(line)
		if err == nil {
			return index, nil
		}
		c.say("game.enter_number")
	}
}

func (c *Console) printHints(view ports.TurnView) {
	if len(view.Potential) == 0 {
		return
	}
	c.say("game.hints")
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, cat := range domain.Categories() {
		score, ok := view.Potential[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  [%d]\t%s\t+%d\n", cat.Index(), CategoryName(c.printer, cat), score)
	}
	w.Flush()
}

// GameStarted implements ports.Reporter.
func (c *Console) GameStarted() {
	c.say("game.welcome")
}

// RoundStarted implements ports.Reporter.
func (c *Console) RoundStarted(round int) {
	c.say("game.round", round)
}

// Rolled implements ports.Reporter.
func (c *Console) Rolled(view ports.RollView) {
	c.say("game.rolled", view.Hand)
}

// Scorecard implements ports.Reporter.
func (c *Console) Scorecard(card []domain.Entry, board domain.Scoreboard) {
	p := c.printer
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "~~~~~ %s ~~~~~\n", p.Sprintf("card.title"))

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "----- %s -----\n", p.Sprintf("card.upper"))
	for _, e := range card {
		if e.Category == domain.ThreeOfAKind {
			fmt.Fprintf(w, "%s = %d\n\n", p.Sprintf("card.sum_upper"), board.UpperSubtotal)
			fmt.Fprintf(w, "----- %s -----\n", p.Sprintf("card.lower"))
		}
		hand := "-"
		if e.Filled {
			hand = e.Hand.String()
		}
		fmt.Fprintf(w, "[%d]\t%s\t%s\t= %d\n", e.Category.Index(), CategoryName(p, e.Category), hand, e.Score)
	}
	fmt.Fprintf(w, "%s = %d\n\n", p.Sprintf("card.sum_lower"), board.LowerSubtotal)
	w.Flush()

	fmt.Fprintf(c.out, "----- %s -----\n", p.Sprintf("card.bonuses"))
	fmt.Fprintf(c.out, "%s = %d\n", p.Sprintf("card.upper_bonus"), board.UpperBonus)
	fmt.Fprintf(c.out, "%s = %d\n\n", p.Sprintf("card.yahtzee_bonus"), board.YahtzeeBonus)
	fmt.Fprintf(c.out, "%s: %d\n", p.Sprintf("card.total"), board.Total)
	fmt.Fprintln(c.out, "~~~~~~~~~~")
}

// Rejected implements ports.Reporter.
func (c *Console) Rejected(err error) {
	c.retry = true
	switch {
	case errors.Is(err, domain.ErrCategoryAlreadyScored):
		c.say("game.box_filled")
	default:
		c.say("game.enter_number")
	}
}

// Recorded implements ports.Reporter.
func (c *Console) Recorded(cat domain.Category, h domain.Hand, score int) {
	c.say("game.recorded", CategoryName(c.printer, cat), score)
}

// GameOver implements ports.Reporter.
func (c *Console) GameOver(board domain.Scoreboard) {
	c.say("game.ended")
	c.say("game.final_score", board.Total)
}

// PrintCategories writes the score card boxes with their indexes.
func (c *Console) PrintCategories() {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, cat := range domain.Categories() {
		fmt.Fprintf(w, "[%d]\t%s\n", cat.Index(), CategoryName(c.printer, cat))
	}
	w.Flush()
}

// PrintScore writes what h scores in cat.
func (c *Console) PrintScore(cat domain.Category, h domain.Hand) {
	c.say("score.result", h, CategoryName(c.printer, cat), domain.Score(cat, &h))
}

// ParseReroll selects every die whose position (1..5) appears as a digit
// anywhere in line. A line without such digits keeps the hand.
func ParseReroll(line string) domain.RerollMask {
	var positions []int
	for pos := 1; pos <= domain.HandSize; pos++ {
		if strings.ContainsRune(line, rune('0'+pos)) {
			positions = append(positions, pos)
		}
	}
	mask, _ := domain.NewRerollMask(positions...)
	return mask
}

// ParseCategoryInput reads a box choice. Any integer is returned as is, so
// the game decides whether it is in range. Box names such as "fh" or
// "full house" are also accepted.
func ParseCategoryInput(line string) (int, error) {
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil {
		return n, nil
	}
	cat, err := domain.ParseCategory(line)
	if err != nil {
		return 0, err
	}
	return cat.Index(), nil
}
