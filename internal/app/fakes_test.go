package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
)

// scriptedDice returns faces from a fixed script and repeats the last one
// when the script runs out.
type scriptedDice struct {
	mu    sync.Mutex
	faces []int
	calls int
}

func newScriptedDice(faces ...int) *scriptedDice {
	return &scriptedDice{faces: faces}
}

func (s *scriptedDice) RollDie() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.faces) == 0 {
		return 1
	}
	f := s.faces[0]
	if len(s.faces) > 1 {
		s.faces = s.faces[1:]
	}
	return f
}

func (s *scriptedDice) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// scriptedPlayer answers reroll prompts and box prompts from queues.
// When the reroll queue is empty it keeps the hand; when the box queue is
// empty it picks the first open box.
type scriptedPlayer struct {
	rerolls    []domain.RerollMask
	categories []int
	rollViews  []ports.RollView
	turnViews  []ports.TurnView
	// block makes ChooseCategory wait for ctx instead of answering.
	block bool
}

func (p *scriptedPlayer) ChooseReroll(ctx context.Context, view ports.RollView) (domain.RerollMask, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.rollViews = append(p.rollViews, view)
	if len(p.rerolls) == 0 {
		return 0, nil
	}
	m := p.rerolls[0]
	p.rerolls = p.rerolls[1:]
	return m, nil
}

func (p *scriptedPlayer) ChooseCategory(ctx context.Context, view ports.TurnView) (int, error) {
	if p.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.turnViews = append(p.turnViews, view)
	if len(p.categories) > 0 {
		c := p.categories[0]
		p.categories = p.categories[1:]
		return c, nil
	}
	for _, e := range view.Card {
		if !e.Filled {
			return e.Category.Index(), nil
		}
	}
	return 0, fmt.Errorf("no open box")
}

// recordingReporter records every callback as a short event string.
type recordingReporter struct {
	mu       sync.Mutex
	events   []string
	rejected []error
	final    *domain.Scoreboard
}

func (r *recordingReporter) add(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) GameStarted()           { r.add("start") }
func (r *recordingReporter) RoundStarted(round int) { r.add("round %d", round) }
func (r *recordingReporter) Rolled(v ports.RollView) {
	r.add("rolled %s left %d", v.Hand, v.ThrowsLeft)
}
func (r *recordingReporter) Scorecard(card []domain.Entry, board domain.Scoreboard) {
	r.add("card %d", board.Total)
}
func (r *recordingReporter) Rejected(err error) {
	r.mu.Lock()
	r.rejected = append(r.rejected, err)
	r.mu.Unlock()
	r.add("rejected")
}
func (r *recordingReporter) Recorded(c domain.Category, h domain.Hand, score int) {
	r.add("recorded %s %s %d", c, h, score)
}
func (r *recordingReporter) GameOver(board domain.Scoreboard) {
	r.mu.Lock()
	r.final = &board
	r.mu.Unlock()
	r.add("over %d", board.Total)
}

func (r *recordingReporter) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.events...)
}
