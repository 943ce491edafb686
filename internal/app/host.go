package app

import (
	"context"

	"github.com/bft-labs/yahtzee/internal/domain"
	"github.com/bft-labs/yahtzee/internal/ports"
	"github.com/bft-labs/yahtzee/pkg/log"
)

// Host runs at most one game at a time. A process creates a single Host and
// routes every game start through it.
type Host struct {
	lifecycle *Lifecycle
	logger    log.Logger
}

// NewHost creates a host with no session.
func NewHost(logger log.Logger, emitter EventEmitter) *Host {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Host{
		lifecycle: NewLifecycle(logger, emitter),
		logger:    logger,
	}
}

// Run plays one full game and blocks until it ends.
//
// Returns ErrSessionAlreadyRunning if another game is in progress. When ctx is
// canceled or play fails, the session is marked Aborted and its partial score
// sheet is discarded.
func (h *Host) Run(ctx context.Context, src ports.DiceSource, player ports.Player, reporter ports.Reporter) (domain.Scoreboard, error) {
	if err := h.lifecycle.TransitionTo(StateRunning, "game started"); err != nil {
		h.logger.Warn("refusing to start game", log.Err(err))
		return domain.Scoreboard{}, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	h.lifecycle.SetCancel(cancel)

	game := NewGame(src, WithLogger(h.logger))
	board, err := Play(runCtx, game, player, reporter)
	if err != nil {
		_ = h.lifecycle.TransitionTo(StateAborted, err.Error())
		return domain.Scoreboard{}, err
	}

	_ = h.lifecycle.TransitionTo(StateFinished, "all boxes filled")
	return board, nil
}

// Abort cancels the running game. Returns ErrNotRunning if there is none.
func (h *Host) Abort() error {
	if !h.lifecycle.Cancel() {
		return domain.ErrNotRunning
	}
	return nil
}

// Status returns the session state.
func (h *Host) Status() State {
	return h.lifecycle.State()
}
