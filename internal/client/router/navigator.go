package router

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/skillfit/internal/client/handoff"
	"github.com/dmitrijs2005/skillfit/internal/logging"
)

// State travels with a single navigation and is replaced on the next one.
type State struct {
	Result     handoff.Handle
	ResetToken string
}

// Navigator owns the current screen. Every entry goes through the guard;
// a denied entry is replaced by its redirect, which is checked again.
type Navigator struct {
	mu      sync.Mutex
	table   *Table
	guard   *Guard
	logger  logging.Logger
	current Route
	state   State
	onLeave map[Path][]func()
}

func NewNavigator(table *Table, guard *Guard, logger logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Navigator{
		table:   table,
		guard:   guard,
		logger:  logger,
		current: table.Resolve(PathLanding),
		onLeave: make(map[Path][]func()),
	}
}

// OnLeave registers fn to run whenever the screen at p is left.
func (n *Navigator) OnLeave(p Path, fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onLeave[p] = append(n.onLeave[p], fn)
}

// Navigate enters p with st. It returns the route actually entered and the
// guard decision for the requested path.
func (n *Navigator) Navigate(ctx context.Context, p Path, st State) (Route, Decision) {
	requested := n.table.Resolve(p)
	decision := n.guard.Evaluate(requested)

	target := requested
	if decision.Outcome != Authorized {
		target = n.table.Resolve(decision.Redirect)
		// landing screens are reachable for their own role, so a second
		// denial only happens if the session changed underneath us
		if n.guard.Evaluate(target).Outcome != Authorized {
			target = n.table.Resolve(PathSignIn)
		}
		st = State{}
		n.logger.Info(ctx, "navigation redirected",
			"path", string(p), "outcome", decision.Outcome.String(), "redirect", string(target.Path))
	}

	n.mu.Lock()
	var hooks []func()
	if n.current.Path != target.Path {
		hooks = append(hooks, n.onLeave[n.current.Path]...)
	}
	n.current = target
	n.state = st
	n.mu.Unlock()

	for _, h := range hooks {
		h()
	}

	n.logger.Debug(ctx, "navigated", "path", string(target.Path))
	return target, decision
}

func (n *Navigator) Current() (Route, State) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.state
}
