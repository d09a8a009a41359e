package confirm

import (
	"context"
	"sync"
)

// Action is a deferred destructive operation held until confirmation.
type Action func(ctx context.Context) error

// Gate holds at most one pending destructive action. A second request
// before resolution silently replaces the first: the UI only ever shows
// one confirmation surface, so only the most recent request can be
// meaningfully confirmed.
type Gate struct {
	mu      sync.Mutex
	message string
	action  Action
}

// NewGate creates an empty confirmation gate.
func NewGate() *Gate {
	return &Gate{}
}

// Request stores an action and its confirmation message, replacing any
// earlier pending request un-invoked.
// POST: the gate holds exactly this action
func (g *Gate) Request(message string, action Action) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.message = message
	g.action = action
}

// Pending returns the current confirmation message and whether an action
// is waiting.
func (g *Gate) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.message, g.action != nil
}

// Confirm invokes the stored action and clears the gate. Confirming with
// nothing pending is a no-op.
// POST: the gate is empty regardless of the action's outcome
func (g *Gate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	action := g.action
	g.message = ""
	g.action = nil
	g.mu.Unlock()

	if action == nil {
		return nil
	}
	return action(ctx)
}

// Cancel clears the gate without invoking the stored action.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.message = ""
	g.action = nil
}
