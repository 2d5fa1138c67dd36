// Package sim drives the population sweep on a real-time ticker.
package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hexvane/mhfgo/internal/model"
	"github.com/hexvane/mhfgo/internal/population"
)

// PlayerProvider supplies the player snapshot for each tick.
// The returned slice is treated as immutable for the duration of the sweep.
type PlayerProvider interface {
	NearbyPlayers() []model.PlayerSnapshot
}

// ActionSink consumes the per-tick action reports (telemetry, alerts, UI).
type ActionSink interface {
	Publish(actions []population.AgentAction)
}

// StaticPlayers is a PlayerProvider over a fixed player list, for headless
// runs without a game layer attached.
type StaticPlayers []model.PlayerSnapshot

// NearbyPlayers returns the fixed player list.
func (s StaticPlayers) NearbyPlayers() []model.PlayerSnapshot {
	return s
}

// SlogSink logs every reported action at info level.
type SlogSink struct{}

// Publish logs the action batch.
func (SlogSink) Publish(actions []population.AgentAction) {
	for _, aa := range actions {
		slog.Info("monster action", "agentID", aa.AgentID, "action", aa.Action.Kind())
	}
}

// Runner drives Manager.UpdateAll on a wall-clock ticker, feeding each
// sweep the measured delta time.
type Runner struct {
	manager  *population.Manager
	players  PlayerProvider
	sink     ActionSink
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRunner creates a runner over the given manager.
// players and sink may be nil; a nil provider means no players in range.
func NewRunner(manager *population.Manager, players PlayerProvider, sink ActionSink, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second
	}
	return &Runner{
		manager:  manager,
		players:  players,
		sink:     sink,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the tick loop (blocks until the context is canceled or Stop
// is called).
func (r *Runner) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("simulation runner started", "interval", r.interval)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation runner stopping")
			return ctx.Err()

		case <-r.stopCh:
			slog.Info("simulation runner stopped")
			return nil

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			r.tick(dt)
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
}

func (r *Runner) tick(dt float64) {
	var players []model.PlayerSnapshot
	if r.players != nil {
		players = r.players.NearbyPlayers()
	}

	actions := r.manager.UpdateAll(dt, players)

	if r.sink != nil && len(actions) > 0 {
		r.sink.Publish(actions)
	}
}
