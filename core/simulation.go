// Package core drives a headless titan-slayer simulation one fixed tick at a time.
package core

import (
	"fmt"

	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/game"
	"github.com/automoto/titan-slayer/systems"
)

// tickSystems is the per-tick system order. Objects are synced twice:
// after the player moves and after enemies and bullets move.
var tickSystems = []func(*game.State){
	systems.UpdateInput,
	systems.UpdatePhysics,
	systems.UpdateObjects,
	systems.UpdateTimers,
	systems.UpdateEnemies,
	systems.UpdateProjectiles,
	systems.UpdateObjects,
	systems.UpdateCombat,
	systems.UpdatePickups,
	systems.UpdateProgression,
	systems.UpdateCamera,
}

// Simulation owns one game state.
type Simulation struct {
	state *game.State
}

type options struct {
	startLevel int
}

// Option configures New.
type Option func(*options)

// WithStartLevel starts on level id instead of the catalog's first.
func WithStartLevel(id int) Option {
	return func(o *options) {
		o.startLevel = id
	}
}

// New loads the opening level of catalog.
func New(catalog *assets.Catalog, opts ...Option) (*Simulation, error) {
	if catalog == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	o := options{startLevel: catalog.First()}
	for _, opt := range opts {
		opt(&o)
	}

	s := game.NewState(catalog)
	if err := systems.LoadLevel(s, o.startLevel); err != nil {
		return nil, fmt.Errorf("failed to start simulation: %w", err)
	}
	return &Simulation{state: s}, nil
}

// Input queues a command for the next tick.
func (sim *Simulation) Input(cmd game.Command) {
	sim.state.Commands = append(sim.state.Commands, cmd)
}

// Update runs one tick. dt only advances timers. Once the game has ended
// Update does nothing.
func (sim *Simulation) Update(dt float64) {
	if sim.Finished() {
		sim.state.Commands = nil
		return
	}
	sim.state.DT = dt
	for _, system := range tickSystems {
		system(sim.state)
	}
}

// Finished reports whether the game reached victory or game over.
func (sim *Simulation) Finished() bool {
	return sim.state.Progress().State.Terminal()
}

// FinalScore is the score handed off at the end of the game.
func (sim *Simulation) FinalScore() (int, bool) {
	progress := sim.state.Progress()
	if !progress.State.Terminal() {
		return 0, false
	}
	return progress.FinalScore, true
}

// Events drains events emitted since the last call.
func (sim *Simulation) Events() []game.Event {
	return sim.state.Events.Drain()
}

// State exposes the underlying state for tests and tools.
func (sim *Simulation) State() *game.State {
	return sim.state
}
