// Package game holds the simulation's single mutable aggregate: the entity
// world, its registry, level singletons, queued input and emitted events.
package game

import (
	"github.com/automoto/titan-slayer/archetypes"
	"github.com/automoto/titan-slayer/assets"
	"github.com/automoto/titan-slayer/components"
	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/automoto/titan-slayer/tags"
	"github.com/yohamta/donburi"
)

// State is passed to every system. It is owned by one simulation and is
// never shared between goroutines.
type State struct {
	World    donburi.World
	Registry *Registry
	Catalog  *assets.Catalog
	Events   *EventQueue

	// Commands holds input queued since the last tick.
	Commands []Command
	// DT is the wall-clock seconds of the tick in progress.
	DT float64

	level  *donburi.Entry
	camera *donburi.Entry
}

// NewState builds an empty world with the level and camera singletons.
func NewState(catalog *assets.Catalog) *State {
	w := donburi.NewWorld()
	s := &State{
		World:    w,
		Registry: NewRegistry(w, gamemath.Rect{W: config.C.TileSize, H: config.C.TileSize}),
		Catalog:  catalog,
		Events:   &EventQueue{},
	}
	s.level = archetypes.Level.Spawn(w)
	s.camera = archetypes.Camera.Spawn(w)
	return s
}

// Level returns the current level's live data.
func (s *State) Level() *components.LevelData {
	return components.Level.Get(s.level)
}

// Progress returns the progression machine.
func (s *State) Progress() *components.ProgressData {
	return components.Progress.Get(s.level)
}

// Camera returns the viewport.
func (s *State) Camera() *components.CameraData {
	return components.Camera.Get(s.camera)
}

// Player returns the player entry, if spawned.
func (s *State) Player() (*donburi.Entry, bool) {
	e, ok := tags.Player.First(s.World)
	if !ok || !s.Registry.Alive(e) {
		return nil, false
	}
	return e, true
}

// Emit records an event at the current tick.
func (s *State) Emit(kind config.EventKind, x, y float64, value int) {
	s.Events.Push(Event{Kind: kind, Tick: s.Level().Tick, X: x, Y: y, Value: value})
}

// TakeCommands returns and clears queued input.
func (s *State) TakeCommands() []Command {
	cmds := s.Commands
	s.Commands = nil
	return cmds
}
