package core

import (
	"context"
	"log"
	"time"
)

// GameLoop runs a simulation at a fixed tick rate.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks int

	// OnTick, if set, is called after every tick.
	OnTick func(tick int, sim *Simulation)
}

// NewGameLoop creates a loop that stops after maxTicks ticks; zero means no limit.
func NewGameLoop(sim *Simulation, tickRate, maxTicks int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
	}
}

// Run ticks until ctx is cancelled, the tick budget is spent or the game
// ends. It returns the number of ticks run.
func (g *GameLoop) Run(ctx context.Context) int {
	interval := time.Second / time.Duration(g.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Printf("[loop] stopped after %d ticks: %v", ticks, ctx.Err())
			return ticks
		case <-ticker.C:
			g.sim.Update(interval.Seconds())
			ticks++
			if g.OnTick != nil {
				g.OnTick(ticks, g.sim)
			}
			if g.sim.Finished() {
				log.Printf("[loop] game ended after %d ticks", ticks)
				return ticks
			}
			if g.maxTicks > 0 && ticks >= g.maxTicks {
				log.Printf("[loop] tick budget of %d used", g.maxTicks)
				return ticks
			}
		}
	}
}

// RunFixed runs n ticks back to back with a fixed dt, without a ticker.
func RunFixed(sim *Simulation, n int, dt float64) int {
	ran := 0
	for ran < n && !sim.Finished() {
		sim.Update(dt)
		ran++
	}
	return ran
}
