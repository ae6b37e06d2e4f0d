package main

import (
	"os/signal"
	"syscall"

	cfg "github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/core"
	"github.com/automoto/titan-slayer/game"
	"github.com/spf13/cobra"
)

var (
	flagTicks    int
	flagTickRate int
	flagIdle     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a window and report how it went.

By default the player runs right, jumping and swinging on a fixed rhythm.
With --tick-rate 0 ticks run back to back instead of on a ticker.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Tick budget")
	simCmd.Flags().IntVar(&flagTickRate, "tick-rate", cfg.C.TickRate, "Ticks per second; 0 runs unthrottled")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "Send no input")
}

func runSim(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	opts := []core.Option{}
	if flagLevel != 0 {
		opts = append(opts, core.WithStartLevel(flagLevel))
	}
	sim, err := core.New(catalog, opts...)
	if err != nil {
		return err
	}

	onTick := func(tick int, sim *core.Simulation) {
		for _, e := range sim.Events() {
			logger.Debug("event", "tick", e.Tick, "kind", e.Kind, "value", e.Value)
			switch e.Kind {
			case cfg.EventLevelAdvanced, cfg.EventDoorOpened, cfg.EventBossArena, cfg.EventPlayerHurt:
				logger.Info(e.Kind.String(), "tick", e.Tick, "value", e.Value)
			}
		}
		if !flagIdle {
			drive(tick, sim)
		}
	}

	ticks := 0
	if flagTickRate <= 0 {
		for ticks < flagTicks && !sim.Finished() {
			sim.Update(1 / float64(cfg.C.TickRate))
			ticks++
			onTick(ticks, sim)
		}
	} else {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		loop := core.NewGameLoop(sim, flagTickRate, flagTicks)
		loop.OnTick = onTick
		ticks = loop.Run(ctx)
	}

	snap := sim.Snapshot()
	logger.Info("simulation finished",
		"ticks", ticks,
		"state", snap.State,
		"level", snap.LevelID,
		"lives", snap.Lives,
		"score", snap.Score,
		"enemies_left", snap.EnemiesLeft,
	)
	if score, ok := sim.FinalScore(); ok {
		logger.Info("final score", "score", score)
	}
	return nil
}

// drive is the scripted input: hold right, jump every 45 ticks and swing
// ahead every 15.
func drive(tick int, sim *core.Simulation) {
	if tick == 1 {
		sim.Input(game.Press(cfg.ActionMoveRight))
	}
	if tick%45 == 0 {
		sim.Input(game.Press(cfg.ActionJump))
	}
	if tick%15 == 0 {
		snap := sim.Snapshot()
		for _, e := range snap.Entities {
			if e.Category == cfg.CategoryPlayer {
				sim.Input(game.MeleeAt(e.Rect.CenterX()+100, e.Rect.CenterY()))
				if snap.Bullets > 0 {
					sim.Input(game.ShootAt(e.Rect.CenterX()+400, e.Rect.CenterY()))
				}
				break
			}
		}
	}
}
