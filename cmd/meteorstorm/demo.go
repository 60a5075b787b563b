package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcadeforge/meteorstorm/internal/core"
	"github.com/arcadeforge/meteorstorm/internal/game/meteor"
	"github.com/arcadeforge/meteorstorm/internal/platform/tui"
	"github.com/arcadeforge/meteorstorm/internal/registry"
)

var flagDemoTicks int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the attract-mode autopilot play",
	Long: `Run the game in attract mode: the built-in pilot chases and shoots
meteors with no player input. Press fire at any time to take over.

With --ticks the demo runs headless for that many simulation ticks and
prints the result, which is useful for sanity-checking a config file.

Examples:
  meteorstorm demo
  meteorstorm demo --seed 42
  meteorstorm demo --ticks 5000`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoTicks, "ticks", 0, "Run headless for N ticks and print the result")
}

func runDemo(cmd *cobra.Command, args []string) {
	meteor.SetDemoMode(true)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if flagDemoTicks > 0 {
		runHeadlessDemo(game, flagDemoTicks)
		return
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Demo runs without score storage or audio.
	if err := tui.Run(game, nil, cfg, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// runHeadlessDemo steps the simulation without a terminal UI and logs the
// outcome of the autopilot run.
func runHeadlessDemo(game registry.Game, ticks int) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "meteorstorm-demo",
	})

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: flagFPS, Seed: flagSeed}
	game.Reset(cfg)

	logger.Info("starting headless demo", "ticks", ticks, "seed", cfg.Seed)

	empty := core.NewInputFrame()
	var state core.GameState
	for i := 0; i < ticks; i++ {
		state = game.Step(empty).State
	}

	logger.Info("demo finished",
		"score", state.Score,
		"wave", state.Wave,
		"lives", state.Lives,
	)
}
