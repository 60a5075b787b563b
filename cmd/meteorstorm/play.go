package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeforge/meteorstorm/internal/audio"
	"github.com/arcadeforge/meteorstorm/internal/config"
	"github.com/arcadeforge/meteorstorm/internal/core"
	"github.com/arcadeforge/meteorstorm/internal/game/meteor"
	"github.com/arcadeforge/meteorstorm/internal/platform/tui"
	"github.com/arcadeforge/meteorstorm/internal/registry"
	"github.com/arcadeforge/meteorstorm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Meteor Storm",
	Long: `Start the game.

Controls:
  A/D or Left/Right  - Move ship
  Space/W/Up         - Fire
  P                  - Pause
  R                  - Restart
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - More lives, more power-ups
  normal - The standard arcade tuning
  hard   - Fewer lives, faster spawns

Examples:
  meteorstorm play
  meteorstorm play --difficulty hard
  meteorstorm play --config ./my-meteor.yaml
  meteorstorm play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 25
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// parseDifficulty validates the difficulty flag.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	switch config.DifficultyPreset(s) {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
		return config.DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, or hard)", s)
}

func runPlay(cmd *cobra.Command, args []string) {
	difficulty, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before the registry constructs it
	meteor.SetConfigPath(flagConfig)
	meteor.SetDifficultyPreset(difficulty)
	meteor.SetDemoMode(false)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound core.SoundPlayer
	if !flagMute {
		if player, audioErr := audio.NewPlayer(); audioErr == nil {
			sound = player
			defer player.Close()
		}
		// Audio init failure is not fatal; play silently
	}

	runErr := tui.Run(game, store, cfg, sound)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
