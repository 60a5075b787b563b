// meteorstorm is a terminal arcade game: waves of meteors fall toward your
// ship, shield bunkers soak the hits, and power-ups keep you alive.
//
// Usage:
//
//	meteorstorm play             - Play in the terminal
//	meteorstorm demo             - Watch the attract-mode autopilot
//	meteorstorm serve            - Start SSH server for remote play
//	meteorstorm scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.meteorstorm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadeforge/meteorstorm/internal/game/meteor"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// gameID is the registry identifier of the one game this binary ships.
const gameID = "meteor"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meteorstorm",
	Short: "Meteor Storm - defend the bunkers in your terminal",
	Long: `Meteor Storm is a terminal arcade game. Meteors drift down toward your
ship; large ones split when destroyed, shield bunkers absorb impacts, and
the waves keep getting faster.

Available commands:
  play     - Play in the terminal
  demo     - Watch the attract-mode autopilot play
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  meteorstorm play
  meteorstorm play --difficulty hard
  meteorstorm demo
  meteorstorm serve --ssh :2222
  meteorstorm scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.meteorstorm/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
