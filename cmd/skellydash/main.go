// skellydash is a dash-or-die platformer on a deterministic fixed-point
// sim, with the tooling around it.
//
// Usage:
//
//	skellydash play                - Play (level-select menu)
//	skellydash play --level NAME   - Play an embedded level directly
//	skellydash verify <replay>     - Re-run a recording headless and check it
//	skellydash bench               - Headless sim benchmark with CSV export
//	skellydash convert <json>      - Convert a JSON level to TMX
//	skellydash levels              - List embedded levels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skellydash",
	Short: "Skelly Dash - a dash platformer with a deterministic core",
	Long: `Skelly Dash is a small dash platformer. The simulation is integer
fixed-point and bit-exact across runs, so sessions can be recorded,
replayed, and verified frame by frame.

Available commands:
  play     - Play, or replay a recorded session
  verify   - Re-run a recording headless and verify its state hashes
  bench    - Measure headless sim throughput, optionally exporting CSV
  convert  - Convert a JSON level to the TMX format the game loads
  levels   - List the levels shipped in the binary

Examples:
  skellydash play
  skellydash play --level meadow --record run.json
  skellydash play --replay run.json
  skellydash verify run.json
  skellydash bench --frames 100000 --csv bench.csv
  skellydash convert mylevel.json`,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(levelsCmd)
}
