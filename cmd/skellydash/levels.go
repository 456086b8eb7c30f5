package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/skelly-dash/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels embedded in this build",
	Long:  `Shows every level compiled into the binary, with grid size and spawn point.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	lvs, names := levels.MustEmbedded()

	if len(names) == 0 {
		fmt.Println("No levels embedded.")
		return
	}

	fmt.Println("Embedded levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Size", "Spawn")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "----", "-----")

	for _, name := range names {
		lv := lvs[name]
		size := fmt.Sprintf("%dx%d", lv.Width, lv.Height)
		fmt.Printf("  %-*s  %-9s  %d,%d\n", maxNameLen, name, size, lv.SpawnX, lv.SpawnY)
	}

	fmt.Println()
	fmt.Println("Run 'skellydash play --level <name>' to play one, or --flat for the test floor.")
}
