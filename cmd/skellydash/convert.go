package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/skelly-dash/levels"
)

var flagConvertOut string

var convertCmd = &cobra.Command{
	Use:   "convert <level.json>",
	Short: "Convert a JSON level into a TMX map",
	Long: `Validate a JSON level file and write it out as a TMX map with an
inline tileset, ready to be embedded or opened in Tiled. The output
path defaults to the input with a .tmx extension.

Examples:
  skellydash convert drafts/ravine.json
  skellydash convert drafts/ravine.json --out levels/data/ravine.tmx`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagConvertOut, "out", "", "Output TMX path (default: input with .tmx extension)")
}

func runConvert(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skellydash",
	})

	src := args[0]
	dst := flagConvertOut
	if dst == "" {
		dst = strings.TrimSuffix(src, ".json") + ".tmx"
	}
	if err := levels.Convert(src, dst); err != nil {
		logger.Fatal("conversion failed", "error", err)
	}
	logger.Info("converted", "src", src, "dst", dst)
}
