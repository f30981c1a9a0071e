package main

import (
	"os"

	"github.com/steve02081504/char-tamplate/cmd/chartool"
	"github.com/steve02081504/char-tamplate/pkg/ui"
)

func main() {
	rootCmd := chartool.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		parsed, parseErr := ui.ParseFormat(format)
		if parseErr != nil {
			parsed = ui.FormatAuto
		}
		if renderer, rerr := ui.NewRenderer(parsed, os.Stderr); rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
