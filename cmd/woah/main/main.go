package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/woah/cmd/woah"
	"github.com/arthur-debert/woah/pkg/ui"
)

func main() {
	rootCmd := woah.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
