package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/woah/cmd/woah"
)

func main() {
	rootCmd := woah.NewRootCmd()

	err := doc.GenMan(rootCmd, woah.ManHeader(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
