package main

import (
	"os"

	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:          "lexparse",
	Short:        "Regular expression matching via NFA simulation.",
	SilenceUsage: true,
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
