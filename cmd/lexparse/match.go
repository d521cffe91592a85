package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexparse/regexlib"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>",
	Short: "Report whether a pattern accepts an input string.",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	ok, err := regexlib.Match(args[0], args[1])
	if err != nil {
		return err
	}
	// a boolean outcome is success either way; only a bad pattern
	// exits non-zero
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "True")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "False")
	}
	return nil
}

func init() {
	root.AddCommand(matchCmd)
}
