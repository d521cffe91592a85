package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexparse/regexlib"
)

var (
	dotNFA bool
	dotMin bool
	dotOut string

	dotCmd = &cobra.Command{
		Use:   "dot <pattern>",
		Short: "Emit a Graphviz digraph of the compiled automaton.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDot,
	}
)

func runDot(cmd *cobra.Command, args []string) error {
	re, err := regexlib.Compile(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if dotOut != "-" {
		f, err := os.Create(dotOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch {
	case dotNFA:
		re.NFA().WriteDOT(w)
	case dotMin:
		re.MinDFA().WriteDOT(w)
	default:
		re.DFA().WriteDOT(w)
	}
	return nil
}

func init() {
	dotCmd.Flags().BoolVar(&dotNFA, "nfa", false, "export the Thompson NFA")
	dotCmd.Flags().BoolVar(&dotMin, "min", false, "export the minimized DFA")
	dotCmd.Flags().StringVarP(&dotOut, "out", "o", "-", "output file (- for stdout)")
	root.AddCommand(dotCmd)
}
