package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/exercises"
	"github.com/npillmayer/exercises/lines"
	"github.com/npillmayer/exercises/persistent/bst"
	"github.com/npillmayer/exercises/quaternion"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracing keys of the packages run by the commands
var traceKeys = []string{"exercises.bst", "exercises.lines", "exercises.stack"}

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

func newRootCmd() *cobra.Command {
	var level string
	rootCmd := &cobra.Command{
		Use:           "exercises",
		Short:         "Run small functional-style exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, ok := traceLevels[strings.ToLower(level)]
			if !ok {
				return fmt.Errorf("unknown trace level %q", level)
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(l)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "trace", "error", "trace level (error, info, debug)")
	rootCmd.AddCommand(newLinesCmd(), newBSTCmd(), newQuaternionCmd(), newSayCmd())
	return rootCmd
}

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE...",
		Short: "Count the non-comment lines of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				n, err := lines.MeaningfulLineCount(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n, path)
			}
			return nil
		},
	}
}

func newBSTCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "bst VALUE...",
		Short: "Insert values into a binary search tree and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := bst.FromValues(args...)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\nsize %d\n", tree, tree.Size())
			if dump {
				fmt.Fprint(out, bst.Print(tree))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "print the shape of the tree")
	return cmd
}

func newQuaternionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quaternion A B C D [A B C D]",
		Short: "Print a quaternion and its conjugate, or the sum and product of two",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 && len(args) != 8 {
				return fmt.Errorf("expected 4 or 8 coefficients, have %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuaternion(args[:4])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "q   = %s\nq*  = %s\n", q, q.Conjugate())
			if len(args) == 8 {
				p, err := parseQuaternion(args[4:])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "p   = %s\nq+p = %s\nq·p = %s\n", p, q.Plus(p), q.Times(p))
			}
			return nil
		},
	}
}

func parseQuaternion(args []string) (quaternion.Quaternion, error) {
	var c [4]float64
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return quaternion.Zero, fmt.Errorf("coefficient %q: %w", arg, err)
		}
		c[i] = x
	}
	return quaternion.New(c[0], c[1], c[2], c[3])
}

func newSayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "say WORD...",
		Short: "Build a sentence word by word",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence := exercises.Say()
			for _, w := range args {
				sentence = sentence.And(w)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sentence.Phrase())
			return nil
		},
	}
}
