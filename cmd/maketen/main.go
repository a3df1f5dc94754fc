// Command maketen is the command-line host for the solver: it reads
// the numbers from its arguments, runs a solve, and prints the ranked
// solutions to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	maketen "github.com/numseq/go-maketen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		target       int64
		maxPasses    int
		allowTrivial bool
		asJSON       bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "maketen [numbers...]",
		Short: "Find arithmetic expressions over the given numbers that reach a target",
		Long: `maketen enumerates every way to combine the given numbers, in order,
with +, -, *, / and ^, and prints the combinations that evaluate to the
target value, simplest first. Equivalent solutions are listed once.`,
		Example: `  maketen 1 2 3 4
  maketen --target 24 4 6
  maketen --json 5 5`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]int64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("argument %q is not an integer", arg)
				}
				numbers[i] = n
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			solver := maketen.NewSolver(
				maketen.WithLogger(logger),
				maketen.WithStylePruning(!allowTrivial),
				maketen.WithMaxRewritePasses(maxPasses),
			)
			solutions, err := solver.Solve(cmd.Context(), numbers, target)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(solutions)
			}
			if len(solutions) == 0 {
				fmt.Fprintf(os.Stderr, "No combination of the given numbers reaches %d.\n", target)
				return nil
			}
			for _, sol := range solutions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", sol.Text, sol.Value)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&target, "target", "t", 10, "target value the expressions must reach")
	cmd.Flags().IntVar(&maxPasses, "max-passes", 0, "canonicalizer pass budget (0 uses the default)")
	cmd.Flags().BoolVar(&allowTrivial, "allow-trivial", false, "keep redundant forms like x/1 and x^1 as candidates")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit solutions as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
