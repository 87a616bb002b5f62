package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagFloat   bool
)

var errIndeterminate = errors.New("indeterminate result (0/0)")

var rootCmd = &cobra.Command{
	Use:   "fraccalc LHS OP RHS",
	Short: "evaluate a binary expression over exact fractions",
	Long: `fraccalc evaluates one binary expression over exact rational numbers.

Operands are integer literals or m/n fraction literals; the operators are
+, -, x (or *), /, and the comparisons ==, !=, <, <=, >, >=. Results are
always printed in lowest terms. Division by zero yields a signed infinity
rather than an error; combining opposite infinities is reported as
indeterminate.`,
	Example: `  fraccalc 1/2 + 1/3
  fraccalc 3/4 x 4/3
  fraccalc "1/2 + 1/3"
  fraccalc 2/3 '<' 1`,
	Args:          cobra.RangeArgs(1, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&flagFloat, "float", "f", false, "also print a floating-point approximation")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	// Accept either a single quoted expression or three separate arguments.
	if len(args) == 1 {
		args = strings.Fields(args[0])
	}
	if len(args) != 3 {
		return fmt.Errorf("expected LHS OP RHS, got %d token(s)", len(args))
	}

	lhs, err := parseFraction(args[0])
	if err != nil {
		return err
	}
	op := args[1]
	rhs, err := parseFraction(args[2])
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"lhs": lhs, "op": op, "rhs": rhs}).Debug("parsed expression")

	result, cmpResult, isCmp, err := evaluate(lhs, op, rhs)
	if err != nil {
		return err
	}
	if isCmp {
		fmt.Fprintln(cmd.OutOrStdout(), cmpResult)
		return nil
	}
	if result.IsNaN() {
		return errIndeterminate
	}
	if flagFloat {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %g\n", result, result.Float64())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
