package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/roman"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inname  string
		echo    bool
		verbose bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "romancalc [expression...]",
		Short: "Calculate with Roman numerals",
		Long: `romancalc evaluates an arithmetic expression on Roman numerals and prints
the result as a numeral.

The arguments are joined with spaces to form the expression, so quoting is
optional:
  romancalc "(X + V) * II"
  romancalc X + V

Operators are + - * / with the usual precedence. Parentheses and square
brackets group. Division discards the remainder.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var exprs []string
			switch {
			case inname != "" && len(args) > 0:
				return errors.New("cannot evaluate both --in and arguments")
			case inname != "":
				exprs, err = readExprs(inname, cmd.InOrStdin())
				if err != nil {
					return err
				}
			case len(args) == 0:
				fmt.Fprintln(cmd.OutOrStdout(), roman.NeedExpression)
				return nil
			default:
				exprs = []string{strings.Join(args, " ")}
			}
			calc := roman.NewCalculator(roman.Logger(logger), roman.Workers(cfg.Workers))
			return run(cmd.Context(), cmd.OutOrStdout(), calc, exprs, echo)
		},
	}
	// Expressions like "X - V" contain arguments that look like flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&inname, "in", "", "file of expressions, one per line (- for stdin)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each evaluation step")
	cmd.Flags().IntVar(&workers, "workers", 4, "expressions from --in evaluated at once")
	return cmd
}

// run evaluates exprs and prints one line per expression.
func run(ctx context.Context, out io.Writer, calc *roman.Calculator, exprs []string, echo bool) error {
	results, err := calc.EvaluateAll(ctx, exprs)
	if err != nil {
		return fmt.Errorf("evaluating: %w", err)
	}
	for i, r := range results {
		if echo && !roman.Bare(exprs[i]) {
			// Unparseable expressions just get their message.
			if e, err := roman.Parse(exprs[i]); err == nil {
				fmt.Fprintf(out, "%v : ", e)
			}
		}
		fmt.Fprintln(out, r)
	}
	return nil
}

// readExprs reads non-blank lines from the named file, or from stdin if the
// name is "-".
func readExprs(inname string, stdin io.Reader) ([]string, error) {
	src := stdin
	if inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		src = f
	}
	var exprs []string
	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return exprs, nil
}

// newLogger builds a production logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
