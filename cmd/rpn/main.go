package main

// This is a calculator for expressions in Reverse Polish Notation.

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/letung3105/rpn/internal/rpn"
)

const prompt = "Type a reversed polish notation:"

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 64
	exitDataError  = 65
	exitInputError = 74
)

func main() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	flags := flag.NewFlagSet("rpn", flag.ContinueOnError)
	flags.SetOutput(stderr)
	useInt := flags.Bool("int", false, "evaluate with 64-bit integers instead of floats")
	verbose := flags.Bool("v", false, "log every evaluation step to stderr")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: rpn [-int] [-v] [expression ...]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})

	expression, err := readExpression(flags.Args(), stdin, stdout, interactive)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read expression: %v\n", err)
		return exitInputError
	}

	reporter := rpn.NewLineReporter(stdout)
	opts := []rpn.Option{rpn.WithLogHandler(handler)}
	if *useInt {
		err = evaluate(rpn.NewInt, opts, expression, stdout, reporter)
	} else {
		err = evaluate(rpn.NewFloat, opts, expression, stdout, reporter)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitFailure
	}

	if reporter.HadError() {
		return exitDataError
	}
	return exitOK
}

// readExpression returns the positional arguments joined by spaces, or one
// line from stdin when there are none. The line is returned with its
// trailing newline.
func readExpression(args []string, stdin io.Reader, stdout io.Writer, interactive bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if interactive {
		fmt.Fprintln(stdout, prompt)
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// evaluate builds an evaluator and runs expression with it. Only a failure to
// build the evaluator is returned; evaluation errors go to reporter.
func evaluate[T rpn.Number](
	newEvaluator func(...rpn.Option) (*rpn.Evaluator[T], error),
	opts []rpn.Option,
	expression string,
	stdout io.Writer,
	reporter rpn.Reporter,
) error {
	ev, err := newEvaluator(opts...)
	if err != nil {
		return err
	}
	result, err := ev.Run(expression)
	if err != nil {
		reporter.Report(err)
		return nil
	}
	fmt.Fprintln(stdout, rpn.Format(result))
	return nil
}
