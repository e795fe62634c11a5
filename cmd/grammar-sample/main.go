// Command grammar-sample prints sample expansions of a grammar file, for
// checking a grammar while writing it.
//
//	grammar-sample [-n 25] [-seed S] <grammar-file> [start-symbol]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("grammar-sample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 25, "number of samples to print")
	seed := fs.Uint64("seed", 0, "random seed for reproducibility (0 = random)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: grammar-sample [-n N] [-seed S] <grammar-file> [start-symbol]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 || *n < 0 {
		fs.Usage()
		return 2
	}

	start := grammar.DefaultStart
	if fs.NArg() == 2 {
		start = fs.Arg(1)
	}

	g, err := grammar.Load(fs.Arg(0))
	if err != nil {
		var perr *grammar.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(stderr, "Error: %s: %v\n", fs.Arg(0), err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if !g.IsNonTerminal(start) {
		fmt.Fprintf(stderr, "Warning: %q heads no rule and will be printed as-is\n", start)
	}

	s := *seed
	if s == 0 {
		if s, err = grammar.RandomSeed(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	rng := grammar.NewSource(s)
	for i := 0; i < *n; i++ {
		fmt.Fprintln(stdout, g.GenerateFrom(rng, start))
	}
	return 0
}
