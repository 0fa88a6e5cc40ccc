package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/triad"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the calculator and returns the exit status: 0 if every expression
// was solved, 1 if any was not, and 2 for bad usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lg := log.New(stderr, "triad: ", 0)
	var (
		inname, verb       string
		echo, pow, verbose bool
		depth              int
	)
	fs := flag.NewFlagSet("triad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%v", "result formatting string")
	fs.BoolVar(&echo, "echo", false, "print each expression and its tokens before solving")
	fs.BoolVar(&pow, "pow", false, "scan ^ as exponentiation")
	fs.BoolVar(&verbose, "v", false, "log characters that are skipped")
	fs.IntVar(&depth, "depth", triad.DefaultMaxDepth, "maximum nesting depth of parentheses")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if depth <= 0 {
		lg.Printf("depth (%d) must be positive", depth)
		return 2
	}

	opts := []triad.ParseOption{triad.MaxDepth(depth)}
	if pow {
		opts = append(opts, triad.Power())
	}
	if verbose {
		opts = append(opts, triad.OnSkip(func(col int, r rune) {
			lg.Printf("skipped %q at column %d", r, col)
		}))
	}
	preset := triad.ParsingPreset(opts...)

	srcs, err := inputs(inname, fs.NArg() == 0, stdin, stdout)
	if err != nil {
		lg.Print(err)
		return 2
	}
	for _, arg := range fs.Args() {
		if arg = strings.TrimSpace(arg); arg != "" {
			srcs = append(srcs, arg)
		}
	}

	status := 0
	verb = "Solved: " + verb + "\n"
	for _, src := range srcs {
		e := triad.Parse(src, preset)
		if echo {
			fmt.Fprintf(stdout, "You entered: %s\nTokens: %v\n", src, e)
		}
		r, err := e.Eval()
		if err != nil {
			fmt.Fprintf(stdout, "Error while solving: %v\n", err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, verb, r)
	}
	return status
}

// inputs collects expressions from the input file. If std is set and no file
// is named, stdin is used: a terminal is prompted for one expression, and
// anything else is read line by line.
func inputs(inname string, std bool, stdin io.Reader, stdout io.Writer) ([]string, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return lines(f)
	case inname == "-", std:
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			line, err := prompt(f, stdout)
			if err != nil {
				return nil, err
			}
			return []string{line}, nil
		}
		return lines(stdin)
	}
	return nil, nil
}

// lines reads the non-empty lines of r.
func lines(r io.Reader) ([]string, error) {
	var v []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			v = append(v, line)
		}
	}
	return v, sc.Err()
}

// prompt asks the terminal for an expression until it gets a non-empty line.
func prompt(f *os.File, out io.Writer) (string, error) {
	fd := int(f.Fd())
	st, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, st)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{f, out}, "Enter the equation: ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return "", fmt.Errorf("reading expression: %w", err)
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}
