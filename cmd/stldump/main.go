package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/meshio/stl"
)

type config struct {
	file        string
	dump        bool
	first       bool
	strict      bool
	max         int
	verbose     bool
	interactive bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.file, "file", "", "Path to binary STL file (- for stdin)")
	flag.BoolVar(&cfg.dump, "dump", false, "Print every triangle")
	flag.BoolVar(&cfg.first, "first", false, "Print only the first triangle")
	flag.BoolVar(&cfg.strict, "strict", false, "Require exactly the declared number of triangles")
	flag.IntVar(&cfg.max, "max", 0, "Reject files with more triangles (0 = no limit)")
	flag.BoolVar(&cfg.verbose, "v", false, "Log decoder activity to stderr")
	flag.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if cfg.file == "" && flag.NArg() > 0 {
		cfg.file = flag.Arg(0)
	}

	if cfg.file == "" {
		fmt.Fprintln(os.Stderr, "Usage: stldump [-dump|-first] [-strict] [-max n] [-v] <file.stl>")
		fmt.Fprintln(os.Stderr, "       stldump -i <file.stl>  (interactive mode)")
		os.Exit(1)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (c config) options() stl.Options {
	opts := stl.DefaultOptions()
	if c.strict {
		opts.Count = stl.CountStrict
	}
	opts.MaxTriangles = c.max
	return opts
}

func run(cfg config, stdin io.Reader, out io.Writer) error {
	if cfg.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer l.Sync()
		stl.SetLogger(l)
	}

	if cfg.interactive && cfg.file == "-" {
		return fmt.Errorf("interactive mode reads keys from stdin; pass a file instead of -")
	}

	m, err := load(cfg, stdin)
	if err != nil {
		return err
	}

	if cfg.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(cfg.file, m)
	}

	if cfg.first {
		if len(m.Triangles) == 0 {
			return fmt.Errorf("%s holds no triangles", cfg.file)
		}
		fmt.Fprintln(out, m.Triangles[0])
		return nil
	}

	printSummary(out, cfg.file, m)

	if cfg.dump {
		for i, t := range m.Triangles {
			fmt.Fprintf(out, "Triangle %d:\n", i)
			fmt.Fprintf(out, "  P: %v\n", t.P)
			fmt.Fprintf(out, "  Q: %v\n", t.Q)
			fmt.Fprintf(out, "  R: %v\n", t.R)
		}
	}
	return nil
}

func load(cfg config, stdin io.Reader) (*stl.Model, error) {
	if cfg.file == "-" {
		m, err := stl.DecodeWithOptions(stdin, cfg.options())
		if err != nil {
			return nil, fmt.Errorf("decode stdin: %w", err)
		}
		return m, nil
	}
	m, err := stl.DecodeFile(cfg.file, cfg.options())
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return m, nil
}

func printSummary(out io.Writer, name string, m *stl.Model) {
	fmt.Fprintf(out, "File: %s\n", name)
	fmt.Fprintf(out, "Header: %q\n", m.HeaderText())
	fmt.Fprintf(out, "Declared triangles: %d\n", m.DeclaredCount)
	fmt.Fprintf(out, "Triangles: %d\n", len(m.Triangles))
	if b, ok := m.Bounds(); ok {
		fmt.Fprintf(out, "From: %v\n", b.Min)
		fmt.Fprintf(out, "  To: %v\n", b.Max)
	}
}
