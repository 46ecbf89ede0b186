// Command sfcodec is a thin parse/stringify wrapper over the
// facade package. It exists as scaffolding for exercising the library from
// a shell, not as a correctness surface in its own right.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Sleavely/satisfactory-file-parser/facade"
	"github.com/Sleavely/satisfactory-file-parser/jsonenc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(os.Args[2:])
	case "stringify":
		err = runStringify(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "sfcodec: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sfcodec parse -in <save> | sfcodec stringify -in <save>\n")
}

// verbose reports whether progress output should be printed: only when the
// -v flag is set and stderr is a terminal, matching distri's isatty-gated
// command-line tools.
func verbose(v bool) bool {
	return v && isatty.IsTerminal(os.Stderr.Fd())
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	in := fs.String("in", "", "path to a .sav file")
	v := fs.Bool("v", false, "print progress to stderr when attached to a terminal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	opts := facade.ParseOptions{}
	if verbose(*v) {
		opts.OnProgress = func(p float64, msg string) {
			fmt.Fprintf(os.Stderr, "\r[%3.0f%%] %s", p*100, msg)
		}
	}

	s, err := facade.ParseSave(*in, raw, opts)
	if err != nil {
		return err
	}
	if verbose(*v) {
		fmt.Fprintln(os.Stderr)
	}

	fmt.Printf("map: %s, levels: %d\n", s.Header.MapName, len(s.Levels))
	return nil
}

func runStringify(args []string) error {
	fs := flag.NewFlagSet("stringify", flag.ExitOnError)
	in := fs.String("in", "", "path to a .sav file")
	indent := fs.String("indent", "  ", "indent string, empty for compact output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	s, err := facade.ParseSave(*in, raw, facade.ParseOptions{})
	if err != nil {
		return err
	}

	text, err := jsonenc.Stringify(s, *indent)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
