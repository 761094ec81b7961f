// SPDX-License-Identifier: MIT

// Command lvview loads a layout document and prints either the composed
// view tree or the plot state of its plot target.
//
//	lvview [-mode tree|state] [-format json|yaml] [-color auto|always|never] FILE
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvview/layoutdoc"
	"github.com/katalvlaran/lvview/pprint"
)

// errUsage reports bad command-line arguments; the flag set has already
// printed usage by the time it is returned.
var errUsage = errors.New("usage error")

// config holds the parsed command line.
type config struct {
	mode   string
	format string
	color  string
	path   string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvview: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mode, "mode", "tree", "output: tree (view tree) or state (plot state)")
	fs.StringVar(&cfg.format, "format", "json", "plot state encoding: json or yaml")
	fs.StringVar(&cfg.color, "color", "auto", "styled tree output: auto, always or never")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lvview [flags] FILE\n\n")
		fmt.Fprintf(stderr, "FILE is a layout document (.yaml, .yml or .toml).\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, fmt.Errorf("want exactly one FILE, got %d: %w", fs.NArg(), errUsage)
	}
	cfg.path = fs.Arg(0)

	var bad string
	switch {
	case cfg.mode != "tree" && cfg.mode != "state":
		bad = fmt.Sprintf("-mode %q", cfg.mode)
	case cfg.format != "json" && cfg.format != "yaml":
		bad = fmt.Sprintf("-format %q", cfg.format)
	case cfg.color != "auto" && cfg.color != "always" && cfg.color != "never":
		bad = fmt.Sprintf("-color %q", cfg.color)
	}
	if bad != "" {
		fs.Usage()
		return cfg, fmt.Errorf("%s: %w", bad, errUsage)
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	doc, err := layoutdoc.Load(cfg.path)
	if err != nil {
		return err
	}
	built, err := doc.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.path, err)
	}

	if cfg.mode == "tree" {
		p := pprint.Printer{Styled: styled(cfg.color, stdout)}
		if cfg.color == "always" {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
		return p.Fprint(stdout, built.Root)
	}

	state, err := doc.PlotState(built)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.path, err)
	}
	if cfg.format == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(state); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(state)
}

// styled decides whether tree output is coloured. auto colours only
// terminals.
func styled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
