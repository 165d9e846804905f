// Command mathtex typesets a formula, or formulas of a markdown document, and
// prints the result as HTML, as the restructured syntax tree or as a PNG preview.
//
//	mathtex -format html '\frac{a}{b}'
//	mathtex -format png -o formula.png -px 48 'x^2+y^2'
//	mathtex -format markdown -o page.html < notes.md
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eolymp/go-mathtex"
	"github.com/eolymp/go-mathtex/fontmetrics"
	"github.com/eolymp/go-mathtex/markdown"
	"github.com/eolymp/go-mathtex/mathhtml"
	"github.com/eolymp/go-mathtex/preview"
	"github.com/yuin/goldmark"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

type config struct {
	format   string
	size     float64
	margin   float64
	px       float64
	mono     bool
	document bool
	output   string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("mathtex", flag.ContinueOnError)
	flags.SetOutput(stderr)

	format := flags.String("format", "html", "output format: html, ast, png or markdown")
	size := flags.String("size", "1em", "font size relative to the surrounding text, eg. 1.2em or 14pt")
	margin := flags.String("margin", "0", "space between glyphs, eg. 0.05em")
	px := flags.Float64("px", 32, "pixels per em of PNG preview")
	mono := flags.Bool("mono", false, "use monospace metrics instead of the Go font")
	document := flags.Bool("doc", false, "wrap HTML into a standalone page with stylesheet")
	output := flags.String("o", "", "output file, standard output if empty")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mathtex [flags] [formula]\n\nFormula is read from standard input if not given.\n\nFlags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config{format: *format, px: *px, mono: *mono, document: *document, output: *output}

	var err error
	if cfg.size, err = mathtex.ParseEm(*size); err != nil {
		return fmt.Errorf("invalid size %q: %w", *size, err)
	}

	if cfg.margin, err = mathtex.ParseEm(*margin); err != nil {
		return fmt.Errorf("invalid margin %q: %w", *margin, err)
	}

	src := strings.Join(flags.Args(), " ")
	if flags.NArg() == 0 {
		in, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("unable to read input: %w", err)
		}

		src = string(in)
	}

	return typeset(cfg, src, stdout)
}

func typeset(cfg config, src string, stdout io.Writer) error {
	var metrics mathtex.Metrics = fontmetrics.NewMonospace(0, nil)
	if !cfg.mono {
		font, err := fontmetrics.GoRegular()
		if err != nil {
			return err
		}

		metrics = font
	}

	opts := []mathtex.Option{mathtex.WithCharMargin(cfg.margin)}

	var out bytes.Buffer

	switch cfg.format {
	case "ast":
		root, err := mathtex.ParseString(src)
		if err != nil {
			return err
		}

		fmt.Fprintln(&out, mathtex.String(mathtex.Prepare(root)))
	case "html":
		box, err := mathtex.Typeset(src, metrics, cfg.size, opts...)
		if err != nil {
			return err
		}

		body := func(w io.Writer) error { return mathhtml.Render(w, box) }
		if cfg.document {
			err = mathhtml.WriteDocument(&out, body)
		} else {
			err = body(&out)
		}

		if err != nil {
			return err
		}
	case "markdown":
		md := goldmark.New(goldmark.WithExtensions(markdown.Extension(metrics, opts...)))
		err := mathhtml.WriteDocument(&out, func(w io.Writer) error {
			return md.Convert([]byte(src), w)
		})

		if err != nil {
			return fmt.Errorf("unable to convert markdown: %w", err)
		}
	case "png":
		if cfg.output == "" {
			return errors.New("png output requires -o")
		}

		box, err := mathtex.Typeset(src, metrics, cfg.size, opts...)
		if err != nil {
			return err
		}

		return preview.SavePNG(cfg.output, box, cfg.px)
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	if cfg.output == "" {
		_, err := out.WriteTo(stdout)
		return err
	}

	if err := os.WriteFile(cfg.output, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	return nil
}
