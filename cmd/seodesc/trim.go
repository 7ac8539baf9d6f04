package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/randalmurphal/seokit/description"
	"github.com/randalmurphal/seokit/excerpt"
	"github.com/randalmurphal/seokit/strip"
)

func runTrim(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	maxChars := fs.Int("max", 0, "character budget (default: the kind's good_upper guideline)")
	kind := fs.String("kind", "search", "guideline to use when -max is unset: search, opengraph, twitter")
	html := fs.Bool("html", false, "strip markup, shortcodes and embed URLs first")
	escape := fs.Bool("escape", false, "escape the result for an HTML attribute")
	explain := fs.Bool("explain", false, "report the closing rule and length grade on stderr")
	configPath := fs.String("config", "", "settings file (default: $SEODESC_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "trim: at most one input file")
		return errUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	bounds := description.BoundsFor(cfg.Guidelines, description.ParseKind(*kind))
	if *maxChars == 0 {
		*maxChars = bounds.GoodUpper
	}

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	text := string(data)
	if *html {
		text = strip.Excerpt(text)
	}

	res := excerpt.New().WithSuffix(cfg.Suffix).TrimWithResult(text, *maxChars)
	out := res.Text
	if *escape {
		out = description.Escape(out)
	}
	fmt.Fprintln(stdout, out)

	if *explain {
		n := utf8.RuneCountInString(res.Text)
		fmt.Fprintf(stderr, "rule=%s truncated=%t chars=%d grade=%s\n", res.Rule, res.Truncated, n, bounds.Grade(n))
	}
	return nil
}
