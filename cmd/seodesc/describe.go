package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/randalmurphal/seokit/config"
	"github.com/randalmurphal/seokit/description"
)

type describeFlags struct {
	site       string
	configPath string
	id         int64
	taxonomy   string
	page       string
	kind       string
	escape     bool
	metrics    bool
}

func (f *describeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.site, "site", "", "site fixture (YAML), required")
	fs.StringVar(&f.configPath, "config", "", "settings file (default: $SEODESC_CONFIG)")
	fs.Int64Var(&f.id, "id", 0, "post or term ID")
	fs.StringVar(&f.taxonomy, "taxonomy", "", "taxonomy of -id; empty for posts")
	fs.StringVar(&f.page, "page", "", "describe a query instead of -id: front, blog, singular, term, author, post_type_archive, archive")
	fs.StringVar(&f.kind, "kind", "all", "search, opengraph, twitter or all")
	fs.BoolVar(&f.escape, "escape", true, "escape descriptions for HTML attributes")
	fs.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the descriptions")
}

func (f *describeFlags) kinds() []description.Kind {
	if strings.EqualFold(f.kind, "all") {
		return []description.Kind{description.Search, description.OpenGraph, description.Twitter}
	}
	return []description.Kind{description.ParseKind(f.kind)}
}

func parseDescribeFlags(name string, args []string, stderr io.Writer) (*describeFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &describeFlags{}
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if f.site == "" {
		fmt.Fprintf(stderr, "%s: -site is required\n", name)
		return nil, errUsage
	}
	if f.page != "" && description.ParsePageType(f.page) == description.PageUnknown {
		fmt.Fprintf(stderr, "%s: unknown page type %q\n", name, f.page)
		return nil, errUsage
	}
	return f, nil
}

func runDescribe(args []string, stdout, stderr io.Writer) error {
	f, err := parseDescribeFlags("describe", args, stderr)
	if err != nil {
		return err
	}

	site, err := description.LoadSite(f.site)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	gen := description.New(site).
		WithConfig(cfg).
		WithMetrics(description.NewPrometheusRecorderWith(reg))

	describe(gen, f, stdout)

	if f.metrics {
		return printMetrics(reg, stdout)
	}
	return nil
}

// describe writes one line per kind: kind, length grade and description.
func describe(gen *description.Generator, f *describeFlags, stdout io.Writer) {
	var args *description.Args
	var query description.Query
	if f.page != "" {
		query = description.QueryState{
			Page:     description.ParsePageType(f.page),
			ID:       f.id,
			Taxonomy: f.taxonomy,
		}
	} else {
		args = &description.Args{ID: f.id, Taxonomy: f.taxonomy}
	}

	// One request per run, so the query excerpt is generated once.
	req := description.NewRequest(query)
	for _, kind := range f.kinds() {
		desc := gen.DescriptionFor(req, args, kind, false)
		grade := gen.Bounds(kind).Grade(utf8.RuneCountInString(desc))
		if f.escape {
			desc = description.Escape(desc)
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", kind, grade, desc)
	}
}

func runWatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseDescribeFlags("watch", args, stderr)
	if err != nil {
		return err
	}
	if f.configPath == "" {
		fmt.Fprintln(stderr, "watch: -config is required")
		return errUsage
	}

	site, err := description.LoadSite(f.site)
	if err != nil {
		return err
	}
	w, err := config.NewWatcher(f.configPath)
	if err != nil {
		return err
	}

	apply := func(cfg config.Config) {
		cfg.LoadFromEnv()
		describe(description.New(site).WithConfig(cfg), f, stdout)
	}

	apply(w.Current())
	for cfg := range w.Watch(ctx) {
		slog.Info("settings changed", slog.String("path", w.Path()))
		apply(cfg)
	}
	return nil
}

// printMetrics writes gathered series as name{labels} value lines. Histograms
// print their sample count.
func printMetrics(g prometheus.Gatherer, stdout io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(stdout, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), metricValue(mf.GetType(), m))
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
