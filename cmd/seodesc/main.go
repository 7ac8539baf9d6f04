// Command seodesc trims excerpts and resolves SEO descriptions from the
// command line.
//
//	seodesc trim -max 160 [file]
//	seodesc describe -site site.yaml -id 42 -kind twitter
//	seodesc watch -site site.yaml -config seo.yaml -id 42
//	seodesc schema
//
// Settings come from -config or SEODESC_CONFIG; a .env file in the working
// directory is loaded first.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/randalmurphal/seokit/config"
)

const usage = `usage: seodesc <command> [flags]

commands:
  trim      trim text from a file or stdin
  describe  resolve descriptions for a post, term or page
  watch     like describe, again whenever the settings file changes
  schema    print the settings JSON schema
`

// errUsage is returned for bad invocations; the message has been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(stderr, "seodesc:", err)
		return 1
	}
	slog.SetDefault(newLogger(stderr))

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "trim":
		err = runTrim(args[1:], stdin, stdout, stderr)
	case "describe":
		err = runDescribe(args[1:], stdout, stderr)
	case "watch":
		err = runWatch(ctx, args[1:], stdout, stderr)
	case "schema":
		err = runSchema(stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "seodesc: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, "seodesc:", err)
		return 1
	}
}

// loadConfig resolves settings, preferring an explicit path.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Resolve()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg.LoadFromEnv()
	return cfg, nil
}

func runSchema(stdout io.Writer) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(config.Schema())
}
