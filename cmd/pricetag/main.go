package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pricetag"
	"github.com/fwojciec/pricetag/check"
	"github.com/fwojciec/pricetag/fs"
	"github.com/fwojciec/pricetag/goquery"
	pthttp "github.com/fwojciec/pricetag/http"
	"github.com/fwojciec/pricetag/rod"
	ptslog "github.com/fwojciec/pricetag/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pricetag"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pricetag --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve the selected command from Kong rather than args, so global
	// flags before the command name don't confuse the wiring below.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the extraction engine
	var registry pricetag.ExtractorRegistry = goquery.DefaultRegistry()
	if cli.Verbose {
		registry = ptslog.NewLoggingRegistry(registry, goquery.DefaultRouter(), logger)
	}
	deps.Registry = registry

	// Wire the fetcher only for the command that hits the network
	if cmd == "check" {
		var fetcher pricetag.Fetcher
		if cli.Check.Static {
			fetcher = pthttp.NewFetcher()
		} else {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static for static sites")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		}
		defer fetcher.Close()

		if cli.Verbose {
			fetcher = ptslog.NewLoggingFetcher(fetcher, logger)
		}

		var snapshots pricetag.SnapshotStore
		if cli.Check.SaveHTML != "" {
			snapshots = fs.NewStore(cli.Check.SaveHTML)
		}

		deps.Checker = &check.Checker{
			Fetcher:     fetcher,
			Registry:    registry,
			RateLimiter: check.NewDomainLimiter(cli.Check.RPS),
			Snapshots:   snapshots,
			Concurrency: cli.Check.Concurrency,
			Logf: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
	}

	return kongCtx.Run(deps)
}
