// Command fetch loads the inventory of one case and prints the resulting
// loader state as JSON. It exits 1 when the load ends with an error and 2
// on bad usage or configuration.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/InventoryViewer_Go/internal/config"
	"github.com/osse101/InventoryViewer_Go/internal/domain"
	"github.com/osse101/InventoryViewer_Go/internal/inventory"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	caseID   string
	url      string
	filter   string
	timeout  time.Duration
	follow   bool
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.caseID, "case", os.Getenv(config.EnvCaseID), "case to load (default $CASE_ID)")
	fs.StringVar(&o.url, "url", os.Getenv(config.EnvClientURL), "inventory endpoint (default $CLIENT_URL)")
	fs.StringVar(&o.filter, "filter", "", "only print items of this category: all, armor, weapon, misc")
	fs.DurationVar(&o.timeout, "timeout", 0, "abort the request after this long (0 waits forever)")
	fs.BoolVar(&o.follow, "follow", false, "print every state transition, not just the final state")
	fs.StringVar(&o.logLevel, "log-level", logger.LogLevelWarn, "log level written to stderr")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.url == "" {
		return o, fmt.Errorf("%w: -url or %s is required", domain.ErrInvalidInput, config.EnvClientURL)
	}
	if !domain.IsValidFilterCategory(o.filter) {
		return o, fmt.Errorf("%w: unknown filter %q", domain.ErrInvalidFilter, o.filter)
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_ = godotenv.Load()

	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	cfg := logger.DefaultConfig()
	cfg.Level = o.logLevel
	logger.InitLoggerWithWriter(cfg, stderr)

	loader, err := inventory.NewLoader(inventory.Config{BaseURL: o.url})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	defer loader.Close()

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	render := func(s domain.LoaderState) {
		if o.filter != "" {
			s.Items = domain.FilterItems(s.Items, domain.FilterCategory(o.filter))
		}
		_ = enc.Encode(s)
	}

	var printed chan struct{}
	if o.follow {
		updates, cancel := loader.Subscribe()
		defer cancel()
		printed = make(chan struct{})
		render(loader.State())
		go func() {
			defer close(printed)
			for s := range updates {
				render(s)
				if !s.Loading {
					return
				}
			}
		}()
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	loader.LoadInventory(ctx, o.caseID)

	state := loader.State()
	if printed != nil {
		<-printed
	} else {
		render(state)
	}

	if state.Error != nil {
		return exitFailed
	}
	return exitOK
}
