// cmd/arkeep/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/semmidev/arkeep/internal/app"
	"github.com/semmidev/arkeep/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var dryRun bool
	configPath := flag.String("config", "", "path to optional config file")
	keyfile := flag.String("keyfile", "", "tarsnap key file to use")
	flag.BoolVar(&dryRun, "dry-run", false, "only show what would be done, don't actually delete any archives")
	flag.BoolVar(&dryRun, "n", false, "shorthand for -dry-run")
	flag.Usage = usage
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	overrides := app.Overrides{
		KeepSpec: flag.Arg(0),
		Keyfile:  *keyfile,
		DryRun:   dryRun,
	}

	application, err := app.New(cfg, overrides)
	if err != nil {
		return err
	}
	defer application.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return application.Run(ctx)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] KEEP_SPEC\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Prune old backup archives, e.g.: arkeep -n 7d,5w,12mon")
	fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
	flag.PrintDefaults()
}
