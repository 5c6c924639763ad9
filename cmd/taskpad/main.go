package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"taskpad/internal/cli"
	"taskpad/internal/config"
	"taskpad/internal/logging"
	"taskpad/internal/storage"
	"taskpad/internal/storage/jsonfile"
	"taskpad/internal/storage/sqlitekv"
	"taskpad/internal/store"
	"taskpad/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group output by pending/done")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	ui.SetTheme(cfg.Theme)
	logging.Debugf("data dir %s, backend %s\n", cfg.DataDir, cfg.Store)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(context.Background(), args, cli.Options{
		Group:  *group,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Open: func(ctx context.Context) (*store.Store, func(), error) {
			return openStore(cfg)
		},
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

// openStore wires the configured backend behind a fresh store.
func openStore(cfg *config.Config) (*store.Store, func(), error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	var slot storage.Slot
	var err error
	switch cfg.Store {
	case config.StoreSQLite:
		slot, err = sqlitekv.Open(cfg.DatabasePath())
	default:
		slot, err = jsonfile.Open(cfg.DataDir)
	}
	if err != nil {
		return nil, nil, err
	}
	logging.Debugln("store ready:", cfg.Store)
	return store.New(slot), func() { _ = slot.Close() }, nil
}
