package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/ledgerkeeper/internal/cli"
	"github.com/dmitrijs2005/ledgerkeeper/internal/config"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/messages"
	"github.com/dmitrijs2005/ledgerkeeper/internal/storage"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}

}

// run loads configuration from args, opens the store and serves the REPL on
// in and out until the user exits. Logs go to logOut.
func run(ctx context.Context, args []string, in io.Reader, out, logOut io.Writer) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "driver", cfg.DatabaseDriver, "error", err)
		return err
	}
	defer store.Close()

	msgs := messages.NewAggregator(logger.With("component", "messages"))
	app := cli.NewApp(store.Ledger(msgs, logger), store.Assets(), msgs, logger, in, out)

	logger.Debug(ctx, "database ready", "driver", cfg.DatabaseDriver)
	app.Run(ctx)
	return nil
}
