// fintrack is a local-first personal finance tracker. It records
// income and expense transactions, keeps the collection in durable
// on-device storage, and derives balance and category analytics per
// calendar month.
package main

import (
	"context"
	"time"

	"github.com/alecthomas/kong"

	initcli "fintrack/internal/cli"
	"fintrack/internal/config"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
)

// appContext holds everything commands need to run
type appContext struct {
	ctx    context.Context
	logger *log.Logger
	cfg    *config.Config
	ledger *ledger.Ledger
	now    func() time.Time
}

// cli commands / args available
var cli struct {
	Add     addCmd     `cmd:"" help:"Record a new transaction."`
	List    listCmd    `cmd:"" help:"List transactions, newest first."`
	Summary summaryCmd `cmd:"" help:"Show balance and analytics for a month."`
	Edit    editCmd    `cmd:"" help:"Edit an existing transaction."`
	Remove  removeCmd  `cmd:"" help:"Delete a transaction."`
	Export  exportCmd  `cmd:"" help:"Export all transactions to a JSON document."`
	Import  importCmd  `cmd:"" help:"Merge a JSON document into the collection."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("fintrack"),
		kong.Description("Track personal income and expenses on this device."))

	initcli.LoadEnvFile()
	ctx := context.Background()

	logger := initcli.SetupLogger(config.Load().LogLevel)
	cfg := initcli.LoadAndValidateConfig(logger)
	led, cleanup := initcli.OpenLedger(ctx, logger, cfg)

	err := kctx.Run(&appContext{
		ctx:    ctx,
		logger: logger.WithComponent(log.ComponentCLI),
		cfg:    cfg,
		ledger: led,
		now:    time.Now,
	})

	if cerr := cleanup(); cerr != nil {
		logger.Warn("Store cleanup failed", log.FieldError, cerr)
	}
	kctx.FatalIfErrorf(err)
}
