package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JonMunkholm/salesreport/internal/config"
	"github.com/JonMunkholm/salesreport/internal/logging"
	"github.com/JonMunkholm/salesreport/internal/report"
	"github.com/JonMunkholm/salesreport/internal/sales"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := logging.NewRunContext(context.Background())
	log := logging.WithFields(ctx, "file", cfg.Sales.File)

	if envErr != nil {
		log.Debug("no .env file found, using environment variables")
	}
	log.Debug("configuration loaded", "config", cfg.String())

	if err := run(ctx, cfg); err != nil {
		log.Error("sales report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logging.WithFields(ctx, "file", cfg.Sales.File)

	table, loadErr := sales.Load(cfg.Sales.File)
	if table == nil {
		return loadErr
	}

	if err := report.Columns(os.Stdout, table); err != nil {
		return err
	}

	if loadErr != nil {
		msg := sales.DescribeLoadError(loadErr)
		log.Error(msg.String(), "state", table.State().String(), "code", msg.Code)
	} else {
		log.Debug("sales data loaded", "rows", table.Len(), "columns", len(table.Columns()))
	}

	return report.Write(os.Stdout, table, report.Options{
		TopN: cfg.Sales.TopN,
		Year: cfg.Sales.Year,
	})
}
