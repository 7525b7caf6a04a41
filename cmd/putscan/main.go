package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"PutScan/internal/analyzer"
	"PutScan/internal/collector"
	"PutScan/internal/config"
	"PutScan/internal/report"
	"PutScan/internal/scheduler"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("config validation")
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	logger.WithField("source", fetcher.Name()).Info("data source selected")

	an := analyzer.New(fetcher, cfg.Analysis.MarginPct, cfg.Analysis.WindowDays)
	printer := report.NewConsolePrinter(os.Stdout)

	scan := func() {
		results := an.Run(cfg.Tickers)
		rows, failed := an.Partition(results)
		logger.WithFields(logrus.Fields{
			"rows":    len(rows),
			"skipped": len(failed),
		}).Info("scan complete")

		printer.PrintSummary(rows)
		printer.PrintTable(rows)

		exporters := []report.Exporter{report.NewExcelExporter(cfg.Output.ExcelPath)}
		if cfg.Output.CSVPath != "" {
			exporters = append(exporters, report.NewCSVExporter(cfg.Output.CSVPath))
		}
		for _, exp := range exporters {
			if err := exp.Export(rows); err != nil {
				logger.WithField("exporter", exp.Name()).WithError(err).Error("export failed")
				continue
			}
			logger.WithField("exporter", exp.Name()).Info("report written")
		}
	}

	// One-shot mode: run once and exit 0 regardless of per-ticker failures.
	if cfg.Schedule.Cron == "" {
		scan()
		return
	}

	// Scheduled mode: keep running until interrupted.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, scan)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		logger.WithError(err).Fatal("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		logger.Info("RUN_ON_START enabled, scanning now")
		go sched.RunNow()
	}

	logger.Info("PutScan is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown signal received, stopping")
	cancel()
}
