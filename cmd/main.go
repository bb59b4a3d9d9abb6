package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pajkicdj/POC-user-product-flow/analytics/config"
	"github.com/pajkicdj/POC-user-product-flow/analytics/service"
	"github.com/pajkicdj/POC-user-product-flow/errorreporting"
	"github.com/pajkicdj/POC-user-product-flow/logger"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := errorreporting.Init(ctx); err != nil {
		log.Printf("main: could not initialize error reporting. error %s", err)
	}

	defer errorreporting.Close()

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	defer logging.Close()

	ctx, l := logger.NewLogger(ctx)
	defer l.End()

	cfg, err := config.FromEnv()
	if err != nil {
		l.Errorf("invalid configuration: %s", err)
		return err
	}

	exporter, err := service.NewExportService(ctx, logging.Logger, cfg)
	if err != nil {
		return report(l, err)
	}

	return export(ctx, l, exporter)
}

func export(ctx context.Context, l logger.ILogger, e service.Exporter) error {
	path, err := e.Run(ctx, time.Now())
	if err != nil {
		return report(l, err)
	}

	l.Infof("export written to %s", path)

	return nil
}

func report(l logger.ILogger, err error) error {
	l.Errorf("export failed: %s", err)
	errorreporting.Report(err, nil)

	return err
}
