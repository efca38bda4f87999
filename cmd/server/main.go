package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/pipeworks/pipeadmin/internal/api"
	"github.com/pipeworks/pipeadmin/internal/config"
	"github.com/pipeworks/pipeadmin/internal/domain/items"
	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
	httpx "github.com/pipeworks/pipeadmin/internal/infra/http"
	"github.com/pipeworks/pipeadmin/internal/infra/logger"
	"github.com/pipeworks/pipeadmin/internal/report"
	"github.com/pipeworks/pipeadmin/internal/seed"
)

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	itemsRepo := items.NewRepo()
	ordersRepo := orders.NewRepo()
	staffRepo := staff.NewRepo(cfg.Report.ShiftHours)
	seed.Load(itemsRepo, ordersRepo, staffRepo)
	log.Info("demo dataset loaded")

	exporter := report.NewExporter(cfg.Report.CompanyName)
	h := api.NewHandler(log, itemsRepo, ordersRepo, staffRepo, exporter)

	srv := httpx.New(cfg.HTTP.Addr, cfg.App.Env, cfg.Metrics.Enabled, h)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
