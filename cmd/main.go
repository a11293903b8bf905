package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/crmwidget/internal/api"
	"github.com/samandr77/microservices/crmwidget/internal/clients/hubspot"
	"github.com/samandr77/microservices/crmwidget/internal/repository"
	"github.com/samandr77/microservices/crmwidget/internal/service"
	"github.com/samandr77/microservices/crmwidget/pkg/broker"
	"github.com/samandr77/microservices/crmwidget/pkg/config"
	"github.com/samandr77/microservices/crmwidget/pkg/logger"
	"github.com/samandr77/microservices/crmwidget/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

var (
	_ service.CRM        = (*hubspot.Client)(nil)
	_ service.CRM        = (*hubspot.Mock)(nil)
	_ service.Repository = (*repository.Repository)(nil)
	_ service.Producer   = (*broker.ChatEventProducer)(nil)
	_ api.Service        = (*service.Service)(nil)
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.NewWithWriter(os.Stdout, cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("init logger", err)

	mode := config.SelectMode(cfg.HubSpot)

	var crm service.CRM = hubspot.NewMock()
	if mode == config.ModeLive {
		crm = hubspot.NewClient(cfg.HubSpot)
	}

	l.InfoContext(ctx, "crm data source selected", "mode", mode)

	var repo service.Repository

	if cfg.Postgres.DSN != "" {
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		err = postgres.UpMigrations(cfg.Postgres.DSN)
		panicOnErr("up migrations", err)

		repo = repository.New(pool)
	}

	var producer service.Producer

	if cfg.Kafka.Enabled() {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ChatEventsTopic)
		defer p.Close()

		producer = broker.NewChatEventProducer(p)
	}

	s := service.New(crm, mode, repo, producer)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIToken)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port, "mode", mode)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
