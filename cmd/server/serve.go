package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iliyamo/gym-management/internal/config"
	"github.com/iliyamo/gym-management/internal/handler"
	"github.com/iliyamo/gym-management/internal/logger"
	"github.com/iliyamo/gym-management/internal/queue"
	"github.com/iliyamo/gym-management/internal/report"
	"github.com/iliyamo/gym-management/internal/repository"
	"github.com/iliyamo/gym-management/internal/router"
	"github.com/iliyamo/gym-management/internal/service"
)

func newServeCommand() *cobra.Command {
	var auditDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), auditDir)
		},
	}
	cmd.Flags().StringVar(&auditDir, "audit-dir", "logs", "Directory the record.created audit consumer writes to")
	return cmd
}

func serve(parent context.Context, auditDir string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, db, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	gw := repository.NewGateway(db, logger.WithComponent("gateway"))
	repos := repository.NewRepos(gw)

	var opts []service.Option
	if cfg.Events.Enabled {
		opts = append(opts, service.WithPublisher(queue.NewPublisher(cfg.Events.URL, cfg.Events.Queue, logger.WithComponent("publisher"))))
		go func() {
			err := queue.StartAuditConsumer(ctx, cfg.Events.URL, cfg.Events.Queue, auditDir, logger.WithComponent("audit"))
			log.Info("audit consumer stopped", "reason", err)
		}()
	}
	svc := service.New(repos, logger.WithComponent("service"), opts...)
	engine := report.NewEngine(gw, logger.WithComponent("report"))

	rdb, err := config.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, rate limiting disabled", "error", err)
	} else {
		defer rdb.Close()
	}

	e := router.New(router.Deps{
		Gym:       handler.NewGymHandler(svc, repos),
		Reports:   handler.NewReportHandler(engine),
		DB:        gw,
		Redis:     rdb,
		RateLimit: cfg.RateLimit,
		Log:       logger.WithComponent("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
