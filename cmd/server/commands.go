package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/db"
	docs "github.com/snnyvrz/shelfshare/apps/circulation-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/events"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/report"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

const shutdownTimeout = 10 * time.Second

// bootstrap loads the configuration and opens the database.
func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	database, err := db.ConnectWithRetry(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, database, nil
}

func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func newServeCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			startTime := time.Now()

			cfg, log, database, err := bootstrap()
			if err != nil {
				return err
			}

			if !skipMigrate {
				if err := db.Migrate(database); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			opts := []circulation.Option{
				circulation.WithRetry(cfg.RetryMaxAttempts, cfg.RetryBaseDelay),
			}

			var publisher *events.RedisPublisher
			if cfg.EventsEnabled() {
				client := newRedisClient(cfg)
				defer func() { _ = client.Close() }()

				publisher = events.NewRedisPublisher(client, cfg.EventsChannel)
				opts = append(opts, circulation.WithPublisher(publisher))
				log.WithField("channel", cfg.EventsChannel).Info("publishing circulation events to redis")
			}

			auditor, err := report.FromGorm(database, cfg.DBDriver)
			if err != nil {
				return err
			}

			gin.SetMode(cfg.GinMode)

			e, health := handler.NewRouter(handler.RouterDeps{
				DB:        database,
				Service:   circulation.NewService(repository.NewGormUnitOfWork(database), opts...),
				Books:     repository.NewGormBookRepository(database),
				Auditor:   auditor,
				Logger:    log,
				StartTime: startTime,
				Version:   appVersion,
			})
			if publisher != nil {
				health.AddCheck("redis", publisher.Ping)
			}

			if err := e.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
				return err
			}

			docs.SwaggerInfo.BasePath = "/api"
			e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

			srv := &http.Server{
				Addr:              cfg.HTTPAddr,
				Handler:           e,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", cfg.HTTPAddr).Info("http server listening")
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply the schema on startup")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, database, err := bootstrap()
			if err != nil {
				return err
			}
			if err := db.Migrate(database); err != nil {
				return err
			}
			log.Info("schema is up to date")
			return nil
		},
	}
}

func newAuditCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check every book's counters against the open loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, database, err := bootstrap()
			if err != nil {
				return err
			}

			auditor, err := report.FromGorm(database, cfg.DBDriver)
			if err != nil {
				return err
			}

			rep, err := auditor.Ledger(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := sonic.ConfigStd.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			} else {
				fmt.Fprintf(out, "%d books audited\n", rep.Books)
				for _, f := range rep.Findings {
					fmt.Fprintf(out, "%s (%s): %v\n", f.Book.Name, f.Book.ID, f.Problems)
				}
			}

			if !rep.Consistent() {
				return fmt.Errorf("%d books break the ledger rules", len(rep.Findings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with circulation events",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "tail",
		Short: "Print circulation events as they are published",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.EventsEnabled() {
				return errors.New("REDIS_ADDR is not set")
			}

			log := logging.New(cfg.LogLevel, cfg.LogFormat)
			ctx := logging.WithLogger(cmd.Context(), logrus.NewEntry(log))

			client := newRedisClient(cfg)
			defer func() { _ = client.Close() }()

			out := cmd.OutOrStdout()
			return events.Listen(ctx, client, cfg.EventsChannel, func(ev circulation.Event) {
				fmt.Fprintf(out, "%s %-24s %s %q by %s\n",
					ev.OccurredAt.Format(time.RFC3339), ev.Type, ev.RecordID, ev.BookTitle, ev.Actor)
			})
		},
	})
	return cmd
}
