package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/imposter/internal/api"
	"github.com/mcoot/imposter/internal/config"
	"github.com/mcoot/imposter/internal/factory"
	redisstorage "github.com/mcoot/imposter/internal/storage/redis"
	"github.com/mcoot/imposter/internal/web"
)

// NewServeCmd creates the command that hosts the web game and the JSON API
func NewServeCmd() *cobra.Command {
	var c config.Server

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the web game and the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Resolve(cmd.Flags(), c.EnvFile); err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}

			logger := c.NewLogger(cmd.OutOrStdout())
			slog.SetDefault(logger)

			return runServer(cmd.Context(), c, logger)
		},
		SilenceUsage: true,
	}

	c.RegisterFlags(cmd.Flags())

	return cmd
}

// NewHandler wires the API under /api/ and the web pages everywhere else
func NewHandler(app *factory.App, publicURL string, logger *slog.Logger) http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger: logger.With(slog.String("component", "api")),
		Table:  app.Table,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:  logger,
		Table:   app.Table,
		BaseURL: publicURL,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)
	return mux
}

func runServer(ctx context.Context, c config.Server, logger *slog.Logger) error {
	factoryCfg := factory.Config{
		WordBankPath: c.WordBankFile,
		Logger:       logger,
		StorageType:  c.Storage,
		Seed:         c.Seed,
		StrictReveal: c.StrictReveal,
	}
	if c.Storage == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("could not close storage", slog.String("error", err.Error()))
		}
	}()

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = c.Bind
	serverConfig.Port = c.Port
	server := api.NewServer(NewHandler(app, c.PublicURL, logger), serverConfig, logger)
	if err := server.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", c.Storage),
		slog.Bool("strict_reveal", c.StrictReveal),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	}
}
