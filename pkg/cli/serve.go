package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/herald-bot/herald/pkg/cli/config"
	"github.com/herald-bot/herald/pkg/controller/gateway"
	controller "github.com/herald-bot/herald/pkg/controller/http"
	"github.com/herald-bot/herald/pkg/domain/interfaces"
	"github.com/herald-bot/herald/pkg/infra/renderer"
	slackinfra "github.com/herald-bot/herald/pkg/infra/slack"
	"github.com/herald-bot/herald/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		githubCfg   config.GitHub
		notifyCfg   config.Notify
		rendererCfg config.Renderer
		slackCfg    config.Slack
		sentryCfg   config.Sentry
	)

	flags := serverCfg.Flags()
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)
	flags = append(flags, rendererCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := notifyCfg.Validate(); err != nil {
				return err
			}

			routes, err := notifyCfg.LoadRoutes()
			if err != nil {
				return err
			}

			if enabled, err := sentryCfg.Configure(); err != nil {
				return err
			} else if enabled {
				defer sentry.Flush(2 * time.Second)
			}

			if githubCfg.WebhookSecret == "" {
				logger.Warn("No webhook secret configured, signature verification is disabled")
			}

			// Messaging substrate: gateway hub plus the built-in Slack
			// session when a token is configured
			hub := gateway.NewHub()
			if slackCfg.Token != "" {
				hub.RegisterStatic(slackinfra.NewSession(slackCfg.Token))
			}

			ucOpts := []usecase.Option{
				usecase.WithTruncateLength(int(notifyCfg.TruncateLength)),
				usecase.WithStarThreshold(int(notifyCfg.StarThreshold)),
			}

			webhookUC := usecase.NewWebhook(routes, hub, newRenderer(rendererCfg), ucOpts...)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				hub,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookPath(serverCfg.WebhookPath),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			logger.Info("Starting herald server",
				slog.String("addr", serverCfg.Addr),
				slog.String("webhook_path", serverCfg.WebhookPath),
				slog.Int("repositories", routes.Len()),
				slog.Bool("slack", slackCfg.Token != ""),
				slog.Bool("renderer", rendererCfg.URL != ""),
			)

			// Start server in goroutine
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newRenderer returns nil when no rendering service is configured;
// release notifications then always use the text fallback.
func newRenderer(cfg config.Renderer) interfaces.Renderer {
	if cfg.URL == "" {
		return nil
	}
	return renderer.New(cfg.URL)
}
