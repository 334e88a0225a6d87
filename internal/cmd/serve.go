package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fullstackvibes/folio/internal/assist"
	"github.com/fullstackvibes/folio/internal/assist/driver/anthropic"
	"github.com/fullstackvibes/folio/internal/assist/prompt"
	"github.com/fullstackvibes/folio/internal/config"
	mailresend "github.com/fullstackvibes/folio/internal/mail/resend"
	"github.com/fullstackvibes/folio/internal/observability"
	"github.com/fullstackvibes/folio/internal/ratelimit"
	"github.com/fullstackvibes/folio/internal/server"
	"github.com/fullstackvibes/folio/internal/server/handlers"
	"github.com/fullstackvibes/folio/internal/showcase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown support.

Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown: in-flight
requests complete within the configured timeout, then logs are flushed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		logLevel := cfg.Logging.Level
		if verbose {
			logLevel = "debug"
		}
		observability.InitServerLogger("folio", logLevel)
		logger := observability.ServerLogger
		defer func() {
			// Sync errors on stderr are benign.
			_ = logger.Sync()
		}()

		handlers.SetVersionInfo(versionInfo.Version, versionInfo.Commit, versionInfo.BuildDate)

		systemPrompt, err := prompt.Default()
		if err != nil {
			return err
		}

		limiter := ratelimit.New(cfg.RateLimit.Max, cfg.RateLimit.Window)
		if cfg.RateLimit.SweepThreshold > 0 {
			limiter.SweepThreshold = cfg.RateLimit.SweepThreshold
		}

		assistant := assist.New(
			anthropic.NewClient(cfg.Assist.BaseURL, cfg.Assist.APIKey),
			assist.Options{
				Model:      cfg.Assist.Model,
				System:     systemPrompt.System(),
				MaxTokens:  cfg.Assist.MaxTokens,
				Configured: strings.TrimSpace(cfg.Assist.APIKey) != "",
			},
		)
		if strings.TrimSpace(cfg.Assist.APIKey) == "" {
			logger.Warn("ANTHROPIC_API_KEY not set; chat endpoint will return a configuration error")
		}

		projects, err := showcase.NewService(
			showcase.NewGitHubClient(cfg.Showcase.BaseURL, cfg.Showcase.Token),
			cfg.Showcase.Username,
		)
		if err != nil {
			return err
		}
		if cfg.Showcase.CacheTTL > 0 {
			projects.CacheTTL = cfg.Showcase.CacheTTL
		}

		srv := server.New(server.Options{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			Logger:       logger,
			Contact: &handlers.ContactHandler{
				Limiter: limiter,
				Sender:  mailresend.NewClient(cfg.Mail.BaseURL, cfg.Mail.APIKey),
				From:    cfg.Mail.From,
				To:      cfg.Mail.To,
				Logger:  logger,
			},
			Chat: &handlers.ChatHandler{
				Assistant: assistant,
				Logger:    logger,
			},
			Projects: &handlers.ProjectsHandler{
				Service: projects,
				Logger:  logger,
			},
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			serveErr <- srv.Start()
		}()

		select {
		case err := <-serveErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed", zap.Error(err))
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", zap.Error(err))
			return err
		}

		logger.Info("HTTP server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
