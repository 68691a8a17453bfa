package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/vibecheck/pkg/cli/config"
	"github.com/secmon-lab/vibecheck/pkg/controller/server"
	"github.com/secmon-lab/vibecheck/pkg/infra"
	"github.com/secmon-lab/vibecheck/pkg/usecase"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr           string
		analyzeTimeout time.Duration

		github config.GitHub
		gemini config.Gemini
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("VIBECHECK_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "analyze-timeout",
			Usage:       "Timeout of a single analysis request",
			Value:       2 * time.Minute,
			Sources:     cli.EnvVars("VIBECHECK_ANALYZE_TIMEOUT"),
			Destination: &analyzeTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			gemini.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Duration("AnalyzeTimeout", analyzeTimeout),
				slog.Any("GitHub", github),
				slog.Any("Gemini", gemini),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}
			llmClient, err := gemini.New(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithLLM(llmClient),
			)

			uc := usecase.New(clients)
			s := server.New(uc, server.WithAnalyzeTimeout(analyzeTimeout))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      analyzeTimeout + 30*time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
