package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/vibecheck/pkg/cli/config"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/infra"
	"github.com/secmon-lab/vibecheck/pkg/usecase"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
	"github.com/secmon-lab/vibecheck/pkg/utils/safe"
)

func analyzeCommand() *cli.Command {
	var (
		dir    string
		format string
		output string

		github config.GitHub
		gemini config.Gemini
	)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze a GitHub repository",
		ArgsUsage: "[https://github.com/owner/repo]",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Git repository to take the origin remote from when URL is not given",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format [text|json|yaml]",
				Value:       formatText,
				Sources:     cli.EnvVars("VIBECHECK_FORMAT"),
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file [-|<file>]",
				Value:       "-",
				Destination: &output,
			},
		}, github.Flags(), gemini.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			repoURL := c.Args().First()
			if repoURL == "" {
				detected, err := DetectRepoURL(dir)
				if err != nil {
					return goerr.Wrap(err, "repository URL is not given and can not be detected from git")
				}
				repoURL = detected
			}

			// Reject malformed URL before building any client
			if _, ok := model.ParseRepoURL(repoURL); !ok {
				err := goerr.Wrap(types.ErrInvalidRepoURL, "failed to parse repository URL", goerr.V("url", repoURL))
				printUserMessage(c, err)
				return err
			}

			logging.Default().Debug("starting analyze",
				slog.String("url", repoURL),
				slog.String("format", format),
				slog.Any("GitHub", github),
				slog.Any("Gemini", gemini),
			)

			ghClient, err := github.New()
			if err != nil {
				return err
			}
			llmClient, err := gemini.New(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(
				infra.WithGitHub(ghClient),
				infra.WithLLM(llmClient),
			))

			report, err := uc.RunVibeCheck(ctx, &model.VibeCheckInput{
				URL: repoURL,
				OnStatus: func(status types.AnalysisStatus) {
					switch status {
					case types.AnalysisStatusCollecting:
						logging.Default().Info("collecting repository context", slog.String("url", repoURL))
					case types.AnalysisStatusAnalyzing:
						logging.Default().Info("analyzing repository context")
					}
				},
			})
			if err != nil {
				printUserMessage(c, err)
				return err
			}

			w, closer, err := openOutput(c, output)
			if err != nil {
				return err
			}
			defer safe.Close(closer)

			return renderReport(w, format, report)
		},
	}
}

func printUserMessage(c *cli.Command, err error) {
	var w io.Writer = os.Stderr
	if root := c.Root(); root != nil && root.ErrWriter != nil {
		w = root.ErrWriter
	}
	_, _ = fmt.Fprintln(w, usecase.UserMessage(err))
}

func openOutput(c *cli.Command, output string) (io.Writer, io.Closer, error) {
	if output == "-" || output == "" {
		var w io.Writer = os.Stdout
		if root := c.Root(); root != nil && root.Writer != nil {
			w = root.Writer
		}
		return w, nil, nil
	}

	fd, err := os.Create(filepath.Clean(output))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
	}
	return fd, fd, nil
}
