package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/infra/ghapi"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	apiURL     string
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token to raise the API rate limit",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("VIBECHECK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("VIBECHECK_GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when no token is given",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("VIBECHECK_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("VIBECHECK_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("VIBECHECK_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) appConfigured() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

func (x *GitHub) New() (*ghapi.Client, error) {
	var options []ghapi.Option
	if x.token != "" {
		options = append(options, ghapi.WithToken(x.token))
	}
	if x.apiURL != "" {
		options = append(options, ghapi.WithBaseURL(x.apiURL))
	}
	if x.appConfigured() {
		options = append(options, ghapi.WithGitHubApp(x.appID, x.installID, x.privateKey))
	}

	return ghapi.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("APIURL", x.apiURL),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
