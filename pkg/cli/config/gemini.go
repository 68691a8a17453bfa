package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/infra/gemini"
)

type Gemini struct {
	apiKey      types.GeminiAPIKey `masq:"secret"`
	model       string
	temperature float64
	baseURL     string
}

func (x *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Category:    "Gemini",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("VIBECHECK_GEMINI_API_KEY", "GEMINI_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model name",
			Category:    "Gemini",
			Destination: &x.model,
			Value:       string(types.DefaultGeminiModel),
			Sources:     cli.EnvVars("VIBECHECK_GEMINI_MODEL"),
		},
		&cli.FloatFlag{
			Name:        "gemini-temperature",
			Usage:       "Sampling temperature of the model",
			Category:    "Gemini",
			Destination: &x.temperature,
			Value:       0.2,
			Sources:     cli.EnvVars("VIBECHECK_GEMINI_TEMPERATURE"),
		},
		&cli.StringFlag{
			Name:        "gemini-base-url",
			Usage:       "Gemini API endpoint (default is the public Gemini API)",
			Category:    "Gemini",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("VIBECHECK_GEMINI_BASE_URL"),
		},
	}
}

func (x *Gemini) New(ctx context.Context) (*gemini.Client, error) {
	options := []gemini.Option{
		gemini.WithModel(types.GeminiModel(x.model)),
		gemini.WithTemperature(float32(x.temperature)),
	}
	if x.baseURL != "" {
		options = append(options, gemini.WithBaseURL(x.baseURL))
	}
	return gemini.New(ctx, x.apiKey, options...)
}

func (x Gemini) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.String("Model", x.model),
		slog.Float64("Temperature", x.temperature),
		slog.String("BaseURL", x.baseURL),
	)
}
