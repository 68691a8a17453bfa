package gemini

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"

	"github.com/secmon-lab/vibecheck/pkg/domain/interfaces"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
	"github.com/secmon-lab/vibecheck/pkg/utils/logging"
)

type Client struct {
	client      *genai.Client
	model       types.GeminiModel
	temperature float32
	baseURL     string
}

var _ interfaces.LLM = (*Client)(nil)

type Option func(*Client)

func WithModel(model types.GeminiModel) Option {
	return func(x *Client) {
		x.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(x *Client) {
		x.temperature = temperature
	}
}

// WithBaseURL replaces the Gemini API endpoint
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(ctx context.Context, apiKey types.GeminiAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Gemini API key is empty")
	}

	x := &Client{
		model:       types.DefaultGeminiModel,
		temperature: 0.2,
	}
	for _, opt := range options {
		opt(x)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      string(apiKey),
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: x.baseURL},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}
	x.client = client

	return x, nil
}

func (x *Client) Generate(ctx context.Context, input *interfaces.GenerateInput) (string, error) {
	logging.From(ctx).Debug("Sending GenerateContent request",
		slog.String("model", string(x.model)),
		slog.Int("prompt.len", len(input.Prompt)),
	)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(x.temperature),
	}
	if input.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = input.Schema
	}

	resp, err := x.client.Models.GenerateContent(ctx, string(x.model), genai.Text(input.Prompt), config)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", x.model))
	}

	if resp == nil {
		return "", goerr.New("empty response from Gemini", goerr.V("model", x.model))
	}
	text := resp.Text()
	if text == "" {
		return "", goerr.New("empty response from Gemini", goerr.V("model", x.model))
	}

	logging.From(ctx).Debug("GenerateContent response", slog.Int("response.len", len(text)))

	return text, nil
}
