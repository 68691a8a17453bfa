package types

import "log/slog"

type (
	GeminiAPIKey string
	GeminiModel  string
)

const DefaultGeminiModel GeminiModel = "gemini-2.5-flash"

func (x GeminiAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GeminiAPIKey) String() string {
	return "***********"
}
