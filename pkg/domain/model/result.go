package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

// VibeAnalysisResult is the verdict of AI authorship likelihood returned by the model
type VibeAnalysisResult struct {
	Score           int      `json:"score" yaml:"score"`
	Verdict         string   `json:"verdict" yaml:"verdict"`
	Reasoning       string   `json:"reasoning" yaml:"reasoning"`
	Evidence        []string `json:"evidence" yaml:"evidence"`
	AIToolsDetected []string `json:"aiToolsDetected" yaml:"ai_tools_detected"`
}

type ScoreBand string

const (
	ScoreBandLow  ScoreBand = "low"
	ScoreBandMid  ScoreBand = "mid"
	ScoreBandHigh ScoreBand = "high"
)

// Band classifies the score into three ranges for rendering
func (x *VibeAnalysisResult) Band() ScoreBand {
	switch {
	case x.Score < 30:
		return ScoreBandLow
	case x.Score < 70:
		return ScoreBandMid
	default:
		return ScoreBandHigh
	}
}

// vibeAnalysisResponse uses pointers to distinguish missing fields from zero values
type vibeAnalysisResponse struct {
	Score           *int      `json:"score" validate:"required,min=0,max=100"`
	Verdict         *string   `json:"verdict" validate:"required,min=1"`
	Reasoning       *string   `json:"reasoning" validate:"required"`
	Evidence        *[]string `json:"evidence" validate:"required"`
	AIToolsDetected *[]string `json:"aiToolsDetected" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseVibeAnalysis decodes a model response into VibeAnalysisResult. All fields are required and unknown fields are rejected.
func ParseVibeAnalysis(raw string) (*VibeAnalysisResult, error) {
	body := trimCodeFence(raw)
	if body == "" {
		return nil, goerr.Wrap(types.ErrInvalidAnalysis, "empty response")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()

	var resp vibeAnalysisResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidAnalysis, "failed to decode response", goerr.V("error", err.Error()), goerr.V("raw", raw))
	}
	if dec.More() {
		return nil, goerr.Wrap(types.ErrInvalidAnalysis, "trailing data after response", goerr.V("raw", raw))
	}

	if err := validate.Struct(&resp); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidAnalysis, "response does not match schema", goerr.V("error", err.Error()), goerr.V("raw", raw))
	}

	return &VibeAnalysisResult{
		Score:           *resp.Score,
		Verdict:         *resp.Verdict,
		Reasoning:       *resp.Reasoning,
		Evidence:        *resp.Evidence,
		AIToolsDetected: *resp.AIToolsDetected,
	}, nil
}

func trimCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
