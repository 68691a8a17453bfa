package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return goerr.Wrap(types.ErrInvalidOption, "invalid output format, should be 'text', 'json' or 'yaml'", goerr.V("format", format))
	}
}

func renderReport(w io.Writer, format string, report *model.VibeCheckReport) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return goerr.Wrap(err, "failed to encode report as JSON")
		}
		return nil

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return goerr.Wrap(err, "failed to encode report as YAML")
		}
		if err := enc.Close(); err != nil {
			return goerr.Wrap(err, "failed to flush YAML encoder")
		}
		return nil

	case formatText:
		return renderText(w, report)

	default:
		return validateFormat(format)
	}
}

var bandColors = map[model.ScoreBand]*color.Color{
	model.ScoreBandLow:  color.New(color.FgGreen, color.Bold),
	model.ScoreBandMid:  color.New(color.FgYellow, color.Bold),
	model.ScoreBandHigh: color.New(color.FgRed, color.Bold),
}

func renderText(w io.Writer, report *model.VibeCheckReport) error {
	result := report.Result
	heading := color.New(color.FgHiWhite, color.Bold)
	label := color.New(color.FgHiCyan)

	var b strings.Builder
	heading.Fprintf(&b, "%s\n", report.Repo.String())
	label.Fprint(&b, "Score:   ")
	bandColors[result.Band()].Fprintf(&b, "%d/100", result.Score)
	b.WriteString("\n")
	label.Fprint(&b, "Verdict: ")
	fmt.Fprintf(&b, "%s\n", result.Verdict)

	label.Fprint(&b, "AI tools: ")
	if len(result.AIToolsDetected) == 0 {
		b.WriteString("none detected\n")
	} else {
		fmt.Fprintf(&b, "%s\n", strings.Join(result.AIToolsDetected, ", "))
	}

	if len(result.Evidence) > 0 {
		b.WriteString("\n")
		label.Fprint(&b, "Evidence:\n")
		for _, e := range result.Evidence {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	b.WriteString("\n")
	label.Fprint(&b, "Reasoning:\n")
	fmt.Fprintf(&b, "%s\n", result.Reasoning)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}
