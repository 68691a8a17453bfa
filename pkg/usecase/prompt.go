package usecase

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
)

const (
	maxPromptFiles       = 200
	maxFileNameLength    = 255
	maxToolConfigLength  = 4000
	maxCommitLineLength  = 200
	maxAuthorNameLength  = 100
	maxDescriptionLength = 1000
	maxTopics            = 20
	maxTopicLength       = 50
)

//go:embed prompt/vibe_check.md
var vibeCheckPromptTemplate string

var vibeCheckPrompt = template.Must(template.New("vibe_check").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(vibeCheckPromptTemplate))

type promptToolConfig struct {
	Name    string
	Content string
}

type promptData struct {
	Repo         string
	Metadata     model.RepoMetadata
	FileNames    []string
	OmittedFiles int
	Commits      []model.CommitSummary
	ToolConfigs  []promptToolConfig
	Readme       string
	HasReadme    bool
}

// BuildPrompt renders repository context into a prompt of bounded size
func BuildPrompt(repoCtx *model.RepoContext) (string, error) {
	data := promptData{
		Repo:     repoCtx.Repo.String(),
		Metadata: boundMetadata(repoCtx.Metadata),
	}

	files := repoCtx.FileNames
	if len(files) > maxPromptFiles {
		data.OmittedFiles = len(files) - maxPromptFiles
		files = files[:maxPromptFiles]
	}
	for _, name := range files {
		data.FileNames = append(data.FileNames, model.Truncate(name, maxFileNameLength))
	}

	commits := repoCtx.RecentCommits
	if len(commits) > model.MaxRecentCommits {
		commits = commits[:model.MaxRecentCommits]
	}
	for _, c := range commits {
		data.Commits = append(data.Commits, model.CommitSummary{
			Message:    model.Truncate(firstLine(c.Message), maxCommitLineLength),
			AuthorName: model.Truncate(c.AuthorName, maxAuthorNameLength),
			Date:       model.Truncate(c.Date, 64),
		})
	}

	// Only watch-list names are rendered, in watch-list order
	for _, name := range model.ToolConfigWatchList {
		content, ok := repoCtx.ToolConfigContents[name]
		if !ok {
			continue
		}
		data.ToolConfigs = append(data.ToolConfigs, promptToolConfig{
			Name:    name,
			Content: model.Truncate(content, maxToolConfigLength),
		})
	}

	if repoCtx.ReadmeExcerpt != nil {
		data.HasReadme = true
		data.Readme = model.TruncateReadme(*repoCtx.ReadmeExcerpt)
	}

	var b strings.Builder
	if err := vibeCheckPrompt.Execute(&b, data); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt", goerr.V("repo", data.Repo))
	}

	return b.String(), nil
}

// boundMetadata caps free-text fields of metadata that are rendered into the prompt
func boundMetadata(meta model.RepoMetadata) model.RepoMetadata {
	meta.Description = model.Truncate(meta.Description, maxDescriptionLength)
	meta.Language = model.Truncate(meta.Language, maxTopicLength)
	meta.License = model.Truncate(meta.License, maxTopicLength)

	topics := meta.Topics
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	meta.Topics = nil
	for _, topic := range topics {
		meta.Topics = append(meta.Topics, model.Truncate(topic, maxTopicLength))
	}

	return meta
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

// vibeAnalysisSchema must be kept consistent with model.ParseVibeAnalysis
var vibeAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "Likelihood of AI assisted authorship from 0 to 100",
			Minimum:     genai.Ptr[float64](0),
			Maximum:     genai.Ptr[float64](100),
		},
		"verdict": {
			Type:        genai.TypeString,
			Description: "Short label of the conclusion",
		},
		"reasoning": {
			Type:        genai.TypeString,
			Description: "One paragraph explaining the conclusion",
		},
		"evidence": {
			Type:        genai.TypeArray,
			Description: "Specific findings supporting the score",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"aiToolsDetected": {
			Type:        genai.TypeArray,
			Description: "Names of detected AI coding tools",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required:         []string{"score", "verdict", "reasoning", "evidence", "aiToolsDetected"},
	PropertyOrdering: []string{"score", "verdict", "reasoning", "evidence", "aiToolsDetected"},
}
