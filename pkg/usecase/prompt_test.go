package usecase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/usecase"
)

func TestBuildPrompt(t *testing.T) {
	readme := "# Widget\nA tiny widget."

	t.Run("all fields are rendered", func(t *testing.T) {
		rc := &model.RepoContext{
			Repo: testRepo,
			Metadata: model.RepoMetadata{
				Description: "A widget library",
				Language:    "TypeScript",
				Stars:       1234,
				Topics:      []string{"ai", "widget"},
				License:     "MIT",
				CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			FileNames: []string{"package.json", ".cursorrules"},
			RecentCommits: []model.CommitSummary{
				{Message: "✨ feat: add widget\n\n- add component\n- add tests", AuthorName: "alice", Date: "2025-05-01T10:00:00Z"},
			},
			ReadmeExcerpt: &readme,
			ToolConfigContents: map[string]string{
				".cursorrules": "Always use TypeScript strict mode.",
			},
		}

		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		gt.S(t, prompt).Contains("acme/widget")
		gt.S(t, prompt).Contains("A widget library")
		gt.S(t, prompt).Contains("TypeScript")
		gt.S(t, prompt).Contains("Stars: 1234")
		gt.S(t, prompt).Contains("Topics: ai, widget")
		gt.S(t, prompt).Contains("License: MIT")
		gt.S(t, prompt).Contains("Created at: 2025-03-01")
		gt.S(t, prompt).Contains("- package.json")
		gt.S(t, prompt).Contains("- ✨ feat: add widget (author: alice, 2025-05-01T10:00:00Z)")
		gt.S(t, prompt).NotContains("add component")
		gt.S(t, prompt).Contains("## .cursorrules")
		gt.S(t, prompt).Contains("Always use TypeScript strict mode.")
		gt.S(t, prompt).Contains("A tiny widget.")
		gt.S(t, prompt).Contains(`"aiToolsDetected"`)
	})

	t.Run("degraded context", func(t *testing.T) {
		rc := &model.RepoContext{
			Repo:               testRepo,
			FileNames:          []string{},
			RecentCommits:      []model.CommitSummary{},
			ToolConfigContents: map[string]string{},
		}

		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		gt.S(t, prompt).Contains("(README is not available)")
		gt.S(t, prompt).Contains("No known AI assistant configuration file was found.")
		gt.S(t, prompt).Contains("Description: (none)")
	})

	t.Run("empty README is distinguished from missing README", func(t *testing.T) {
		empty := ""
		rc := &model.RepoContext{Repo: testRepo, ReadmeExcerpt: &empty}
		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		gt.S(t, prompt).Contains("(README is empty)")
		gt.S(t, prompt).NotContains("(README is not available)")

		rc.ReadmeExcerpt = nil
		prompt = gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		gt.S(t, prompt).Contains("(README is not available)")
		gt.S(t, prompt).NotContains("(README is empty)")
	})

	t.Run("size is bounded", func(t *testing.T) {
		var files []string
		for i := 0; i < 1000; i++ {
			files = append(files, fmt.Sprintf("file-%04d.txt", i))
		}
		rc := &model.RepoContext{
			Repo:      testRepo,
			FileNames: files,
			ToolConfigContents: map[string]string{
				".windsurfrules": strings.Repeat("r", 100000),
			},
		}

		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		gt.S(t, prompt).Contains("file-0199.txt")
		gt.S(t, prompt).NotContains("file-0200.txt")
		gt.S(t, prompt).Contains("... and 800 more")
		gt.S(t, prompt).Contains(model.TruncationMarker)
		gt.True(t, len(prompt) < 20000)
	})

	t.Run("every field is bounded even for oversized input", func(t *testing.T) {
		huge := strings.Repeat("x", 1<<20)

		var files []string
		for i := 0; i < 1000; i++ {
			files = append(files, fmt.Sprintf("%04d-%s", i, huge[:1000]))
		}
		var commits []model.CommitSummary
		for i := 0; i < 30; i++ {
			commits = append(commits, model.CommitSummary{
				Message:    strings.Repeat("c", 1<<20) + "\nbody",
				AuthorName: huge,
				Date:       huge,
			})
		}
		var topics []string
		for i := 0; i < 100; i++ {
			topics = append(topics, huge[:1000])
		}
		toolConfigs := map[string]string{}
		for _, name := range model.ToolConfigWatchList {
			toolConfigs[name] = huge
		}
		toolConfigs["unlisted.md"] = "UNLISTED " + huge
		readme := huge

		rc := &model.RepoContext{
			Repo: testRepo,
			Metadata: model.RepoMetadata{
				Description: huge,
				Language:    huge,
				License:     huge,
				Topics:      topics,
			},
			FileNames:          files,
			RecentCommits:      commits,
			ReadmeExcerpt:      &readme,
			ToolConfigContents: toolConfigs,
		}

		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)

		marker := len(model.TruncationMarker)
		const templateOverhead = 4096
		const perLineOverhead = 32
		ceiling := templateOverhead +
			usecase.MaxDescriptionLengthForTest + marker +
			2*(usecase.MaxTopicLengthForTest+marker) +
			usecase.MaxTopicsForTest*(usecase.MaxTopicLengthForTest+marker+2) +
			usecase.MaxPromptFilesForTest*(usecase.MaxFileNameLengthForTest+marker+perLineOverhead) +
			model.MaxRecentCommits*(usecase.MaxCommitLineLengthForTest+usecase.MaxAuthorNameLengthForTest+64+3*marker+perLineOverhead) +
			len(model.ToolConfigWatchList)*(usecase.MaxToolConfigLengthForTest+marker+perLineOverhead) +
			model.MaxReadmeLength + marker + perLineOverhead

		gt.True(t, len(prompt) < ceiling)
		gt.S(t, prompt).Contains(strings.Repeat("c", usecase.MaxCommitLineLengthForTest) + model.TruncationMarker)
		gt.S(t, prompt).NotContains(strings.Repeat("c", usecase.MaxCommitLineLengthForTest+1))
		gt.S(t, prompt).NotContains("UNLISTED")
		gt.V(t, strings.Count(prompt, "(author: ")).Equal(model.MaxRecentCommits)
	})

	t.Run("tool configs are rendered in watch-list order", func(t *testing.T) {
		rc := &model.RepoContext{
			Repo: testRepo,
			ToolConfigContents: map[string]string{
				"copilot-instructions.md": "c",
				".windsurfrules":          "b",
				".cursorrules":            "a",
			},
		}
		prompt := gt.R1(usecase.BuildPrompt(rc)).NoError(t)
		a := strings.Index(prompt, "## .cursorrules")
		b := strings.Index(prompt, "## .windsurfrules")
		c := strings.Index(prompt, "## copilot-instructions.md")
		gt.True(t, a >= 0 && a < b && b < c)
	})
}
