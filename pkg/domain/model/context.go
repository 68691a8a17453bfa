package model

import (
	"slices"
	"time"
	"unicode/utf8"
)

const (
	// MaxRecentCommits is the number of commits requested from the commit list API
	MaxRecentCommits = 15

	// MaxReadmeLength is the ceiling of README excerpt in characters
	MaxReadmeLength = 8000

	TruncationMarker = "...(truncated)"
)

// ToolConfigWatchList is configuration file names of AI coding assistants. Only files in the root listing are fetched.
var ToolConfigWatchList = []string{
	".cursorrules",
	".windsurfrules",
	".c3",
	"copilot-instructions.md",
}

type CommitSummary struct {
	Message    string `json:"message" yaml:"message"`
	AuthorName string `json:"author_name" yaml:"author_name"`
	Date       string `json:"date" yaml:"date"`
}

// RepoMetadata is highlights of repository metadata returned by GitHub API
type RepoMetadata struct {
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Language      string    `json:"language"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	Topics        []string  `json:"topics"`
	DefaultBranch string    `json:"default_branch"`
	License       string    `json:"license"`
	HTMLURL       string    `json:"html_url"`
	Fork          bool      `json:"fork"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"created_at"`
	PushedAt      time.Time `json:"pushed_at"`
}

// RepoContext is everything collected about a repository for one analysis. It must not be modified after construction.
type RepoContext struct {
	Repo          RepositoryIdentifier
	Metadata      RepoMetadata
	FileNames     []string
	RecentCommits []CommitSummary

	// ReadmeExcerpt is nil if README was not available
	ReadmeExcerpt *string

	// ToolConfigContents has entries only for watch-list files found in FileNames
	ToolConfigContents map[string]string
}

// HasFile returns true if name is in the root listing
func (x *RepoContext) HasFile(name string) bool {
	return slices.Contains(x.FileNames, name)
}

// TruncateReadme cuts s at MaxReadmeLength characters and appends TruncationMarker.
// s is returned as is if it is not longer than the ceiling.
func TruncateReadme(s string) string {
	return Truncate(s, MaxReadmeLength)
}

// Truncate keeps the first limit runes of s and appends TruncationMarker if anything is cut off
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + TruncationMarker
}
