package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vibecheck/pkg/domain/model"
	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

func TestParseRepoURL(t *testing.T) {
	testCases := map[string]struct {
		input string
		owner string
		name  string
		ok    bool
	}{
		"plain repository URL": {
			input: "https://github.com/acme/widget",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"URL with trailing path": {
			input: "https://github.com/acme/widget/tree/main/pkg",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"URL with trailing slash and query": {
			input: "https://github.com/acme/widget/?tab=readme",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"empty segments are skipped": {
			input: "https://github.com//acme//widget",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"surrounding spaces": {
			input: "  https://github.com/acme/widget  ",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"dot segment is resolved": {
			input: "https://github.com/acme/../user/x",
			owner: "user",
			name:  "x",
			ok:    true,
		},
		"dot segment before owner": {
			input: "https://github.com/./acme/widget",
			owner: "acme",
			name:  "widget",
			ok:    true,
		},
		"traversal above root leaves one segment": {
			input: "https://github.com/../user",
		},
		"escaped query in name": {
			input: "https://github.com/acme/widget%3Fper_page=1",
		},
		"escaped slash in owner": {
			input: "https://github.com/acme%2F..%2Fuser/widget",
		},
		"escaped dot segment": {
			input: "https://github.com/%2e%2e/user",
		},
		"non-ASCII name": {
			input: "https://github.com/acme/wídget",
		},
		"name with dots and dashes": {
			input: "https://github.com/acme-inc/widget.go_v2",
			owner: "acme-inc",
			name:  "widget.go_v2",
			ok:    true,
		},
		"only owner": {
			input: "https://github.com/acme",
		},
		"only host": {
			input: "https://github.com/",
		},
		"not a URL": {
			input: "acme/widget",
		},
		"empty": {
			input: "",
		},
		"broken escape": {
			input: "https://github.com/%zz/widget",
		},
		"scheme only": {
			input: "https:///acme/widget",
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			id, ok := model.ParseRepoURL(tc.input)
			gt.V(t, ok).Equal(tc.ok)
			if !tc.ok {
				gt.V(t, id).Nil()
				return
			}
			gt.V(t, id.Owner).Equal(tc.owner)
			gt.V(t, id.Name).Equal(tc.name)
		})
	}
}

func TestRepositoryIdentifier(t *testing.T) {
	id := model.RepositoryIdentifier{Owner: "acme", Name: "widget"}
	gt.V(t, id.String()).Equal("acme/widget")
	gt.V(t, model.RepoURL(id)).Equal("https://github.com/acme/widget")
}

func TestRepositoryIdentifierValidate(t *testing.T) {
	gt.NoError(t, model.RepositoryIdentifier{Owner: "acme", Name: "widget"}.Validate())

	invalid := []model.RepositoryIdentifier{
		{Owner: "..", Name: "user"},
		{Owner: "acme", Name: "."},
		{Owner: "acme", Name: "widget?per_page=1"},
		{Owner: "acme/..", Name: "widget"},
		{Owner: "", Name: "widget"},
		{Owner: "acme", Name: ""},
		{Owner: "acme", Name: strings.Repeat("w", 101)},
	}
	for _, id := range invalid {
		t.Run(id.String(), func(t *testing.T) {
			err := id.Validate()
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidRepoURL))
		})
	}
}
