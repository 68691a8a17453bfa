package model

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/vibecheck/pkg/domain/types"
)

// RepositoryIdentifier points a GitHub repository by owner and name.
type RepositoryIdentifier struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

func (x RepositoryIdentifier) String() string {
	return x.Owner + "/" + x.Name
}

// Characters GitHub allows in user, organization and repository names
var repoSegmentPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

const maxRepoSegmentLength = 100

// Validate checks that owner and name can be put into an API path as they are.
func (x RepositoryIdentifier) Validate() error {
	for _, seg := range []string{x.Owner, x.Name} {
		if seg == "." || seg == ".." || len(seg) > maxRepoSegmentLength || !repoSegmentPattern.MatchString(seg) {
			return goerr.Wrap(types.ErrInvalidRepoURL, "invalid repository identifier",
				goerr.V("owner", x.Owner),
				goerr.V("name", x.Name),
			)
		}
	}
	return nil
}

// ParseRepoURL extracts owner and name from the first two non-empty path segments of an absolute URL.
// Dot segments are resolved and percent-escapes are kept encoded, so an escaped or traversing
// segment is rejected instead of being decoded. It does not check existence of the repository.
func ParseRepoURL(s string) (*RepositoryIdentifier, bool) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}

	var parts []string
	for _, p := range strings.Split(path.Clean("/"+u.EscapedPath()), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return nil, false
	}

	id := &RepositoryIdentifier{
		Owner: parts[0],
		Name:  parts[1],
	}
	if err := id.Validate(); err != nil {
		return nil, false
	}

	return id, true
}

// RepoURL returns the github.com web URL of the repository
func RepoURL(id RepositoryIdentifier) string {
	return "https://github.com/" + id.Owner + "/" + id.Name
}
