package platform

import (
	"fmt"
	"strings"
)

// Platform identifies a source-control hosting service.
type Platform int

const (
	GitHub Platform = iota + 1
	GitLab
)

var all = []Platform{GitHub, GitLab}

// All returns every supported platform in declaration order.
func All() []Platform {
	out := make([]Platform, len(all))
	copy(out, all)
	return out
}

// String returns the display name
func (p Platform) String() string {
	switch p {
	case GitHub:
		return "GitHub"
	case GitLab:
		return "GitLab"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Slug returns the lowercase identifier used in URLs, config and metric labels.
func (p Platform) Slug() string {
	switch p {
	case GitHub:
		return "github"
	case GitLab:
		return "gitlab"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p == GitHub || p == GitLab
}

// Next cycles to the following platform, wrapping around.
func (p Platform) Next() Platform {
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Parse accepts a slug or display name, case-insensitively.
func Parse(s string) (Platform, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range all {
		if needle == p.Slug() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q (want github or gitlab)", s)
}

// MarshalText implements encoding.TextMarshaler so platforms render as slugs in JSON.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid platform %d", int(p))
	}
	return []byte(p.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
