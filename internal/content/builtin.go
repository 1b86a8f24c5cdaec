package content

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed personas/*.yaml
var personaFS embed.FS

// Builtins returns the slugs of the embedded personas, sorted.
func Builtins() []string {
	entries, err := personaFS.ReadDir("personas")
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			slugs = append(slugs, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(slugs)
	return slugs
}

// Builtin loads an embedded persona by slug.
func Builtin(slug string) (*Profile, error) {
	data, err := personaFS.ReadFile(path.Join("personas", slug+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown persona %q", slug)
	}
	return Parse(data)
}

// Library is the set of personas a server can render, keyed by slug.
type Library struct {
	profiles map[string]*Profile
	def      string
}

// NewLibrary indexes profiles. The first profile is the default.
func NewLibrary(profiles ...*Profile) (*Library, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("at least one profile is required")
	}
	l := &Library{profiles: make(map[string]*Profile, len(profiles)), def: profiles[0].Slug}
	for _, p := range profiles {
		if _, dup := l.profiles[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate profile %q", p.Slug)
		}
		l.profiles[p.Slug] = p
	}
	return l, nil
}

// Default returns the profile served at "/".
func (l *Library) Default() *Profile { return l.profiles[l.def] }

// Get returns the profile for slug.
func (l *Library) Get(slug string) (*Profile, bool) {
	p, ok := l.profiles[slug]
	return p, ok
}

// Slugs returns all slugs, sorted.
func (l *Library) Slugs() []string {
	out := make([]string, 0, len(l.profiles))
	for s := range l.profiles {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
