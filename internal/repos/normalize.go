package repos

import (
	"fmt"
	"strings"
)

const (
	// NoDescription replaces a missing repository description.
	NoDescription = "No description available"
	// MaxTags caps the tag chips shown per project.
	MaxTags = 4
)

// Normalizer turns raw repository records into display items.
type Normalizer struct {
	// Overrides are keyed by repository name.
	Overrides map[string]Override
}

// Normalize converts every non-fork record, preserving input order.
func (n Normalizer) Normalize(raw []RawRepo) []DisplayItem {
	items := make([]DisplayItem, 0, len(raw))
	for _, r := range raw {
		if r.Fork {
			continue
		}
		items = append(items, n.Item(r))
	}
	return items
}

// Item converts a single record.
func (n Normalizer) Item(r RawRepo) DisplayItem {
	var lang string
	if r.Language != nil {
		lang = *r.Language
	}

	item := DisplayItem{
		Title:       TitleCase(r.Name),
		Description: deref(r.Description),
		Tags:        Tags(append([]string{lang}, r.Topics...)),
		Link:        r.HTMLURL,
		RepoLink:    r.HTMLURL,
		Stars:       nonNegative(r.StargazersCount),
		Forks:       nonNegative(r.ForksCount),
		UpdatedAt:   r.UpdatedAt,
	}
	if item.Description == "" {
		item.Description = NoDescription
	}
	if home := deref(r.Homepage); home != "" {
		item.Link = home
	}
	if lang != "" {
		item.Language = &lang
	}

	if o, ok := n.Overrides[r.Name]; ok {
		if o.Title != "" {
			item.Title = o.Title
		}
		if o.Description != "" {
			item.Description = o.Description
		}
		if len(o.Tags) > 0 {
			item.Tags = Tags(o.Tags)
		}
		item.Image = o.Image
	}
	if item.Image == "" {
		item.Image = PlaceholderImage(item.Title, lang)
	}
	return item
}

// Sanitize brings a hand-curated item into the same shape as a fetched one.
func Sanitize(item DisplayItem) DisplayItem {
	item.Tags = Tags(item.Tags)
	item.Stars = nonNegative(item.Stars)
	item.Forks = nonNegative(item.Forks)
	if item.Description == "" {
		item.Description = NoDescription
	}
	if item.Link == "" {
		item.Link = item.RepoLink
	}
	if item.Language != nil && *item.Language == "" {
		item.Language = nil
	}
	if item.Image == "" {
		var lang string
		if item.Language != nil {
			lang = *item.Language
		}
		item.Image = PlaceholderImage(item.Title, lang)
	}
	return item
}

// TitleCase turns a hyphen/underscore separated repository name into space
// separated words and upper-cases the first character of every word. Word
// characters are ASCII letters, digits and underscore; the rest of each word
// is left as is.
func TitleCase(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	out := []byte(name)
	prevWord := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		word := isWordByte(c)
		if word && !prevWord && c >= 'a' && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
		prevWord = word
	}
	return string(out)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Tags drops empty entries and keeps at most MaxTags.
func Tags(in []string) []string {
	out := make([]string, 0, MaxTags)
	for _, t := range in {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, t)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

// PlaceholderImage returns a stable stock image for projects without a
// screenshot. The lock value is the sum of the title's code points so the
// same title always gets the same picture.
func PlaceholderImage(title, language string) string {
	lock := 0
	for _, r := range title {
		lock += int(r)
	}
	if language == "" {
		language = "code"
	}
	keywords := strings.Join([]string{language, "tech", "coding", "software"}, ",")
	return fmt.Sprintf("https://loremflickr.com/600/400/%s?lock=%d", keywords, lock)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
