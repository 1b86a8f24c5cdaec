package repos

import (
	"context"
	"fmt"
)

// Catalog produces the project list for the Projects section.
type Catalog interface {
	Projects(ctx context.Context) ([]DisplayItem, error)
}

// Lister is the part of Client a RemoteCatalog needs.
type Lister interface {
	ListRepos(ctx context.Context, user string) ([]RawRepo, error)
}

// RemoteCatalog lists a fixed user's repositories and normalizes them.
type RemoteCatalog struct {
	lister     Lister
	user       string
	normalizer Normalizer
}

// NewRemoteCatalog returns a catalog for user.
func NewRemoteCatalog(lister Lister, user string, normalizer Normalizer) *RemoteCatalog {
	return &RemoteCatalog{lister: lister, user: user, normalizer: normalizer}
}

// Projects implements Catalog.
func (c *RemoteCatalog) Projects(ctx context.Context) ([]DisplayItem, error) {
	raw, err := c.lister.ListRepos(ctx, c.user)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", c.user, err)
	}
	return c.normalizer.Normalize(raw), nil
}

// StaticCatalog serves a hand-curated list without touching the network.
type StaticCatalog struct {
	items []DisplayItem
}

// NewStaticCatalog sanitizes items into the fetched display shape.
func NewStaticCatalog(items []DisplayItem) *StaticCatalog {
	clean := make([]DisplayItem, len(items))
	for i, it := range items {
		clean[i] = Sanitize(it)
	}
	return &StaticCatalog{items: clean}
}

// Projects implements Catalog. Callers get their own copy of the list.
func (c *StaticCatalog) Projects(context.Context) ([]DisplayItem, error) {
	out := make([]DisplayItem, len(c.items))
	for i, it := range c.items {
		it.Tags = append([]string(nil), it.Tags...)
		out[i] = it
	}
	return out, nil
}
