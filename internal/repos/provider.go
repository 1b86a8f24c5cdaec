package repos

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Provider loads the project list once per page mount. Failures resolve to
// an empty list; the first resolution is final.
type Provider struct {
	catalog Catalog
	logger  *zap.Logger

	mu     sync.Mutex
	state  FetchState
	items  []DisplayItem
	closed bool
	done   chan struct{}
}

// NewProvider returns a provider in the NotFetched state.
func NewProvider(catalog Catalog, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		catalog: catalog,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (p *Provider) State() FetchState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load starts the fetch on first call and waits for its result. Later calls
// wait for and return the same result. The returned slice is never nil.
func (p *Provider) Load(ctx context.Context) []DisplayItem {
	p.mu.Lock()
	switch {
	case p.closed:
		p.mu.Unlock()
		return []DisplayItem{}
	case p.state == NotFetched:
		p.state = Fetching
		p.mu.Unlock()
		p.fetch(ctx)
	default:
		p.mu.Unlock()
	}

	select {
	case <-p.done:
	case <-ctx.Done():
		return []DisplayItem{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return []DisplayItem{}
	}
	return append([]DisplayItem(nil), p.items...)
}

func (p *Provider) fetch(ctx context.Context) {
	items, err := p.catalog.Projects(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	defer close(p.done)

	if p.closed {
		p.logger.Debug("discarding repository result after unmount")
		return
	}
	if err != nil {
		p.logger.Warn("repository fetch failed", zap.Error(err))
		p.state = Failed
		p.items = []DisplayItem{}
		return
	}
	if items == nil {
		items = []DisplayItem{}
	}
	p.state = Succeeded
	p.items = items
}

// Close marks the owning page as unmounted. Any in-flight result is dropped.
func (p *Provider) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}
