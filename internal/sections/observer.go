package sections

import "sync"

// navRevealZone is how close to the top of the page the nav is always shown.
const navRevealZone = 100

// State is the derived navigation state.
type State struct {
	Active   string `json:"active"`
	Visible  bool   `json:"visible"`
	Expanded bool   `json:"expanded"`
}

// Observer recomputes State from scroll events against an injected Layout.
type Observer struct {
	mu          sync.Mutex
	nav         []Section
	layout      Layout
	viewport    float64
	lastScrollY float64
	state       State

	nextID    int
	listeners map[int]func(State)
}

// NewObserver returns an observer for nav with the first section active and
// the nav visible, which is the state of a page loaded at the top.
func NewObserver(nav []Section) *Observer {
	o := &Observer{
		nav:       append([]Section(nil), nav...),
		layout:    Layout{},
		listeners: make(map[int]func(State)),
	}
	if len(nav) > 0 {
		o.state.Active = nav[0].ID
	}
	o.state.Visible = true
	return o
}

// Sections returns the declared navigation order.
func (o *Observer) Sections() []Section {
	return append([]Section(nil), o.nav...)
}

// State returns the current derived state.
func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SetLayout replaces the measured section geometry and re-evaluates the
// active section at the last known scroll position.
func (o *Observer) SetLayout(l Layout) State {
	o.mu.Lock()
	o.layout = make(Layout, len(l))
	for id, g := range l {
		o.layout[id] = g
	}
	next := o.state
	next.Active = Active(o.nav, o.layout, Probe(o.lastScrollY, o.viewport))
	return o.commit(next)
}

// Scroll processes one scroll event.
func (o *Observer) Scroll(scrollY, viewportHeight float64) State {
	o.mu.Lock()
	next := o.state
	if scrollY < o.lastScrollY || scrollY < navRevealZone {
		next.Visible = true
	} else {
		next.Visible = false
		next.Expanded = false
	}
	o.lastScrollY = scrollY
	o.viewport = viewportHeight
	next.Active = Active(o.nav, o.layout, Probe(scrollY, viewportHeight))
	return o.commit(next)
}

// Expand is driven by hover on the nav bar. A hidden nav cannot expand.
func (o *Observer) Expand(on bool) State {
	o.mu.Lock()
	next := o.state
	next.Expanded = on && next.Visible
	return o.commit(next)
}

// Subscribe registers fn for state changes and returns an unsubscribe func.
func (o *Observer) Subscribe(fn func(State)) func() {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// commit stores next and notifies listeners if it changed. Called with o.mu
// held; releases it.
func (o *Observer) commit(next State) State {
	changed := next != o.state
	o.state = next
	var listeners []func(State)
	if changed {
		for _, fn := range o.listeners {
			listeners = append(listeners, fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}
