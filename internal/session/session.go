// Package session hosts the interaction state of one mounted page: pointer
// tracking, cursor variant, active section and the one-shot project load.
// The page streams events in and renders the frames it gets back.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio-dev/folio/internal/cursor"
	"github.com/folio-dev/folio/internal/motion"
	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/sections"
)

// maxFrameStep caps a single tick so a backgrounded tab does not fling the
// springs when it resumes.
const maxFrameStep = 0.1

// Emitter receives every outbound message. It must be safe for concurrent
// use; the project loader emits from its own goroutine.
type Emitter func(v interface{})

// Config describes the page a session is attached to.
type Config struct {
	Nav     []sections.Section
	Catalog repos.Catalog
	Trail   motion.SpringConfig
}

// Session owns the state machines of one page mount. Apply must be called
// from a single goroutine, in event order.
type Session struct {
	ID string

	store    *cursor.Store
	bus      *cursor.PointerBus
	tracker  *cursor.Tracker
	observer *sections.Observer
	magnet   *sections.Magnet
	provider *repos.Provider
	logger   *zap.Logger

	mu     sync.Mutex
	emit   Emitter
	closed bool

	detach  func()
	unsub   func()
	cancel  context.CancelFunc
	loading sync.WaitGroup
}

// New wires a session. Nothing is emitted until Start.
func New(cfg Config, emit Emitter, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Trail == (motion.SpringConfig{}) {
		cfg.Trail = motion.CursorTrail
	}
	nav := cfg.Nav
	if len(nav) == 0 {
		nav = sections.DefaultNav
	}

	id := uuid.NewString()
	logger = logger.With(zap.String("session", id))

	store := cursor.NewStore()
	s := &Session{
		ID:       id,
		store:    store,
		bus:      cursor.NewPointerBus(),
		tracker:  cursor.NewTracker(store, cfg.Trail),
		observer: sections.NewObserver(nav),
		magnet:   sections.NewMagnet(),
		provider: repos.NewProvider(cfg.Catalog, logger),
		logger:   logger,
		emit:     emit,
	}
	s.detach = s.tracker.Attach(s.bus)
	s.unsub = s.observer.Subscribe(func(st sections.State) {
		s.send(NavMessage{Type: TypeNav, State: st})
	})
	return s
}

// Start emits the initial nav state and begins the project load.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.send(NavMessage{Type: TypeNav, State: s.observer.State()})

	s.loading.Add(1)
	go func() {
		defer s.loading.Done()
		items := s.provider.Load(ctx)
		if s.provider.State() == repos.Fetching {
			// Closed before the result arrived.
			return
		}
		s.send(ProjectsMessage{Type: TypeProjects, Projects: items})
	}()
}

// Apply processes one inbound event.
func (s *Session) Apply(in Inbound) error {
	switch in.Type {
	case TypePointer:
		s.bus.Publish(motion.Point{X: in.X, Y: in.Y})
	case TypeEnter:
		s.store.Enter(cursor.ParseVariant(in.Variant))
	case TypeLeave:
		s.store.Leave()
	case TypeScroll:
		s.observer.Scroll(in.ScrollY, in.ViewportHeight)
	case TypeLayout:
		layout := make(sections.Layout, len(in.Sections))
		for _, g := range in.Sections {
			if g.ID == "" {
				continue
			}
			layout[g.ID] = sections.Geometry{Top: g.Top, Height: g.Height}
		}
		s.observer.SetLayout(layout)
	case TypeExpand:
		s.observer.Expand(in.Expanded)
	case TypeMagnet:
		if in.Bounds == nil {
			return fmt.Errorf("magnet event without bounds")
		}
		s.magnet.Move(motion.Point{X: in.X, Y: in.Y}, *in.Bounds)
	case TypeMagnetLeave:
		s.magnet.Leave()
	case TypeFrame:
		dt := in.DT
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
		s.send(FrameMessage{Type: TypeFrame, Frame: Frame{
			Frame:     s.tracker.Step(dt),
			NavOffset: s.magnet.Step(dt),
		}})
	default:
		return fmt.Errorf("unknown message type %q", in.Type)
	}
	return nil
}

// Variant returns the active cursor variant.
func (s *Session) Variant() cursor.Variant { return s.store.Get() }

// Nav returns the derived navigation state.
func (s *Session) Nav() sections.State { return s.observer.State() }

// ProjectState returns the project load state.
func (s *Session) ProjectState() repos.FetchState { return s.provider.State() }

// Close unmounts the session. Late project results are dropped and nothing
// is emitted afterwards. Close waits for the loader goroutine.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.provider.Close()
	if s.cancel != nil {
		s.cancel()
	}
	s.detach()
	s.unsub()
	s.loading.Wait()
	s.logger.Debug("session closed")
}

func (s *Session) send(v interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.emit == nil {
		return
	}
	s.emit(v)
}
