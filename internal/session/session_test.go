package session

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/folio-dev/folio/internal/content"
	"github.com/folio-dev/folio/internal/cursor"
	"github.com/folio-dev/folio/internal/repos"
	"github.com/folio-dev/folio/internal/sections"
)

type recorder struct {
	mu   sync.Mutex
	msgs []interface{}
}

func (r *recorder) emit(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, v)
}

func (r *recorder) all() []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]interface{}(nil), r.msgs...)
}

func (r *recorder) navs() []NavMessage {
	var out []NavMessage
	for _, m := range r.all() {
		if n, ok := m.(NavMessage); ok {
			out = append(out, n)
		}
	}
	return out
}

func (r *recorder) projects() []ProjectsMessage {
	var out []ProjectsMessage
	for _, m := range r.all() {
		if p, ok := m.(ProjectsMessage); ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *recorder) lastFrame(t *testing.T) Frame {
	t.Helper()
	msgs := r.all()
	for i := len(msgs) - 1; i >= 0; i-- {
		if f, ok := msgs[i].(FrameMessage); ok {
			return f.Frame
		}
	}
	t.Fatal("no frame emitted")
	return Frame{}
}

func staticCatalog() repos.Catalog {
	lang := "Go"
	return repos.NewStaticCatalog([]repos.DisplayItem{{Title: "One", Link: "https://example.com", Language: &lang}})
}

// blockingCatalog holds the fetch until its context is cancelled.
type blockingCatalog struct {
	started chan struct{}
}

func (c *blockingCatalog) Projects(ctx context.Context) ([]repos.DisplayItem, error) {
	close(c.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func newSession(t *testing.T, catalog repos.Catalog) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := New(Config{Catalog: catalog}, rec.emit, nil)
	s.Start(context.Background())
	t.Cleanup(s.Close)
	return s, rec
}

func TestStartEmitsNavAndProjects(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, rec := newSession(t, staticCatalog())
	require.Eventually(t, func() bool { return len(rec.projects()) == 1 }, time.Second, 5*time.Millisecond)

	navs := rec.navs()
	require.NotEmpty(t, navs)
	assert.Equal(t, sections.State{Active: "hero", Visible: true}, navs[0].State)

	assert.Equal(t, "One", rec.projects()[0].Projects[0].Title)
	assert.Equal(t, repos.Succeeded, s.ProjectState())
	s.Close()
}

func TestPointerAndFrame(t *testing.T) {
	s, rec := newSession(t, staticCatalog())

	require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 1.0 / 60}))
	assert.Equal(t, cursor.Offscreen, rec.lastFrame(t).Position, "no pointer events keeps the cursor parked")

	require.NoError(t, s.Apply(Inbound{Type: TypePointer, X: 400, Y: 300}))
	require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 1.0 / 60}))
	f := rec.lastFrame(t)
	assert.Equal(t, 400.0, f.Dot.X)
	assert.Greater(t, f.Position.X, -100.0)
	assert.Less(t, f.Position.X, 400.0)

	for i := 0; i < 240; i++ {
		require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 1.0 / 60}))
	}
	f = rec.lastFrame(t)
	assert.InDelta(t, 400, f.Position.X, 1)
	assert.InDelta(t, 300, f.Position.Y, 1)
}

func TestFrameStepIsCapped(t *testing.T) {
	a, recA := newSession(t, staticCatalog())
	b, recB := newSession(t, staticCatalog())

	for _, s := range []*Session{a, b} {
		require.NoError(t, s.Apply(Inbound{Type: TypePointer, X: 100, Y: 100}))
	}
	require.NoError(t, a.Apply(Inbound{Type: TypeFrame, DT: 5}))
	require.NoError(t, b.Apply(Inbound{Type: TypeFrame, DT: maxFrameStep}))
	assert.Equal(t, recB.lastFrame(t).Position, recA.lastFrame(t).Position)
}

func TestVariantEvents(t *testing.T) {
	s, rec := newSession(t, staticCatalog())

	require.NoError(t, s.Apply(Inbound{Type: TypeEnter, Variant: "hover"}))
	require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 0.016}))
	assert.Equal(t, cursor.Hover, rec.lastFrame(t).Variant)
	assert.Equal(t, 60, rec.lastFrame(t).Style.Size)

	require.NoError(t, s.Apply(Inbound{Type: TypeEnter, Variant: "TEXT"}))
	assert.Equal(t, cursor.Text, s.Variant())

	require.NoError(t, s.Apply(Inbound{Type: TypeEnter, Variant: "sparkle"}))
	assert.Equal(t, cursor.Default, s.Variant(), "unknown variants fall back to default")

	require.NoError(t, s.Apply(Inbound{Type: TypeEnter, Variant: "hover"}))
	require.NoError(t, s.Apply(Inbound{Type: TypeLeave}))
	require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 0.016}))
	assert.Equal(t, 20, rec.lastFrame(t).Style.Size)
}

func TestScrollAndLayout(t *testing.T) {
	s, rec := newSession(t, staticCatalog())

	var layout []SectionGeometry
	for i, sec := range sections.DefaultNav {
		layout = append(layout, SectionGeometry{ID: sec.ID, Top: float64(i) * 1000, Height: 1000})
	}
	require.NoError(t, s.Apply(Inbound{Type: TypeLayout, Sections: layout}))
	require.NoError(t, s.Apply(Inbound{Type: TypeScroll, ScrollY: 2100, ViewportHeight: 800}))

	assert.Equal(t, sections.State{Active: "projects", Visible: false}, s.Nav())
	last := rec.navs()[len(rec.navs())-1]
	assert.Equal(t, "projects", last.Active)
	assert.False(t, last.Visible)

	require.NoError(t, s.Apply(Inbound{Type: TypeScroll, ScrollY: 1500, ViewportHeight: 800}))
	assert.True(t, s.Nav().Visible, "scrolling up reveals the nav")
	assert.Equal(t, "about", s.Nav().Active)

	require.NoError(t, s.Apply(Inbound{Type: TypeExpand, Expanded: true}))
	assert.True(t, s.Nav().Expanded)
}

func TestMagnet(t *testing.T) {
	s, rec := newSession(t, staticCatalog())

	assert.Error(t, s.Apply(Inbound{Type: TypeMagnet, X: 10, Y: 10}))

	bounds := sections.Rect{Left: 0, Top: 0, Width: 200, Height: 40}
	require.NoError(t, s.Apply(Inbound{Type: TypeMagnet, X: 200, Y: 40, Bounds: &bounds}))
	for i := 0; i < 240; i++ {
		require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 1.0 / 60}))
	}
	off := rec.lastFrame(t).NavOffset
	assert.InDelta(t, 10, off.X, 0.1)
	assert.InDelta(t, 2, off.Y, 0.1)

	require.NoError(t, s.Apply(Inbound{Type: TypeMagnetLeave}))
	for i := 0; i < 240; i++ {
		require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 1.0 / 60}))
	}
	assert.InDelta(t, 0, rec.lastFrame(t).NavOffset.X, 0.1)
}

func TestUnknownType(t *testing.T) {
	s, _ := newSession(t, staticCatalog())
	assert.ErrorContains(t, s.Apply(Inbound{Type: "teleport"}), "teleport")
}

func TestCloseDropsInFlightProjects(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cat := &blockingCatalog{started: make(chan struct{})}
	rec := &recorder{}
	s := New(Config{Catalog: cat}, rec.emit, nil)
	s.Start(context.Background())
	<-cat.started

	s.Close()
	assert.Empty(t, rec.projects())
	assert.Equal(t, repos.Fetching, s.ProjectState())

	before := len(rec.all())
	require.NoError(t, s.Apply(Inbound{Type: TypeFrame, DT: 0.016}))
	assert.Len(t, rec.all(), before, "a closed session emits nothing")
	s.Close()
}

func TestFailedCatalogEmitsEmptyList(t *testing.T) {
	cat := &blockingCatalog{started: make(chan struct{})}
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	s := New(Config{Catalog: cat}, rec.emit, nil)
	s.Start(ctx)
	defer s.Close()

	<-cat.started
	cancel()
	require.Eventually(t, func() bool { return len(rec.projects()) == 1 }, time.Second, 5*time.Millisecond)
	assert.NotNil(t, rec.projects()[0].Projects)
	assert.Empty(t, rec.projects()[0].Projects)
	assert.Equal(t, repos.Failed, s.ProjectState())
}

func newWSServer(t *testing.T) *httptest.Server {
	t.Helper()
	ravi, err := content.Builtin("ravi")
	require.NoError(t, err)
	aditya, err := content.Builtin("aditya")
	require.NoError(t, err)
	lib, err := content.NewLibrary(ravi, aditya)
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, &Handler{
		Library: lib,
		Catalog: func(p *content.Profile) repos.Catalog { return p.StaticCatalog() },
	})
	return httptest.NewServer(r)
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/session" + query
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	return conn
}

type wire struct {
	Type     string              `json:"type"`
	Active   string              `json:"active"`
	Visible  bool                `json:"visible"`
	Frame    *Frame              `json:"frame"`
	Projects []repos.DisplayItem `json:"projects"`
	Message  string              `json:"message"`
}

func readUntil(t *testing.T, conn *websocket.Conn, typ string) wire {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var m wire
		require.NoError(t, conn.ReadJSON(&m))
		if m.Type == typ {
			return m
		}
	}
}

func TestWebSocketSession(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newWSServer(t)
	defer srv.Close()

	conn := dial(t, srv, "?persona=aditya")
	defer conn.Close()

	nav := readUntil(t, conn, TypeNav)
	assert.Equal(t, "hero", nav.Active)
	assert.True(t, nav.Visible)

	projects := readUntil(t, conn, TypeProjects)
	assert.NotEmpty(t, projects.Projects)

	require.NoError(t, conn.WriteJSON(Inbound{Type: TypePointer, X: 50, Y: 60}))
	require.NoError(t, conn.WriteJSON(Inbound{Type: TypeEnter, Variant: "text"}))
	require.NoError(t, conn.WriteJSON(Inbound{Type: TypeFrame, DT: 0.016}))
	frame := readUntil(t, conn, TypeFrame)
	require.NotNil(t, frame.Frame)
	assert.Equal(t, 50.0, frame.Frame.Dot.X)
	assert.Equal(t, cursor.Text, frame.Frame.Variant)
	assert.Equal(t, 100, frame.Frame.Style.Size)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	assert.Equal(t, "invalid message format", readUntil(t, conn, TypeError).Message)

	require.NoError(t, conn.WriteJSON(Inbound{Type: "warp"}))
	assert.Contains(t, readUntil(t, conn, TypeError).Message, "warp")

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestWebSocketUnknownPersona(t *testing.T) {
	srv := newWSServer(t)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/session?persona=nobody"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}
