package repos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func strp(s string) *string { return &s }

func auctionRepo() RawRepo {
	return RawRepo{
		Name:            "online-auction-system",
		Description:     nil,
		Language:        strp("Java"),
		Topics:          []string{"spring-boot"},
		Fork:            false,
		Homepage:        nil,
		HTMLURL:         "https://x/y",
		StargazersCount: 3,
		ForksCount:      1,
		UpdatedAt:       "2024-01-01",
	}
}

func TestNormalizeExample(t *testing.T) {
	got := Normalizer{}.Item(auctionRepo())

	assert.Equal(t, "Online Auction System", got.Title)
	assert.Equal(t, "No description available", got.Description)
	assert.Equal(t, []string{"Java", "spring-boot"}, got.Tags)
	assert.Equal(t, "https://x/y", got.Link)
	assert.Equal(t, "https://x/y", got.RepoLink)
	assert.Equal(t, 3, got.Stars)
	assert.Equal(t, 1, got.Forks)
	require.NotNil(t, got.Language)
	assert.Equal(t, "Java", *got.Language)
	assert.Equal(t, "2024-01-01", got.UpdatedAt)
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"online-auction-system": "Online Auction System",
		"weather_SkyGuru":       "Weather SkyGuru",
		"journal_app":           "Journal App",
		"Url-shortener-sb":      "Url Shortener Sb",
		"node.js-tools":         "Node.Js Tools",
		"v2-api":                "V2 Api",
		"":                      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, TitleCase(in), "input %q", in)
	}
}

func TestTagsNeverExceedFourOrContainEmpty(t *testing.T) {
	r := auctionRepo()
	r.Language = nil
	r.Topics = []string{"", "a", "b", " ", "c", "d", "e"}
	tags := Normalizer{}.Item(r).Tags
	assert.Equal(t, []string{"a", "b", "c", "d"}, tags)

	r.Topics = nil
	assert.Empty(t, Normalizer{}.Item(r).Tags)
	assert.NotNil(t, Normalizer{}.Item(r).Tags)
}

func TestHomepagePreferred(t *testing.T) {
	r := auctionRepo()
	r.Homepage = strp("https://demo.example")
	got := Normalizer{}.Item(r)
	assert.Equal(t, "https://demo.example", got.Link)
	assert.Equal(t, "https://x/y", got.RepoLink)

	r.Homepage = strp("")
	assert.Equal(t, "https://x/y", Normalizer{}.Item(r).Link)
}

func TestNormalizeDropsForksAndIsIdempotent(t *testing.T) {
	fork := auctionRepo()
	fork.Name = "someone-elses"
	fork.Fork = true
	other := auctionRepo()
	other.Name = "clipnest"
	other.Description = strp("Pinterest clone")
	raw := []RawRepo{auctionRepo(), fork, other}

	n := Normalizer{}
	first := n.Normalize(raw)
	second := n.Normalize(raw)

	require.Len(t, first, 2)
	assert.Equal(t, "Online Auction System", first[0].Title)
	assert.Equal(t, "Clipnest", first[1].Title)
	assert.Equal(t, first, second)
}

func TestOverrides(t *testing.T) {
	n := Normalizer{Overrides: map[string]Override{
		"online-auction-system": {
			Description: "Full-stack auction system",
			Tags:        []string{"Spring Boot", "React", "MySQL", "Socket.io", "Extra"},
			Image:       "/auction_system.png",
		},
	}}
	got := n.Item(auctionRepo())
	assert.Equal(t, "Online Auction System", got.Title)
	assert.Equal(t, "Full-stack auction system", got.Description)
	assert.Equal(t, []string{"Spring Boot", "React", "MySQL", "Socket.io"}, got.Tags)
	assert.Equal(t, "/auction_system.png", got.Image)
}

func TestPlaceholderImageStable(t *testing.T) {
	a := PlaceholderImage("AB", "Go")
	assert.Equal(t, "https://loremflickr.com/600/400/Go,tech,coding,software?lock=131", a)
	assert.Equal(t, a, PlaceholderImage("AB", "Go"))
	assert.Contains(t, PlaceholderImage("AB", ""), "/code,tech,coding,software?")
}

func TestSanitize(t *testing.T) {
	got := Sanitize(DisplayItem{
		Title:    "Thing",
		Tags:     []string{"", "a", "b", "c", "d", "e"},
		RepoLink: "https://github.com/u/thing",
		Stars:    -2,
		Language: strp(""),
	})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got.Tags)
	assert.Equal(t, 0, got.Stars)
	assert.Equal(t, NoDescription, got.Description)
	assert.Equal(t, "https://github.com/u/thing", got.Link)
	assert.Nil(t, got.Language)
	assert.NotEmpty(t, got.Image)
}

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, "#00ADD8", LanguageColor("Go"))
	assert.Equal(t, DefaultLanguageColor, LanguageColor("COBOL"))
}

func newUpstream(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		assert.Equal(t, "/users/octo/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const upstreamBody = `[
  {"name":"online-auction-system","description":null,"language":"Java","topics":["spring-boot"],
   "homepage":null,"html_url":"https://x/y","stargazers_count":3,"forks_count":1,"fork":false,"updated_at":"2024-01-01"},
  {"name":"forked","html_url":"https://x/f","fork":true}
]`

func TestClientListRepos(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, upstreamBody, nil)
	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)

	repos, err := c.ListRepos(context.Background(), "octo")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Nil(t, repos[0].Description)
	assert.True(t, repos[1].Fork)
}

func TestClientNon2xx(t *testing.T) {
	srv := newUpstream(t, http.StatusForbidden, `{"message":"rate limited"}`, nil)
	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)

	_, err := c.ListRepos(context.Background(), "octo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClientCachesSuccess(t *testing.T) {
	var hits int32
	srv := newUpstream(t, http.StatusOK, upstreamBody, &hits)
	c := NewClient(ClientConfig{BaseURL: srv.URL, Revalidate: time.Hour}, nil)

	for i := 0; i < 3; i++ {
		_, err := c.ListRepos(context.Background(), "octo")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientRequiresUser(t *testing.T) {
	_, err := NewClient(ClientConfig{}, nil).ListRepos(context.Background(), "")
	assert.Error(t, err)
}

type stubCatalog struct {
	items []DisplayItem
	err   error
	calls int32
	gate  chan struct{}
}

func (s *stubCatalog) Projects(ctx context.Context) ([]DisplayItem, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.gate != nil {
		<-s.gate
	}
	return s.items, s.err
}

func TestProviderSucceedsOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	cat := &stubCatalog{items: []DisplayItem{{Title: "A"}}}
	p := NewProvider(cat, nil)
	assert.Equal(t, NotFetched, p.State())

	got := p.Load(context.Background())
	assert.Equal(t, []DisplayItem{{Title: "A"}}, got)
	assert.Equal(t, Succeeded, p.State())

	cat.items = []DisplayItem{{Title: "B"}}
	assert.Equal(t, []DisplayItem{{Title: "A"}}, p.Load(context.Background()), "first resolution is final")
	assert.Equal(t, int32(1), atomic.LoadInt32(&cat.calls))
}

func TestProviderFailsSoft(t *testing.T) {
	p := NewProvider(&stubCatalog{err: errors.New("boom")}, nil)
	got := p.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, Failed, p.State())
}

func TestProviderDropsLateResultAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	cat := &stubCatalog{items: []DisplayItem{{Title: "late"}}, gate: make(chan struct{})}
	p := NewProvider(cat, nil)

	result := make(chan []DisplayItem, 1)
	go func() { result <- p.Load(context.Background()) }()

	require.Eventually(t, func() bool { return p.State() == Fetching }, time.Second, time.Millisecond)
	p.Close()
	close(cat.gate)

	assert.Empty(t, <-result)
	assert.Equal(t, Fetching, p.State(), "no write after unmount")
	assert.Empty(t, p.Load(context.Background()))
}

func TestProviderStaticMode(t *testing.T) {
	static := NewStaticCatalog([]DisplayItem{{
		Title:    "Online Auction System",
		Tags:     []string{"Java Servlet", "JSP", "MySQL"},
		RepoLink: "https://github.com/u/online-auction-system",
		Language: strp("Java"),
		Image:    "/auction_system.png",
	}})
	p := NewProvider(static, nil)
	got := p.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "https://github.com/u/online-auction-system", got[0].Link)
	assert.Equal(t, Succeeded, p.State())
}

func TestRemoteCatalog(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, upstreamBody, nil)
	cat := NewRemoteCatalog(NewClient(ClientConfig{BaseURL: srv.URL}, nil), "octo", Normalizer{})
	items, err := cat.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Online Auction System", items[0].Title)
}

func TestRouteSuccess(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, upstreamBody, nil)
	r := chi.NewRouter()
	RegisterRoutes(r, NewRemoteCatalog(NewClient(ClientConfig{BaseURL: srv.URL}, nil), "octo", Normalizer{}), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/github", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Online Auction System", items[0]["title"])
	assert.Equal(t, "No description available", items[0]["description"])
	assert.Equal(t, "https://x/y", items[0]["repoLink"])
}

func TestRouteUpstreamFailure(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusNotFound} {
		srv := newUpstream(t, status, `oops`, nil)
		r := chi.NewRouter()
		RegisterRoutes(r, NewRemoteCatalog(NewClient(ClientConfig{BaseURL: srv.URL}, nil), "octo", Normalizer{}), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/github", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	}
}

func TestRouteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	r := chi.NewRouter()
	RegisterRoutes(r, NewRemoteCatalog(NewClient(ClientConfig{BaseURL: base, Timeout: time.Second}, nil), "octo", Normalizer{}), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/github", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
