package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fortune-dashboard/models"
	"fortune-dashboard/quotes"
	"fortune-dashboard/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSeeds() []models.Seed {
	return []models.Seed{
		{Ticker: "A", Name: "Alpha", Industry: "Tech", Revenue: 100, Employees: 10, Website: "a.com"},
		{Ticker: "B", Name: "Beta", Industry: "Finance", Revenue: 200, Employees: 20, Website: "b.com"},
	}
}

func newTestRouter(provider quotes.Provider, engine string) (*gin.Engine, *session.MemoryStore) {
	store := session.NewMemoryStore(time.Minute)
	return NewRouter(NewHandler(testSeeds(), provider, store, engine)), store
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) companiesResponse {
	t.Helper()
	var resp companiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func liveProvider() *quotes.StaticProvider {
	return quotes.NewStaticProvider([]models.Quote{
		{Symbol: "A", MarketCap: quotes.Float(500), RegularMarketChangePercent: quotes.Float(1.5)},
	}, nil)
}

func TestCompaniesSortsAndFilters(t *testing.T) {
	for _, engine := range []string{"memory", "bleve"} {
		t.Run(engine, func(t *testing.T) {
			r, _ := newTestRouter(liveProvider(), engine)

			w := get(t, r, "/api/companies?sort=marketCap&dir=desc")
			require.Equal(t, http.StatusOK, w.Code)
			resp := decode(t, w)
			require.Len(t, resp.Companies, 2)
			assert.Equal(t, "A", resp.Companies[0].Ticker)
			assert.Equal(t, 500.0, resp.Companies[0].MarketCap)
			assert.Equal(t, 2, resp.Companies[1].Rank)
			assert.Equal(t, "marketCap", resp.Sort)
			assert.NotEmpty(t, resp.Session)

			w = get(t, r, "/api/companies?q=beta&session="+resp.Session)
			resp = decode(t, w)
			require.Len(t, resp.Companies, 1)
			assert.Equal(t, "B", resp.Companies[0].Ticker)
		})
	}
}

func TestSessionReuseSkipsRefetch(t *testing.T) {
	p := liveProvider()
	r, _ := newTestRouter(p, "memory")

	resp := decode(t, get(t, r, "/api/companies"))
	require.Equal(t, int64(1), p.Calls())

	q := url.Values{"session": {resp.Session}, "sort": {"revenue"}}
	again := decode(t, get(t, r, "/api/companies?"+q.Encode()))
	assert.Equal(t, int64(1), p.Calls())
	assert.Equal(t, resp.Session, again.Session)
	assert.Equal(t, "B", again.Companies[0].Ticker)

	// Unknown session is a fresh page load.
	fresh := decode(t, get(t, r, "/api/companies?session=stale"))
	assert.Equal(t, int64(2), p.Calls())
	assert.NotEqual(t, "stale", fresh.Session)
}

func TestCompaniesFallbackOnQuoteFailure(t *testing.T) {
	r, _ := newTestRouter(quotes.NewStaticProvider(nil, errors.New("boom")), "memory")

	w := get(t, r, "/api/companies")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Len(t, resp.Companies, 2)
	for i, c := range resp.Companies {
		assert.Equal(t, i+1, c.Rank)
		assert.Zero(t, c.MarketCap)
		assert.Zero(t, c.Change)
	}
}

func TestDashboardRendersTable(t *testing.T) {
	r, _ := newTestRouter(liveProvider(), "memory")

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Alpha")
	assert.Contains(t, body, "$500")
	assert.Contains(t, body, "+1.50%")
	assert.Contains(t, body, `href="https://a.com"`)
	assert.Contains(t, body, "sort=marketCap")
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestDashboardNoResults(t *testing.T) {
	r, _ := newTestRouter(liveProvider(), "memory")

	w := get(t, r, "/?q=nothing-matches")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No companies found.")
	assert.NotContains(t, w.Body.String(), "<table>")
}

func TestDashboardHeaderLinksToggle(t *testing.T) {
	r, _ := newTestRouter(liveProvider(), "memory")

	body := get(t, r, "/?sort=revenue&dir=desc").Body.String()
	// The active column's link flips to ascending; others start descending.
	assert.Equal(t, 1, strings.Count(body, "dir=asc&amp;"))
	assert.Contains(t, body, "sort=revenue")
	assert.Contains(t, body, "sort=name")
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(liveProvider(), "memory")

	w := get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestIDPassthrough(t *testing.T) {
	r, _ := newTestRouter(liveProvider(), "memory")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}
