package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"fortune-dashboard/merger"
	"fortune-dashboard/models"
	"fortune-dashboard/quotes"
	"fortune-dashboard/search"
	"fortune-dashboard/session"
	"fortune-dashboard/summary"
	"fortune-dashboard/view"

	"github.com/gin-gonic/gin"
	"github.com/yanun0323/logs"
)

type Handler struct {
	Seeds    []models.Seed
	Provider quotes.Provider
	Sessions session.Store
	Engine   string // search engine kind
}

func NewHandler(seeds []models.Seed, provider quotes.Provider, sessions session.Store, engine string) *Handler {
	return &Handler{
		Seeds:    seeds,
		Provider: provider,
		Sessions: sessions,
		Engine:   engine,
	}
}

// Column is one table header with the link that applies its next sort state.
type Column struct {
	Label string
	Key   view.SortKey
	Href  string
	Dir   view.Direction // empty when not the active sort
	Right bool
}

type dashboardPage struct {
	Session string
	State   view.State
	Hidden  url.Values
	Columns []Column
	Rows    []models.Company
	Total   int
	Cards   summary.Cards
}

type companiesResponse struct {
	Session   string           `json:"session"`
	Query     string           `json:"query"`
	Sort      string           `json:"sort,omitempty"`
	Direction string           `json:"dir,omitempty"`
	Count     int              `json:"count"`
	Summary   summary.Cards    `json:"summary"`
	Companies []models.Company `json:"companies"`
}

var columns = []struct {
	label string
	key   view.SortKey
	right bool
}{
	{"Rank", view.SortRank, false},
	{"Company", view.SortName, false},
	{"Industry", view.SortIndustry, false},
	{"Revenue", view.SortRevenue, false},
	{"Market Cap", view.SortMarketCap, false},
	{"Employees", view.SortEmployees, true},
	{"Change", view.SortChange, true},
}

// Dashboard renders the page. A request without a live session id is a page
// load and fetches quotes; one with an id only re-derives the view.
func (h *Handler) Dashboard(c *gin.Context) {
	id, companies := h.dataset(c.Request.Context(), c.Query("session"))
	state := view.ParseState(c.Request.URL.Query())

	c.HTML(http.StatusOK, "dashboard.tmpl", dashboardPage{
		Session: id,
		State:   state,
		Hidden:  stateFields(id, state),
		Columns: buildColumns(id, state),
		Rows:    h.project(companies, state),
		Total:   len(companies),
		Cards:   summary.Compute(companies),
	})
}

// Companies serves the same projection as JSON.
func (h *Handler) Companies(c *gin.Context) {
	id, companies := h.dataset(c.Request.Context(), c.Query("session"))
	state := view.ParseState(c.Request.URL.Query())
	rows := h.project(companies, state)

	resp := companiesResponse{
		Session:   id,
		Query:     state.Query,
		Count:     len(rows),
		Summary:   summary.Compute(companies),
		Companies: rows,
	}
	if state.Sort != nil {
		resp.Sort = string(state.Sort.Key)
		resp.Direction = string(state.Sort.Direction)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// dataset returns the stored dataset for id, or builds and stores a new one.
// It always yields a complete list; storage failures only cost the session id.
func (h *Handler) dataset(ctx context.Context, id string) (string, []models.Company) {
	if id != "" {
		companies, ok, err := h.Sessions.Get(ctx, id)
		if err != nil {
			logs.Errorf("load session %s, err: %+v", id, err)
		}
		if ok {
			return id, companies
		}
	}

	companies := merger.Build(ctx, h.Seeds, h.Provider)
	newID, err := h.Sessions.Put(ctx, companies)
	if err != nil {
		logs.Errorf("store session, err: %+v", err)
		return "", companies
	}
	return newID, companies
}

func (h *Handler) project(companies []models.Company, state view.State) []models.Company {
	engine, err := search.NewEngine(h.Engine, companies)
	if err != nil {
		logs.Errorf("build %s search engine, using memory, err: %+v", h.Engine, err)
		engine = search.NewInMemoryEngine(companies)
	}
	if closer, ok := engine.(io.Closer); ok {
		defer closer.Close()
	}
	return view.NewModel(companies, engine).Project(state)
}

func buildColumns(id string, state view.State) []Column {
	out := make([]Column, 0, len(columns))
	for _, col := range columns {
		dir, _ := state.SortedBy(col.key)
		out = append(out, Column{
			Label: col.label,
			Key:   col.key,
			Href:  href(id, state.Toggle(col.key)),
			Dir:   dir,
			Right: col.right,
		})
	}
	return out
}

func href(id string, state view.State) string {
	v := state.Values()
	if id != "" {
		v.Set("session", id)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// stateFields are the hidden inputs that carry session and sort through the
// search form.
func stateFields(id string, state view.State) url.Values {
	v := url.Values{}
	if id != "" {
		v.Set("session", id)
	}
	if state.Sort != nil {
		v.Set("sort", string(state.Sort.Key))
		v.Set("dir", string(state.Sort.Direction))
	}
	return v
}
