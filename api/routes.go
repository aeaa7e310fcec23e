package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"fortune-dashboard/format"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"currency":    format.Currency,
	"number":      func(n int) string { return format.Number(float64(n)) },
	"change":      format.Change,
	"changeClass": format.ChangeClass,
	"rank":        format.Rank,
}

// NewRouter configures all routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())

	router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/health", h.Health)

	page := router.Group("/", NoCacheMiddleware())
	{
		page.GET("/", h.Dashboard)
		page.GET("/api/companies", h.Companies)
	}

	return router
}
