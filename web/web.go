// Package web holds the HTML templates, embedded into the binary.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// Layout wraps every page template.
const Layout = "layouts/main"

// placeholderPoster is shown when OMDb has no poster for a title.
const placeholderPoster = "https://via.placeholder.com/300x445?text=No+Poster"

//go:embed templates
var templates embed.FS

// NewEngine returns a view engine reading the embedded templates.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("poster", Poster)
	engine.AddFunc("percent", Percent)

	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return engine, nil
}

// Poster returns url, or a placeholder when OMDb reports none.
func Poster(url string) string {
	if url == "" || url == "N/A" {
		return placeholderPoster
	}
	return url
}

// Percent returns part as a whole-number percentage of total.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
