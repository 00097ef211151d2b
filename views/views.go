// Package views embeds the html templates rendered by the fiber engine.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html errors/*.html invitation/*.html partials/*.html
var files embed.FS

// NewEngine returns an html engine over the embedded templates. Template names
// are their paths without extension, e.g. "invitation/show".
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.Reload(reload)
	return engine
}
