package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// New returns the html/template engine over the embedded pages.
func New() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
