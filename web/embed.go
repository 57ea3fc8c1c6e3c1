package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// StaticFS embeds the dashboard (html/css/js/icons).
//
//go:embed static
var StaticFS embed.FS

// Static returns the dashboard files rooted at the site root
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler serves the embedded dashboard. /index.html is answered directly
// instead of being redirected to /.
func Handler() http.Handler {
	files := http.FileServer(http.FS(Static()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/index.html" {
			r = r.Clone(r.Context())
			r.URL.Path = "/"
		}
		files.ServeHTTP(w, r)
	})
}
