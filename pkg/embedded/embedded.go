package embedded

import (
	"embed"
	"io/fs"
)

// Static holds the stylesheet served under /static
//
//go:embed static/style.css
var Static embed.FS

// StaticFS returns the static assets rooted at static/
func StaticFS() fs.FS {
	sub, err := fs.Sub(Static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
