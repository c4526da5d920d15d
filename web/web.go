// Package web embeds the HTML templates and static assets served by the app.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var content embed.FS

// Templates returns the filesystem rooted above templates/.
func Templates() fs.FS {
	return content
}

// Static returns the filesystem rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
