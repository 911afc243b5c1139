// Package web embeds the HTML views and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views
var views embed.FS

//go:embed static
var static embed.FS

// Views returns the template tree rooted at the views directory.
func Views() fs.FS {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
