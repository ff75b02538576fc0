// Package web embeds the site's pages and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views/*.html
var views embed.FS

//go:embed public
var public embed.FS

// Views returns the HTML pages, rooted at the views directory.
func Views() fs.FS {
	return mustSub(views, "views")
}

// Public returns the assets served under /public/.
func Public() fs.FS {
	return mustSub(public, "public")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
