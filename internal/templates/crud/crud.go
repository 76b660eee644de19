// Package crud embeds the default CRUD template set.
package crud

import (
	"embed"
	"io/fs"
)

//go:embed java/*.tpl
var templates embed.FS

// FS returns the embedded default template set, rooted so template names
// resolve directly.
func FS() fs.FS {
	sub, err := fs.Sub(templates, "java")
	if err != nil {
		// The embed layout is fixed at build time.
		panic(err)
	}
	return sub
}
