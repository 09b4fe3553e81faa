package templates

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*
var embeddedTemplates embed.FS

// EmbeddedFS returns the bundled template documents. Callers may pass this
// filesystem to LoadFS.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "builtin")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Builtin loads the bundled templates into a catalog.
func Builtin() (*Catalog, error) {
	return LoadFS(EmbeddedFS())
}
