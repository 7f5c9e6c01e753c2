package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/*.yaml
var embedded embed.FS

// EmbeddedFS returns the dataset compiled into the binary.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// data/ is fixed at compile time by the embed directive.
		panic(err)
	}
	return sub
}
