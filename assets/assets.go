package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CatalogFile is the catalog's name inside a levels directory.
const CatalogFile = "catalog.yaml"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the embedded levels directory.
func LevelFS() fs.FS {
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDefaultCatalog loads the embedded six-level catalog.
func LoadDefaultCatalog() (*Catalog, error) {
	return LoadCatalog(LevelFS(), CatalogFile)
}

// MustLoadDefaultCatalog is LoadDefaultCatalog for callers with no recovery path.
func MustLoadDefaultCatalog() *Catalog {
	c, err := LoadDefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalogDir loads a catalog from a directory on disk, or the embedded
// one when dir is empty.
func LoadCatalogDir(dir string) (*Catalog, error) {
	if dir == "" {
		return LoadDefaultCatalog()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	return LoadCatalog(os.DirFS(abs), CatalogFile)
}
