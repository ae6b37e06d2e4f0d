package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load reads a grid from fsys, choosing the parser by extension.
func Load(fsys fs.FS, p string) (TileGrid, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		f, err := fsys.Open(p)
		if err != nil {
			return TileGrid{}, fmt.Errorf("open %s: %w", p, err)
		}
		defer f.Close()
		return ParseCSV(p, f)
	case ".tmx":
		return LoadTMX(fsys, p)
	}
	return TileGrid{}, fmt.Errorf("load %s: unsupported map format", p)
}

// LoadTMX reads the first tile layer of a Tiled map. A cell's code is its
// global tile id, so a tileset whose first GID is 1 maps tile n to code n+1.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return TileGrid{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return TileGrid{}, &MalformedMapError{Source: tmxPath, Row: -1, Col: -1, Reason: "map has no cells"}
	}

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return TileGrid{}, &MalformedMapError{
				Source: tmxPath,
				Row:    -1,
				Col:    -1,
				Reason: fmt.Sprintf("layer %q has %d cells, want %d", layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height),
			}
		}

		rows := make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			rows[y] = make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				rows[y][x] = int(tile.Tileset.FirstGID + tile.ID)
			}
		}
		return TileGrid{Rows: rows}, nil
	}

	return TileGrid{}, &MalformedMapError{Source: tmxPath, Row: -1, Col: -1, Reason: "no tile layer"}
}
