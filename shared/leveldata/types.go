// Package leveldata parses level tile grids shared by the simulation and the
// tooling. It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "fmt"

// Recognized tile codes. Anything outside [MinTileCode, MaxTileCode] is empty space.
const (
	TileEmpty    = 0
	MinTileCode  = 1
	MaxTileCode  = 12
	TileDoor     = 8
	TileLastWall = 6
)

// TileGrid is a rectangular grid of tile codes, rows top-to-bottom.
type TileGrid struct {
	Rows [][]int
}

// Width is the column count.
func (g TileGrid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Height is the row count.
func (g TileGrid) Height() int {
	return len(g.Rows)
}

// At returns the code at (row, col), or TileEmpty outside the grid.
func (g TileGrid) At(row, col int) int {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return TileEmpty
	}
	return g.Rows[row][col]
}

// Known reports whether a code creates anything.
func Known(code int) bool {
	return code >= MinTileCode && code <= MaxTileCode
}

// UnknownTileCode is a non-empty cell whose code creates nothing.
type UnknownTileCode struct {
	Row, Col int
	Code     int
}

func (u UnknownTileCode) String() string {
	return fmt.Sprintf("unknown tile code %d at row %d col %d", u.Code, u.Row, u.Col)
}

// UnknownCodes lists cells that are neither empty nor recognized.
func (g TileGrid) UnknownCodes() []UnknownTileCode {
	var out []UnknownTileCode
	for r, row := range g.Rows {
		for c, code := range row {
			if code != TileEmpty && !Known(code) {
				out = append(out, UnknownTileCode{Row: r, Col: c, Code: code})
			}
		}
	}
	return out
}

// Count returns how many cells hold code.
func (g TileGrid) Count(code int) int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row {
			if c == code {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g TileGrid) Clone() TileGrid {
	rows := make([][]int, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = append([]int(nil), row...)
	}
	return TileGrid{Rows: rows}
}

// MalformedMapError reports a grid that cannot be loaded.
type MalformedMapError struct {
	Source string
	Row    int // 0-based, -1 when not tied to a row
	Col    int // 0-based, -1 when not tied to a cell
	Token  string
	Reason string
}

func (e *MalformedMapError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("malformed map %s: %s", e.Source, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("malformed map %s: row %d: %s", e.Source, e.Row, e.Reason)
	default:
		return fmt.Sprintf("malformed map %s: row %d col %d %q: %s", e.Source, e.Row, e.Col, e.Token, e.Reason)
	}
}
