package assets

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"

	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/leveldata"
	"gopkg.in/yaml.v3"
)

// SpawnDescriptor places one enemy. Coordinates and range are in tiles.
type SpawnDescriptor struct {
	Kind     config.EnemyKind
	Variant  string
	X, Y     float64
	Velocity float64
	Range    float64
	Health   int
}

// LevelDef is one level's static configuration.
type LevelDef struct {
	ID         int
	Name       string
	Map        string
	Grid       leveldata.TileGrid
	Spawns     []SpawnDescriptor
	EnemyCount int

	// Entry is the player's centre on arrival, in tiles.
	EntryX, EntryY float64

	// BossArenaX is the tile column that starts the boss fight; zero disables it.
	BossArenaX float64
}

// Catalog holds every level, read-only after load.
type Catalog struct {
	levels map[int]*LevelDef
	ids    []int
}

// InvalidSpawnDescriptorError reports a level whose spawn list cannot be used.
type InvalidSpawnDescriptorError struct {
	Level  int
	Index  int // -1 when the whole list is at fault
	Reason string
}

func (e *InvalidSpawnDescriptorError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("level %d: invalid spawn list: %s", e.Level, e.Reason)
	}
	return fmt.Sprintf("level %d: spawn %d: %s", e.Level, e.Index, e.Reason)
}

type catalogFile struct {
	Levels []levelEntry `yaml:"levels"`
}

type levelEntry struct {
	ID         int          `yaml:"id"`
	Name       string       `yaml:"name"`
	Map        string       `yaml:"map"`
	Entry      [2]float64   `yaml:"entry"`
	BossArenaX float64      `yaml:"boss_arena_x"`
	EnemyCount int          `yaml:"enemy_count"`
	Enemies    []spawnEntry `yaml:"enemies"`
}

type spawnEntry struct {
	Type     string  `yaml:"type"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Velocity float64 `yaml:"velocity"`
	Range    float64 `yaml:"range"`
	Health   int     `yaml:"health"`
}

// LoadCatalog reads catalogPath from fsys and every map it names, relative
// to the catalog's directory.
func LoadCatalog(fsys fs.FS, catalogPath string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", catalogPath, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", catalogPath, err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("catalog %s: no levels", catalogPath)
	}

	dir := path.Dir(catalogPath)
	c := &Catalog{levels: make(map[int]*LevelDef, len(file.Levels))}
	for _, entry := range file.Levels {
		if _, dup := c.levels[entry.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate level id %d", catalogPath, entry.ID)
		}

		def, err := buildLevel(entry)
		if err != nil {
			return nil, err
		}

		grid, err := leveldata.Load(fsys, path.Join(dir, entry.Map))
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", entry.ID, err)
		}
		def.Grid = grid

		c.levels[def.ID] = def
		c.ids = append(c.ids, def.ID)
	}
	sort.Ints(c.ids)

	return c, nil
}

func buildLevel(entry levelEntry) (*LevelDef, error) {
	if entry.Map == "" {
		return nil, fmt.Errorf("level %d: no map", entry.ID)
	}
	if entry.EnemyCount != len(entry.Enemies) {
		return nil, &InvalidSpawnDescriptorError{
			Level:  entry.ID,
			Index:  -1,
			Reason: fmt.Sprintf("enemy_count is %d but %d enemies are listed", entry.EnemyCount, len(entry.Enemies)),
		}
	}

	def := &LevelDef{
		ID:         entry.ID,
		Name:       entry.Name,
		Map:        entry.Map,
		EnemyCount: entry.EnemyCount,
		EntryX:     entry.Entry[0],
		EntryY:     entry.Entry[1],
		BossArenaX: entry.BossArenaX,
		Spawns:     make([]SpawnDescriptor, 0, len(entry.Enemies)),
	}

	for i, e := range entry.Enemies {
		typ, ok := config.EnemyType(e.Type)
		if !ok {
			return nil, &InvalidSpawnDescriptorError{Level: entry.ID, Index: i, Reason: fmt.Sprintf("unknown enemy type %q", e.Type)}
		}
		if e.Health <= 0 {
			return nil, &InvalidSpawnDescriptorError{Level: entry.ID, Index: i, Reason: fmt.Sprintf("health %d is not positive", e.Health)}
		}
		if e.Range < 0 {
			return nil, &InvalidSpawnDescriptorError{Level: entry.ID, Index: i, Reason: fmt.Sprintf("range %v is negative", e.Range)}
		}
		def.Spawns = append(def.Spawns, SpawnDescriptor{
			Kind:     typ.Kind,
			Variant:  typ.Name,
			X:        e.X,
			Y:        e.Y,
			Velocity: e.Velocity,
			Range:    e.Range,
			Health:   e.Health,
		})
	}

	return def, nil
}

// GetLevel returns copies of a level's grid and spawn descriptors, and its
// declared enemy count.
func (c *Catalog) GetLevel(id int) (leveldata.TileGrid, []SpawnDescriptor, int, error) {
	def, ok := c.levels[id]
	if !ok {
		return leveldata.TileGrid{}, nil, 0, fmt.Errorf("unknown level %d", id)
	}
	return def.Grid.Clone(), slices.Clone(def.Spawns), def.EnemyCount, nil
}

// Level returns a level's definition. Callers must not modify it.
func (c *Catalog) Level(id int) (*LevelDef, bool) {
	def, ok := c.levels[id]
	return def, ok
}

// IDs lists level ids in play order.
func (c *Catalog) IDs() []int {
	return slices.Clone(c.ids)
}

// First is the opening level.
func (c *Catalog) First() int {
	return c.ids[0]
}

// Next returns the level after id.
func (c *Catalog) Next(id int) (int, bool) {
	i := slices.Index(c.ids, id)
	if i < 0 || i+1 >= len(c.ids) {
		return 0, false
	}
	return c.ids[i+1], true
}

// IsFinal reports whether id is the last level.
func (c *Catalog) IsFinal(id int) bool {
	return len(c.ids) > 0 && c.ids[len(c.ids)-1] == id
}
