package game

import (
	"github.com/automoto/titan-slayer/components"
	"github.com/automoto/titan-slayer/config"
	"github.com/automoto/titan-slayer/shared/gamemath"
	"github.com/automoto/titan-slayer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Registry partitions live entities by category and answers overlap queries.
//
// Removal is deferred while a traversal is running: removed entries are
// skipped by the rest of the traversal and by queries, and are purged once
// the outermost ForEach or RemoveIf returns.
type Registry struct {
	world donburi.World
	space *resolv.Space

	// World coordinates of the space's top-left corner. resolv is y-down.
	originX, originY float64

	pending map[donburi.Entity]struct{}
	queue   []donburi.Entity
	depth   int
}

// NewRegistry creates a registry over w with a space covering bounds.
func NewRegistry(w donburi.World, bounds gamemath.Rect) *Registry {
	r := &Registry{
		world:   w,
		pending: make(map[donburi.Entity]struct{}),
	}
	r.Resize(bounds)
	return r
}

// Resize replaces the collision space so it covers bounds plus a margin, and
// re-registers every surviving object.
func (r *Registry) Resize(bounds gamemath.Rect) {
	area := bounds.Grow(spaceMargin())
	cell := int(config.C.TileSize)
	r.originX = area.Left()
	r.originY = area.Top()
	r.space = resolv.NewSpace(int(area.W)+cell, int(area.H)+cell, cell, cell)

	var live []*donburi.Entry
	components.Object.Each(r.world, func(e *donburi.Entry) {
		live = append(live, e)
	})
	for _, e := range live {
		obj := components.Object.Get(e).Object
		if obj == nil {
			continue
		}
		r.place(e, obj)
		r.space.Add(obj)
	}
}

func spaceMargin() float64 {
	return 4 * config.C.TileSize
}

// Add registers a spawned entry under category and puts its body in the space.
func (r *Registry) Add(entry *donburi.Entry, category config.Category) {
	components.Category.SetValue(entry, components.CategoryData{Category: category})

	body := components.Body.Get(entry)
	obj := resolv.NewObject(0, 0, body.W, body.H, tags.Resolv(category))
	obj.SetShape(resolv.NewRectangle(0, 0, body.W, body.H))
	obj.Data = entry // Link for O(1) lookup
	r.place(entry, obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	r.space.Add(obj)
}

func (r *Registry) place(entry *donburi.Entry, obj *resolv.Object) {
	body := components.Body.Get(entry)
	obj.X = body.Left() - r.originX
	obj.Y = r.originY - body.Top()
}

// Sync moves the entry's resolv object to its body. Call after moving a body.
func (r *Registry) Sync(entry *donburi.Entry) {
	if !r.Alive(entry) {
		return
	}
	obj := components.Object.Get(entry).Object
	if obj == nil {
		return
	}
	r.place(entry, obj)
	obj.Update()
}

// SyncAll syncs every live object.
func (r *Registry) SyncAll() {
	components.Object.Each(r.world, func(e *donburi.Entry) {
		if _, gone := r.pending[e.Entity()]; gone {
			return
		}
		if obj := components.Object.Get(e).Object; obj != nil {
			r.place(e, obj)
			obj.Update()
		}
	})
}

// Alive reports whether entry is valid and not awaiting removal.
func (r *Registry) Alive(entry *donburi.Entry) bool {
	if entry == nil || !entry.Valid() {
		return false
	}
	_, gone := r.pending[entry.Entity()]
	return !gone
}

func (r *Registry) snapshot(category config.Category) []*donburi.Entry {
	var out []*donburi.Entry
	tags.For(category).Each(r.world, func(e *donburi.Entry) {
		if _, gone := r.pending[e.Entity()]; !gone {
			out = append(out, e)
		}
	})
	return out
}

// ForEach calls fn for every live entry of category. The set is fixed when
// the call starts; entries removed by fn are not visited afterwards.
func (r *Registry) ForEach(category config.Category, fn func(*donburi.Entry)) {
	entries := r.snapshot(category)
	r.depth++
	defer r.leave()
	for _, e := range entries {
		if !r.Alive(e) {
			continue
		}
		fn(e)
	}
}

// RemoveIf removes every live entry of category matching pred and returns
// how many were removed.
func (r *Registry) RemoveIf(category config.Category, pred func(*donburi.Entry) bool) int {
	entries := r.snapshot(category)
	r.depth++
	defer r.leave()
	n := 0
	for _, e := range entries {
		if r.Alive(e) && pred(e) {
			r.mark(e)
			n++
		}
	}
	return n
}

// Remove removes one entry. Removing a dead entry is a no-op.
func (r *Registry) Remove(entry *donburi.Entry) {
	if !r.Alive(entry) {
		return
	}
	r.mark(entry)
	if r.depth == 0 {
		r.purge()
	}
}

// PurgeAllExcept removes every entry whose category is not in keep.
func (r *Registry) PurgeAllExcept(keep ...config.Category) {
	kept := [config.CategoryCount]bool{}
	for _, c := range keep {
		kept[c] = true
	}
	for c := config.Category(0); c < config.CategoryCount; c++ {
		if kept[c] {
			continue
		}
		for _, e := range r.snapshot(c) {
			r.mark(e)
		}
	}
	if r.depth == 0 {
		r.purge()
	}
}

// Count returns the number of live entries in category.
func (r *Registry) Count(category config.Category) int {
	return len(r.snapshot(category))
}

// First returns any live entry of category.
func (r *Registry) First(category config.Category) (*donburi.Entry, bool) {
	entries := r.snapshot(category)
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}

// Overlapping returns live entries of the given categories whose bodies
// intersect entry's body.
func (r *Registry) Overlapping(entry *donburi.Entry, categories ...config.Category) []*donburi.Entry {
	if !r.Alive(entry) || len(categories) == 0 {
		return nil
	}
	r.Sync(entry)
	return r.query(components.Body.Get(entry).Rect, entry, categories)
}

// Query returns live entries of the given categories whose bodies intersect rect.
func (r *Registry) Query(rect gamemath.Rect, categories ...config.Category) []*donburi.Entry {
	if len(categories) == 0 {
		return nil
	}
	return r.query(rect, nil, categories)
}

// query runs the broadphase on rect grown by one pixel. resolv maps an
// object's far edge to the cell holding X+W-1, so contacts shallower than a
// pixel across a cell line would otherwise never reach the narrow phase.
func (r *Registry) query(rect gamemath.Rect, self *donburi.Entry, categories []config.Category) []*donburi.Entry {
	wide := rect.Grow(1)
	probe := resolv.NewObject(wide.Left()-r.originX, r.originY-wide.Top(), wide.W, wide.H, tags.ResolvProbe)
	r.space.Add(probe)
	defer r.space.Remove(probe)
	return r.collect(probe.Check(0, 0, resolvTags(categories)...), rect, self)
}

func (r *Registry) collect(check *resolv.Collision, rect gamemath.Rect, self *donburi.Entry) []*donburi.Entry {
	if check == nil {
		return nil
	}
	var out []*donburi.Entry
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == self || !r.Alive(other) {
			continue
		}
		if components.Body.Get(other).Overlaps(rect) {
			out = append(out, other)
		}
	}
	return out
}

func resolvTags(categories []config.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = tags.Resolv(c)
	}
	return out
}

func (r *Registry) mark(entry *donburi.Entry) {
	id := entry.Entity()
	if _, gone := r.pending[id]; gone {
		return
	}
	r.pending[id] = struct{}{}
	r.queue = append(r.queue, id)
}

func (r *Registry) leave() {
	r.depth--
	if r.depth == 0 {
		r.purge()
	}
}

func (r *Registry) purge() {
	for _, id := range r.queue {
		if !r.world.Valid(id) {
			continue
		}
		entry := r.world.Entry(id)
		if obj := components.Object.Get(entry).Object; obj != nil {
			r.space.Remove(obj)
		}
		r.world.Remove(id)
	}
	r.queue = r.queue[:0]
	clear(r.pending)
}
