package jumper

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/vovakirdan/skyhop/internal/core"
)

const (
	tagPlatform = "platform"
	tagItem     = "item"
	tagEnemy    = "enemy"
	tagPlayer   = "player"

	broadCell = 4
)

// proxy links an entity to its resolv object.
type proxy struct {
	id   uint64
	kind EntityType
	obj  *resolv.Object
	gen  uint64
}

// broadphase keeps one resolv object per live entity in a spatial hash and
// answers "which entities might touch this box" queries. Exact tests are
// left to the caller.
//
// The space covers one viewport above and one below the visible area, with a
// horizontal margin for wrapped bodies. Boxes are padded by one unit because
// resolv maps the far edge of a box with an integer -1 offset.
type broadphase struct {
	space    *resolv.Space
	player   *resolv.Object
	proxies  map[uint64]*proxy
	free     [3][]*proxy
	gen      uint64
	hits     map[uint64]bool
	offX     float64
	offY     float64
	disabled bool
}

func newBroadphase() *broadphase {
	return &broadphase{
		proxies: make(map[uint64]*proxy),
		hits:    make(map[uint64]bool),
	}
}

// resize rebuilds the space for a new viewport. Proxies are re-added on the
// next sync.
func (b *broadphase) resize(width, height float64) {
	for id, p := range b.proxies {
		b.release(p)
		delete(b.proxies, id)
	}
	if width <= 0 || height <= 0 {
		b.space = nil
		b.player = nil
		return
	}
	margin := math.Ceil(width / 2)
	b.offX = margin
	b.offY = math.Ceil(height)
	w := int(math.Ceil(width + 2*margin))
	h := int(math.Ceil(3 * height))
	b.space = resolv.NewSpace(w, h, broadCell, broadCell)
	b.player = resolv.NewObject(0, 0, 1, 1, tagPlayer)
	b.space.Add(b.player)
}

func (b *broadphase) acquire(kind EntityType) *proxy {
	if n := len(b.free[kind]); n > 0 {
		p := b.free[kind][n-1]
		b.free[kind] = b.free[kind][:n-1]
		return p
	}
	var tag string
	switch kind {
	case EntityPlatform:
		tag = tagPlatform
	case EntityItem:
		tag = tagItem
	default:
		tag = tagEnemy
	}
	p := &proxy{kind: kind}
	p.obj = resolv.NewObject(0, 0, 1, 1, tag)
	p.obj.Data = p
	return p
}

func (b *broadphase) release(p *proxy) {
	if b.space != nil {
		b.space.Remove(p.obj)
	}
	p.id = 0
	b.free[p.kind] = append(b.free[p.kind], p)
}

// place moves a resolv object over the padded box r.
func (b *broadphase) place(obj *resolv.Object, r core.RectF) {
	obj.X = r.X + b.offX - 1
	obj.Y = r.Y + b.offY - 1
	obj.W = r.W + 2
	obj.H = r.H + 2
	obj.Update()
}

func (b *broadphase) track(id uint64, kind EntityType, r core.RectF) {
	p := b.proxies[id]
	if p == nil {
		p = b.acquire(kind)
		p.id = id
		b.proxies[id] = p
		b.space.Add(p.obj)
	}
	p.gen = b.gen
	b.place(p.obj, r)
}

// sync mirrors the live entities of w into the space.
func (b *broadphase) sync(w *world) {
	if b.space == nil || b.disabled {
		return
	}
	b.gen++
	for i := range w.platforms {
		if p := &w.platforms[i]; p.Active {
			b.track(p.ID, EntityPlatform, p.Rect())
		}
	}
	for i := range w.items {
		if it := &w.items[i]; !it.Consumed {
			b.track(it.ID, EntityItem, it.Rect())
		}
	}
	for i := range w.enemies {
		if en := &w.enemies[i]; en.Active {
			b.track(en.ID, EntityEnemy, en.Rect())
		}
	}
	for id, p := range b.proxies {
		if p.gen != b.gen {
			b.release(p)
			delete(b.proxies, id)
		}
	}
}

// query collects the entities whose cells overlap r. Afterwards hit reports
// membership. With the broadphase disabled every entity is a candidate.
func (b *broadphase) query(r core.RectF) {
	clear(b.hits)
	if b.space == nil || b.disabled {
		return
	}
	b.place(b.player, r)
	check := b.player.Check(0, 0, tagPlatform, tagItem, tagEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		if p, ok := obj.Data.(*proxy); ok {
			b.hits[p.id] = true
		}
	}
}

// hit reports whether id was returned by the last query.
func (b *broadphase) hit(id uint64) bool {
	if b.space == nil || b.disabled {
		return true
	}
	return b.hits[id]
}
