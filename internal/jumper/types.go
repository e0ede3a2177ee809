package jumper

import "github.com/vovakirdan/skyhop/internal/core"

// Input is the per-tick control signal consumed by the engine.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Interact  bool // start or restart a run
}

// State is the phase of the game state machine.
type State int

const (
	StateStart    State = iota // Idle, waiting for Interact
	StatePlaying               // Simulation running
	StateGameOver              // Frozen, waiting for Interact
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// PlatformKind selects how a platform reacts to a landing.
type PlatformKind uint8

const (
	PlatformNormal    PlatformKind = iota // Standard jump
	PlatformMoving                        // Standard jump, slides horizontally
	PlatformBreakable                     // Half jump, breaks
	PlatformSpring                        // Strong jump
	platformKindCount
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	case PlatformSpring:
		return "spring"
	default:
		return "?"
	}
}

// ItemKind selects the effect applied on pickup.
type ItemKind uint8

const (
	ItemThrust ItemKind = iota
	ItemBoost
	ItemShield
	ItemMagnet
	ItemSlowmo
	ItemCoin
	itemKindCount
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemThrust:
		return "thrust"
	case ItemBoost:
		return "boost"
	case ItemShield:
		return "shield"
	case ItemMagnet:
		return "magnet"
	case ItemSlowmo:
		return "slowmo"
	case ItemCoin:
		return "coin"
	default:
		return "?"
	}
}

// EnemyKind selects enemy movement.
type EnemyKind uint8

const (
	EnemyPatrol EnemyKind = iota // Walks side to side
	EnemyFlyer                   // Walks side to side and bobs vertically
	enemyKindCount
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "patrol"
	case EnemyFlyer:
		return "flyer"
	default:
		return "?"
	}
}

// Platform is a one-way surface the player bounces off while falling.
type Platform struct {
	ID     uint64
	X, Y   float64
	W, H   float64
	VX     float64
	Kind   PlatformKind
	Active bool
}

// Rect returns the platform's bounding box.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Item is a pickup resting on a platform.
type Item struct {
	ID       uint64
	Anchor   uint64 // ID of the carrying platform, 0 once detached
	X, Y     float64
	W, H     float64
	OffsetX  float64 // X relative to the anchor platform
	Kind     ItemKind
	Consumed bool
}

// Rect returns the item's bounding box.
func (it *Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, it.W, it.H)
}

// Enemy is a hazard that ends the run on contact unless stomped.
type Enemy struct {
	ID     uint64
	X, Y   float64
	BaseY  float64 // centre line of the flyer bob
	W, H   float64
	VX     float64
	Phase  float64
	Kind   EnemyKind
	Active bool
}

// Rect returns the enemy's bounding box.
func (en *Enemy) Rect() core.RectF {
	return core.NewRectF(en.X, en.Y, en.W, en.H)
}

// EntityType tags spawn events and broadphase proxies.
type EntityType uint8

const (
	EntityPlatform EntityType = iota
	EntityItem
	EntityEnemy
)

// String returns the name of the entity type.
func (t EntityType) String() string {
	switch t {
	case EntityPlatform:
		return "platform"
	case EntityItem:
		return "item"
	case EntityEnemy:
		return "enemy"
	default:
		return "?"
	}
}

// SpawnEvent describes one entity created by the spawner.
// The stream of events is fully determined by the seed and the inputs.
type SpawnEvent struct {
	Seq    uint64
	Tick   uint64
	Entity EntityType
	Kind   uint8
	X, Y   float64
	W      float64
	Gap    float64 // distance above the previous top platform, platforms only
}

// Hooks are the engine's outward callbacks. Any of them may be nil.
type Hooks struct {
	OnScoreChanged func(total int)
	OnGameOver     func(finalScore int)
	OnSpawn        func(ev SpawnEvent)
}
