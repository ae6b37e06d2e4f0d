package archetypes

import (
	"github.com/automoto/titan-slayer/components"
	"github.com/automoto/titan-slayer/tags"
	"github.com/yohamta/donburi"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Object,
		components.Category,
		components.Tile,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Category,
		components.Physics,
		components.Lives,
	)
	MeleeEnemy = newArchetype(
		tags.MeleeEnemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Category,
		components.Health,
	)
	RangedEnemy = newArchetype(
		tags.RangedEnemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Category,
		components.Health,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.Projectile,
		components.Velocity,
		components.Body,
		components.Object,
		components.Category,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Projectile,
		components.Velocity,
		components.Body,
		components.Object,
		components.Category,
	)
	Attack = newArchetype(
		tags.Attack,
		components.Attack,
		components.Body,
		components.Object,
		components.Category,
	)
	Coin           = pickup(tags.Coin)
	HealthPickup   = pickup(tags.HealthPickup)
	StrengthPickup = pickup(tags.StrengthPickup)
	GunPickup      = pickup(tags.GunPickup)
	DoorClosed     = newArchetype(
		tags.DoorClosed,
		components.Body,
		components.Object,
		components.Category,
		components.Tile,
	)
	DoorOpen = newArchetype(
		tags.DoorOpen,
		components.Body,
		components.Object,
		components.Category,
		components.Tile,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Body,
		components.Object,
		components.Category,
		components.Tile,
	)
	Level = newArchetype(
		components.Level,
		components.Progress,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func pickup(tag donburi.IComponentType) *archetype {
	return newArchetype(
		tag,
		components.Pickup,
		components.Body,
		components.Object,
		components.Category,
		components.Tile,
	)
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
