package tags

import (
	"github.com/automoto/titan-slayer/config"
	"github.com/yohamta/donburi"
)

var (
	Wall           = donburi.NewTag().SetName("Wall")
	Player         = donburi.NewTag().SetName("Player")
	MeleeEnemy     = donburi.NewTag().SetName("MeleeEnemy")
	RangedEnemy    = donburi.NewTag().SetName("RangedEnemy")
	PlayerBullet   = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet    = donburi.NewTag().SetName("EnemyBullet")
	Attack         = donburi.NewTag().SetName("Attack")
	Coin           = donburi.NewTag().SetName("Coin")
	HealthPickup   = donburi.NewTag().SetName("HealthPickup")
	StrengthPickup = donburi.NewTag().SetName("StrengthPickup")
	GunPickup      = donburi.NewTag().SetName("GunPickup")
	DoorClosed     = donburi.NewTag().SetName("DoorClosed")
	DoorOpen       = donburi.NewTag().SetName("DoorOpen")
	Hazard         = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for collision queries
const (
	ResolvSolid          = "solid"
	ResolvPlayer         = "Player"
	ResolvMeleeEnemy     = "MeleeEnemy"
	ResolvRangedEnemy    = "RangedEnemy"
	ResolvPlayerBullet   = "PlayerBullet"
	ResolvEnemyBullet    = "EnemyBullet"
	ResolvAttack         = "Attack"
	ResolvCoin           = "coin"
	ResolvHealthPickup   = "health"
	ResolvStrengthPickup = "strength"
	ResolvGunPickup      = "gun"
	ResolvDoorClosed     = "door_closed"
	ResolvDoorOpen       = "door_open"
	ResolvHazard         = "hazard"

	// ResolvProbe marks temporary query objects.
	ResolvProbe = "probe"
)

var byCategory = [config.CategoryCount]*donburi.ComponentType[donburi.Tag]{
	config.CategoryWall:           Wall,
	config.CategoryPlayer:         Player,
	config.CategoryMeleeEnemy:     MeleeEnemy,
	config.CategoryRangedEnemy:    RangedEnemy,
	config.CategoryPlayerBullet:   PlayerBullet,
	config.CategoryEnemyBullet:    EnemyBullet,
	config.CategoryAttack:         Attack,
	config.CategoryCoin:           Coin,
	config.CategoryHealthPickup:   HealthPickup,
	config.CategoryStrengthPickup: StrengthPickup,
	config.CategoryGunPickup:      GunPickup,
	config.CategoryDoorClosed:     DoorClosed,
	config.CategoryDoorOpen:       DoorOpen,
	config.CategoryHazard:         Hazard,
}

var resolvByCategory = [config.CategoryCount]string{
	config.CategoryWall:           ResolvSolid,
	config.CategoryPlayer:         ResolvPlayer,
	config.CategoryMeleeEnemy:     ResolvMeleeEnemy,
	config.CategoryRangedEnemy:    ResolvRangedEnemy,
	config.CategoryPlayerBullet:   ResolvPlayerBullet,
	config.CategoryEnemyBullet:    ResolvEnemyBullet,
	config.CategoryAttack:         ResolvAttack,
	config.CategoryCoin:           ResolvCoin,
	config.CategoryHealthPickup:   ResolvHealthPickup,
	config.CategoryStrengthPickup: ResolvStrengthPickup,
	config.CategoryGunPickup:      ResolvGunPickup,
	config.CategoryDoorClosed:     ResolvDoorClosed,
	config.CategoryDoorOpen:       ResolvDoorOpen,
	config.CategoryHazard:         ResolvHazard,
}

// For returns the donburi tag of a category.
func For(c config.Category) *donburi.ComponentType[donburi.Tag] {
	return byCategory[c]
}

// Resolv returns the resolv tag of a category.
func Resolv(c config.Category) string {
	return resolvByCategory[c]
}
