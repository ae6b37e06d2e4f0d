package config

import "image/color"

// Config holds screen and grid geometry.
type Config struct {
	Width  int
	Height int

	// TileSize is the edge of one map cell in world pixels.
	TileSize float64
	// MapHeight is the row count used to place row 0 in world space:
	// a tile's top edge is (MapHeight - row) * TileSize.
	MapHeight int

	TickRate int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64

	// GroundProbe is how far below the player's feet can_jump looks for a wall.
	GroundProbe float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed float64
	JumpSpeed float64

	StartingLives int

	// Horizontal clamp for the player's centre, in tiles from the left
	// edge and from the right edge of the level.
	MinCenterTiles   float64
	RightLimitTiles  float64
	AttackMultiplier int

	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name  string
	Kind  EnemyKind
	Scale float64

	CollisionWidth  float64
	CollisionHeight float64

	// Ranged fire
	Ranged          bool
	ShootInterval   int // ticks
	ProjectileSpeed float64

	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Types is keyed by variant name as it appears in the level catalog.
	Types map[string]EnemyTypeConfig
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	DamageCooldown float64 // seconds
	DamagePerHit   int     // lives
	ScorePenalty   int

	AttackLifetime float64 // seconds
	AttackReach    float64 // centre offset in front of the player
	AttackWidth    float64
	AttackHeight   float64

	BulletSpeed  float64
	BulletWidth  float64
	BulletHeight float64

	EnemyBulletWidth  float64
	EnemyBulletHeight float64

	// OffscreenMargin grows the level rectangle to form the projectile despawn bound.
	OffscreenMargin float64
}

// PickupConfig contains pickup effect values
type PickupConfig struct {
	CoinScore          int
	HealthLives        int
	StrengthFactor     int
	StrengthDuration   float64 // seconds
	GunBullets         int
	InitialBulletCount int
}

// CameraConfig holds the dead-zone margins, in pixels from each viewport edge.
type CameraConfig struct {
	LeftMargin   float64
	RightMargin  float64
	TopMargin    float64
	BottomMargin float64
}

// TileSpec places the entity created for one tile code. Offsets move the
// entity's left and top edges away from the tile's.
type TileSpec struct {
	Category Category
	OffsetX  float64
	OffsetY  float64
	Width    float64
	Height   float64
}

// TileTable maps tile codes to the entities they create. A code may create
// more than one entity.
type TileTable map[int][]TileSpec

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDFontSize    float64
	BannerFontSize float64
	TitleFontSize  float64

	BannerFadeSeconds float32

	BackgroundColor color.RGBA
	HUDTextColor    color.RGBA
	CategoryColors  map[Category]color.RGBA
}

// Global config instances
var (
	C       *Config
	Physics PhysicsConfig
	Player  PlayerConfig
	Enemy   EnemyConfig
	Combat  CombatConfig
	Pickups PickupConfig
	Camera  CameraConfig
	Tiles   TileTable
	UI      UIConfig
)

func init() {
	C = &Config{
		Width:     800,
		Height:    600,
		TileSize:  64,
		MapHeight: 7,
		TickRate:  60,
	}

	Physics = PhysicsConfig{
		Gravity:     0.5,
		GroundProbe: 1,
	}

	Player = PlayerConfig{
		MoveSpeed:        4,
		JumpSpeed:        8,
		StartingLives:    5,
		MinCenterTiles:   4,
		RightLimitTiles:  1,
		AttackMultiplier: 1,
		CollisionWidth:   40,
		CollisionHeight:  60,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"titan": {
				Name:            "titan",
				Kind:            EnemyMelee,
				Scale:           1,
				CollisionWidth:  64,
				CollisionHeight: 128,
				TintColor:       color.RGBA{R: 180, G: 120, B: 90, A: 255},
			},
			"abnormal": {
				Name:            "abnormal",
				Kind:            EnemyMelee,
				Scale:           1,
				CollisionWidth:  64,
				CollisionHeight: 128,
				TintColor:       color.RGBA{R: 200, G: 60, B: 140, A: 255},
			},
			"police": {
				Name:            "police",
				Kind:            EnemyRanged,
				Scale:           1,
				CollisionWidth:  40,
				CollisionHeight: 52,
				Ranged:          true,
				ShootInterval:   150,
				ProjectileSpeed: 5,
				TintColor:       color.RGBA{R: 60, G: 90, B: 200, A: 255},
			},
			"bert": {
				Name:            "bert",
				Kind:            EnemyBoss,
				Scale:           1.5,
				CollisionWidth:  64,
				CollisionHeight: 128,
				TintColor:       color.RGBA{R: 230, G: 40, B: 40, A: 255},
			},
		},
	}

	Combat = CombatConfig{
		DamageCooldown:    2,
		DamagePerHit:      1,
		ScorePenalty:      5,
		AttackLifetime:    1,
		AttackReach:       60,
		AttackWidth:       40,
		AttackHeight:      48,
		BulletSpeed:       5,
		BulletWidth:       16,
		BulletHeight:      8,
		EnemyBulletWidth:  12,
		EnemyBulletHeight: 12,
		OffscreenMargin:   1200,
	}

	Pickups = PickupConfig{
		CoinScore:        1,
		HealthLives:      1,
		StrengthFactor:   2,
		StrengthDuration: 10,
		GunBullets:       10,
	}

	Camera = CameraConfig{
		LeftMargin:   192,
		RightMargin:  260,
		TopMargin:    192,
		BottomMargin: 192,
	}

	ts := C.TileSize
	wall := func() []TileSpec {
		return []TileSpec{{Category: CategoryWall, Width: ts, Height: ts}}
	}
	Tiles = TileTable{
		1:  wall(),
		2:  wall(),
		3:  wall(),
		4:  wall(),
		5:  wall(),
		6:  wall(),
		7:  {{Category: CategoryCoin, OffsetX: 15, OffsetY: 15, Width: 34, Height: 34}},
		8:  {{Category: CategoryDoorClosed, Width: ts, Height: ts}, {Category: CategoryDoorOpen, Width: ts, Height: ts}},
		9:  {{Category: CategoryHealthPickup, OffsetX: 16, OffsetY: 15, Width: 32, Height: 34}},
		10: {{Category: CategoryHazard, OffsetY: 22, Width: ts, Height: ts - 22}},
		11: {{Category: CategoryStrengthPickup, OffsetX: 16, OffsetY: 15, Width: 32, Height: 34}},
		12: {{Category: CategoryGunPickup, OffsetY: 25, Width: ts, Height: ts - 25}},
	}

	UI = UIConfig{
		HUDFontSize:       18,
		BannerFontSize:    32,
		TitleFontSize:     40,
		BannerFadeSeconds: 2.5,
		BackgroundColor:   color.RGBA{R: 24, G: 26, B: 40, A: 255},
		HUDTextColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		CategoryColors: map[Category]color.RGBA{
			CategoryWall:           {R: 110, G: 84, B: 60, A: 255},
			CategoryPlayer:         {R: 80, G: 200, B: 120, A: 255},
			CategoryMeleeEnemy:     {R: 180, G: 120, B: 90, A: 255},
			CategoryRangedEnemy:    {R: 60, G: 90, B: 200, A: 255},
			CategoryPlayerBullet:   {R: 250, G: 250, B: 120, A: 255},
			CategoryEnemyBullet:    {R: 250, G: 120, B: 60, A: 255},
			CategoryAttack:         {R: 255, G: 255, B: 255, A: 160},
			CategoryCoin:           {R: 255, G: 210, B: 0, A: 255},
			CategoryHealthPickup:   {R: 230, G: 60, B: 80, A: 255},
			CategoryStrengthPickup: {R: 160, G: 80, B: 230, A: 255},
			CategoryGunPickup:      {R: 150, G: 150, B: 150, A: 255},
			CategoryDoorClosed:     {R: 90, G: 50, B: 30, A: 255},
			CategoryDoorOpen:       {R: 40, G: 30, B: 20, A: 255},
			CategoryHazard:         {R: 255, G: 90, B: 0, A: 255},
		},
	}
}

// EnemyType returns the config for a variant name.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	t, ok := Enemy.Types[name]
	return t, ok
}
