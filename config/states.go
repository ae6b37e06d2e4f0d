package config

// MachineState is the level-progression state.
type MachineState int

const (
	StatePlaying MachineState = iota
	StateLevelClear
	StateTransitioning
	StateVictory
	StateGameOver
)

var machineStateNames = [...]string{
	StatePlaying:       "Playing",
	StateLevelClear:    "LevelClear",
	StateTransitioning: "Transitioning",
	StateVictory:       "Victory",
	StateGameOver:      "GameOver",
}

func (s MachineState) String() string {
	if s < 0 || int(s) >= len(machineStateNames) {
		return "Unknown"
	}
	return machineStateNames[s]
}

// Terminal reports whether the simulation has stopped.
func (s MachineState) Terminal() bool {
	return s == StateVictory || s == StateGameOver
}

// EnemyKind selects an enemy's behaviours.
type EnemyKind int

const (
	EnemyMelee EnemyKind = iota
	EnemyRanged
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyMelee:
		return "melee"
	case EnemyRanged:
		return "ranged"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

// Category partitions live entities in the registry.
type Category int

const (
	CategoryWall Category = iota
	CategoryPlayer
	CategoryMeleeEnemy
	CategoryRangedEnemy
	CategoryPlayerBullet
	CategoryEnemyBullet
	CategoryAttack
	CategoryCoin
	CategoryHealthPickup
	CategoryStrengthPickup
	CategoryGunPickup
	CategoryDoorClosed
	CategoryDoorOpen
	CategoryHazard
	CategoryCount // Must be last
)

var categoryNames = [...]string{
	CategoryWall:           "wall",
	CategoryPlayer:         "player",
	CategoryMeleeEnemy:     "melee-enemy",
	CategoryRangedEnemy:    "ranged-enemy",
	CategoryPlayerBullet:   "player-bullet",
	CategoryEnemyBullet:    "enemy-bullet",
	CategoryAttack:         "attack",
	CategoryCoin:           "coin",
	CategoryHealthPickup:   "health",
	CategoryStrengthPickup: "strength",
	CategoryGunPickup:      "gun",
	CategoryDoorClosed:     "door-closed",
	CategoryDoorOpen:       "door-open",
	CategoryHazard:         "hazard",
}

func (c Category) String() string {
	if c < 0 || c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// EnemyCategories lists the categories holding enemies.
var EnemyCategories = []Category{CategoryMeleeEnemy, CategoryRangedEnemy}

// PickupKind selects a pickup effect.
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupHealth
	PickupStrength
	PickupGun
)

// PickupKindFor maps pickup categories to their effect.
var PickupKindFor = map[Category]PickupKind{
	CategoryCoin:           PickupCoin,
	CategoryHealthPickup:   PickupHealth,
	CategoryStrengthPickup: PickupStrength,
	CategoryGunPickup:      PickupGun,
}

// Facing is the player's horizontal direction.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Side owns a projectile and decides which entities it can hurt.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// EventKind identifies a simulation side effect for presentation and audio.
type EventKind int

const (
	EventJump EventKind = iota
	EventMeleeSwing
	EventShot
	EventEnemyShot
	EventEnemyHurt
	EventEnemyKilled
	EventPlayerHurt
	EventCoin
	EventHealth
	EventStrength
	EventGun
	EventDoorOpened
	EventLevelAdvanced
	EventBossArena
	EventVictory
	EventGameOver
)

var eventNames = [...]string{
	EventJump:          "jump",
	EventMeleeSwing:    "melee-swing",
	EventShot:          "shot",
	EventEnemyShot:     "enemy-shot",
	EventEnemyHurt:     "enemy-hurt",
	EventEnemyKilled:   "enemy-killed",
	EventPlayerHurt:    "player-hurt",
	EventCoin:          "coin",
	EventHealth:        "health",
	EventStrength:      "strength",
	EventGun:           "gun",
	EventDoorOpened:    "door-opened",
	EventLevelAdvanced: "level-advanced",
	EventBossArena:     "boss-arena",
	EventVictory:       "victory",
	EventGameOver:      "game-over",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}
