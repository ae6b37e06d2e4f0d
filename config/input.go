package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMelee
	ActionRanged
	ActionCount // Must be last - used for array sizing
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionJump:      "jump",
	ActionMelee:     "melee",
	ActionRanged:    "ranged",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
