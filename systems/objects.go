package systems

import "github.com/automoto/titan-slayer/game"

// UpdateObjects moves every resolv object to its body after a movement phase.
func UpdateObjects(s *game.State) {
	s.Registry.SyncAll()
}
