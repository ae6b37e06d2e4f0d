package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Depleted reports whether the entity should be removed.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
