package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives int
}

// Dead reports whether no lives remain.
func (l *LivesData) Dead() bool {
	return l.Lives <= 0
}

var Lives = donburi.NewComponentType[LivesData]()
