package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives small looping positional animations (balloon bob).
var Tween = donburi.NewComponentType[gween.Sequence]()
