package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the shared resolv collision space (singleton component).
var Space = donburi.NewComponentType[resolv.Space]()
