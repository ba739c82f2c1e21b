package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collision box in the shared resolv space.
// Object.Data points back at the owning donburi entry.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the collision box.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the collision box.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
