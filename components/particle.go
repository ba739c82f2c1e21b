package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is a transient visual effect. Particles live outside the
// collision space; they carry their own position.
type ParticleData struct {
	Pos     Vector
	Vel     Vector
	TTL     int
	MaxTTL  int
	Size    float64
	Gravity float64
	Color   color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
