package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PopupData is a short-lived score callout that rises and fades out.
// Lifetime runs on the entity's AutoDestroy component.
type PopupData struct {
	Text        string
	Color       color.RGBA
	Pos         Vector
	RiseSpeed   float64
	TotalFrames int
}

var Popup = donburi.NewComponentType[PopupData]()
