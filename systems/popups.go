package systems

import (
	"github.com/mossfell/catdash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePopups floats score callouts upward. Expiry is handled by the
// AutoDestroy pass in UpdateEffects.
func UpdatePopups(ecs *ecs.ECS) {
	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		popup.Pos.Y -= popup.RiseSpeed
	})
}
