package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	Popup      = donburi.NewTag().SetName("Popup")
)

// Resolv tags for collision queries
const (
	ResolvPlayer     = "player"
	ResolvObstacle   = "obstacle"
	ResolvProjectile = "projectile"
)
