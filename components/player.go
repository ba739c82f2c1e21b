package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Shots in the bank. One is granted per score threshold crossing and
	// one is spent per projectile fired.
	ShotCount int

	// Set while the slide input holds the hitbox crouched.
	Sliding bool
}

var Player = donburi.NewComponentType[PlayerData]()
