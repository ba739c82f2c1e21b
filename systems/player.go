package systems

import (
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateCat(ecs, playerEntry)
	})
}

func updateCat(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	state := components.State.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	// Once dead, only the death animation advances. It freezes on its
	// last frame and the game over system takes it from there.
	if state.CurrentState == cfg.Dead {
		if animData != nil && animData.CurrentAnimation != nil {
			animData.CurrentAnimation.Update()
		}
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	handleCatInput(ecs, playerEntry, input, player, physics, state, playerObject)
	updateCatState(ecs, playerEntry, input, physics, state, playerObject)
	updateCatAnimation(state, animData)
}

func handleCatInput(e *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	jumpAction := GetAction(input, cfg.ActionJump)
	shootAction := GetAction(input, cfg.ActionShoot)

	handleJumpInput(e, playerEntry, jumpAction, physics, state, playerObject)

	// Shooting works from any live state as long as a shot is banked
	if shootAction.JustPressed && player.ShotCount > 0 {
		player.ShotCount--
		muzzleX := playerObject.X + playerObject.W + cfg.Player.MuzzleOffsetX
		muzzleY := playerObject.Y + cfg.Player.MuzzleOffsetY
		factory.CreateProjectile(e, muzzleX, muzzleY)
		PlaySFX(e, cfg.SoundShoot)
	}
}

func handleJumpInput(e *ecs.ECS, playerEntry *donburi.Entry, jumpAction components.ActionState, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	if !jumpAction.JustPressed || !physics.OnGround {
		return
	}

	// A jump out of a slide stands the cat up first
	if state.CurrentState == cfg.Sliding {
		restoreHitboxAfterSlide(playerObject)
		components.Player.Get(playerEntry).Sliding = false
	}

	physics.SpeedY = -cfg.Player.JumpForce
	state.CurrentState = cfg.Jumping
	state.StateTimer = 0
	PlaySFX(e, cfg.SoundJump)
	factory.SpawnJumpDust(e, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
	TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
}

func updateCatState(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, physics *components.PhysicsData, state *components.StateData, playerObject *resolv.Object) {
	state.StateTimer++

	player := components.Player.Get(playerEntry)
	slideAction := GetAction(input, cfg.ActionSlide)

	switch state.CurrentState {
	case cfg.Running:
		if !physics.OnGround {
			state.CurrentState = cfg.Jumping
			state.StateTimer = 0
			break
		}
		if slideAction.JustPressed {
			enterSlideState(state, player, playerObject)
			PlaySFX(ecs, cfg.SoundSlide)
			factory.SpawnSlideDust(ecs, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
		}

	case cfg.Jumping:
		// Landing is detected by the physics pass clamping to the ground.
		// On the takeoff frame OnGround is still stale-true, so wait for
		// the upward velocity to run out.
		if physics.OnGround && physics.SpeedY >= 0 {
			PlaySFX(ecs, cfg.SoundLand)
			factory.SpawnLandDust(ecs, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H)
			TriggerSquashStretch(playerEntry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
			if slideAction.Pressed {
				enterSlideState(state, player, playerObject)
			} else {
				state.CurrentState = cfg.Running
				state.StateTimer = 0
			}
		}

	case cfg.Sliding:
		// The slide holds as long as the key does
		if !slideAction.Pressed {
			restoreHitboxAfterSlide(playerObject)
			player.Sliding = false
			state.CurrentState = cfg.Running
			state.StateTimer = 0
		}

	default:
		state.CurrentState = cfg.Running
		state.StateTimer = 0
	}
}

func updateCatAnimation(state *components.StateData, animData *components.AnimationData) {
	if animData == nil {
		return
	}

	animData.SetAnimation(state.CurrentState)

	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Update()
	}
}

func enterSlideState(state *components.StateData, player *components.PlayerData, playerObject *resolv.Object) {
	state.CurrentState = cfg.Sliding
	state.StateTimer = 0
	player.Sliding = true
	reduceHitboxForSlide(playerObject)
}

// reduceHitboxForSlide shrinks the collision box toward the ground so the
// cat passes under balloons. The sprite is unchanged.
func reduceHitboxForSlide(playerObject *resolv.Object) {
	targetHeight := cfg.Player.SlideHitboxHeight
	if playerObject.H <= targetHeight {
		return
	}
	heightDiff := playerObject.H - targetHeight
	playerObject.H = targetHeight
	playerObject.Y += heightDiff
	playerObject.Update()
}

func restoreHitboxAfterSlide(playerObject *resolv.Object) {
	normalHeight := cfg.Player.CollisionHeight
	if playerObject.H >= normalHeight {
		return
	}
	heightDiff := normalHeight - playerObject.H
	playerObject.H = normalHeight
	playerObject.Y -= heightDiff
	playerObject.Update()
}
