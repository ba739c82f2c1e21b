package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mossfell/catdash/assets"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	flashDrawOp  = &ebiten.DrawRectShaderOptions{}
	spriteDrawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders entities with an Animation component based on their
// current frame and state. In practice that is the cat.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	shakeX, shakeY := ShakeOffset(ecs)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		animData := components.Animation.Get(e)

		if animData.CurrentAnimation == nil {
			drawFallbackBox(screen, e, o, shakeX, shakeY)
			return
		}

		// Get the current frame index (sheet index)
		frame := animData.CurrentAnimation.Frame()

		var img *ebiten.Image
		if frames, ok := animData.CachedFrames[animData.CurrentSheet]; ok {
			img = frames[frame]
		}

		// Fallback to runtime slicing if not cached (safety)
		if img == nil && animData.SpriteSheets[animData.CurrentSheet] != nil {
			sx := frame * animData.FrameWidth
			srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
			img = animData.SpriteSheets[animData.CurrentSheet].SubImage(srcRect).(*ebiten.Image)

			// Cache to prevent repeated allocations
			if animData.CachedFrames[animData.CurrentSheet] == nil {
				animData.CachedFrames[animData.CurrentSheet] = make(map[int]*ebiten.Image)
			}
			animData.CachedFrames[animData.CurrentSheet][frame] = img
		}

		if img == nil {
			drawFallbackBox(screen, e, o, shakeX, shakeY)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so the feet stay on the hitbox bottom even
		// while the hitbox crouches during a slide
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		// Apply squash/stretch effect (scale around anchor point)
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			drawOp.GeoM.Scale(ss.ScaleX, ss.ScaleY)
		}

		drawOp.GeoM.Translate(o.X+o.W/2+shakeX, o.Y+o.H+shakeY)

		// Death flash overrides other color effects
		if e.HasComponent(components.Flash) {
			flash := components.Flash.Get(e)
			if flash.Duration > 0 {
				drawFlashed(screen, img, flash)
				return
			}
		}

		screen.DrawImage(img, drawOp)
	})
}

// drawFlashed whitens the sprite through the flash shader, falling back to
// a plain color multiplier when shaders are unavailable.
func drawFlashed(screen *ebiten.Image, img *ebiten.Image, flash *components.FlashData) {
	if assets.FlashShader == nil {
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		screen.DrawImage(img, drawOp)
		return
	}

	amount := float32(1)
	if cfg.Effects.DeathFlashFrames > 0 {
		amount = float32(flash.Duration) / float32(cfg.Effects.DeathFlashFrames)
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	flashDrawOp.GeoM = drawOp.GeoM
	flashDrawOp.Images[0] = img
	flashDrawOp.Uniforms = map[string]interface{}{
		"Amount": amount,
	}
	screen.DrawRectShader(w, h, assets.FlashShader, flashDrawOp)
}

// drawFallbackBox keeps a missing sprite visible instead of crashing or
// vanishing: the entity draws as a flat rectangle over its hitbox.
func drawFallbackBox(screen *ebiten.Image, e *donburi.Entry, o *components.ObjectData, shakeX, shakeY float64) {
	entityColor := color.Color(cfg.Orange)
	if e.HasComponent(components.Physics) && !components.Physics.Get(e).OnGround {
		entityColor = cfg.Purple
	}
	vector.FillRect(screen, float32(o.X+shakeX), float32(o.Y+shakeY), float32(o.W), float32(o.H), entityColor, false)
}

// DrawSprites renders static-image entities (obstacles, projectiles). The
// sprite is drawn centered on the hitbox, which restores the fairness inset
// carved out of the collision box.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	shakeX, shakeY := ShakeOffset(ecs)

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		if sprite.Image == nil {
			vector.FillRect(screen, float32(o.X+shakeX), float32(o.Y+shakeY), float32(o.W), float32(o.H), cfg.Slate, false)
			return
		}

		w := float64(sprite.Image.Bounds().Dx())
		h := float64(sprite.Image.Bounds().Dy())

		spriteDrawOp.GeoM.Reset()
		spriteDrawOp.ColorScale.Reset()
		spriteDrawOp.GeoM.Translate(-w/2, -h/2)
		spriteDrawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		spriteDrawOp.GeoM.Translate(o.CenterX()+shakeX, o.CenterY()+shakeY)

		screen.DrawImage(sprite.Image, spriteDrawOp)
	})
}

// DrawParticles renders dust and burst particles as fading squares
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	shakeX, shakeY := ShakeOffset(ecs)

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		col := p.Color
		if p.MaxTTL > 0 {
			col.A = uint8(float64(col.A) * float64(p.TTL) / float64(p.MaxTTL))
		}

		half := p.Size / 2
		vector.FillRect(screen,
			float32(p.Pos.X-half+shakeX), float32(p.Pos.Y-half+shakeY),
			float32(p.Size), float32(p.Size),
			col, false)
	})
}

// DrawPopups renders rising score callouts, fading over their lifetime
func DrawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	shakeX, shakeY := ShakeOffset(ecs)
	popupFont := fonts.HUDBold.Get()

	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)

		col := popup.Color
		if popup.TotalFrames > 0 && e.HasComponent(components.AutoDestroy) {
			remaining := components.AutoDestroy.Get(e).FramesRemaining
			col.A = uint8(float64(col.A) * float64(remaining) / float64(popup.TotalFrames))
		}

		x := int(popup.Pos.X+shakeX) - len(popup.Text)*5
		text.Draw(screen, popup.Text, popupFont, x, int(popup.Pos.Y+shakeY), col)
	})
}
