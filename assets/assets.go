package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossfell/catdash/config"
)

// All art is generated at startup; the binary ships no image files. Sheets
// and frames are served from the same caches a file-backed loader would use,
// so the rest of the game never knows the difference.

type SpriteLoader struct {
	sheetCache map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	imageCache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		sheetCache: make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		imageCache: make(map[string]*ebiten.Image),
	}
}

var spriteLoader = NewSpriteLoader()

// GetSheet returns the generated sprite strip for a character state.
func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return spriteLoader.Sheet(dir, state)
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return spriteLoader.Frame(dir, state, frameIndex, srcRect)
}

// GetObstacleImage returns the sprite for an obstacle kind.
func GetObstacleImage(kind config.ObstacleKind) *ebiten.Image {
	return spriteLoader.obstacle(kind)
}

// GetProjectileImage returns the shot sprite.
func GetProjectileImage() *ebiten.Image {
	return spriteLoader.named("projectile", buildProjectile)
}

// GetCloudImage returns the shared cloud sprite. Clouds are tinted per theme
// at draw time.
func GetCloudImage() *ebiten.Image {
	return spriteLoader.named("cloud", buildCloud)
}

func (l *SpriteLoader) Sheet(dir string, state config.StateID) *ebiten.Image {
	key := fmt.Sprintf("%s/%s", dir, state)
	if img, ok := l.sheetCache[key]; ok {
		return img
	}

	rgba := buildSheet(dir, state)
	img := ebiten.NewImageFromImage(rgba)
	l.sheetCache[key] = img
	return img
}

func (l *SpriteLoader) Frame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.Sheet(dir, state)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

func (l *SpriteLoader) obstacle(kind config.ObstacleKind) *ebiten.Image {
	return l.named("obstacle/"+kind.String(), func() *image.RGBA {
		return buildObstacle(kind)
	})
}

func (l *SpriteLoader) named(key string, build func() *image.RGBA) *ebiten.Image {
	if img, ok := l.imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(build())
	l.imageCache[key] = img
	return img
}

// PreloadAll generates every sheet, frame and obstacle image up front to
// avoid texture-upload hitches on first render.
func PreloadAll() {
	fw, fh := config.Player.FrameWidth, config.Player.FrameHeight
	for state, def := range config.CharacterAnimations["cat"] {
		_ = GetSheet("cat", state)
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			sx := i * fw
			_ = GetFrame("cat", state, i, image.Rect(sx, 0, sx+fw, fh))
		}
	}

	for _, kind := range config.AllKinds {
		_ = GetObstacleImage(kind)
	}
	_ = GetProjectileImage()
	_ = GetCloudImage()
}

func buildSheet(dir string, state config.StateID) *image.RGBA {
	if dir != "cat" {
		panic(fmt.Sprintf("no generated sheets for key: %s", dir))
	}
	def, ok := config.CharacterAnimations["cat"][state]
	if !ok {
		panic(fmt.Sprintf("no animation definition for cat state: %s", state))
	}

	fw, fh := config.Player.FrameWidth, config.Player.FrameHeight
	frames := def.Last + 1
	rgba := image.NewRGBA(image.Rect(0, 0, frames*fw, fh))

	for i := 0; i < frames; i++ {
		c := &canvas{img: rgba, ox: i * fw}
		switch state {
		case config.Running:
			drawCatRun(c, i)
		case config.Jumping:
			drawCatJump(c, i)
		case config.Sliding:
			drawCatSlide(c, i)
		case config.Dead:
			drawCatDead(c, i)
		}
	}
	return rgba
}

// canvas draws into one frame of a sheet. All coordinates are frame-local.
type canvas struct {
	img *image.RGBA
	ox  int
}

func (c *canvas) px(x, y int, col color.RGBA) {
	c.img.SetRGBA(c.ox+x, y, col)
}

func (c *canvas) rect(x, y, w, h int, col color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.px(x+dx, y+dy, col)
		}
	}
}

func (c *canvas) disc(cx, cy, r int, col color.RGBA) {
	c.ellipse(cx, cy, r, r, col)
}

func (c *canvas) ellipse(cx, cy, rx, ry int, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx := float64(dx) / float64(rx)
			fy := float64(dy) / float64(ry)
			if fx*fx+fy*fy <= 1.0 {
				c.px(cx+dx, cy+dy, col)
			}
		}
	}
}

// Cat palette
var (
	catFur    = color.RGBA{R: 232, G: 146, B: 58, A: 255}
	catStripe = color.RGBA{R: 196, G: 108, B: 34, A: 255}
	catBelly  = color.RGBA{R: 248, G: 228, B: 198, A: 255}
	catDark   = color.RGBA{R: 60, G: 40, B: 30, A: 255}
	catPink   = color.RGBA{R: 240, G: 150, B: 160, A: 255}
)

// drawCatBody draws the torso, head, ears, tail and stripes around the
// given body center. Legs are pose-specific and drawn by the callers.
func drawCatBody(c *canvas, bx, by int, tailUp bool) {
	// tail
	tailTip := by - 10
	if !tailUp {
		tailTip = by - 4
	}
	for i := 0; i < 8; i++ {
		t := float64(i) / 7.0
		x := bx - 14 - i
		y := int(float64(by)*(1-t) + float64(tailTip)*t)
		c.rect(x, y, 2, 3, catStripe)
	}

	// torso
	c.ellipse(bx, by, 15, 10, catFur)
	c.ellipse(bx, by+4, 11, 5, catBelly)

	// stripes
	c.rect(bx-8, by-9, 3, 6, catStripe)
	c.rect(bx-1, by-10, 3, 6, catStripe)
	c.rect(bx+6, by-9, 3, 5, catStripe)

	// head
	hx, hy := bx+16, by-8
	c.disc(hx, hy, 8, catFur)
	// ears
	c.rect(hx-6, hy-11, 4, 5, catFur)
	c.rect(hx+3, hy-11, 4, 5, catFur)
	c.rect(hx-5, hy-10, 2, 3, catPink)
	c.rect(hx+4, hy-10, 2, 3, catPink)
	// muzzle and eye
	c.ellipse(hx+4, hy+3, 4, 3, catBelly)
	c.px(hx+3, hy-1, catDark)
	c.px(hx+4, hy-1, catDark)
	c.px(hx+8, hy+2, catPink)
}

func drawCatRun(c *canvas, frame int) {
	bounce := []int{0, -1, -2, -1, 0, -1}[frame]
	by := 44 + bounce
	bx := 30

	// leg cycle: front and back pairs swing in opposition
	swing := []int{4, 2, -2, -4, -2, 2}[frame]
	frontY := []int{0, -2, -3, 0, -2, -3}[frame]
	backY := []int{-3, 0, -2, -3, 0, -2}[frame]

	// back legs
	c.rect(bx-10+swing/2, by+8+backY, 4, 10-backY, catStripe)
	c.rect(bx-4-swing/2, by+8+backY, 4, 10-backY, catFur)
	// front legs
	c.rect(bx+8+swing, by+8+frontY, 4, 10-frontY, catFur)
	c.rect(bx+13-swing, by+8+frontY, 4, 10-frontY, catStripe)

	drawCatBody(c, bx, by, frame%3 != 0)
}

func drawCatJump(c *canvas, frame int) {
	switch frame {
	case 0: // launch crouch
		c.rect(20, 52, 5, 8, catStripe)
		c.rect(40, 52, 5, 8, catFur)
		drawCatBody(c, 30, 48, true)
	case 1: // full stretch
		c.rect(14, 46, 5, 9, catStripe)
		c.rect(44, 34, 5, 9, catFur)
		drawCatBody(c, 30, 36, true)
	case 2: // tuck at apex
		c.rect(22, 42, 5, 6, catStripe)
		c.rect(38, 42, 5, 6, catFur)
		drawCatBody(c, 30, 36, true)
	case 3: // fall pose, legs reaching down
		c.rect(20, 44, 5, 12, catStripe)
		c.rect(40, 44, 5, 12, catFur)
		drawCatBody(c, 30, 38, false)
	}
}

func drawCatSlide(c *canvas, frame int) {
	by := 52
	bx := 30

	// tail trails straight back
	for i := 0; i < 9; i++ {
		c.rect(bx-16-i, by-2+frame, 2, 3, catStripe)
	}

	// long low body
	c.ellipse(bx, by, 20, 7, catFur)
	c.ellipse(bx, by+3, 15, 4, catBelly)
	c.rect(bx-10, by-6, 3, 4, catStripe)
	c.rect(bx, by-7, 3, 4, catStripe)

	// head low and forward, ears flattened
	hx, hy := bx+20, by-3
	c.disc(hx, hy, 7, catFur)
	c.rect(hx-7, hy-8, 5, 3, catFur)
	c.rect(hx+1, hy-8, 5, 3, catFur)
	c.px(hx+3, hy-1, catDark)
	c.px(hx+4, hy-1, catDark)

	// paws tucked under the chest
	c.rect(bx+8, by+5, 6, 3, catStripe)
}

func drawCatDead(c *canvas, frame int) {
	switch frame {
	case 0: // stagger
		c.rect(20, 50, 4, 10, catStripe)
		c.rect(38, 50, 4, 10, catFur)
		drawCatBody(c, 29, 46, false)
	case 1: // knees buckle
		c.rect(22, 54, 4, 6, catStripe)
		c.rect(38, 54, 4, 6, catFur)
		drawCatBody(c, 30, 50, false)
	case 2: // tipping onto the side
		c.ellipse(30, 54, 18, 7, catFur)
		c.ellipse(30, 56, 13, 4, catBelly)
		c.disc(46, 50, 7, catFur)
		c.rect(41, 42, 4, 4, catFur)
		c.rect(48, 42, 4, 4, catFur)
		c.px(44, 49, catDark)
		c.rect(16, 44, 3, 8, catStripe)
	case 3: // down, legs up
		c.ellipse(30, 57, 19, 6, catFur)
		c.ellipse(30, 58, 14, 4, catBelly)
		c.disc(47, 54, 7, catFur)
		// crossed-out eye
		c.px(44, 52, catDark)
		c.px(46, 54, catDark)
		c.px(46, 52, catDark)
		c.px(44, 54, catDark)
		c.px(50, 58, catPink)
		// stiff legs
		c.rect(22, 44, 3, 9, catStripe)
		c.rect(30, 42, 3, 11, catFur)
	}
}

// Obstacle palette
var (
	stoneGray  = color.RGBA{R: 130, G: 130, B: 138, A: 255}
	stoneLight = color.RGBA{R: 168, G: 168, B: 176, A: 255}
	stoneDark  = color.RGBA{R: 92, G: 92, B: 100, A: 255}
	barkBrown  = color.RGBA{R: 120, G: 80, B: 44, A: 255}
	barkDark   = color.RGBA{R: 88, G: 56, B: 28, A: 255}
	barkLight  = color.RGBA{R: 158, G: 112, B: 66, A: 255}
	leafGreen  = color.RGBA{R: 70, G: 140, B: 60, A: 255}
	leafDark   = color.RGBA{R: 46, G: 104, B: 40, A: 255}
	berryRed   = color.RGBA{R: 200, G: 50, B: 60, A: 255}
	balloonRed = color.RGBA{R: 220, G: 60, B: 70, A: 255}
	balloonHi  = color.RGBA{R: 250, G: 160, B: 165, A: 255}
	stringGray = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	boltYellow = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	boltCore   = color.RGBA{R: 255, G: 255, B: 220, A: 255}
	cloudWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func buildObstacle(kind config.ObstacleKind) *image.RGBA {
	kc := config.Obstacles.Kinds[kind]
	w, h := int(kc.Width), int(kc.Height)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	c := &canvas{img: rgba}

	switch kind {
	case config.Rock:
		drawRock(c, w, h)
	case config.Log:
		drawLog(c, w, h)
	case config.Bush:
		drawBush(c, w, h)
	case config.FallenTree:
		drawFallenTree(c, w, h)
	case config.Balloon:
		drawBalloon(c, w, h)
	}
	return rgba
}

func drawRock(c *canvas, w, h int) {
	cx, cy := w/2, h/2+4
	c.ellipse(cx, cy, w/2-2, h/2-4, stoneGray)
	c.ellipse(cx-6, cy-8, w/3, h/4, stoneGray)
	c.ellipse(cx-8, cy-10, w/5, h/7, stoneLight)
	// cracks
	for i := 0; i < 6; i++ {
		c.px(cx-2+i, cy-2+i/2, stoneDark)
	}
	c.rect(2, h-4, w-4, 3, stoneDark)
}

func drawLog(c *canvas, w, h int) {
	c.rect(h/3, 4, w-h/3-2, h-8, barkBrown)
	// bark grain
	for y := 7; y < h-6; y += 5 {
		c.rect(h/3+4, y, w-h/3-10, 1, barkDark)
	}
	// cut face with rings
	c.ellipse(h/3, h/2, h/3, h/2-4, barkLight)
	c.ellipse(h/3, h/2, h/5, h/3-2, barkBrown)
	c.ellipse(h/3, h/2, 2, 2, barkDark)
}

func drawBush(c *canvas, w, h int) {
	c.ellipse(w/4, h-h/3, w/4, h/3, leafDark)
	c.ellipse(3*w/4, h-h/3, w/4, h/3, leafDark)
	c.ellipse(w/2, h/2-2, w/3, h/2-2, leafGreen)
	c.ellipse(w/4+2, h/2+4, w/5, h/4, leafGreen)
	// berries
	c.disc(w/2-6, h/2, 2, berryRed)
	c.disc(w/2+8, h/2+6, 2, berryRed)
	c.disc(w/3, h/2+8, 2, berryRed)
}

func drawFallenTree(c *canvas, w, h int) {
	trunkTop := h / 2
	c.rect(0, trunkTop, w, h-trunkTop-2, barkBrown)
	c.rect(0, trunkTop, w, 2, barkLight)
	for x := 8; x < w-6; x += 12 {
		c.rect(x, trunkTop+4, 1, h-trunkTop-8, barkDark)
	}
	// broken branch stubs
	c.rect(w/5, trunkTop-8, 5, 8, barkDark)
	c.rect(w/2, trunkTop-12, 5, 12, barkBrown)
	c.rect(4*w/5, trunkTop-6, 5, 6, barkDark)
	// moss
	c.rect(w/3, trunkTop, 9, 2, leafDark)
	c.rect(2*w/3, trunkTop, 7, 2, leafDark)
}

func drawBalloon(c *canvas, w, h int) {
	bx, by := w/2, h/4+2
	c.ellipse(bx, by, w/2-4, h/4+4, balloonRed)
	c.ellipse(bx-5, by-6, 4, 6, balloonHi)
	// knot
	c.rect(bx-2, by+h/4+4, 4, 4, balloonRed)
	// string wiggles down to the bottom edge
	for y := by + h/4 + 8; y < h; y++ {
		x := bx + int(2*math.Sin(float64(y)*0.25))
		c.px(x, y, stringGray)
	}
}

func buildProjectile() *image.RGBA {
	w, h := int(config.Projectile.Width), int(config.Projectile.Height)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	c := &canvas{img: rgba}
	c.rect(0, 1, w-2, h-2, boltYellow)
	c.rect(2, h/2-1, w-4, 1, boltCore)
	c.px(w-1, h/2, boltCore)
	return rgba
}

func buildCloud() *image.RGBA {
	w, h := 48, 24
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	c := &canvas{img: rgba}
	c.ellipse(w/4, 2*h/3, w/4, h/4, cloudWhite)
	c.ellipse(w/2, h/2, w/4, h/3, cloudWhite)
	c.ellipse(3*w/4, 2*h/3, w/5, h/4, cloudWhite)
	c.ellipse(w/2, 2*h/3, w/3, h/4, cloudWhite)
	return rgba
}
