package animations

// Animation steps through a horizontal strip of equally sized frames.
type Animation struct {
	First            int
	Last             int
	Step             int     // index stride per advance
	SpeedInTps       float32 // ticks between advances
	frameCounter     float32
	frame            int
	Looped           bool // set once the strip has wrapped or completed
	FreezeOnComplete bool // stay on the last frame instead of wrapping
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

// Frame returns the current sheet index.
func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a freezing animation has reached its final frame.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}
