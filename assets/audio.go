package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/mossfell/catdash/config"
)

// AudioLoader synthesizes and caches sound effects and music. Everything is
// rendered once to 16-bit little-endian stereo PCM at the context sample
// rate, then served through fresh players over the cached bytes.
type AudioLoader struct {
	sfxCache   map[string][]byte
	musicCache map[string][]byte
	context    *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[string][]byte),
		musicCache: make(map[string][]byte),
		context:    ctx,
	}
}

// PreloadSFX renders every known effect so playback never synthesizes on
// the game loop.
func (l *AudioLoader) PreloadSFX() error {
	for _, name := range config.Sound.SFXNames {
		if _, ok := l.sfxCache[name]; ok {
			continue
		}
		data, err := synthSFX(name)
		if err != nil {
			return err
		}
		l.sfxCache[name] = data
	}
	return nil
}

// LoadSFX returns a new player for a named effect. Multiple players can play
// the same cached bytes simultaneously.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	data, ok := l.sfxCache[name]
	if !ok {
		var err error
		data, err = synthSFX(name)
		if err != nil {
			return nil, err
		}
		l.sfxCache[name] = data
	}

	player, err := l.context.NewPlayer(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for %s: %w", name, err)
	}
	return player, nil
}

// LoadMusic returns a looping player for a named track.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	data, ok := l.musicCache[name]
	if !ok {
		var err error
		data, err = synthMusic(name)
		if err != nil {
			return nil, err
		}
		l.musicCache[name] = data
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player for %s: %w", name, err)
	}
	return player, nil
}

// synthesis

const twoPi = 2 * math.Pi

func sampleRate() float64 {
	return float64(config.Audio.SampleRate)
}

// render evaluates gen over dur seconds and packs the result as stereo
// int16 samples. gen returns values in [-1, 1]; anything outside clips.
func render(dur float64, gen func(t float64) float64) []byte {
	rate := sampleRate()
	n := int(dur * rate)
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		v := gen(float64(i) / rate)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

// env is a linear attack/release envelope over a clip of length dur.
func env(t, dur, attack, release float64) float64 {
	switch {
	case t < 0 || t > dur:
		return 0
	case t < attack:
		return t / attack
	case t > dur-release:
		return (dur - t) / release
	default:
		return 1
	}
}

func sine(t, freq float64) float64 {
	return math.Sin(twoPi * freq * t)
}

func square(t, freq float64) float64 {
	if math.Sin(twoPi*freq*t) >= 0 {
		return 1
	}
	return -1
}

func triangle(t, freq float64) float64 {
	return 2 / math.Pi * math.Asin(math.Sin(twoPi*freq*t))
}

func saw(t, freq float64) float64 {
	p := t * freq
	return 2 * (p - math.Floor(p+0.5))
}

// sweep interpolates frequency from f0 to f1 over dur and returns the
// accumulated phase for an oscillator at time t.
func sweep(t, dur, f0, f1 float64) float64 {
	k := (f1 - f0) / dur
	return f0*t + 0.5*k*t*t
}

func synthSFX(name string) ([]byte, error) {
	switch name {
	case "jump":
		const dur = 0.09
		return render(dur, func(t float64) float64 {
			ph := sweep(t, dur, 220, 440)
			v := 1.0
			if math.Sin(twoPi*ph) < 0 {
				v = -1.0
			}
			return 0.35 * v * env(t, dur, 0.005, 0.04)
		}), nil
	case "land":
		const dur = 0.05
		return render(dur, func(t float64) float64 {
			return 0.3 * sine(t, 150) * env(t, dur, 0.002, 0.03)
		}), nil
	case "slide":
		const dur = 0.12
		rng := rand.New(rand.NewSource(7))
		return render(dur, func(t float64) float64 {
			return 0.25 * (rng.Float64()*2 - 1) * env(t, dur, 0.01, 0.09)
		}), nil
	case "shoot":
		const dur = 0.08
		return render(dur, func(t float64) float64 {
			f := 880 - (880-330)*t/dur
			return 0.3 * saw(t, f) * env(t, dur, 0.002, 0.03)
		}), nil
	case "pop":
		const dur = 0.07
		return render(dur, func(t float64) float64 {
			f := 520 - (520-180)*t/dur
			return 0.35 * square(t, f) * env(t, dur, 0.002, 0.03)
		}), nil
	case "point":
		const dur = 0.06
		return render(dur, func(t float64) float64 {
			return 0.4 * sine(t, 660) * env(t, dur, 0.005, 0.02)
		}), nil
	case "bonus":
		const step = 0.045
		const dur = 3 * step
		freqs := []float64{523.25, 659.25, 783.99}
		return render(dur, func(t float64) float64 {
			i := int(t / step)
			if i > 2 {
				i = 2
			}
			lt := t - float64(i)*step
			return 0.35 * sine(t, freqs[i]) * env(lt, step, 0.004, 0.015)
		}), nil
	case "hit":
		const dur = 0.25
		rng := rand.New(rand.NewSource(13))
		return render(dur, func(t float64) float64 {
			thud := 0.5 * sine(t, 110) * env(t, dur, 0.002, 0.2)
			crunch := 0.3 * (rng.Float64()*2 - 1) * env(t, 0.1, 0.002, 0.08)
			return thud + crunch
		}), nil
	case "menu_navigate":
		const dur = 0.03
		return render(dur, func(t float64) float64 {
			return 0.25 * square(t, 440) * env(t, dur, 0.002, 0.01)
		}), nil
	case "menu_select":
		const dur = 0.09
		return render(dur, func(t float64) float64 {
			f := 660.0
			if t > dur/2 {
				f = 880.0
			}
			return 0.3 * sine(t, f) * env(t, dur, 0.004, 0.03)
		}), nil
	}
	return nil, fmt.Errorf("unknown sound effect: %s", name)
}

// note is one step in a music pattern. freq 0 is a rest.
type note struct {
	freq  float64
	beats float64
}

func renderPattern(notes []note, bpm float64, osc func(t, f float64) float64, gain float64) []byte {
	spb := 60.0 / bpm
	var out []byte
	for _, n := range notes {
		dur := n.beats * spb
		f := n.freq
		out = append(out, render(dur, func(t float64) float64 {
			if f == 0 {
				return 0
			}
			return gain * osc(t, f) * env(t, dur, 0.01, 0.05)
		})...)
	}
	return out
}

// mix sums two stereo buffers sample by sample. The longer buffer's tail
// is kept as-is.
func mix(a, b []byte) []byte {
	long, short := a, b
	if len(b) > len(a) {
		long, short = b, a
	}
	out := make([]byte, len(long))
	copy(out, long)
	for i := 0; i+1 < len(short); i += 2 {
		va := int32(int16(binary.LittleEndian.Uint16(long[i:])))
		vb := int32(int16(binary.LittleEndian.Uint16(short[i:])))
		v := va + vb
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(v)))
	}
	return out
}

// Note frequencies used by the two tracks.
const (
	a2 = 110.00
	c3 = 130.81
	d3 = 146.83
	e3 = 164.81
	g3 = 196.00
	a3 = 220.00
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	g5 = 783.99
)

func synthMusic(name string) ([]byte, error) {
	switch name {
	case "menu":
		melody := renderPattern([]note{
			{c4, 1}, {e4, 1}, {g4, 1}, {e4, 1},
			{a3, 1}, {c4, 1}, {e4, 1}, {c4, 1},
			{g3, 1}, {c4, 1}, {e4, 1}, {d4, 2},
			{0, 2},
		}, 76, triangle, 0.18)
		bass := renderPattern([]note{
			{c3, 4}, {a2, 4}, {g3, 4}, {0, 4},
		}, 76, sine, 0.12)
		return mix(melody, bass), nil
	case "game":
		melody := renderPattern([]note{
			{c5, 0.5}, {e5, 0.5}, {g5, 0.5}, {e5, 0.5},
			{d5, 0.5}, {g5, 0.5}, {d5, 0.5}, {0, 0.5},
			{c5, 0.5}, {e5, 0.5}, {g5, 0.5}, {e5, 0.5},
			{a4, 0.5}, {c5, 0.5}, {d5, 0.5}, {0, 0.5},
		}, 132, square, 0.10)
		bass := renderPattern([]note{
			{c3, 1}, {c3, 1}, {g3, 1}, {g3, 1},
			{a3, 1}, {a3, 1}, {d3, 1}, {e3, 1},
		}, 132, triangle, 0.14)
		return mix(melody, bass), nil
	}
	return nil, fmt.Errorf("unknown music track: %s", name)
}
