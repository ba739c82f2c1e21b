package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// FlashShader whitens a sprite by Amount, used for the death flash.
	FlashShader *ebiten.Shader
)

const flashShaderSrc = `
//kage:unit pixels

package main

var Amount float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	white := vec4(c.a, c.a, c.a, c.a)
	return mix(c, white, Amount)
}
`

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	FlashShader, err = ebiten.NewShader([]byte(flashShaderSrc))
	if err != nil {
		return err
	}

	return nil
}
