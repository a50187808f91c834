package ui

import (
	"golang.org/x/image/font/basicfont"
)

// The debug font is x/image's fixed 7x13 face, baked into a single RGBA32
// atlas at startup. Glyphs for the printable ASCII range are laid out in a
// 16-column grid; the bottom row of the atlas is solid white and provides
// the texel sampled by untextured (solid color) geometry.
const (
	glyphWidth  = 7
	glyphHeight = 13
	atlasCols   = 16
	atlasRows   = 6 // 96 printable ASCII glyphs

	atlasWidth  = atlasCols * glyphWidth
	atlasHeight = atlasRows*glyphHeight + 1 // +1: white row
)

// buildFontAtlas rasterizes the glyph grid into a straight-alpha RGBA32
// buffer of atlasWidth x atlasHeight pixels.
func buildFontAtlas() []byte {
	pixels := make([]byte, atlasWidth*atlasHeight*4)
	face := basicfont.Face7x13

	for g := 0; g < atlasCols*atlasRows; g++ {
		r := rune(0x20 + g)
		offset, ok := glyphOffset(face, r)
		if !ok {
			continue
		}
		cellX := (g % atlasCols) * glyphWidth
		cellY := (g / atlasCols) * glyphHeight

		for y := 0; y < glyphHeight; y++ {
			for x := 0; x < glyphWidth; x++ {
				_, _, _, a := face.Mask.At(x, offset*glyphHeight+y).RGBA()
				i := ((cellY+y)*atlasWidth + cellX + x) * 4
				pixels[i] = 0xff
				pixels[i+1] = 0xff
				pixels[i+2] = 0xff
				pixels[i+3] = uint8(a >> 8)
			}
		}
	}

	// Bottom row: opaque white for solid fills.
	for x := 0; x < atlasWidth; x++ {
		i := ((atlasHeight-1)*atlasWidth + x) * 4
		pixels[i] = 0xff
		pixels[i+1] = 0xff
		pixels[i+2] = 0xff
		pixels[i+3] = 0xff
	}

	return pixels
}

// glyphOffset resolves a rune to its row index in the face's stacked mask.
func glyphOffset(f *basicfont.Face, r rune) (int, bool) {
	for _, rr := range f.Ranges {
		if r >= rr.Low && r < rr.High {
			return rr.Offset + int(r-rr.Low), true
		}
	}
	return 0, false
}

// glyphUV returns the atlas UV rectangle for a printable ASCII byte.
// Anything outside 0x20..0x7e renders as '?'.
func glyphUV(ch byte) (u0, v0, u1, v1 float32) {
	if ch < 0x20 || ch > 0x7e {
		ch = '?'
	}
	g := int(ch - 0x20)
	x := (g % atlasCols) * glyphWidth
	y := (g / atlasCols) * glyphHeight
	return float32(x) / atlasWidth,
		float32(y) / atlasHeight,
		float32(x+glyphWidth) / atlasWidth,
		float32(y+glyphHeight) / atlasHeight
}

// whiteUV returns a texel guaranteed to be opaque white, for solid geometry.
func whiteUV() (u, v float32) {
	return 0.5 / atlasWidth, (atlasHeight - 0.5) / atlasHeight
}
