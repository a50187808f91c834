package ui

import "testing"

func TestFontAtlasDimensions(t *testing.T) {
	pixels := buildFontAtlas()
	if want := atlasWidth * atlasHeight * 4; len(pixels) != want {
		t.Fatalf("atlas buffer = %d bytes, want %d", len(pixels), want)
	}
}

func TestFontAtlasWhiteRow(t *testing.T) {
	pixels := buildFontAtlas()
	for x := 0; x < atlasWidth; x++ {
		i := ((atlasHeight-1)*atlasWidth + x) * 4
		for c := 0; c < 4; c++ {
			if pixels[i+c] != 0xff {
				t.Fatalf("white row texel %d channel %d = %d, want 255", x, c, pixels[i+c])
			}
		}
	}
}

func TestFontAtlasGlyphsHaveInk(t *testing.T) {
	pixels := buildFontAtlas()
	// 'A' must rasterize some opaque texels; space must not.
	hasInk := func(ch byte) bool {
		g := int(ch - 0x20)
		cellX := (g % atlasCols) * glyphWidth
		cellY := (g / atlasCols) * glyphHeight
		for y := 0; y < glyphHeight; y++ {
			for x := 0; x < glyphWidth; x++ {
				if pixels[((cellY+y)*atlasWidth+cellX+x)*4+3] != 0 {
					return true
				}
			}
		}
		return false
	}

	if !hasInk('A') {
		t.Error("glyph 'A' is blank")
	}
	if hasInk(' ') {
		t.Error("glyph ' ' has ink")
	}
}

func TestGlyphUV(t *testing.T) {
	tests := []struct {
		name string
		ch   byte
	}{
		{"space", ' '},
		{"tilde", '~'},
		{"control byte falls back", 0x07},
		{"high byte falls back", 0xff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u0, v0, u1, v1 := glyphUV(tt.ch)
			if u0 < 0 || v0 < 0 || u1 > 1 || v1 > 1 {
				t.Fatalf("uv = (%v,%v)-(%v,%v), outside [0,1]", u0, v0, u1, v1)
			}
			if u1 <= u0 || v1 <= v0 {
				t.Fatalf("uv = (%v,%v)-(%v,%v), degenerate", u0, v0, u1, v1)
			}
		})
	}

	fu0, fv0, fu1, fv1 := glyphUV('?')
	gu0, gv0, gu1, gv1 := glyphUV(0xff)
	if fu0 != gu0 || fv0 != gv0 || fu1 != gu1 || fv1 != gv1 {
		t.Error("fallback uv differs from '?'")
	}
}

func TestWhiteUVInsideWhiteRow(t *testing.T) {
	u, v := whiteUV()
	if u < 0 || u > 1 {
		t.Errorf("u = %v, outside [0,1]", u)
	}
	if v*atlasHeight < atlasHeight-1 {
		t.Errorf("v = %v samples above the white row", v)
	}
}
