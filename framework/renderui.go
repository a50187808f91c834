package framework

import (
	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// The UI draw-list interpreter walks each draw list's triangle stream and
// rebuilds axis-aligned quads out of consecutive triangle pairs: two
// coplanar triangles whose six vertices all sit on the corners of their
// bounding box become a single textured blit, which is much cheaper than a
// triangulated polygon fill. Everything else falls back to a filled RGBA
// triangle. The walk itself is backend-independent; a drawListTarget
// supplies the native clip/blit/fill operations.

// drawListTarget is the set of native operations the interpreter needs.
type drawListTarget interface {
	// setClip restricts subsequent drawing to the pixel rectangle.
	setClip(x0, y0, x1, y1 float32) error
	// clearClip removes the clip rectangle.
	clearClip() error
	// textureSize resolves a UI texture id through the renderer's
	// registry. ok is false for unregistered ids.
	textureSize(id ui.TextureID) (w, h uint16, ok bool)
	// blitQuad copies src (texture pixels) to dest (target pixels) with
	// the given color and alpha modulation.
	blitQuad(id ui.TextureID, src, dest common.Rect[float32], col [4]uint8) error
	// fillTriangle renders one filled RGBA triangle from 16-bit vertex
	// positions.
	fillTriangle(vx, vy [3]int16, col [4]uint8) error
}

func min3(x, y, z float32) float32 {
	if x < y && x < z {
		return x
	}
	if y < z {
		return y
	}
	return z
}

func max3(x, y, z float32) float32 {
	if x > y && x > z {
		return x
	}
	if y > z {
		return y
	}
	return z
}

// onCorner reports whether v lies on a corner of the box spanned by min/max.
func onCorner(v ui.DrawVert, minX, minY, maxX, maxY float32) bool {
	return (v.Pos[0] == minX || v.Pos[0] == maxX) &&
		(v.Pos[1] == minY || v.Pos[1] == maxY)
}

// detectQuad checks whether two consecutive triangles form an axis-aligned
// quad. The bounding box is computed over the first triangle only; all six
// vertices must sit on its corners. On success it returns the destination
// rectangle (the box) and the UV bounds of the first triangle.
func detectQuad(v1, v2, v3, v4, v5, v6 ui.DrawVert) (dest, uv common.Rect[float32], ok bool) {
	minX := min3(v1.Pos[0], v2.Pos[0], v3.Pos[0])
	minY := min3(v1.Pos[1], v2.Pos[1], v3.Pos[1])
	maxX := max3(v1.Pos[0], v2.Pos[0], v3.Pos[0])
	maxY := max3(v1.Pos[1], v2.Pos[1], v3.Pos[1])

	if !onCorner(v1, minX, minY, maxX, maxY) ||
		!onCorner(v2, minX, minY, maxX, maxY) ||
		!onCorner(v3, minX, minY, maxX, maxY) ||
		!onCorner(v4, minX, minY, maxX, maxY) ||
		!onCorner(v5, minX, minY, maxX, maxY) ||
		!onCorner(v6, minX, minY, maxX, maxY) {
		return dest, uv, false
	}

	dest = common.Rect[float32]{Left: minX, Top: minY, Right: maxX, Bottom: maxY}
	uv = common.Rect[float32]{
		Left:   min3(v1.UV[0], v2.UV[0], v3.UV[0]),
		Top:    min3(v1.UV[1], v2.UV[1], v3.UV[1]),
		Right:  max3(v1.UV[0], v2.UV[0], v3.UV[0]),
		Bottom: max3(v1.UV[1], v2.UV[1], v3.UV[1]),
	}
	return dest, uv, true
}

// renderDrawData interprets a frame of UI draw data against a target.
func renderDrawData(data *ui.DrawData, t drawListTarget) error {
	for li := range data.DrawLists {
		list := &data.DrawLists[li]
		for _, cmd := range list.Commands {
			switch c := cmd.(type) {
			case ui.Elements:
				if err := renderElements(list, c, t); err != nil {
					return err
				}
			case ui.ResetRenderState:
				// No renderer state to reset.
			case ui.RawCallback:
				c.Callback(list)
			}
		}
	}
	return nil
}

func renderElements(list *ui.DrawList, c ui.Elements, t drawListTarget) error {
	if err := t.setClip(c.ClipRect[0], c.ClipRect[1], c.ClipRect[2], c.ClipRect[3]); err != nil {
		return err
	}

	vert := func(i int) ui.DrawVert {
		return list.VtxBuffer[c.VtxOffset+int(list.IdxBuffer[c.IdxOffset+i])]
	}

	skipNext := false
	for i := 0; i+3 <= c.Count; i += 3 {
		if skipNext {
			skipNext = false
			continue
		}

		v1, v2, v3 := vert(i), vert(i+1), vert(i+2)

		var dest, uv common.Rect[float32]
		isRect := false
		// The pairing only looks ahead while a full second triangle
		// remains; a trailing unpaired half-quad takes the fill path.
		if i < c.Count-3 {
			dest, uv, isRect = detectQuad(v1, v2, v3, vert(i+3), vert(i+4), vert(i+5))
		}

		tw, th, ok := t.textureSize(c.TextureID)
		if !ok {
			// Unregistered texture: draw nothing, but a detected
			// pair still consumes both triangles.
			skipNext = isRect
			continue
		}

		if isRect {
			src := common.Rect[float32]{
				Left:   uv.Left * float32(tw),
				Top:    uv.Top * float32(th),
				Right:  uv.Right * float32(tw),
				Bottom: uv.Bottom * float32(th),
			}
			if err := t.blitQuad(c.TextureID, src, dest, v1.Col); err != nil {
				return err
			}
			skipNext = true
			continue
		}

		// Pixel-center convention: bias by -0.5 before the integer cast.
		vx := [3]int16{
			int16(v1.Pos[0] - 0.5),
			int16(v2.Pos[0] - 0.5),
			int16(v3.Pos[0] - 0.5),
		}
		vy := [3]int16{
			int16(v1.Pos[1] - 0.5),
			int16(v2.Pos[1] - 0.5),
			int16(v3.Pos[1] - 0.5),
		}
		if err := t.fillTriangle(vx, vy, v1.Col); err != nil {
			return err
		}
	}

	return t.clearClip()
}
