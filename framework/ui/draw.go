// Package ui is the engine's immediate-mode debug UI. Each frame it produces
// a self-contained stream of draw lists (triangle meshes plus clipped,
// textured commands) that a backend renderer interprets; no widget state is
// retained between frames beyond the IO block.
package ui

// TextureID identifies a texture registered with the backend renderer's
// UI texture registry.
type TextureID int

// FontTextureID is the id of the built-in font atlas. The renderer registers
// the atlas under this id at construction time, so it is always resolvable.
const FontTextureID TextureID = 1

// DrawVert is a single UI vertex: screen-space position, texture coordinate
// in [0,1], and a linear-space RGBA color.
type DrawVert struct {
	Pos [2]float32
	UV  [2]float32
	Col [4]uint8
}

// DrawCmd is one command inside a draw list. Exactly three variants exist:
// [Elements], [ResetRenderState], and [RawCallback].
type DrawCmd interface {
	isDrawCmd()
}

// Elements draws Count indices worth of triangles from the owning list's
// buffers. Indices start at IdxOffset and are biased by VtxOffset. Rendering
// is clipped to ClipRect ([x0, y0, x1, y1] in screen pixels) and textured by
// TextureID.
type Elements struct {
	Count     int
	VtxOffset int
	IdxOffset int
	TextureID TextureID
	ClipRect  [4]float32
}

// ResetRenderState asks the renderer to restore its default state.
// The engine renderers keep no UI-visible state, so it is a no-op.
type ResetRenderState struct{}

// RawCallback hands control to user code with the raw draw list.
type RawCallback struct {
	Callback func(list *DrawList)
}

func (Elements) isDrawCmd()         {}
func (ResetRenderState) isDrawCmd() {}
func (RawCallback) isDrawCmd()      {}

// DrawList is one mesh: a vertex buffer, a 16-bit index buffer, and the
// commands that slice them.
type DrawList struct {
	VtxBuffer []DrawVert
	IdxBuffer []uint16
	Commands  []DrawCmd
}

// DrawData is the whole frame's UI output.
type DrawData struct {
	DrawLists []DrawList
}

// quad appends an axis-aligned textured quad as two triangles. Vertex order
// is top-left, top-right, bottom-right, bottom-left with indices (0,1,2)
// (0,2,3), so every corner lies on the quad's bounding box and renderers may
// coalesce the pair into a single blit.
func (l *DrawList) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, col [4]uint8) {
	base := uint16(len(l.VtxBuffer))
	l.VtxBuffer = append(l.VtxBuffer,
		DrawVert{Pos: [2]float32{x0, y0}, UV: [2]float32{u0, v0}, Col: col},
		DrawVert{Pos: [2]float32{x1, y0}, UV: [2]float32{u1, v0}, Col: col},
		DrawVert{Pos: [2]float32{x1, y1}, UV: [2]float32{u1, v1}, Col: col},
		DrawVert{Pos: [2]float32{x0, y1}, UV: [2]float32{u0, v1}, Col: col},
	)
	l.IdxBuffer = append(l.IdxBuffer,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// triangle appends a single solid triangle. Solid geometry samples the
// atlas's white pixel so textured and untextured output share one mesh.
func (l *DrawList) triangle(x [3]float32, y [3]float32, u, v float32, col [4]uint8) {
	base := uint16(len(l.VtxBuffer))
	for i := 0; i < 3; i++ {
		l.VtxBuffer = append(l.VtxBuffer, DrawVert{
			Pos: [2]float32{x[i], y[i]},
			UV:  [2]float32{u, v},
			Col: col,
		})
	}
	l.IdxBuffer = append(l.IdxBuffer, base, base+1, base+2)
}
