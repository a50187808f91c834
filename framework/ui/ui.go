package ui

import "fmt"

// MouseState is the pointer snapshot a backend samples once per frame and
// feeds to PrepareFrame.
type MouseState struct {
	X, Y                float32
	Left, Middle, Right bool
}

// IO is the per-frame input/output block shared between the backend event
// loop and the UI. The backend writes into it (display size, pointer state,
// wheel); widgets read from it.
type IO struct {
	DisplaySize [2]float32
	MousePos    [2]float32
	MouseDown   [3]bool
	MouseWheel  float32
	DeltaTime   float32
}

// Context owns the UI's IO block and the draw lists under construction.
// It is single-threaded and single-borrow: only the owning renderer and the
// event loop touch it, never concurrently.
type Context struct {
	io IO

	frameOpen bool
	lists     []DrawList
	cur       *DrawList // window list under construction, nil outside Begin/End
	clip      [4]float32
	cursorX   float32
	cursorY   float32
	winX      float32
}

// NewContext creates a UI context. The font atlas is built eagerly so the
// renderer can upload it during its own construction.
func NewContext() *Context {
	return &Context{}
}

// IO returns the mutable input/output block.
func (c *Context) IO() *IO {
	return &c.io
}

// FontAtlas returns the built-in font atlas as an RGBA32 pixel buffer plus
// its dimensions. The renderer must register it under [FontTextureID].
func (c *Context) FontAtlas() (width, height int, pixels []byte) {
	return atlasWidth, atlasHeight, buildFontAtlas()
}

// PrepareFrame records the window size and pointer state for the frame about
// to be built. Called by the event loop right before the game draws.
func (c *Context) PrepareFrame(displayWidth, displayHeight float32, mouse MouseState) {
	c.io.DisplaySize = [2]float32{displayWidth, displayHeight}
	c.io.MousePos = [2]float32{mouse.X, mouse.Y}
	c.io.MouseDown = [3]bool{mouse.Left, mouse.Middle, mouse.Right}
}

// SetDisplaySize updates the display size outside of PrepareFrame, used by
// the event loop on window resize events.
func (c *Context) SetDisplaySize(width, height float32) {
	c.io.DisplaySize = [2]float32{width, height}
}

// HandleMouseMotion feeds a pointer move into the IO block.
func (c *Context) HandleMouseMotion(x, y float32) {
	c.io.MousePos = [2]float32{x, y}
}

// HandleMouseButton feeds a button transition into the IO block.
// Button 0 is left, 1 middle, 2 right; others are ignored.
func (c *Context) HandleMouseButton(button int, down bool) {
	if button >= 0 && button < len(c.io.MouseDown) {
		c.io.MouseDown[button] = down
	}
}

// HandleMouseWheel accumulates wheel movement until the next NewFrame.
func (c *Context) HandleMouseWheel(delta float32) {
	c.io.MouseWheel += delta
}

// NewFrame discards the previous frame's draw lists and opens a new frame.
func (c *Context) NewFrame() {
	c.lists = c.lists[:0]
	c.cur = nil
	c.frameOpen = true
	c.io.MouseWheel = 0
}

// Render closes the frame and returns its draw data. The returned value is
// only valid until the next NewFrame.
func (c *Context) Render() *DrawData {
	if c.cur != nil {
		c.End()
	}
	c.frameOpen = false
	return &DrawData{DrawLists: c.lists}
}

// Begin opens a window panel at the given position and size. Every window
// gets its own draw list clipped to the panel rectangle. Windows cannot
// nest; Begin while a window is open first closes it.
func (c *Context) Begin(title string, x, y, w, h float32) {
	if c.cur != nil {
		c.End()
	}
	c.lists = append(c.lists, DrawList{})
	c.cur = &c.lists[len(c.lists)-1]
	c.clip = [4]float32{x, y, x + w, y + h}
	c.winX = x + 4
	c.cursorX = x + 4
	c.cursorY = y + 4

	wu, wv := whiteUV()
	// Panel background and title bar.
	c.cur.quad(x, y, x+w, y+h, wu, wv, wu, wv, [4]uint8{24, 24, 32, 224})
	c.cur.quad(x, y, x+w, y+float32(glyphHeight)+6, wu, wv, wu, wv, [4]uint8{48, 48, 80, 255})
	c.text(title, [4]uint8{255, 255, 255, 255})
	c.cursorY += 4
}

// End closes the current window and emits its single Elements command.
func (c *Context) End() {
	if c.cur == nil {
		return
	}
	c.cur.Commands = append(c.cur.Commands, Elements{
		Count:     len(c.cur.IdxBuffer),
		VtxOffset: 0,
		IdxOffset: 0,
		TextureID: FontTextureID,
		ClipRect:  c.clip,
	})
	c.cur = nil
}

// Text adds one line of white text to the current window.
func (c *Context) Text(s string) {
	c.text(s, [4]uint8{255, 255, 255, 255})
}

// TextColored adds one line of tinted text to the current window.
func (c *Context) TextColored(s string, col [4]uint8) {
	c.text(s, col)
}

// Textf adds one formatted line of white text to the current window.
func (c *Context) Textf(format string, args ...any) {
	c.text(fmt.Sprintf(format, args...), [4]uint8{255, 255, 255, 255})
}

func (c *Context) text(s string, col [4]uint8) {
	if c.cur == nil {
		return
	}
	x := c.cursorX
	for i := 0; i < len(s); i++ {
		u0, v0, u1, v1 := glyphUV(s[i])
		c.cur.quad(x, c.cursorY, x+glyphWidth, c.cursorY+glyphHeight, u0, v0, u1, v1, col)
		x += glyphWidth
	}
	c.cursorX = c.winX
	c.cursorY += glyphHeight + 2
}

// Separator draws a 1px horizontal rule across the current window.
func (c *Context) Separator() {
	if c.cur == nil {
		return
	}
	wu, wv := whiteUV()
	c.cur.quad(c.clip[0]+2, c.cursorY, c.clip[2]-2, c.cursorY+1, wu, wv, wu, wv, [4]uint8{128, 128, 128, 255})
	c.cursorY += 4
}

// Marker draws a small solid triangle bullet at the cursor, then advances.
// Unlike text and separators this emits a lone triangle, which renderers
// cannot coalesce into a quad.
func (c *Context) Marker(col [4]uint8) {
	if c.cur == nil {
		return
	}
	wu, wv := whiteUV()
	x, y := c.cursorX, c.cursorY
	c.cur.triangle(
		[3]float32{x, x, x + 6},
		[3]float32{y, y + 8, y + 4},
		wu, wv, col,
	)
	c.cursorX += 9
}
