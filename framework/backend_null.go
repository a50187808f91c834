package framework

import (
	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// Null backend: no window, no driver. The event loop consumes an injected
// event queue and the renderer records every operation it would have issued,
// which is what the headless tests assert against.

// NullEvent is a synthetic platform event for the null event pump.
type NullEvent interface {
	isNullEvent()
}

// NullQuitEvent requests shutdown, like closing the window.
type NullQuitEvent struct{}

// NullWindowShownEvent mirrors the platform's window-shown notification.
type NullWindowShownEvent struct{}

// NullWindowHiddenEvent mirrors the platform's window-hidden notification.
type NullWindowHiddenEvent struct{}

// NullSizeChangedEvent reports a new window size in pixels.
type NullSizeChangedEvent struct {
	Width, Height int32
}

// NullKeyDownEvent is a key press. The null platform's scancode space is the
// engine's own, so translation is the identity; Mapped=false stands in for a
// platform key with no engine meaning.
type NullKeyDownEvent struct {
	Code   ScanCode
	Repeat bool
	Mapped bool
}

// NullKeyUpEvent is a key release.
type NullKeyUpEvent struct {
	Code   ScanCode
	Mapped bool
}

func (NullQuitEvent) isNullEvent()         {}
func (NullWindowShownEvent) isNullEvent()  {}
func (NullWindowHiddenEvent) isNullEvent() {}
func (NullSizeChangedEvent) isNullEvent()  {}
func (NullKeyDownEvent) isNullEvent()      {}
func (NullKeyUpEvent) isNullEvent()        {}

// NullBackend is the headless backend.
type NullBackend struct{}

// NewNullBackend creates a headless backend. No driver state exists, so
// construction cannot fail.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

// CreateEventLoop returns an event loop with an empty event queue.
func (b *NullBackend) CreateEventLoop() (EventLoop, error) {
	return &NullEventLoop{}, nil
}

// NullEventLoop drives frames from an injected event queue.
type NullEventLoop struct {
	queue []NullEvent
}

// PushEvent appends a synthetic event for the next frame's pump.
func (l *NullEventLoop) PushEvent(ev NullEvent) {
	l.queue = append(l.queue, ev)
}

// Run drives frames until the game's shutdown latch trips.
func (l *NullEventLoop) Run(game Game, ctx *Context) {
	applyScreenSize(ctx, DefaultScreenWidth, DefaultScreenHeight)
	_ = game.HandleResize(ctx)

	for {
		done, err := l.RunFrame(game, ctx)
		if err != nil {
			panic(err)
		}
		if done {
			break
		}
	}
}

// RunFrame executes exactly one frame loop iteration: drain events, Update,
// shutdown check, scene swap, UI prepare, Draw. done is true once the
// shutdown latch has tripped.
func (l *NullEventLoop) RunFrame(game Game, ctx *Context) (done bool, err error) {
	queue := l.queue
	l.queue = nil
	for _, ev := range queue {
		switch e := ev.(type) {
		case NullQuitEvent:
			game.RequestShutdown()
		case NullWindowShownEvent, NullWindowHiddenEvent:
			// Nothing to do.
		case NullSizeChangedEvent:
			applyScreenSize(ctx, e.Width, e.Height)
			_ = game.HandleResize(ctx)
		case NullKeyDownEvent:
			if e.Mapped {
				game.KeyDownEvent(e.Code, e.Repeat)
				ctx.Keyboard.SetKey(e.Code, true)
			}
		case NullKeyUpEvent:
			if e.Mapped {
				ctx.Keyboard.SetKey(e.Code, false)
			}
		}
	}

	if err := game.Update(ctx); err != nil {
		return false, err
	}

	if game.ShuttingDown() {
		return true, nil
	}

	if err := game.SwapScene(ctx); err != nil {
		return false, err
	}

	if ctx.Renderer != nil {
		ctx.Renderer.UI().PrepareFrame(ctx.ScreenWidth, ctx.ScreenHeight, ui.MouseState{})
	}

	return false, game.Draw(ctx)
}

// NewRenderer creates a recording renderer.
func (l *NullEventLoop) NewRenderer() (Renderer, error) {
	return NewNullRenderer()
}

// RecordedClear is one Clear executed by the null renderer.
type RecordedClear struct {
	Color  common.Color
	Target *NullTexture // nil means the window
}

// RecordedBlit is one sprite-batch copy executed by a null texture's Draw.
type RecordedBlit struct {
	Texture *NullTexture
	Src     common.Rect[float32]
	Dest    common.Rect[float32]
	Color   common.Color
	Blend   BlendMode
	Target  *NullTexture // render target at flush time, nil for the window
}

// RecordedUIBlit is one coalesced quad from the UI interpreter.
type RecordedUIBlit struct {
	TextureID ui.TextureID
	Src       common.Rect[float32]
	Dest      common.Rect[float32]
	Col       [4]uint8
}

// RecordedUITriangle is one triangle-path fill from the UI interpreter.
type RecordedUITriangle struct {
	VX, VY [3]int16
	Col    [4]uint8
}

// NullRenderer records every operation instead of drawing.
type NullRenderer struct {
	uiCtx      *ui.Context
	uiTextures map[ui.TextureID]*NullTexture

	blendMode BlendMode
	target    *NullTexture

	Clears      []RecordedClear
	Blits       []RecordedBlit
	UIBlits     []RecordedUIBlit
	UITriangles []RecordedUITriangle
	UIClips     [][4]float32
	Presents    int
}

// NewNullRenderer creates a recording renderer with the font atlas
// registered, mirroring the real renderers.
func NewNullRenderer() (*NullRenderer, error) {
	r := &NullRenderer{
		uiCtx:      ui.NewContext(),
		uiTextures: make(map[ui.TextureID]*NullTexture),
		blendMode:  BlendAlpha,
	}
	w, h, pixels := r.uiCtx.FontAtlas()
	font, err := r.CreateTexture(uint16(w), uint16(h), pixels)
	if err != nil {
		return nil, err
	}
	r.uiTextures[ui.FontTextureID] = font.(*NullTexture)
	return r, nil
}

// RegisterUITexture adds a texture to the UI registry under the given id.
func (r *NullRenderer) RegisterUITexture(id ui.TextureID, tex *NullTexture) {
	r.uiTextures[id] = tex
}

func (r *NullRenderer) Clear(color common.Color) {
	r.Clears = append(r.Clears, RecordedClear{Color: color, Target: r.target})
}

func (r *NullRenderer) Present() error {
	r.Presents++
	return nil
}

func (r *NullRenderer) CreateTexture(width, height uint16, data []byte) (Texture, error) {
	if len(data) != int(width)*int(height)*4 {
		return nil, NewRenderError("pixel buffer size mismatch", nil)
	}
	pixels := make([]byte, len(data))
	// The null driver's pitch is deliberately wider than the row length to
	// exercise the same upload path as a real driver.
	pitch := (int(width) + 1) * 4
	buffer := make([]byte, pitch*int(height))
	copyPixelsPitched(buffer, pitch, data, int(width), int(height))
	for y := 0; y < int(height); y++ {
		copy(pixels[y*int(width)*4:], buffer[y*pitch:y*pitch+int(width)*4])
	}

	return &NullTexture{
		renderer: r,
		width:    width,
		height:   height,
		Pixels:   pixels,
		live:     true,
	}, nil
}

func (r *NullRenderer) CreateTextureMutable(width, height uint16) (Texture, error) {
	return &NullTexture{
		renderer:     r,
		width:        width,
		height:       height,
		Pixels:       make([]byte, int(width)*int(height)*4),
		live:         true,
		RenderTarget: true,
	}, nil
}

func (r *NullRenderer) SetBlendMode(mode BlendMode) error {
	switch mode {
	case BlendAlpha, BlendAdd, BlendMultiply:
		r.blendMode = mode
		return nil
	default:
		return NewRenderError("unknown blend mode", nil)
	}
}

func (r *NullRenderer) SetRenderTarget(target Texture) error {
	if target == nil {
		r.target = nil
		return nil
	}
	nt, ok := target.(*NullTexture)
	if !ok {
		return NewRenderError("texture belongs to a different backend", nil)
	}
	r.target = nt
	return nil
}

func (r *NullRenderer) UI() *ui.Context {
	return r.uiCtx
}

func (r *NullRenderer) RenderUI(data *ui.DrawData) error {
	return renderDrawData(data, r)
}

// drawListTarget implementation.

func (r *NullRenderer) setClip(x0, y0, x1, y1 float32) error {
	r.UIClips = append(r.UIClips, [4]float32{x0, y0, x1, y1})
	return nil
}

func (r *NullRenderer) clearClip() error {
	return nil
}

func (r *NullRenderer) textureSize(id ui.TextureID) (uint16, uint16, bool) {
	tex, ok := r.uiTextures[id]
	if !ok || !tex.live {
		return 0, 0, false
	}
	return tex.width, tex.height, true
}

func (r *NullRenderer) blitQuad(id ui.TextureID, src, dest common.Rect[float32], col [4]uint8) error {
	r.UIBlits = append(r.UIBlits, RecordedUIBlit{TextureID: id, Src: src, Dest: dest, Col: col})
	return nil
}

func (r *NullRenderer) fillTriangle(vx, vy [3]int16, col [4]uint8) error {
	r.UITriangles = append(r.UITriangles, RecordedUITriangle{VX: vx, VY: vy, Col: col})
	return nil
}

// NullTexture is a recording texture. Pixels holds the uploaded RGBA32
// buffer for streaming textures.
type NullTexture struct {
	renderer *NullRenderer
	width    uint16
	height   uint16
	commands []SpriteBatchCommand

	Pixels       []byte
	RenderTarget bool
	Destroys     int

	live bool
}

func (t *NullTexture) Dimensions() (uint16, uint16) {
	return t.width, t.height
}

func (t *NullTexture) Add(cmd SpriteBatchCommand) {
	t.commands = append(t.commands, cmd)
}

func (t *NullTexture) Clear() {
	t.commands = t.commands[:0]
}

func (t *NullTexture) Draw() error {
	if !t.live {
		return nil
	}
	for _, cmd := range t.commands {
		color := common.ColorWhite
		if cmd.Kind == CommandDrawRectTinted {
			color = cmd.Color
		}
		t.renderer.Blits = append(t.renderer.Blits, RecordedBlit{
			Texture: t,
			Src:     cmd.Src,
			Dest:    cmd.Dest,
			Color:   color,
			Blend:   t.renderer.blendMode,
			Target:  t.renderer.target,
		})
	}
	return nil
}

func (t *NullTexture) Destroy() error {
	if t.live {
		t.live = false
		t.Destroys++
	}
	return nil
}
