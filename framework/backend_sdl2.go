package framework

import (
	"log/slog"
	"math"
	"sync"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// SDL2 backend: window and event pump from SDL, drawing through the
// SDL_Render API with an accelerated, vsynced renderer.

var (
	sdlInitOnce sync.Once
	sdlInitErr  error
)

// SDL2Backend is a live SDL session. SDL is initialized once per process no
// matter how many times NewSDL2Backend is called.
type SDL2Backend struct{}

// NewSDL2Backend initializes the SDL video and event subsystems.
func NewSDL2Backend() (Backend, error) {
	sdlInitOnce.Do(func() {
		sdlInitErr = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	})
	if sdlInitErr != nil {
		return nil, NewWindowError("SDL initialization failed", sdlInitErr)
	}
	return &SDL2Backend{}, nil
}

// CreateEventLoop opens the game window and its renderer.
func (b *SDL2Backend) CreateEventLoop() (EventLoop, error) {
	return newSDL2EventLoop()
}

// sdl2Context is the drawing context shared by the event loop, the renderer,
// and every texture the renderer creates. Execution is single-threaded, so
// plain shared pointers stand in for refcounted cells; the discipline is one
// mutable user at a time.
type sdl2Context struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	blendMode sdl.BlendMode
}

type sdl2EventLoop struct {
	refs *sdl2Context
}

func newSDL2EventLoop() (EventLoop, error) {
	sdl.SetHint(sdl.HINT_RENDER_DRIVER, "opengles2")

	window, err := sdl.CreateWindow(WindowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		DefaultScreenWidth, DefaultScreenHeight,
		sdl.WINDOW_RESIZABLE|sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, NewWindowError("window creation failed", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, NewRenderError("renderer creation failed", err)
	}

	return &sdl2EventLoop{
		refs: &sdl2Context{
			window:    window,
			renderer:  renderer,
			blendMode: sdl.BLENDMODE_BLEND,
		},
	}, nil
}

// Run drives the frame loop until the game's shutdown latch trips. Event
// dispatch, Update, scene swap, UI preparation, and Draw happen strictly in
// that order; the event pump is never polled while the game runs.
func (l *sdl2EventLoop) Run(game Game, ctx *Context) {
	w, h := l.windowSize()
	applyScreenSize(ctx, w, h)
	_ = game.HandleResize(ctx)

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			forwardEventToUI(ctx, ev)

			switch e := ev.(type) {
			case *sdl.QuitEvent:
				game.RequestShutdown()
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_HIDDEN:
					// Nothing to do.
				case sdl.WINDOWEVENT_SIZE_CHANGED:
					applyScreenSize(ctx, e.Data1, e.Data2)
					_ = game.HandleResize(ctx)
				}
			case *sdl.KeyboardEvent:
				code, ok := convSDLScanCode(e.Keysym.Scancode)
				if !ok {
					break
				}
				if e.Type == sdl.KEYDOWN {
					game.KeyDownEvent(code, e.Repeat != 0)
					ctx.Keyboard.SetKey(code, true)
				} else if e.Type == sdl.KEYUP {
					ctx.Keyboard.SetKey(code, false)
				}
			}
		}

		if err := game.Update(ctx); err != nil {
			panic(err)
		}

		if game.ShuttingDown() {
			slog.Info("Shutting down...")
			break
		}

		if err := game.SwapScene(ctx); err != nil {
			panic(err)
		}

		if ctx.Renderer != nil {
			w, h := l.windowSize()
			ctx.Renderer.UI().PrepareFrame(float32(w), float32(h), sdlMouseState())
		}

		if err := game.Draw(ctx); err != nil {
			panic(err)
		}
	}
}

// NewRenderer binds a renderer to the loop's window context.
func (l *sdl2EventLoop) NewRenderer() (Renderer, error) {
	return newSDL2Renderer(l.refs)
}

func (l *sdl2EventLoop) windowSize() (int32, int32) {
	return l.refs.window.GetSize()
}

// applyScreenSize clamps a reported window size to at least 1x1 and stores
// it on the context and the UI display.
func applyScreenSize(ctx *Context, w, h int32) {
	ctx.ScreenWidth = float32(max(w, 1))
	ctx.ScreenHeight = float32(max(h, 1))
	if ctx.Renderer != nil {
		ctx.Renderer.UI().SetDisplaySize(ctx.ScreenWidth, ctx.ScreenHeight)
	}
}

func sdlMouseState() ui.MouseState {
	x, y, buttons := sdl.GetMouseState()
	return ui.MouseState{
		X:      float32(x),
		Y:      float32(y),
		Left:   buttons&sdl.Button(sdl.BUTTON_LEFT) != 0,
		Middle: buttons&sdl.Button(sdl.BUTTON_MIDDLE) != 0,
		Right:  buttons&sdl.Button(sdl.BUTTON_RIGHT) != 0,
	}
}

// forwardEventToUI feeds pointer events into the UI context's IO block.
func forwardEventToUI(ctx *Context, ev sdl.Event) {
	if ctx.Renderer == nil {
		return
	}
	uiCtx := ctx.Renderer.UI()

	switch e := ev.(type) {
	case *sdl.MouseMotionEvent:
		uiCtx.HandleMouseMotion(float32(e.X), float32(e.Y))
	case *sdl.MouseButtonEvent:
		var button int
		switch e.Button {
		case sdl.BUTTON_LEFT:
			button = 0
		case sdl.BUTTON_MIDDLE:
			button = 1
		case sdl.BUTTON_RIGHT:
			button = 2
		default:
			return
		}
		uiCtx.HandleMouseButton(button, e.Type == sdl.MOUSEBUTTONDOWN)
	case *sdl.MouseWheelEvent:
		uiCtx.HandleMouseWheel(float32(e.Y))
	}
}

type sdl2Renderer struct {
	refs       *sdl2Context
	uiCtx      *ui.Context
	uiTextures map[ui.TextureID]*sdl2Texture
}

func newSDL2Renderer(refs *sdl2Context) (Renderer, error) {
	r := &sdl2Renderer{
		refs:       refs,
		uiCtx:      ui.NewContext(),
		uiTextures: make(map[ui.TextureID]*sdl2Texture),
	}

	// Upload the UI font atlas and register it so Elements commands can
	// resolve it by id.
	w, h, pixels := r.uiCtx.FontAtlas()
	font, err := r.createStreamingTexture(uint16(w), uint16(h), pixels)
	if err != nil {
		return nil, err
	}
	r.uiTextures[ui.FontTextureID] = font

	return r, nil
}

func (r *sdl2Renderer) Clear(color common.Color) {
	_ = r.refs.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	_ = r.refs.renderer.Clear()
}

func (r *sdl2Renderer) Present() error {
	r.refs.renderer.Present()
	return nil
}

func (r *sdl2Renderer) createStreamingTexture(width, height uint16, data []byte) (*sdl2Texture, error) {
	texture, err := r.refs.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return nil, NewRenderError("texture creation failed", err)
	}

	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = texture.Destroy()
		return nil, NewRenderError("texture blend mode", err)
	}

	buffer, pitch, err := texture.Lock(nil)
	if err != nil {
		_ = texture.Destroy()
		return nil, NewRenderError("texture lock failed", err)
	}
	copyPixelsPitched(buffer, pitch, data, int(width), int(height))
	texture.Unlock()

	return &sdl2Texture{
		refs:    r.refs,
		texture: texture,
		width:   width,
		height:  height,
	}, nil
}

func (r *sdl2Renderer) CreateTexture(width, height uint16, data []byte) (Texture, error) {
	if len(data) != int(width)*int(height)*4 {
		return nil, NewRenderError("pixel buffer size mismatch", nil)
	}
	return r.createStreamingTexture(width, height, data)
}

func (r *sdl2Renderer) CreateTextureMutable(width, height uint16) (Texture, error) {
	texture, err := r.refs.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_TARGET, int32(width), int32(height))
	if err != nil {
		return nil, NewRenderError("render target creation failed", err)
	}

	return &sdl2Texture{
		refs:    r.refs,
		texture: texture,
		width:   width,
		height:  height,
	}, nil
}

func (r *sdl2Renderer) SetBlendMode(mode BlendMode) error {
	switch mode {
	case BlendAdd:
		r.refs.blendMode = sdl.BLENDMODE_ADD
	case BlendAlpha:
		r.refs.blendMode = sdl.BLENDMODE_BLEND
	case BlendMultiply:
		r.refs.blendMode = sdl.BLENDMODE_MOD
	default:
		return NewRenderError("unknown blend mode", nil)
	}
	return nil
}

func (r *sdl2Renderer) SetRenderTarget(target Texture) error {
	var native *sdl.Texture
	if target != nil {
		st, ok := target.(*sdl2Texture)
		if !ok {
			return NewRenderError("texture belongs to a different backend", nil)
		}
		native = st.texture // nil after Destroy, which falls back to the window
	}
	if err := r.refs.renderer.SetRenderTarget(native); err != nil {
		return NewRenderError("set render target failed", err)
	}
	return nil
}

func (r *sdl2Renderer) UI() *ui.Context {
	return r.uiCtx
}

func (r *sdl2Renderer) RenderUI(data *ui.DrawData) error {
	return renderDrawData(data, r)
}

// drawListTarget implementation.

func (r *sdl2Renderer) setClip(x0, y0, x1, y1 float32) error {
	clip := sdl.Rect{X: int32(x0), Y: int32(y0), W: int32(x1 - x0), H: int32(y1 - y0)}
	if err := r.refs.renderer.SetClipRect(&clip); err != nil {
		return NewRenderError("set clip rect failed", err)
	}
	return nil
}

func (r *sdl2Renderer) clearClip() error {
	if err := r.refs.renderer.SetClipRect(nil); err != nil {
		return NewRenderError("clear clip rect failed", err)
	}
	return nil
}

func (r *sdl2Renderer) textureSize(id ui.TextureID) (uint16, uint16, bool) {
	tex, ok := r.uiTextures[id]
	if !ok || tex.texture == nil {
		return 0, 0, false
	}
	return tex.width, tex.height, true
}

func (r *sdl2Renderer) blitQuad(id ui.TextureID, src, dest common.Rect[float32], col [4]uint8) error {
	tex := r.uiTextures[id]
	if tex == nil || tex.texture == nil {
		return nil
	}
	if err := tex.texture.SetColorMod(col[0], col[1], col[2]); err != nil {
		return NewRenderError("color mod failed", err)
	}
	if err := tex.texture.SetAlphaMod(col[3]); err != nil {
		return NewRenderError("alpha mod failed", err)
	}

	srcRect := sdl.Rect{X: int32(src.Left), Y: int32(src.Top), W: int32(src.Width()), H: int32(src.Height())}
	destRect := sdl.Rect{X: int32(dest.Left), Y: int32(dest.Top), W: int32(dest.Width()), H: int32(dest.Height())}
	if err := r.refs.renderer.Copy(tex.texture, &srcRect, &destRect); err != nil {
		return NewRenderError("UI blit failed", err)
	}
	return nil
}

func (r *sdl2Renderer) fillTriangle(vx, vy [3]int16, col [4]uint8) error {
	ok := gfx.FilledPolygonColor(r.refs.renderer, vx[:], vy[:],
		sdl.Color{R: col[0], G: col[1], B: col[2], A: col[3]})
	if !ok {
		return NewRenderError("triangle fill failed", sdl.GetError())
	}
	return nil
}

// sdl2Texture owns one SDL texture plus its sprite-batch command buffer.
// It keeps its own reference to the drawing context so destroying the
// renderer never invalidates an outstanding texture.
type sdl2Texture struct {
	refs     *sdl2Context
	texture  *sdl.Texture
	width    uint16
	height   uint16
	commands []SpriteBatchCommand
}

func (t *sdl2Texture) Dimensions() (uint16, uint16) {
	return t.width, t.height
}

func (t *sdl2Texture) Add(cmd SpriteBatchCommand) {
	t.commands = append(t.commands, cmd)
}

func (t *sdl2Texture) Clear() {
	t.commands = t.commands[:0]
}

func (t *sdl2Texture) Draw() error {
	if t.texture == nil {
		return nil
	}

	for _, cmd := range t.commands {
		switch cmd.Kind {
		case CommandDrawRect:
			if err := t.texture.SetColorMod(255, 255, 255); err != nil {
				return NewRenderError("color mod failed", err)
			}
			if err := t.texture.SetAlphaMod(255); err != nil {
				return NewRenderError("alpha mod failed", err)
			}
		case CommandDrawRectTinted:
			if err := t.texture.SetColorMod(cmd.Color.R, cmd.Color.G, cmd.Color.B); err != nil {
				return NewRenderError("color mod failed", err)
			}
			if err := t.texture.SetAlphaMod(cmd.Color.A); err != nil {
				return NewRenderError("alpha mod failed", err)
			}
		}

		if err := t.texture.SetBlendMode(t.refs.blendMode); err != nil {
			return NewRenderError("texture blend mode", err)
		}

		src := roundedRect(cmd.Src)
		dest := roundedRect(cmd.Dest)
		if err := t.refs.renderer.Copy(t.texture, &src, &dest); err != nil {
			return NewRenderError("sprite blit failed", err)
		}
	}

	return nil
}

func (t *sdl2Texture) Destroy() error {
	if t.texture == nil {
		return nil
	}
	tex := t.texture
	t.texture = nil
	if err := tex.Destroy(); err != nil {
		return NewRenderError("texture destroy failed", err)
	}
	return nil
}

func roundedRect(r common.Rect[float32]) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(float64(r.Left))),
		Y: int32(math.Round(float64(r.Top))),
		W: int32(math.Round(float64(r.Width()))),
		H: int32(math.Round(float64(r.Height()))),
	}
}

// sdl2ScanCodes translates SDL scancodes to engine scancodes. Platform keys
// absent from the table have no engine-side meaning. The mapping is
// injective: aliases like SysReq/PrintScreen resolve to a single entry.
var sdl2ScanCodes = map[sdl.Scancode]ScanCode{
	sdl.SCANCODE_A:              ScanCodeA,
	sdl.SCANCODE_B:              ScanCodeB,
	sdl.SCANCODE_C:              ScanCodeC,
	sdl.SCANCODE_D:              ScanCodeD,
	sdl.SCANCODE_E:              ScanCodeE,
	sdl.SCANCODE_F:              ScanCodeF,
	sdl.SCANCODE_G:              ScanCodeG,
	sdl.SCANCODE_H:              ScanCodeH,
	sdl.SCANCODE_I:              ScanCodeI,
	sdl.SCANCODE_J:              ScanCodeJ,
	sdl.SCANCODE_K:              ScanCodeK,
	sdl.SCANCODE_L:              ScanCodeL,
	sdl.SCANCODE_M:              ScanCodeM,
	sdl.SCANCODE_N:              ScanCodeN,
	sdl.SCANCODE_O:              ScanCodeO,
	sdl.SCANCODE_P:              ScanCodeP,
	sdl.SCANCODE_Q:              ScanCodeQ,
	sdl.SCANCODE_R:              ScanCodeR,
	sdl.SCANCODE_S:              ScanCodeS,
	sdl.SCANCODE_T:              ScanCodeT,
	sdl.SCANCODE_U:              ScanCodeU,
	sdl.SCANCODE_V:              ScanCodeV,
	sdl.SCANCODE_W:              ScanCodeW,
	sdl.SCANCODE_X:              ScanCodeX,
	sdl.SCANCODE_Y:              ScanCodeY,
	sdl.SCANCODE_Z:              ScanCodeZ,
	sdl.SCANCODE_1:              ScanCodeKey1,
	sdl.SCANCODE_2:              ScanCodeKey2,
	sdl.SCANCODE_3:              ScanCodeKey3,
	sdl.SCANCODE_4:              ScanCodeKey4,
	sdl.SCANCODE_5:              ScanCodeKey5,
	sdl.SCANCODE_6:              ScanCodeKey6,
	sdl.SCANCODE_7:              ScanCodeKey7,
	sdl.SCANCODE_8:              ScanCodeKey8,
	sdl.SCANCODE_9:              ScanCodeKey9,
	sdl.SCANCODE_0:              ScanCodeKey0,
	sdl.SCANCODE_RETURN:         ScanCodeReturn,
	sdl.SCANCODE_ESCAPE:         ScanCodeEscape,
	sdl.SCANCODE_BACKSPACE:      ScanCodeBackspace,
	sdl.SCANCODE_TAB:            ScanCodeTab,
	sdl.SCANCODE_SPACE:          ScanCodeSpace,
	sdl.SCANCODE_MINUS:          ScanCodeMinus,
	sdl.SCANCODE_EQUALS:         ScanCodeEquals,
	sdl.SCANCODE_LEFTBRACKET:    ScanCodeLBracket,
	sdl.SCANCODE_RIGHTBRACKET:   ScanCodeRBracket,
	sdl.SCANCODE_BACKSLASH:      ScanCodeBackslash,
	sdl.SCANCODE_NONUSHASH:      ScanCodeNonUsHash,
	sdl.SCANCODE_SEMICOLON:      ScanCodeSemicolon,
	sdl.SCANCODE_APOSTROPHE:     ScanCodeApostrophe,
	sdl.SCANCODE_GRAVE:          ScanCodeGrave,
	sdl.SCANCODE_COMMA:          ScanCodeComma,
	sdl.SCANCODE_PERIOD:         ScanCodePeriod,
	sdl.SCANCODE_SLASH:          ScanCodeSlash,
	sdl.SCANCODE_CAPSLOCK:       ScanCodeCapslock,
	sdl.SCANCODE_F1:             ScanCodeF1,
	sdl.SCANCODE_F2:             ScanCodeF2,
	sdl.SCANCODE_F3:             ScanCodeF3,
	sdl.SCANCODE_F4:             ScanCodeF4,
	sdl.SCANCODE_F5:             ScanCodeF5,
	sdl.SCANCODE_F6:             ScanCodeF6,
	sdl.SCANCODE_F7:             ScanCodeF7,
	sdl.SCANCODE_F8:             ScanCodeF8,
	sdl.SCANCODE_F9:             ScanCodeF9,
	sdl.SCANCODE_F10:            ScanCodeF10,
	sdl.SCANCODE_F11:            ScanCodeF11,
	sdl.SCANCODE_F12:            ScanCodeF12,
	sdl.SCANCODE_PRINTSCREEN:    ScanCodeSysrq,
	sdl.SCANCODE_SCROLLLOCK:     ScanCodeScrolllock,
	sdl.SCANCODE_PAUSE:          ScanCodePause,
	sdl.SCANCODE_INSERT:         ScanCodeInsert,
	sdl.SCANCODE_HOME:           ScanCodeHome,
	sdl.SCANCODE_PAGEUP:         ScanCodePageUp,
	sdl.SCANCODE_DELETE:         ScanCodeDelete,
	sdl.SCANCODE_END:            ScanCodeEnd,
	sdl.SCANCODE_PAGEDOWN:       ScanCodePageDown,
	sdl.SCANCODE_RIGHT:          ScanCodeRight,
	sdl.SCANCODE_LEFT:           ScanCodeLeft,
	sdl.SCANCODE_DOWN:           ScanCodeDown,
	sdl.SCANCODE_UP:             ScanCodeUp,
	sdl.SCANCODE_NUMLOCKCLEAR:   ScanCodeNumlock,
	sdl.SCANCODE_KP_DIVIDE:      ScanCodeNumpadDivide,
	sdl.SCANCODE_KP_MULTIPLY:    ScanCodeNumpadMultiply,
	sdl.SCANCODE_KP_MINUS:       ScanCodeNumpadSubtract,
	sdl.SCANCODE_KP_PLUS:        ScanCodeNumpadAdd,
	sdl.SCANCODE_KP_ENTER:       ScanCodeNumpadEnter,
	sdl.SCANCODE_KP_1:           ScanCodeNumpad1,
	sdl.SCANCODE_KP_2:           ScanCodeNumpad2,
	sdl.SCANCODE_KP_3:           ScanCodeNumpad3,
	sdl.SCANCODE_KP_4:           ScanCodeNumpad4,
	sdl.SCANCODE_KP_5:           ScanCodeNumpad5,
	sdl.SCANCODE_KP_6:           ScanCodeNumpad6,
	sdl.SCANCODE_KP_7:           ScanCodeNumpad7,
	sdl.SCANCODE_KP_8:           ScanCodeNumpad8,
	sdl.SCANCODE_KP_9:           ScanCodeNumpad9,
	sdl.SCANCODE_KP_0:           ScanCodeNumpad0,
	sdl.SCANCODE_NONUSBACKSLASH: ScanCodeNonUsBackslash,
	sdl.SCANCODE_APPLICATION:    ScanCodeApps,
	sdl.SCANCODE_POWER:          ScanCodePower,
	sdl.SCANCODE_KP_EQUALS:      ScanCodeNumpadEquals,
	sdl.SCANCODE_F13:            ScanCodeF13,
	sdl.SCANCODE_F14:            ScanCodeF14,
	sdl.SCANCODE_F15:            ScanCodeF15,
	sdl.SCANCODE_F16:            ScanCodeF16,
	sdl.SCANCODE_F17:            ScanCodeF17,
	sdl.SCANCODE_F18:            ScanCodeF18,
	sdl.SCANCODE_F19:            ScanCodeF19,
	sdl.SCANCODE_F20:            ScanCodeF20,
	sdl.SCANCODE_F21:            ScanCodeF21,
	sdl.SCANCODE_F22:            ScanCodeF22,
	sdl.SCANCODE_F23:            ScanCodeF23,
	sdl.SCANCODE_F24:            ScanCodeF24,
	sdl.SCANCODE_STOP:           ScanCodeStop,
	sdl.SCANCODE_CUT:            ScanCodeCut,
	sdl.SCANCODE_COPY:           ScanCodeCopy,
	sdl.SCANCODE_PASTE:          ScanCodePaste,
	sdl.SCANCODE_MUTE:           ScanCodeMute,
	sdl.SCANCODE_VOLUMEUP:       ScanCodeVolumeUp,
	sdl.SCANCODE_VOLUMEDOWN:     ScanCodeVolumeDown,
	sdl.SCANCODE_KP_COMMA:       ScanCodeNumpadComma,
	sdl.SCANCODE_LCTRL:          ScanCodeLControl,
	sdl.SCANCODE_LSHIFT:         ScanCodeLShift,
	sdl.SCANCODE_LALT:           ScanCodeLAlt,
	sdl.SCANCODE_LGUI:           ScanCodeLWin,
	sdl.SCANCODE_RCTRL:          ScanCodeRControl,
	sdl.SCANCODE_RSHIFT:         ScanCodeRShift,
	sdl.SCANCODE_RALT:           ScanCodeRAlt,
	sdl.SCANCODE_RGUI:           ScanCodeRWin,
	sdl.SCANCODE_AUDIONEXT:      ScanCodeNextTrack,
	sdl.SCANCODE_AUDIOPREV:      ScanCodePrevTrack,
	sdl.SCANCODE_AUDIOSTOP:      ScanCodeMediaStop,
	sdl.SCANCODE_AUDIOPLAY:      ScanCodePlayPause,
	sdl.SCANCODE_MEDIASELECT:    ScanCodeMediaSelect,
	sdl.SCANCODE_MAIL:           ScanCodeMail,
	sdl.SCANCODE_CALCULATOR:     ScanCodeCalculator,
	sdl.SCANCODE_SLEEP:          ScanCodeSleep,
}

// convSDLScanCode translates an SDL scancode; ok is false for keys with no
// engine-side meaning.
func convSDLScanCode(code sdl.Scancode) (ScanCode, bool) {
	c, ok := sdl2ScanCodes[code]
	return c, ok
}
