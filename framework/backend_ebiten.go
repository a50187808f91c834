package framework

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// Ebitengine backend. Ebiten inverts control (it calls Update/Draw/Layout),
// so Run adapts the frame loop onto ebiten.RunGame while preserving the
// dispatch order: input events, Update, shutdown check, scene swap, UI
// prepare, Draw.

// Auto-repeat timing for synthesized key repeats, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 6
)

// EbitenBackend drives the engine through Ebitengine.
type EbitenBackend struct{}

// NewEbitenBackend creates the backend. Ebitengine initializes its driver
// lazily inside RunGame, so construction cannot fail.
func NewEbitenBackend() (Backend, error) {
	return &EbitenBackend{}, nil
}

func (b *EbitenBackend) CreateEventLoop() (EventLoop, error) {
	return &ebitenEventLoop{}, nil
}

type ebitenEventLoop struct {
	renderer *ebitenRenderer
}

func (l *ebitenEventLoop) NewRenderer() (Renderer, error) {
	r, err := newEbitenRenderer()
	if err != nil {
		return nil, err
	}
	l.renderer = r
	return r, nil
}

func (l *ebitenEventLoop) Run(game Game, ctx *Context) {
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowSize(DefaultScreenWidth, DefaultScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	adapter := &ebitenGameAdapter{loop: l, game: game, ctx: ctx}
	if err := ebiten.RunGame(adapter); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}

// ebitenGameAdapter implements ebiten.Game on top of the framework Game.
type ebitenGameAdapter struct {
	loop *ebitenEventLoop
	game Game
	ctx  *Context

	lastW, lastH int
	keyBuf       []ebiten.Key
}

func (a *ebitenGameAdapter) Update() error {
	a.pumpKeys()
	a.pumpPointer()

	if err := a.game.Update(a.ctx); err != nil {
		return err
	}

	if a.game.ShuttingDown() {
		return ebiten.Termination
	}

	return a.game.SwapScene(a.ctx)
}

// pumpKeys synthesizes the key-down/key-up event stream from Ebitengine's
// polled key state, including auto-repeat for held keys.
func (a *ebitenGameAdapter) pumpKeys() {
	a.keyBuf = inpututil.AppendJustPressedKeys(a.keyBuf[:0])
	for _, k := range a.keyBuf {
		if code, ok := convEbitenKey(k); ok {
			a.game.KeyDownEvent(code, false)
			a.ctx.Keyboard.SetKey(code, true)
		}
	}

	a.keyBuf = inpututil.AppendPressedKeys(a.keyBuf[:0])
	for _, k := range a.keyBuf {
		d := inpututil.KeyPressDuration(k)
		if d < keyRepeatDelay || (d-keyRepeatDelay)%keyRepeatInterval != 0 {
			continue
		}
		if code, ok := convEbitenKey(k); ok {
			a.game.KeyDownEvent(code, true)
		}
	}

	a.keyBuf = inpututil.AppendJustReleasedKeys(a.keyBuf[:0])
	for _, k := range a.keyBuf {
		if code, ok := convEbitenKey(k); ok {
			a.ctx.Keyboard.SetKey(code, false)
		}
	}
}

func (a *ebitenGameAdapter) pumpPointer() {
	if a.loop.renderer == nil {
		return
	}
	uiCtx := a.loop.renderer.UI()
	mx, my := ebiten.CursorPosition()
	uiCtx.HandleMouseMotion(float32(mx), float32(my))
	uiCtx.HandleMouseButton(0, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	uiCtx.HandleMouseButton(1, ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))
	uiCtx.HandleMouseButton(2, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	if _, wy := ebiten.Wheel(); wy != 0 {
		uiCtx.HandleMouseWheel(float32(wy))
	}
}

func (a *ebitenGameAdapter) Draw(screen *ebiten.Image) {
	r := a.loop.renderer
	if r != nil {
		r.screen = screen
		r.UI().PrepareFrame(a.ctx.ScreenWidth, a.ctx.ScreenHeight, ebitenMouseState())
	}

	if err := a.game.Draw(a.ctx); err != nil {
		panic(err)
	}

	if r != nil {
		r.screen = nil
	}
}

func (a *ebitenGameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, 1)
	h := max(outsideHeight, 1)
	if w != a.lastW || h != a.lastH {
		a.lastW, a.lastH = w, h
		applyScreenSize(a.ctx, int32(w), int32(h))
		_ = a.game.HandleResize(a.ctx)
	}
	return w, h
}

func ebitenMouseState() ui.MouseState {
	mx, my := ebiten.CursorPosition()
	return ui.MouseState{
		X:      float32(mx),
		Y:      float32(my),
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

type ebitenRenderer struct {
	uiCtx      *ui.Context
	uiTextures map[ui.TextureID]*ebitenTexture

	screen *ebiten.Image // the frame's backbuffer, valid during Draw only
	target *ebitenTexture
	blend  BlendMode
	white  *ebiten.Image
	uiDst  *ebiten.Image // clipped sub-image during UI interpretation
}

func newEbitenRenderer() (*ebitenRenderer, error) {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	r := &ebitenRenderer{
		uiCtx:      ui.NewContext(),
		uiTextures: make(map[ui.TextureID]*ebitenTexture),
		blend:      BlendAlpha,
		white:      white,
	}

	w, h, pixels := r.uiCtx.FontAtlas()
	font, err := r.CreateTexture(uint16(w), uint16(h), pixels)
	if err != nil {
		return nil, err
	}
	r.uiTextures[ui.FontTextureID] = font.(*ebitenTexture)

	return r, nil
}

// dst returns the image draws currently land on: the render-target texture
// if one is set, otherwise the frame's backbuffer.
func (r *ebitenRenderer) dst() *ebiten.Image {
	if r.target != nil && r.target.image != nil {
		return r.target.image
	}
	return r.screen
}

func (r *ebitenRenderer) Clear(c common.Color) {
	if d := r.dst(); d != nil {
		d.Fill(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
}

func (r *ebitenRenderer) Present() error {
	// Ebitengine presents when the Draw callback returns.
	return nil
}

func (r *ebitenRenderer) CreateTexture(width, height uint16, data []byte) (Texture, error) {
	if len(data) != int(width)*int(height)*4 {
		return nil, NewRenderError("pixel buffer size mismatch", nil)
	}
	img := ebiten.NewImage(int(width), int(height))
	img.WritePixels(data)
	return &ebitenTexture{renderer: r, image: img, width: width, height: height}, nil
}

func (r *ebitenRenderer) CreateTextureMutable(width, height uint16) (Texture, error) {
	img := ebiten.NewImage(int(width), int(height))
	return &ebitenTexture{renderer: r, image: img, width: width, height: height}, nil
}

func (r *ebitenRenderer) SetBlendMode(mode BlendMode) error {
	switch mode {
	case BlendAlpha, BlendAdd, BlendMultiply:
		r.blend = mode
		return nil
	default:
		return NewRenderError("unknown blend mode", nil)
	}
}

func (r *ebitenRenderer) SetRenderTarget(target Texture) error {
	if target == nil {
		r.target = nil
		return nil
	}
	et, ok := target.(*ebitenTexture)
	if !ok {
		return NewRenderError("texture belongs to a different backend", nil)
	}
	r.target = et
	return nil
}

func (r *ebitenRenderer) UI() *ui.Context {
	return r.uiCtx
}

func (r *ebitenRenderer) RenderUI(data *ui.DrawData) error {
	if r.dst() == nil {
		return NewRenderError("no active frame", nil)
	}
	return renderDrawData(data, r)
}

// ebitenBlend maps an engine blend mode to an Ebitengine blend. Multiply has
// no named constant and is spelled out as blend factors.
func ebitenBlend(mode BlendMode) ebiten.Blend {
	switch mode {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// drawListTarget implementation.

func (r *ebitenRenderer) setClip(x0, y0, x1, y1 float32) error {
	clip := image.Rect(int(x0), int(y0), int(x1), int(y1))
	r.uiDst = r.dst().SubImage(clip).(*ebiten.Image)
	return nil
}

func (r *ebitenRenderer) clearClip() error {
	r.uiDst = nil
	return nil
}

func (r *ebitenRenderer) textureSize(id ui.TextureID) (uint16, uint16, bool) {
	tex, ok := r.uiTextures[id]
	if !ok || tex.image == nil {
		return 0, 0, false
	}
	return tex.width, tex.height, true
}

func (r *ebitenRenderer) blitQuad(id ui.TextureID, src, dest common.Rect[float32], col [4]uint8) error {
	tex := r.uiTextures[id]
	if tex == nil || tex.image == nil || r.uiDst == nil {
		return nil
	}
	drawScaledRect(r.uiDst, tex.image, src, dest,
		common.Color{R: col[0], G: col[1], B: col[2], A: col[3]},
		ebiten.BlendSourceOver, false)
	return nil
}

func (r *ebitenRenderer) fillTriangle(vx, vy [3]int16, col [4]uint8) error {
	if r.uiDst == nil {
		return nil
	}
	verts := make([]ebiten.Vertex, 3)
	for i := 0; i < 3; i++ {
		verts[i] = ebiten.Vertex{
			DstX:   float32(vx[i]),
			DstY:   float32(vy[i]),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(col[0]) / 255,
			ColorG: float32(col[1]) / 255,
			ColorB: float32(col[2]) / 255,
			ColorA: float32(col[3]) / 255,
		}
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		Blend:          ebiten.BlendSourceOver,
	}
	r.uiDst.DrawTriangles(verts, []uint16{0, 1, 2}, r.white, op)
	return nil
}

// drawScaledRect copies src (texture pixels) to dest (target pixels) with
// color modulation. Rects are rounded to whole pixels when round is true,
// truncated otherwise (matching the UI interpreter's casts).
func drawScaledRect(dst, tex *ebiten.Image, src, dest common.Rect[float32], tint common.Color, blend ebiten.Blend, round bool) {
	snap := func(v float32) int {
		if round {
			return int(math.Round(float64(v)))
		}
		return int(v)
	}
	sx0, sy0 := snap(src.Left), snap(src.Top)
	sx1, sy1 := snap(src.Right), snap(src.Bottom)
	dx0, dy0 := snap(dest.Left), snap(dest.Top)
	dw, dh := snap(dest.Right)-dx0, snap(dest.Bottom)-dy0
	if sx1 <= sx0 || sy1 <= sy0 || dw <= 0 || dh <= 0 {
		return
	}

	bounds := tex.Bounds()
	part := tex.SubImage(image.Rect(
		bounds.Min.X+sx0, bounds.Min.Y+sy0,
		bounds.Min.X+sx1, bounds.Min.Y+sy1,
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(dw)/float64(sx1-sx0), float64(dh)/float64(sy1-sy0))
	op.GeoM.Translate(float64(dx0), float64(dy0))
	a := float32(tint.A) / 255
	op.ColorScale.Scale(float32(tint.R)/255*a, float32(tint.G)/255*a, float32(tint.B)/255*a, a)
	op.Blend = blend
	dst.DrawImage(part, &op)
}

// ebitenTexture owns one *ebiten.Image plus its sprite-batch buffer.
type ebitenTexture struct {
	renderer *ebitenRenderer
	image    *ebiten.Image
	width    uint16
	height   uint16
	commands []SpriteBatchCommand
}

func (t *ebitenTexture) Dimensions() (uint16, uint16) {
	return t.width, t.height
}

func (t *ebitenTexture) Add(cmd SpriteBatchCommand) {
	t.commands = append(t.commands, cmd)
}

func (t *ebitenTexture) Clear() {
	t.commands = t.commands[:0]
}

func (t *ebitenTexture) Draw() error {
	if t.image == nil {
		return nil
	}
	dst := t.renderer.dst()
	if dst == nil {
		return NewRenderError("no active frame", nil)
	}
	blend := ebitenBlend(t.renderer.blend)
	for _, cmd := range t.commands {
		tint := common.ColorWhite
		if cmd.Kind == CommandDrawRectTinted {
			tint = cmd.Color
		}
		drawScaledRect(dst, t.image, cmd.Src, cmd.Dest, tint, blend, true)
	}
	return nil
}

func (t *ebitenTexture) Destroy() error {
	if t.image != nil {
		t.image.Deallocate()
		t.image = nil
	}
	return nil
}

// ebitenKeys translates Ebitengine keys to engine scancodes. Ebitengine has
// no codes for F13-F24 or the media keys, so those stay unmapped here.
var ebitenKeys = map[ebiten.Key]ScanCode{
	ebiten.KeyA:              ScanCodeA,
	ebiten.KeyB:              ScanCodeB,
	ebiten.KeyC:              ScanCodeC,
	ebiten.KeyD:              ScanCodeD,
	ebiten.KeyE:              ScanCodeE,
	ebiten.KeyF:              ScanCodeF,
	ebiten.KeyG:              ScanCodeG,
	ebiten.KeyH:              ScanCodeH,
	ebiten.KeyI:              ScanCodeI,
	ebiten.KeyJ:              ScanCodeJ,
	ebiten.KeyK:              ScanCodeK,
	ebiten.KeyL:              ScanCodeL,
	ebiten.KeyM:              ScanCodeM,
	ebiten.KeyN:              ScanCodeN,
	ebiten.KeyO:              ScanCodeO,
	ebiten.KeyP:              ScanCodeP,
	ebiten.KeyQ:              ScanCodeQ,
	ebiten.KeyR:              ScanCodeR,
	ebiten.KeyS:              ScanCodeS,
	ebiten.KeyT:              ScanCodeT,
	ebiten.KeyU:              ScanCodeU,
	ebiten.KeyV:              ScanCodeV,
	ebiten.KeyW:              ScanCodeW,
	ebiten.KeyX:              ScanCodeX,
	ebiten.KeyY:              ScanCodeY,
	ebiten.KeyZ:              ScanCodeZ,
	ebiten.KeyDigit1:         ScanCodeKey1,
	ebiten.KeyDigit2:         ScanCodeKey2,
	ebiten.KeyDigit3:         ScanCodeKey3,
	ebiten.KeyDigit4:         ScanCodeKey4,
	ebiten.KeyDigit5:         ScanCodeKey5,
	ebiten.KeyDigit6:         ScanCodeKey6,
	ebiten.KeyDigit7:         ScanCodeKey7,
	ebiten.KeyDigit8:         ScanCodeKey8,
	ebiten.KeyDigit9:         ScanCodeKey9,
	ebiten.KeyDigit0:         ScanCodeKey0,
	ebiten.KeyEnter:          ScanCodeReturn,
	ebiten.KeyEscape:         ScanCodeEscape,
	ebiten.KeyBackspace:      ScanCodeBackspace,
	ebiten.KeyTab:            ScanCodeTab,
	ebiten.KeySpace:          ScanCodeSpace,
	ebiten.KeyMinus:          ScanCodeMinus,
	ebiten.KeyEqual:          ScanCodeEquals,
	ebiten.KeyBracketLeft:    ScanCodeLBracket,
	ebiten.KeyBracketRight:   ScanCodeRBracket,
	ebiten.KeyBackslash:      ScanCodeBackslash,
	ebiten.KeySemicolon:      ScanCodeSemicolon,
	ebiten.KeyQuote:          ScanCodeApostrophe,
	ebiten.KeyBackquote:      ScanCodeGrave,
	ebiten.KeyComma:          ScanCodeComma,
	ebiten.KeyPeriod:         ScanCodePeriod,
	ebiten.KeySlash:          ScanCodeSlash,
	ebiten.KeyCapsLock:       ScanCodeCapslock,
	ebiten.KeyF1:             ScanCodeF1,
	ebiten.KeyF2:             ScanCodeF2,
	ebiten.KeyF3:             ScanCodeF3,
	ebiten.KeyF4:             ScanCodeF4,
	ebiten.KeyF5:             ScanCodeF5,
	ebiten.KeyF6:             ScanCodeF6,
	ebiten.KeyF7:             ScanCodeF7,
	ebiten.KeyF8:             ScanCodeF8,
	ebiten.KeyF9:             ScanCodeF9,
	ebiten.KeyF10:            ScanCodeF10,
	ebiten.KeyF11:            ScanCodeF11,
	ebiten.KeyF12:            ScanCodeF12,
	ebiten.KeyPrintScreen:    ScanCodeSysrq,
	ebiten.KeyScrollLock:     ScanCodeScrolllock,
	ebiten.KeyPause:          ScanCodePause,
	ebiten.KeyInsert:         ScanCodeInsert,
	ebiten.KeyHome:           ScanCodeHome,
	ebiten.KeyPageUp:         ScanCodePageUp,
	ebiten.KeyDelete:         ScanCodeDelete,
	ebiten.KeyEnd:            ScanCodeEnd,
	ebiten.KeyPageDown:       ScanCodePageDown,
	ebiten.KeyArrowRight:     ScanCodeRight,
	ebiten.KeyArrowLeft:      ScanCodeLeft,
	ebiten.KeyArrowDown:      ScanCodeDown,
	ebiten.KeyArrowUp:        ScanCodeUp,
	ebiten.KeyNumLock:        ScanCodeNumlock,
	ebiten.KeyNumpadDivide:   ScanCodeNumpadDivide,
	ebiten.KeyNumpadMultiply: ScanCodeNumpadMultiply,
	ebiten.KeyNumpadSubtract: ScanCodeNumpadSubtract,
	ebiten.KeyNumpadAdd:      ScanCodeNumpadAdd,
	ebiten.KeyNumpadEnter:    ScanCodeNumpadEnter,
	ebiten.KeyNumpad1:        ScanCodeNumpad1,
	ebiten.KeyNumpad2:        ScanCodeNumpad2,
	ebiten.KeyNumpad3:        ScanCodeNumpad3,
	ebiten.KeyNumpad4:        ScanCodeNumpad4,
	ebiten.KeyNumpad5:        ScanCodeNumpad5,
	ebiten.KeyNumpad6:        ScanCodeNumpad6,
	ebiten.KeyNumpad7:        ScanCodeNumpad7,
	ebiten.KeyNumpad8:        ScanCodeNumpad8,
	ebiten.KeyNumpad9:        ScanCodeNumpad9,
	ebiten.KeyNumpad0:        ScanCodeNumpad0,
	ebiten.KeyNumpadEqual:    ScanCodeNumpadEquals,
	ebiten.KeyIntlBackslash:  ScanCodeNonUsBackslash,
	ebiten.KeyContextMenu:    ScanCodeApps,
	ebiten.KeyControlLeft:    ScanCodeLControl,
	ebiten.KeyShiftLeft:      ScanCodeLShift,
	ebiten.KeyAltLeft:        ScanCodeLAlt,
	ebiten.KeyMetaLeft:       ScanCodeLWin,
	ebiten.KeyControlRight:   ScanCodeRControl,
	ebiten.KeyShiftRight:     ScanCodeRShift,
	ebiten.KeyAltRight:       ScanCodeRAlt,
	ebiten.KeyMetaRight:      ScanCodeRWin,
}

// convEbitenKey translates an Ebitengine key; ok is false for keys with no
// engine-side meaning.
func convEbitenKey(k ebiten.Key) (ScanCode, bool) {
	c, ok := ebitenKeys[k]
	return c, ok
}
