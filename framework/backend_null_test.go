package framework

import (
	"testing"

	"github.com/doukutsu-go/doukutsu/common"
)

// stubGame records the event loop's dispatches in order.
type stubGame struct {
	calls    []string
	keys     []ScanCode
	repeats  []bool
	shutdown bool

	// quitAfterUpdates trips the shutdown latch from inside Update once
	// that many updates have run.
	quitAfterUpdates int
	updates          int
}

func (g *stubGame) Update(ctx *Context) error {
	g.calls = append(g.calls, "update")
	g.updates++
	if g.quitAfterUpdates > 0 && g.updates >= g.quitAfterUpdates {
		g.shutdown = true
	}
	return nil
}

func (g *stubGame) Draw(ctx *Context) error {
	g.calls = append(g.calls, "draw")
	return nil
}

func (g *stubGame) HandleResize(ctx *Context) error {
	g.calls = append(g.calls, "resize")
	return nil
}

func (g *stubGame) KeyDownEvent(code ScanCode, repeat bool) {
	g.calls = append(g.calls, "key")
	g.keys = append(g.keys, code)
	g.repeats = append(g.repeats, repeat)
}

func (g *stubGame) RequestShutdown() { g.shutdown = true }
func (g *stubGame) ShuttingDown() bool {
	return g.shutdown
}

func (g *stubGame) SwapScene(ctx *Context) error {
	g.calls = append(g.calls, "swap")
	return nil
}

func newNullLoop(t *testing.T) (*NullEventLoop, *Context) {
	t.Helper()
	backend := NewNullBackend()
	loop, err := backend.CreateEventLoop()
	if err != nil {
		t.Fatalf("CreateEventLoop: %v", err)
	}
	nl := loop.(*NullEventLoop)
	ctx := NewContext()
	r, err := nl.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	ctx.Renderer = r
	return nl, ctx
}

func TestRunFrameDispatchOrder(t *testing.T) {
	loop, ctx := newNullLoop(t)
	game := &stubGame{}
	loop.PushEvent(NullKeyDownEvent{Code: ScanCodeZ, Mapped: true})

	done, err := loop.RunFrame(game, ctx)
	if err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if done {
		t.Fatal("done = true, want false")
	}

	want := []string{"key", "update", "swap", "draw"}
	if len(game.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", game.calls, want)
	}
	for i := range want {
		if game.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", game.calls, want)
		}
	}
}

func TestRunFrameKeyTranslation(t *testing.T) {
	loop, ctx := newNullLoop(t)
	game := &stubGame{}

	loop.PushEvent(NullKeyDownEvent{Code: ScanCodeLeft, Mapped: true})
	loop.PushEvent(NullKeyDownEvent{Code: ScanCodeLeft, Repeat: true, Mapped: true})
	loop.PushEvent(NullKeyDownEvent{Mapped: false})
	if _, err := loop.RunFrame(game, ctx); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	if len(game.keys) != 2 {
		t.Fatalf("got %d key events, want 2 (unmapped key must be dropped)", len(game.keys))
	}
	if game.keys[0] != ScanCodeLeft || game.repeats[0] {
		t.Errorf("first event = (%v, %v), want (Left, false)", game.keys[0], game.repeats[0])
	}
	if !game.repeats[1] {
		t.Error("second event repeat = false, want true")
	}
	if !ctx.Keyboard.IsKeyPressed(ScanCodeLeft) {
		t.Error("key state not set after key down")
	}

	loop.PushEvent(NullKeyUpEvent{Code: ScanCodeLeft, Mapped: true})
	if _, err := loop.RunFrame(game, ctx); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if ctx.Keyboard.IsKeyPressed(ScanCodeLeft) {
		t.Error("key state still set after key up")
	}
}

func TestRunFrameResizeClamp(t *testing.T) {
	loop, ctx := newNullLoop(t)
	game := &stubGame{}

	loop.PushEvent(NullSizeChangedEvent{Width: 0, Height: 720})
	if _, err := loop.RunFrame(game, ctx); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	if ctx.ScreenWidth != 1 || ctx.ScreenHeight != 720 {
		t.Errorf("screen = %vx%v, want 1x720", ctx.ScreenWidth, ctx.ScreenHeight)
	}
	if game.calls[0] != "resize" {
		t.Errorf("first call = %q, want resize before update", game.calls[0])
	}

	io := ctx.Renderer.UI().IO()
	if io.DisplaySize != [2]float32{1, 720} {
		t.Errorf("ui display size = %v, want [1 720]", io.DisplaySize)
	}
}

func TestRunFrameShutdownSkipsDraw(t *testing.T) {
	loop, ctx := newNullLoop(t)
	game := &stubGame{}
	loop.PushEvent(NullQuitEvent{})

	done, err := loop.RunFrame(game, ctx)
	if err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if !done {
		t.Fatal("done = false, want true after quit event")
	}

	// Update still runs on the final frame; swap and draw do not.
	want := []string{"update"}
	if len(game.calls) != 1 || game.calls[0] != want[0] {
		t.Errorf("calls = %v, want %v", game.calls, want)
	}
}

func TestRunUntilShutdown(t *testing.T) {
	loop, ctx := newNullLoop(t)
	game := &stubGame{quitAfterUpdates: 3}

	loop.Run(game, ctx)

	if game.updates != 3 {
		t.Errorf("updates = %d, want 3", game.updates)
	}
}

func newNullRendererT(t *testing.T) *NullRenderer {
	t.Helper()
	r, err := NewNullRenderer()
	if err != nil {
		t.Fatalf("NewNullRenderer: %v", err)
	}
	return r
}

func TestNullTextureUploadRoundTrip(t *testing.T) {
	r := newNullRendererT(t)
	data := make([]byte, 4*3*4)
	for i := range data {
		data[i] = byte(i * 7)
	}

	tex, err := r.CreateTexture(4, 3, data)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	nt := tex.(*NullTexture)
	for i := range data {
		if nt.Pixels[i] != data[i] {
			t.Fatalf("pixel byte %d = %d, want %d", i, nt.Pixels[i], data[i])
		}
	}
}

func TestCreateTextureSizeMismatch(t *testing.T) {
	r := newNullRendererT(t)
	_, err := r.CreateTexture(4, 4, make([]byte, 10))
	if err == nil {
		t.Fatal("CreateTexture accepted a short buffer")
	}
	if !IsKind(err, RenderError) {
		t.Errorf("error kind = %v, want RenderError", err)
	}
}

func TestSpriteBatchBufferSemantics(t *testing.T) {
	r := newNullRendererT(t)
	tex, err := r.CreateTexture(8, 8, make([]byte, 8*8*4))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	a := DrawRect(common.NewRect[float32](0, 0, 8, 8), common.NewRect[float32](0, 0, 16, 16))
	b := DrawRectTinted(common.NewRect[float32](0, 0, 4, 4), common.NewRect[float32](10, 10, 4, 4),
		common.Color{R: 255, G: 0, B: 0, A: 128})
	tex.Add(a)
	tex.Add(b)

	if err := tex.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(r.Blits) != 2 {
		t.Fatalf("got %d blits, want 2", len(r.Blits))
	}
	if r.Blits[0].Dest != a.Dest || r.Blits[1].Dest != b.Dest {
		t.Error("blits out of order")
	}
	if r.Blits[0].Color != common.ColorWhite {
		t.Errorf("untinted blit color = %+v, want white", r.Blits[0].Color)
	}
	if r.Blits[1].Color != b.Color {
		t.Errorf("tinted blit color = %+v, want %+v", r.Blits[1].Color, b.Color)
	}

	// Draw does not clear the buffer.
	if err := tex.Draw(); err != nil {
		t.Fatalf("second Draw: %v", err)
	}
	if len(r.Blits) != 4 {
		t.Fatalf("got %d blits after redraw, want 4", len(r.Blits))
	}

	// Clear discards without drawing.
	tex.Clear()
	if err := tex.Draw(); err != nil {
		t.Fatalf("Draw after Clear: %v", err)
	}
	if len(r.Blits) != 4 {
		t.Fatalf("got %d blits after clear+draw, want 4", len(r.Blits))
	}
}

func TestBlitRecordsBlendAndTarget(t *testing.T) {
	r := newNullRendererT(t)
	tex, err := r.CreateTexture(8, 8, make([]byte, 8*8*4))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	target, err := r.CreateTextureMutable(64, 64)
	if err != nil {
		t.Fatalf("CreateTextureMutable: %v", err)
	}

	if err := r.SetBlendMode(BlendAdd); err != nil {
		t.Fatalf("SetBlendMode: %v", err)
	}
	if err := r.SetRenderTarget(target); err != nil {
		t.Fatalf("SetRenderTarget: %v", err)
	}

	tex.Add(DrawRect(common.NewRect[float32](0, 0, 8, 8), common.NewRect[float32](0, 0, 8, 8)))
	if err := tex.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if got := r.Blits[0].Blend; got != BlendAdd {
		t.Errorf("blend = %v, want %v", got, BlendAdd)
	}
	if r.Blits[0].Target != target.(*NullTexture) {
		t.Error("blit target is not the bound render target")
	}

	if err := r.SetRenderTarget(nil); err != nil {
		t.Fatalf("SetRenderTarget(nil): %v", err)
	}
	tex.Clear()
	tex.Add(DrawRect(common.NewRect[float32](0, 0, 8, 8), common.NewRect[float32](0, 0, 8, 8)))
	if err := tex.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if r.Blits[1].Target != nil {
		t.Error("blit target not reset to the window")
	}
}

func TestTextureDestroyIdempotent(t *testing.T) {
	r := newNullRendererT(t)
	tex, err := r.CreateTexture(8, 8, make([]byte, 8*8*4))
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	if err := tex.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := tex.Destroy(); err != nil {
		t.Fatalf("second Destroy: %v", err)
	}
	if got := tex.(*NullTexture).Destroys; got != 1 {
		t.Errorf("native releases = %d, want 1", got)
	}

	tex.Add(DrawRect(common.NewRect[float32](0, 0, 8, 8), common.NewRect[float32](0, 0, 8, 8)))
	if err := tex.Draw(); err != nil {
		t.Fatalf("Draw after Destroy: %v", err)
	}
	if len(r.Blits) != 0 {
		t.Errorf("destroyed texture still drew %d blits", len(r.Blits))
	}
}

func TestSetBlendModeRejectsUnknown(t *testing.T) {
	r := newNullRendererT(t)
	if err := r.SetBlendMode(BlendMode(99)); err == nil {
		t.Fatal("SetBlendMode accepted an unknown mode")
	}
}
