package game

import (
	"testing"

	"github.com/doukutsu-go/doukutsu/engine"
	"github.com/doukutsu-go/doukutsu/framework"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

func newTestCtx(t *testing.T) (*framework.Context, *framework.NullRenderer) {
	t.Helper()
	ctx := framework.NewContext()
	r, err := framework.NewNullRenderer()
	if err != nil {
		t.Fatalf("NewNullRenderer: %v", err)
	}
	ctx.Renderer = r
	return ctx, r
}

func newTestGame() *Game {
	constants := engine.Defaults()
	return New(&constants, DefaultSettings())
}

func TestSwapScenePromotesAndInitsOnce(t *testing.T) {
	ctx, _ := newTestCtx(t)
	g := newTestGame()

	if g.State().NextScene == nil {
		t.Fatal("new game has no pending scene")
	}
	g.State().FrameTime = 0.75

	if err := g.SwapScene(ctx); err != nil {
		t.Fatalf("SwapScene: %v", err)
	}
	if g.State().NextScene != nil {
		t.Error("pending scene not consumed")
	}
	if g.State().FrameTime != 0 {
		t.Errorf("frame time = %v, want 0 after swap", g.State().FrameTime)
	}
	if _, ok := g.scene.(*LoadingScene); !ok {
		t.Fatalf("current scene = %T, want *LoadingScene", g.scene)
	}

	// No pending scene: swap is a no-op and must not re-init.
	scene := g.scene
	if err := g.SwapScene(ctx); err != nil {
		t.Fatalf("second SwapScene: %v", err)
	}
	if g.scene != scene {
		t.Error("scene changed without a pending swap")
	}
}

func TestEscapeRequestsShutdown(t *testing.T) {
	g := newTestGame()

	g.KeyDownEvent(framework.ScanCodeEscape, true)
	if g.ShuttingDown() {
		t.Fatal("repeat keypress tripped shutdown")
	}

	g.KeyDownEvent(framework.ScanCodeEscape, false)
	if !g.ShuttingDown() {
		t.Fatal("escape did not trip shutdown")
	}
}

func TestDebugOverlayToggle(t *testing.T) {
	g := newTestGame()

	g.KeyDownEvent(framework.ScanCodeF3, false)
	if !g.State().Settings.DebugOverlay {
		t.Fatal("overlay not enabled")
	}
	g.KeyDownEvent(framework.ScanCodeF3, false)
	if g.State().Settings.DebugOverlay {
		t.Fatal("overlay not disabled")
	}
}

func TestDrawPresentsAndRendersUI(t *testing.T) {
	ctx, r := newTestCtx(t)
	g := newTestGame()
	g.State().Settings.DebugOverlay = true

	if err := g.SwapScene(ctx); err != nil {
		t.Fatalf("SwapScene: %v", err)
	}
	ctx.Renderer.UI().PrepareFrame(ctx.ScreenWidth, ctx.ScreenHeight, ui.MouseState{})

	if err := g.Draw(ctx); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if r.Presents != 1 {
		t.Errorf("presents = %d, want 1", r.Presents)
	}
	if len(r.Clears) == 0 {
		t.Error("scene draw did not clear")
	}
	if len(r.UIBlits) == 0 {
		t.Error("debug overlay produced no UI blits")
	}
}

func TestGameRunsToShutdownOnNullBackend(t *testing.T) {
	backend := framework.NewNullBackend()
	loop, err := backend.CreateEventLoop()
	if err != nil {
		t.Fatalf("CreateEventLoop: %v", err)
	}
	nl := loop.(*framework.NullEventLoop)

	ctx := framework.NewContext()
	r, err := nl.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	ctx.Renderer = r

	g := newTestGame()
	for i := 0; i < 5; i++ {
		done, err := nl.RunFrame(g, ctx)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if done {
			t.Fatalf("frame %d: shutdown before quit event", i)
		}
	}

	nl.PushEvent(framework.NullQuitEvent{})
	done, err := nl.RunFrame(g, ctx)
	if err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if !done {
		t.Fatal("quit event did not end the loop")
	}
}
