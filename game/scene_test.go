package game

import (
	"testing"

	"github.com/doukutsu-go/doukutsu/framework"
)

func initScene(t *testing.T, s Scene) (*SharedGameState, *framework.Context, *framework.NullRenderer) {
	t.Helper()
	ctx, r := newTestCtx(t)
	state := newTestGame().State()
	state.NextScene = nil
	if err := s.Init(state, ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return state, ctx, r
}

func TestLoadingSceneFadesToTitle(t *testing.T) {
	scene := &LoadingScene{}
	state, ctx, r := initScene(t, scene)

	if err := scene.Draw(state, ctx); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(r.Blits) != 1 {
		t.Fatalf("got %d blits, want 1", len(r.Blits))
	}
	if a := r.Blits[0].Color.A; a != 255 {
		t.Errorf("initial fade alpha = %d, want 255", a)
	}
	if r.Blits[0].Color.R != 0 || r.Blits[0].Color.G != 0 || r.Blits[0].Color.B != 0 {
		t.Errorf("fade color = %+v, want black", r.Blits[0].Color)
	}

	for i := 0; i < loadingFadeTicks; i++ {
		if err := scene.Tick(state, ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if _, ok := state.NextScene.(*TitleScene); !ok {
		t.Fatalf("next scene = %T, want *TitleScene", state.NextScene)
	}
	if scene.overlay != nil {
		t.Error("fade overlay not released at handoff")
	}

	// Drawing after handoff only clears.
	blits := len(r.Blits)
	if err := scene.Draw(state, ctx); err != nil {
		t.Fatalf("Draw after handoff: %v", err)
	}
	if len(r.Blits) != blits {
		t.Error("released overlay still drew")
	}
}

func TestLoadingSceneFadeMonotonic(t *testing.T) {
	scene := &LoadingScene{}
	state, ctx, _ := initScene(t, scene)

	prev := scene.alpha
	for i := 0; i < loadingFadeTicks; i++ {
		if err := scene.Tick(state, ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if scene.alpha > prev {
			t.Fatalf("tick %d: alpha rose from %v to %v", i, prev, scene.alpha)
		}
		prev = scene.alpha
	}
	if prev != 0 {
		t.Errorf("final alpha = %v, want 0", prev)
	}
}

func TestTitleSceneDrawsAdditiveOverlay(t *testing.T) {
	scene := &TitleScene{}
	state, ctx, r := initScene(t, scene)

	for i := 0; i < 10; i++ {
		if err := scene.Tick(state, ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if err := scene.Draw(state, ctx); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if len(r.Blits) != 1 {
		t.Fatalf("got %d blits, want 1", len(r.Blits))
	}
	if r.Blits[0].Blend != framework.BlendAdd {
		t.Errorf("overlay blend = %v, want additive", r.Blits[0].Blend)
	}
	if r.Blits[0].Dest.Right != ctx.ScreenWidth || r.Blits[0].Dest.Bottom != ctx.ScreenHeight {
		t.Errorf("overlay dest = %+v, want full screen", r.Blits[0].Dest)
	}
}
