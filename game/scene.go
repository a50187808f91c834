package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework"
)

// Scene is one screen of the game. Init runs exactly once, after the scene
// has been promoted to current. Tick runs at the fixed tick rate; Draw runs
// once per rendered frame.
type Scene interface {
	Init(state *SharedGameState, ctx *framework.Context) error
	Tick(state *SharedGameState, ctx *framework.Context) error
	Draw(state *SharedGameState, ctx *framework.Context) error
}

// LoadingScene fades in from black over the first moments of the game, then
// hands off to the title scene.
type LoadingScene struct {
	overlay framework.Texture
	fade    *gween.Tween
	alpha   float32
}

// loadingFadeTicks is the fade duration in game ticks.
const loadingFadeTicks = 30

func (s *LoadingScene) Init(state *SharedGameState, ctx *framework.Context) error {
	// A tiny solid texture stretched over the screen. Color comes from
	// the tint, so the pixels are plain white.
	pixels := make([]byte, 2*2*4)
	for i := range pixels {
		pixels[i] = 0xff
	}
	tex, err := framework.CreateTexture(ctx, 2, 2, pixels)
	if err != nil {
		return err
	}
	s.overlay = tex
	s.fade = gween.New(255, 0, loadingFadeTicks, ease.OutQuad)
	s.alpha = 255
	return nil
}

func (s *LoadingScene) Tick(state *SharedGameState, ctx *framework.Context) error {
	alpha, done := s.fade.Update(1)
	s.alpha = alpha
	if done {
		state.NextScene = &TitleScene{}
		if s.overlay != nil {
			if err := s.overlay.Destroy(); err != nil {
				return err
			}
			s.overlay = nil
		}
	}
	return nil
}

func (s *LoadingScene) Draw(state *SharedGameState, ctx *framework.Context) error {
	framework.Clear(ctx, common.ColorBlack)
	if s.overlay == nil {
		return nil
	}
	if err := framework.SetBlendMode(ctx, framework.BlendAlpha); err != nil {
		return err
	}
	s.overlay.Clear()
	s.overlay.Add(framework.DrawRectTinted(
		common.NewRect[float32](0, 0, 2, 2),
		common.NewRect[float32](0, 0, ctx.ScreenWidth, ctx.ScreenHeight),
		common.Color{R: 0, G: 0, B: 0, A: uint8(s.alpha)},
	))
	return s.overlay.Draw()
}

// TitleScene is the resting state after loading. It clears to the menu
// background color and pulses a vignette overlay.
type TitleScene struct {
	overlay framework.Texture
	pulse   *gween.Tween
	alpha   float32
	rising  bool
}

func (s *TitleScene) Init(state *SharedGameState, ctx *framework.Context) error {
	tex, err := framework.CreateTextureMutable(ctx, 2, 2)
	if err != nil {
		return err
	}
	s.overlay = tex
	s.pulse = gween.New(0, 48, 120, ease.InOutSine)
	s.rising = true
	return nil
}

func (s *TitleScene) Tick(state *SharedGameState, ctx *framework.Context) error {
	alpha, done := s.pulse.Update(1)
	s.alpha = alpha
	if done {
		if s.rising {
			s.pulse = gween.New(48, 0, 120, ease.InOutSine)
		} else {
			s.pulse = gween.New(0, 48, 120, ease.InOutSine)
		}
		s.rising = !s.rising
	}
	return nil
}

func (s *TitleScene) Draw(state *SharedGameState, ctx *framework.Context) error {
	framework.Clear(ctx, common.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff})
	if s.overlay == nil {
		return nil
	}
	if err := framework.SetBlendMode(ctx, framework.BlendAdd); err != nil {
		return err
	}
	s.overlay.Clear()
	s.overlay.Add(framework.DrawRectTinted(
		common.NewRect[float32](0, 0, 2, 2),
		common.NewRect[float32](0, 0, ctx.ScreenWidth, ctx.ScreenHeight),
		common.Color{R: 0x18, G: 0x10, B: 0x30, A: uint8(s.alpha)},
	))
	if err := s.overlay.Draw(); err != nil {
		return err
	}
	return framework.SetBlendMode(ctx, framework.BlendAlpha)
}
