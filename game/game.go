package game

import (
	"log/slog"
	"time"

	"github.com/doukutsu-go/doukutsu/engine"
	"github.com/doukutsu-go/doukutsu/framework"
)

// ticksPerSecond is the fixed game logic rate.
const ticksPerSecond = 50

// maxTicksPerUpdate bounds catch-up after a stall so the game slows down
// instead of spiraling.
const maxTicksPerUpdate = 10

// SharedGameState is the state every scene can reach: the pending scene
// handoff, the tick accumulator, the shutdown latch, and the engine data.
type SharedGameState struct {
	// NextScene, when set, is promoted to current at the frame's scene
	// swap point, after Update and the shutdown check.
	NextScene Scene
	// FrameTime accumulates fractional ticks between updates.
	FrameTime float64
	// Shutdown is the quit latch. Once set it is never cleared.
	Shutdown bool
	// Constants is the engine data table (physics, texture sizes).
	Constants *engine.EngineConstants
	// Settings is the loaded user configuration.
	Settings Settings
}

// Game drives scenes at a fixed tick rate and owns the debug overlay. It is
// the collaborator the framework event loop dispatches into.
type Game struct {
	state    *SharedGameState
	scene    Scene
	loops    uint32
	lastTime time.Time
	started  bool

	// frame statistics for the debug overlay
	tickCount  uint64
	frameCount uint64
	statTicks  uint64
	statFrames uint64
	statMark   time.Time
	tps        uint64
	fps        uint64
}

// New builds a game whose first scene is the loading fade. The scene is
// initialized by the first SwapScene call, inside the frame loop.
func New(constants *engine.EngineConstants, settings Settings) *Game {
	return &Game{
		state: &SharedGameState{
			NextScene: &LoadingScene{},
			Constants: constants,
			Settings:  settings,
		},
	}
}

// State exposes the shared state for tests and tooling.
func (g *Game) State() *SharedGameState {
	return g.state
}

func (g *Game) Update(ctx *framework.Context) error {
	now := time.Now()
	if !g.started {
		g.started = true
		g.lastTime = now
		g.statMark = now
	}
	g.state.FrameTime += now.Sub(g.lastTime).Seconds() * ticksPerSecond
	g.lastTime = now

	ran := 0
	for g.state.FrameTime >= 1 && g.scene != nil {
		g.state.FrameTime -= 1
		if err := g.scene.Tick(g.state, ctx); err != nil {
			return err
		}
		g.loops++
		g.tickCount++
		g.statTicks++
		ran++
		if ran >= maxTicksPerUpdate {
			slog.Warn("Frame skip", "pending", g.state.FrameTime)
			g.state.FrameTime = 0
		}
	}

	g.updateStats(now)
	return nil
}

func (g *Game) updateStats(now time.Time) {
	if now.Sub(g.statMark) < time.Second {
		return
	}
	g.tps = g.statTicks
	g.fps = g.statFrames
	g.statTicks = 0
	g.statFrames = 0
	g.statMark = now
}

func (g *Game) Draw(ctx *framework.Context) error {
	g.frameCount++
	g.statFrames++

	if g.scene != nil {
		if err := g.scene.Draw(g.state, ctx); err != nil {
			return err
		}
	}

	uiCtx, err := framework.UI(ctx)
	if err != nil {
		return err
	}
	uiCtx.NewFrame()
	if g.state.Settings.DebugOverlay {
		uiCtx.Begin("stats", 8, 8, 160, 76)
		uiCtx.Textf("tps: %d", g.tps)
		uiCtx.Textf("fps: %d", g.fps)
		uiCtx.Separator()
		uiCtx.Textf("ticks: %d", g.tickCount)
		uiCtx.End()
	}
	if err := framework.RenderUI(ctx, uiCtx.Render()); err != nil {
		return err
	}

	return framework.Present(ctx)
}

func (g *Game) HandleResize(ctx *framework.Context) error {
	// Scenes read the size off the context every frame; nothing is cached.
	return nil
}

func (g *Game) KeyDownEvent(code framework.ScanCode, repeat bool) {
	if repeat {
		return
	}
	switch code {
	case framework.ScanCodeEscape:
		g.RequestShutdown()
	case framework.ScanCodeF3:
		g.state.Settings.DebugOverlay = !g.state.Settings.DebugOverlay
	}
}

func (g *Game) RequestShutdown() {
	g.state.Shutdown = true
}

func (g *Game) ShuttingDown() bool {
	return g.state.Shutdown
}

func (g *Game) SwapScene(ctx *framework.Context) error {
	if g.state.NextScene == nil {
		return nil
	}
	g.scene = g.state.NextScene
	g.state.NextScene = nil
	g.loops = 0
	g.state.FrameTime = 0
	return g.scene.Init(g.state, ctx)
}
