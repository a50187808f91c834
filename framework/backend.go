package framework

import (
	"fmt"

	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// Window parameters shared by every backend.
const (
	WindowTitle         = "Cave Story (doukutsu-rs)"
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

// BlendMode selects how texture draws composite onto the current target.
// Exactly three modes exist; each maps to one native driver mode.
type BlendMode uint8

const (
	// BlendAlpha is standard source-over alpha blending.
	BlendAlpha BlendMode = iota
	// BlendAdd is additive blending.
	BlendAdd
	// BlendMultiply modulates the destination by the source color.
	BlendMultiply
)

func (b BlendMode) String() string {
	switch b {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// SpriteBatchCommandKind tags a SpriteBatchCommand variant.
type SpriteBatchCommandKind uint8

const (
	// CommandDrawRect copies a source sub-rectangle with full-opacity
	// white tint.
	CommandDrawRect SpriteBatchCommandKind = iota
	// CommandDrawRectTinted copies with per-quad color and alpha
	// modulation.
	CommandDrawRectTinted
)

// SpriteBatchCommand is one buffered copy-rect operation against a texture.
// Src is in texture pixels, Dest in target pixels; both are rounded to whole
// pixels when flushed.
type SpriteBatchCommand struct {
	Kind  SpriteBatchCommandKind
	Src   common.Rect[float32]
	Dest  common.Rect[float32]
	Color common.Color
}

// DrawRect builds an untinted copy command.
func DrawRect(src, dest common.Rect[float32]) SpriteBatchCommand {
	return SpriteBatchCommand{Kind: CommandDrawRect, Src: src, Dest: dest, Color: common.ColorWhite}
}

// DrawRectTinted builds a copy command with color modulation.
func DrawRectTinted(src, dest common.Rect[float32], color common.Color) SpriteBatchCommand {
	return SpriteBatchCommand{Kind: CommandDrawRectTinted, Src: src, Dest: dest, Color: color}
}

// Game is the collaborator the event loop drives. The framework never looks
// inside it beyond these entry points; the concrete type lives in the game
// package.
type Game interface {
	// Update advances game logic. Runs after event dispatch, before Draw.
	Update(ctx *Context) error
	// Draw renders the frame. It must finish by handing the UI draw data
	// to the renderer.
	Draw(ctx *Context) error
	// HandleResize is called after the context's screen size changed.
	HandleResize(ctx *Context) error
	// KeyDownEvent dispatches a translated key press. Repeat is true for
	// auto-repeated presses of a held key.
	KeyDownEvent(code ScanCode, repeat bool)
	// RequestShutdown latches the shutdown flag. The current frame still
	// completes; the loop exits at its shutdown check.
	RequestShutdown()
	// ShuttingDown reports the shutdown latch.
	ShuttingDown() bool
	// SwapScene promotes a pending scene, if any, into the current slot,
	// resets per-scene counters and initializes the new scene exactly once.
	SwapScene(ctx *Context) error
}

// Backend is a platform/driver session. Constructing one initializes the
// driver exactly once per process; it exposes no rendering itself.
type Backend interface {
	CreateEventLoop() (EventLoop, error)
}

// EventLoop owns the window and the input pump and drives the frame loop.
type EventLoop interface {
	// Run enters the frame loop and blocks until the game shuts down.
	// Each iteration: drain events, Update, shutdown check, scene swap,
	// UI prepare, Draw, present.
	Run(game Game, ctx *Context)
	// NewRenderer creates a renderer bound to the loop's window. Valid
	// only after the loop has established the window.
	NewRenderer() (Renderer, error)
}

// Renderer owns the drawing context and creates textures. All operations
// surface driver failures as *GameError with kind RenderError.
type Renderer interface {
	// Clear fills the current render target with a color.
	Clear(color common.Color)
	// Present flips the backbuffer. Blocks until vertical sync.
	Present() error
	// CreateTexture uploads an RGBA32 pixel buffer (len = w*h*4) into a
	// streaming texture with alpha blending.
	CreateTexture(width, height uint16, data []byte) (Texture, error)
	// CreateTextureMutable allocates a render-target-capable texture,
	// initially cleared.
	CreateTextureMutable(width, height uint16) (Texture, error)
	// SetBlendMode selects the blend mode for subsequent texture draws.
	SetBlendMode(mode BlendMode) error
	// SetRenderTarget redirects draws to a mutable texture, or back to
	// the window when target is nil. Streaming textures are not valid
	// targets.
	SetRenderTarget(target Texture) error
	// UI returns the renderer's immediate-mode UI context.
	UI() *ui.Context
	// RenderUI interprets a frame of UI draw data.
	RenderUI(data *ui.DrawData) error
}

// Texture is a GPU-resident image that accumulates sprite-batch commands
// and flushes them in order on Draw.
type Texture interface {
	// Dimensions returns the immutable pixel size.
	Dimensions() (width, height uint16)
	// Add appends a command to the batch. No drawing happens.
	Add(cmd SpriteBatchCommand)
	// Clear discards all buffered commands.
	Clear()
	// Draw flushes every buffered command in order. The buffer is NOT
	// cleared; call Clear explicitly so an unchanged batch can be drawn
	// again next frame.
	Draw() error
	// Destroy releases the native handle. Safe to call more than once;
	// only the first call releases anything.
	Destroy() error
}

// Backend names accepted by Init, in selection priority order.
const (
	BackendSDL2   = "sdl2"
	BackendEbiten = "ebiten"
	BackendNull   = "null"
)

// Init constructs the named backend, or the default (SDL2) when name is
// empty. Backends are selected once at process start.
func Init(name string) (Backend, error) {
	switch name {
	case "", BackendSDL2:
		return NewSDL2Backend()
	case BackendEbiten:
		return NewEbitenBackend()
	case BackendNull:
		return NewNullBackend(), nil
	default:
		return nil, NewWindowError(fmt.Sprintf("unknown backend %q", name), nil)
	}
}
