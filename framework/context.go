package framework

// Context is the bundle of platform state threaded through every game
// callback: the logical screen size, the keyboard state, and the renderer.
//
// The event loop owns the Context for the duration of Run and updates
// ScreenWidth/ScreenHeight on resize events before the game sees them.
type Context struct {
	ScreenWidth  float32
	ScreenHeight float32
	Keyboard     KeyboardContext
	Renderer     Renderer
}

// NewContext returns a context sized to the default window.
func NewContext() *Context {
	return &Context{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
	}
}
