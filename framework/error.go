// Package framework is the platform layer of the engine: the window/input
// event loop, the 2D-accelerated renderer, GPU texture handles with sprite
// batching, and the error taxonomy the backends report through.
//
// Construction order is strict: a Backend is created once per process, it
// creates the EventLoop (which owns the window), the EventLoop creates the
// Renderer, and the Renderer creates Textures. Everything runs on the main
// thread; no framework operation may be called from another goroutine.
package framework

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a GameError.
type ErrorKind uint8

const (
	// WindowError covers platform init, event pump, and window creation
	// failures.
	WindowError ErrorKind = iota
	// RenderError covers canvas creation, texture creation and upload,
	// clip/blit operations, and present failures.
	RenderError
)

func (k ErrorKind) String() string {
	switch k {
	case WindowError:
		return "window error"
	case RenderError:
		return "render error"
	default:
		return "unknown error"
	}
}

// GameError is the error type every backend failure surfaces as. Driver
// failures are never swallowed: any operation the driver can refuse returns
// a GameError to the caller.
type GameError struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying driver error, may be nil
}

func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// NewWindowError wraps a driver error as a window failure.
func NewWindowError(msg string, err error) *GameError {
	return &GameError{Kind: WindowError, Msg: msg, Err: err}
}

// NewRenderError wraps a driver error as a rendering failure.
func NewRenderError(msg string, err error) *GameError {
	return &GameError{Kind: RenderError, Msg: msg, Err: err}
}

// IsKind reports whether err is (or wraps) a GameError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *GameError
	return errors.As(err, &ge) && ge.Kind == kind
}
