package framework

import (
	"errors"
	"testing"
)

func TestGameErrorKinds(t *testing.T) {
	inner := errors.New("driver said no")

	tests := []struct {
		name string
		err  *GameError
		kind ErrorKind
	}{
		{"window", NewWindowError("window creation failed", inner), WindowError},
		{"render", NewRenderError("texture upload failed", inner), RenderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsKind(tt.err, tt.kind) {
				t.Errorf("IsKind(%v) = false, want true", tt.kind)
			}
			if !errors.Is(tt.err, inner) {
				t.Error("wrapped error lost")
			}
		})
	}
}

func TestIsKindDistinguishes(t *testing.T) {
	err := NewRenderError("x", nil)
	if IsKind(err, WindowError) {
		t.Error("render error matched WindowError")
	}
	if IsKind(errors.New("plain"), RenderError) {
		t.Error("plain error matched RenderError")
	}
	if IsKind(nil, RenderError) {
		t.Error("nil matched RenderError")
	}
}
