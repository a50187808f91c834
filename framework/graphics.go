package framework

import (
	"github.com/doukutsu-go/doukutsu/common"
	"github.com/doukutsu-go/doukutsu/framework/ui"
)

// Package-level drawing helpers. Game code calls these with its Context
// instead of reaching for ctx.Renderer directly, which keeps the nil-check
// in one place.

func renderer(ctx *Context) (Renderer, error) {
	if ctx.Renderer == nil {
		return nil, NewRenderError("no rendering backend", nil)
	}
	return ctx.Renderer, nil
}

// Clear fills the current render target.
func Clear(ctx *Context, color common.Color) {
	if ctx.Renderer != nil {
		ctx.Renderer.Clear(color)
	}
}

// Present flips the backbuffer.
func Present(ctx *Context) error {
	r, err := renderer(ctx)
	if err != nil {
		return err
	}
	return r.Present()
}

// CreateTexture uploads an RGBA32 buffer into a streaming texture.
func CreateTexture(ctx *Context, width, height uint16, data []byte) (Texture, error) {
	r, err := renderer(ctx)
	if err != nil {
		return nil, err
	}
	return r.CreateTexture(width, height, data)
}

// CreateTextureMutable allocates a render-target texture.
func CreateTextureMutable(ctx *Context, width, height uint16) (Texture, error) {
	r, err := renderer(ctx)
	if err != nil {
		return nil, err
	}
	return r.CreateTextureMutable(width, height)
}

// SetBlendMode selects the blend mode for subsequent draws.
func SetBlendMode(ctx *Context, mode BlendMode) error {
	r, err := renderer(ctx)
	if err != nil {
		return err
	}
	return r.SetBlendMode(mode)
}

// SetRenderTarget redirects draws to a texture, or nil for the window.
func SetRenderTarget(ctx *Context, target Texture) error {
	r, err := renderer(ctx)
	if err != nil {
		return err
	}
	return r.SetRenderTarget(target)
}

// UI returns the renderer's immediate-mode UI context.
func UI(ctx *Context) (*ui.Context, error) {
	r, err := renderer(ctx)
	if err != nil {
		return nil, err
	}
	return r.UI(), nil
}

// RenderUI hands a frame of UI draw data to the renderer.
func RenderUI(ctx *Context, data *ui.DrawData) error {
	r, err := renderer(ctx)
	if err != nil {
		return err
	}
	return r.RenderUI(data)
}
