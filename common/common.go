// Package common holds the small value types shared by every layer of the
// engine: colors, axis-aligned rectangles, directions, and fixed-point
// position helpers.
//
// Positions in gameplay code are integers in units of 1/512 pixel
// (0x200 = one pixel). The rendering layer works in whole pixels; use
// [FixToPixels] at the boundary.
package common

// SubpixelScale is the number of fixed-point units per pixel.
const SubpixelScale = 0x200

// FixToPixels converts a fixed-point 1/512-subpixel coordinate to pixels.
func FixToPixels(v int32) float32 {
	return float32(v) / SubpixelScale
}

// PixelsToFix converts a pixel coordinate to fixed-point 1/512 subpixels.
func PixelsToFix(v float32) int32 {
	return int32(v * SubpixelScale)
}

// Color is an RGBA color with 8-bit channels. Alpha is straight
// (not premultiplied); the backends premultiply where their driver
// requires it.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{255, 255, 255, 255}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 255}

// RGBA returns the four channels in order.
func (c Color) RGBA() (r, g, b, a uint8) {
	return c.R, c.G, c.B, c.A
}

// Direction is a cardinal facing used by entities and the player.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionUp
	DirectionRight
	DirectionBottom
)

// Opposite returns the direction facing the other way. Up and Bottom are
// opposites of each other.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionUp:
		return DirectionBottom
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionUp
	}
}

// Number constrains the coordinate types a Rect may use: integers for
// texture-atlas coordinates and fixed-point values, floats for
// screen-space destinations.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// Rect is an axis-aligned rectangle stored as its four edges.
// Width and Height must be non-negative: Left <= Right and Top <= Bottom.
type Rect[T Number] struct {
	Left, Top, Right, Bottom T
}

// NewRect builds a rectangle from a top-left corner and a size.
func NewRect[T Number](left, top, width, height T) Rect[T] {
	return Rect[T]{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns Right - Left.
func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect[T]) Height() T {
	return r.Bottom - r.Top
}

// Contains reports whether rectangle o lies entirely inside r.
// Rectangles sharing an edge count as contained.
func (r Rect[T]) Contains(o Rect[T]) bool {
	return o.Left >= r.Left && o.Right <= r.Right &&
		o.Top >= r.Top && o.Bottom <= r.Bottom
}

// Empty reports whether the rectangle covers no area.
func (r Rect[T]) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}
