package framework

// copyPixelsPitched copies a tightly packed RGBA32 buffer (src, width*height*4
// bytes) into a driver-owned buffer whose rows are pitch bytes apart. Drivers
// may pad rows past width*4; copying row by row keeps the padding intact.
func copyPixelsPitched(dst []byte, pitch int, src []byte, width, height int) {
	rowLen := width * 4
	for y := 0; y < height; y++ {
		copy(dst[y*pitch:y*pitch+rowLen], src[y*rowLen:(y+1)*rowLen])
	}
}
