package framework

import "testing"

// Every SDL scancode must map to a distinct engine scancode, otherwise two
// physical keys would alias in the keyboard state.
func TestSDLScanCodeMapInjective(t *testing.T) {
	seen := make(map[ScanCode][]int, len(sdl2ScanCodes))
	for sc, code := range sdl2ScanCodes {
		seen[code] = append(seen[code], int(sc))
	}
	for code, sources := range seen {
		if len(sources) > 1 {
			t.Errorf("engine scancode %d mapped from %d SDL scancodes %v",
				code, len(sources), sources)
		}
	}
}

func TestSDLScanCodeMapBounds(t *testing.T) {
	for sc, code := range sdl2ScanCodes {
		if code >= ScanCodeCount {
			t.Errorf("SDL scancode %d maps to out-of-range code %d", sc, code)
		}
	}
}

func TestConvSDLScanCodeUnknown(t *testing.T) {
	if _, ok := convSDLScanCode(0); ok {
		t.Error("scancode 0 translated, want unmapped")
	}
}
