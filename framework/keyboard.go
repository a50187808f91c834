package framework

// ScanCode identifies a physical key independent of keyboard layout.
// Backends translate their platform scancodes into this enumeration;
// platform keys with no engine-side meaning are simply not mapped.
type ScanCode uint8

const (
	ScanCodeA ScanCode = iota
	ScanCodeB
	ScanCodeC
	ScanCodeD
	ScanCodeE
	ScanCodeF
	ScanCodeG
	ScanCodeH
	ScanCodeI
	ScanCodeJ
	ScanCodeK
	ScanCodeL
	ScanCodeM
	ScanCodeN
	ScanCodeO
	ScanCodeP
	ScanCodeQ
	ScanCodeR
	ScanCodeS
	ScanCodeT
	ScanCodeU
	ScanCodeV
	ScanCodeW
	ScanCodeX
	ScanCodeY
	ScanCodeZ
	ScanCodeKey1
	ScanCodeKey2
	ScanCodeKey3
	ScanCodeKey4
	ScanCodeKey5
	ScanCodeKey6
	ScanCodeKey7
	ScanCodeKey8
	ScanCodeKey9
	ScanCodeKey0
	ScanCodeReturn
	ScanCodeEscape
	ScanCodeBackspace
	ScanCodeTab
	ScanCodeSpace
	ScanCodeMinus
	ScanCodeEquals
	ScanCodeLBracket
	ScanCodeRBracket
	ScanCodeBackslash
	ScanCodeNonUsHash
	ScanCodeSemicolon
	ScanCodeApostrophe
	ScanCodeGrave
	ScanCodeComma
	ScanCodePeriod
	ScanCodeSlash
	ScanCodeCapslock
	ScanCodeF1
	ScanCodeF2
	ScanCodeF3
	ScanCodeF4
	ScanCodeF5
	ScanCodeF6
	ScanCodeF7
	ScanCodeF8
	ScanCodeF9
	ScanCodeF10
	ScanCodeF11
	ScanCodeF12
	ScanCodeF13
	ScanCodeF14
	ScanCodeF15
	ScanCodeF16
	ScanCodeF17
	ScanCodeF18
	ScanCodeF19
	ScanCodeF20
	ScanCodeF21
	ScanCodeF22
	ScanCodeF23
	ScanCodeF24
	ScanCodeSysrq
	ScanCodeScrolllock
	ScanCodePause
	ScanCodeInsert
	ScanCodeHome
	ScanCodePageUp
	ScanCodeDelete
	ScanCodeEnd
	ScanCodePageDown
	ScanCodeRight
	ScanCodeLeft
	ScanCodeDown
	ScanCodeUp
	ScanCodeNumlock
	ScanCodeNumpadDivide
	ScanCodeNumpadMultiply
	ScanCodeNumpadSubtract
	ScanCodeNumpadAdd
	ScanCodeNumpadEnter
	ScanCodeNumpad1
	ScanCodeNumpad2
	ScanCodeNumpad3
	ScanCodeNumpad4
	ScanCodeNumpad5
	ScanCodeNumpad6
	ScanCodeNumpad7
	ScanCodeNumpad8
	ScanCodeNumpad9
	ScanCodeNumpad0
	ScanCodeNumpadEquals
	ScanCodeNumpadComma
	ScanCodeNonUsBackslash
	ScanCodeApps
	ScanCodePower
	ScanCodeStop
	ScanCodeCut
	ScanCodeCopy
	ScanCodePaste
	ScanCodeMute
	ScanCodeVolumeUp
	ScanCodeVolumeDown
	ScanCodeLControl
	ScanCodeLShift
	ScanCodeLAlt
	ScanCodeLWin
	ScanCodeRControl
	ScanCodeRShift
	ScanCodeRAlt
	ScanCodeRWin
	ScanCodeNextTrack
	ScanCodePrevTrack
	ScanCodeMediaStop
	ScanCodePlayPause
	ScanCodeMediaSelect
	ScanCodeMail
	ScanCodeCalculator
	ScanCodeSleep

	// ScanCodeCount is the number of scan codes; keep it last.
	ScanCodeCount
)

// KeyboardContext tracks which engine keys are currently held. The event
// loop sets a key's bit on key-down and clears it on key-up; gameplay code
// polls it between frames.
type KeyboardContext struct {
	pressed [ScanCodeCount]bool
}

// SetKey records a key transition.
func (k *KeyboardContext) SetKey(code ScanCode, pressed bool) {
	if code < ScanCodeCount {
		k.pressed[code] = pressed
	}
}

// IsKeyPressed reports whether the key is currently held.
func (k *KeyboardContext) IsKeyPressed(code ScanCode) bool {
	return code < ScanCodeCount && k.pressed[code]
}

// Clear releases every key, used when the window loses focus.
func (k *KeyboardContext) Clear() {
	k.pressed = [ScanCodeCount]bool{}
}
