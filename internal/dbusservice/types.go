// Package dbusservice exposes an engine.Engine over a D-Bus session-bus
// object, in the shape a Fcitx5-style frontend expects: ProcessKey,
// Reset, SetEnabled, GetPreedit.
package dbusservice

// KeyEvent represents a keyboard event from the frontend.
type KeyEvent struct {
	KeySym    uint32 // X11 keysym value
	Modifiers uint32 // Modifier state (Shift, Ctrl, Alt, etc.)
}

// ProcessResult contains the output from processing a key event.
type ProcessResult struct {
	Handled    bool   // Whether the key was consumed by the engine
	CommitText string // Text to commit to the application
	Preedit    string // Current preedit/composition string
}

// Modifier flags for keyboard state.
const (
	ModNone    uint32 = 0
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1 // Caps Lock
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3 // Alt
	ModMod4    uint32 = 1 << 6 // Super/Windows key
)

// Common keysym values for Vietnamese input.
const (
	KeyBackspace uint32 = 0xff08
	KeyReturn    uint32 = 0xff0d
	KeyEscape    uint32 = 0xff1b
	KeySpace     uint32 = 0x0020
	KeyTab       uint32 = 0xff09
	KeyDelete    uint32 = 0xffff

	KeyA uint32 = 0x0061
	KeyZ uint32 = 0x007a

	KeyShiftA uint32 = 0x0041
	KeyShiftZ uint32 = 0x005a

	Key0 uint32 = 0x0030
	Key9 uint32 = 0x0039
)
