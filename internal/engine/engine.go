// Package engine provides the core input method engine for Vietnamese typing.
package engine

import "unicode"

// Engine is the per-client dispatcher: it owns the raw keystroke
// buffer and the rendered output buffer and drives them through the
// render pipeline one keystroke at a time.
type Engine struct {
	raw    rawBuffer
	out    outBuffer
	method InputMethod
	mode   *Mode
}

// New creates an Engine defaulted to Telex.
func New() *Engine {
	e := &Engine{}
	e.SetInputMethod(Telex)
	return e
}

// Feed processes one keystroke and returns the resulting rendered
// text: either the current syllable's rendering, or — if key is
// whitespace — that rendering followed by the whitespace itself, with
// the syllable buffer reset for what comes next. The returned slice
// is a view into the engine's internal buffer and is only valid until
// the next call to Feed or Clear.
func (e *Engine) Feed(key rune) []rune {
	if unicode.IsSpace(key) {
		e.render()
		e.raw.clear()
		e.out.pushOrDrop(key)
		return e.out.runes()
	}
	if b, ok := asciiLower(key); ok {
		e.raw.pushOrDrop(b)
	}
	e.render()
	return e.out.runes()
}

// render rebuilds the output buffer from scratch out of the current
// raw buffer; it never accumulates across calls except for the
// trailing whitespace Feed appends after calling it.
func (e *Engine) render() {
	if e.raw.n == 0 {
		e.out.clear()
		return
	}
	rendered := Render(e.mode, e.raw.bytes())
	e.out.clear()
	for _, r := range rendered {
		e.out.pushOrDrop(r)
	}
}

// Clear resets both buffers, as if the client had just connected.
func (e *Engine) Clear() {
	e.raw.clear()
	e.out.clear()
}

// SetInputMethod switches the active keyboard convention. It does not
// reset either buffer; an in-progress syllable keeps whatever bytes it
// already has, rendered under the new mode's rules from then on.
func (e *Engine) SetInputMethod(method InputMethod) {
	e.method = method
	e.mode = modeFor(method)
}

// InputMethod reports the active keyboard convention.
func (e *Engine) InputMethod() InputMethod {
	return e.method
}

// Preedit returns the current output buffer as a string, without
// feeding a new keystroke.
func (e *Engine) Preedit() string {
	return e.out.String()
}

func asciiLower(r rune) (byte, bool) {
	lower := unicode.ToLower(r)
	if lower < 0 || lower > unicode.MaxASCII {
		return 0, false
	}
	return byte(lower), true
}
