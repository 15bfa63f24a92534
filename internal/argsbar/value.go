package argsbar

import (
	"errors"
	"unicode/utf8"

	"github.com/muurk/argsbar/internal/logging"
)

// InputValue keeps track of the text typed against a target InputParameter.
//
// Every rune in the buffer was accepted by the parameter's encoding against
// the buffer as it stood just before that rune was appended. Popping keeps
// this true, since a shorter prefix of a valid prefix is still valid.
type InputValue struct {
	param   InputParameter
	buffer  string
	touched bool
}

// NewInputValue creates an empty, untouched input for param.
func NewInputValue(param InputParameter) *InputValue {
	return &InputValue{param: param}
}

// PushChar appends ch to the buffer if the encoding permits it. The input
// is marked touched either way. A rejected character is dropped silently:
// invalid keystrokes are simply ignored.
func (v *InputValue) PushChar(ch rune) {
	v.Touch()

	if err := v.param.encoding.PushChar(&v.buffer, ch); err != nil {
		var rejErr *RejectedCharacterError
		if errors.As(err, &rejErr) {
			logging.LogRejectedChar(v.param.encoding.String(), rejErr.Buffer, ch, rejErr.Reason)
		}
	}
}

// PopChar removes the last character of the buffer and returns it, so
// callers can keep a history of erased input. The second result is false
// when the buffer was already empty. The input is marked touched either way.
func (v *InputValue) PopChar() (rune, bool) {
	v.Touch()

	if v.buffer == "" {
		return 0, false
	}
	ch, size := utf8.DecodeLastRuneInString(v.buffer)
	v.buffer = v.buffer[:len(v.buffer)-size]
	return ch, true
}

// Touch marks the input as interacted with even if nothing was typed, for
// example to trigger deferred validation display.
func (v *InputValue) Touch() {
	v.touched = true
}

// Reset returns the input to the state it was created in. The parameter
// binding is kept.
func (v *InputValue) Reset() {
	v.buffer = ""
	v.touched = false
}

// HasBeenTouched reports whether Touch, PushChar or PopChar has been called
// since creation or the last Reset.
func (v *InputValue) HasBeenTouched() bool {
	return v.touched
}

// Param returns the parameter this input collects.
func (v *InputValue) Param() InputParameter {
	return v.param
}

// Buffer returns the raw characters typed so far. It is a valid prefix of
// the encoding, not necessarily a complete value.
func (v *InputValue) Buffer() string {
	return v.buffer
}

// Value returns the buffer, or the parameter default when nothing has been
// typed. The default is returned as-is and never parsed.
func (v *InputValue) Value() string {
	if v.buffer == "" {
		return v.param.def
	}
	return v.buffer
}
