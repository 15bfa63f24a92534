package argsbar

import (
	"strconv"

	"github.com/muurk/argsbar/internal/logging"
)

// Focus is either "no input focused" or the index of the focused input.
// The zero value is unfocused.
type Focus struct {
	index int
	ok    bool
}

// Unfocused returns the focus value that selects no input.
func Unfocused() Focus {
	return Focus{}
}

// FocusedAt returns the focus value that selects input i.
func FocusedAt(i int) Focus {
	return Focus{index: i, ok: true}
}

// Index returns the focused index; ok is false when nothing is focused.
func (f Focus) Index() (int, bool) {
	return f.index, f.ok
}

// IsNone reports whether nothing is focused.
func (f Focus) IsNone() bool {
	return !f.ok
}

// String returns "none" or the decimal index
func (f Focus) String() string {
	if !f.ok {
		return "none"
	}
	return strconv.Itoa(f.index)
}

// Bar represents the current state of input: an ordered, fixed list of
// inputs and which of them, if any, is receiving characters.
//
// The focus cycles None → 0 → 1 → … → n-1 → None in both directions.
// A Bar is not safe for concurrent use.
type Bar struct {
	inputs  []*InputValue
	current Focus
}

// NewBar creates one InputValue per parameter, in order. Nothing is
// focused initially.
func NewBar(params []InputParameter) *Bar {
	inputs := make([]*InputValue, len(params))
	for i, p := range params {
		inputs[i] = NewInputValue(p)
	}
	return &Bar{inputs: inputs, current: Unfocused()}
}

// ToggleNext cycles forward to the next input. From no selection the first
// input is selected; toggling past the last input wraps back to no
// selection. Does nothing when the bar has no inputs.
func (b *Bar) ToggleNext() {
	if len(b.inputs) == 0 {
		return
	}
	prev := b.current

	idx, ok := b.current.Index()
	switch {
	case !ok:
		b.current = FocusedAt(0)
	case idx < len(b.inputs)-1:
		b.current = FocusedAt(idx + 1)
	default:
		b.current = Unfocused()
	}

	logging.LogFocusChange(prev.String(), b.current.String())
}

// TogglePrev cycles backward to the prior input. From no selection it
// wraps to the last input; from the first input it selects nothing.
// Does nothing when the bar has no inputs.
func (b *Bar) TogglePrev() {
	if len(b.inputs) == 0 {
		return
	}
	prev := b.current

	idx, ok := b.current.Index()
	switch {
	case !ok:
		b.current = FocusedAt(len(b.inputs) - 1)
	case idx == 0:
		b.current = Unfocused()
	default:
		b.current = FocusedAt(idx - 1)
	}

	logging.LogFocusChange(prev.String(), b.current.String())
}

// ActiveInput returns the focused input, or nil when nothing is focused.
// A nil result is the normal signal that there is no edit target.
func (b *Bar) ActiveInput() *InputValue {
	idx, ok := b.current.Index()
	if !ok {
		return nil
	}
	return b.inputs[idx]
}

// Current returns the focus state.
func (b *Bar) Current() Focus {
	return b.current
}

// IsFocused reports whether input i is the focused one.
func (b *Bar) IsFocused(i int) bool {
	idx, ok := b.current.Index()
	return ok && idx == i
}

// Len returns the number of inputs.
func (b *Bar) Len() int {
	return len(b.inputs)
}

// Input returns input i, or nil if i is out of range.
func (b *Bar) Input(i int) *InputValue {
	if i < 0 || i >= len(b.inputs) {
		return nil
	}
	return b.inputs[i]
}

// Inputs returns the inputs in order. The slice is a copy; the values are
// shared with the bar.
func (b *Bar) Inputs() []*InputValue {
	out := make([]*InputValue, len(b.inputs))
	copy(out, b.inputs)
	return out
}

// Reset clears every input back to its creation state and drops focus.
func (b *Bar) Reset() {
	for _, in := range b.inputs {
		in.Reset()
	}
	b.current = Unfocused()
	logging.LogReset(len(b.inputs))
}

// Field is one name and value pair reported by Fields.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Fields returns every input's name and Value in bar order. Unlike Values
// it keeps inputs that share a name.
func (b *Bar) Fields() []Field {
	fields := make([]Field, len(b.inputs))
	for i, in := range b.inputs {
		fields[i] = Field{Name: in.param.name, Value: in.Value()}
	}
	return fields
}

// Values maps every parameter name to its current Value, with defaults
// applied to empty buffers. Names are expected to be unique; when two
// inputs share a name the later one wins. Use Fields to see every input.
func (b *Bar) Values() map[string]string {
	values := make(map[string]string, len(b.inputs))
	for _, in := range b.inputs {
		values[in.param.name] = in.Value()
	}
	return values
}

// MissingRequired returns, in order, the names of required parameters that
// have neither typed text nor a default.
func (b *Bar) MissingRequired() []string {
	var missing []string
	for _, in := range b.inputs {
		if in.param.required && in.Value() == "" {
			missing = append(missing, in.param.name)
		}
	}
	return missing
}
