// Package argsbar holds the state model behind the argument entry bar.
//
// A Bar owns an ordered, fixed list of InputValue fields and a Focus cursor
// that is either unfocused or points at one of them. Key handlers cycle the
// focus with ToggleNext/TogglePrev and forward characters to ActiveInput.
//
// # Encodings
//
// Each InputParameter declares an Encoding. Before a character is appended
// the encoding checks that the buffer stays a valid prefix of its type:
//
//   - string: anything
//   - integer: ASCII digits only
//   - numeric: ASCII digits and at most one '.'
//   - boolean: spells out exactly "false" or "true", then nothing more
//
// Encoding.Accepts returns a *RejectedCharacterError naming what was
// expected. InputValue.PushChar swallows that error: an invalid keystroke
// simply does not change the buffer.
//
// # Usage Example
//
//	bar := argsbar.NewBar([]argsbar.InputParameter{
//	    argsbar.NewInputParameter("count", argsbar.WithEncoding(argsbar.EncodingInteger)),
//	    argsbar.NewInputParameter("verbose", argsbar.WithEncoding(argsbar.EncodingBoolean)),
//	})
//
//	bar.ToggleNext() // focus "count"
//	if in := bar.ActiveInput(); in != nil {
//	    in.PushChar('4')
//	    in.PushChar('x') // ignored
//	}
//
// Buffers are never parsed into numbers or booleans here; consumers read
// Value (which falls back to the parameter default) and parse it themselves.
//
// # Thread Safety
//
// None of the types are safe for concurrent use. The Bubble Tea runtime
// serializes Update calls, which is the only mutator.
package argsbar
