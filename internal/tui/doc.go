// Package tui runs an argsbar.Bar as an interactive Bubble Tea program.
//
// Model translates key events into Bar operations and renders the bar with
// internal/ui. All mutation happens inside Update: clipboard reads run as a
// tea.Cmd whose message is applied on the next Update, so the Bar is never
// touched from another goroutine.
//
// # Key Bindings
//
//	tab, down          focus the next field (wraps to no focus)
//	shift+tab, up      focus the previous field
//	runes, space       type into the focused field
//	backspace          delete the last character
//	ctrl+t             mark the focused field as touched
//	ctrl+u             clear the focused field
//	ctrl+r             clear every field and drop focus
//	ctrl+v             paste from the clipboard
//	enter              submit and quit
//	esc, ctrl+c        cancel
//
// Characters the focused field's encoding refuses are dropped and logged at
// debug level. Pasted text goes through the same path one rune at a time.
//
// # Usage Example
//
//	m := tui.New(bar, tui.WithDescriptions(true))
//	final, err := tea.NewProgram(m).Run()
//	if err != nil {
//	    return err
//	}
//	result := final.(tui.Model).Result()
package tui
