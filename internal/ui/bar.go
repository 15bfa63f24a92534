package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/muurk/argsbar/internal/argsbar"
)

// CursorMarker is drawn after the text of the focused field
const CursorMarker = "▌"

// RenderOptions controls how a bar is drawn
type RenderOptions struct {
	Width            int  // Total width including the border; 0 uses the terminal width
	ShowDescriptions bool // Print each description under its field
}

// RenderBar draws one line per field of bar: focus marker, touched marker,
// name (with * when required), encoding tag and buffer. Empty fields show
// their default as a muted placeholder.
func RenderBar(bar *argsbar.Bar, opts RenderOptions) string {
	width := opts.Width
	if width <= 0 {
		width = GetTerminalWidth()
	}
	width = ClampWidth(width)

	if bar.Len() == 0 {
		return BarBoxStyle(width).Render(PlaceholderStyle.Render("No parameters defined"))
	}

	var lines []string
	for i, in := range bar.Inputs() {
		focused := bar.IsFocused(i)
		lines = append(lines, renderField(in, focused))

		if opts.ShowDescriptions && in.Param().Desc() != "" {
			// Border, padding and description indent
			wrapAt := width - 10
			wrapped := wordwrap.String(in.Param().Desc(), wrapAt)
			for _, line := range strings.Split(wrapped, "\n") {
				lines = append(lines, DescriptionStyle.Render(line))
			}
		}
	}

	return BarBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func renderField(in *argsbar.InputValue, focused bool) string {
	param := in.Param()

	marker := NoFocusMarker
	nameStyle := FieldNameStyle
	if focused {
		marker = lipgloss.NewStyle().Foreground(PrimaryColor).Render(FocusMarker)
		nameStyle = FocusedFieldNameStyle
	}

	touched := UntouchedMarker
	if in.HasBeenTouched() {
		touched = TouchedMarker
	}

	name := param.Name()
	if param.Required() {
		name += RequiredMarker
	}

	parts := []string{
		marker,
		touched,
		nameStyle.Render(name),
		EncodingTagStyle.Render("[" + param.Encoding().String() + "]"),
		renderFieldValue(in, focused),
	}

	if in.HasBeenTouched() && param.Required() && in.Value() == "" {
		parts = append(parts, MissingStyle.Render("(required)"))
	}

	return strings.Join(parts, " ")
}

func renderFieldValue(in *argsbar.InputValue, focused bool) string {
	var value string
	switch {
	case in.Buffer() != "" && focused:
		value = FocusedBufferStyle.Render(in.Buffer())
	case in.Buffer() != "":
		value = BufferStyle.Render(in.Buffer())
	case in.Param().Default() != "":
		value = PlaceholderStyle.Render(in.Param().Default())
	}

	if focused {
		value += lipgloss.NewStyle().Foreground(PrimaryColor).Render(CursorMarker)
	}
	return value
}
