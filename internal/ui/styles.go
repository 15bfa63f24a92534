package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the args bar
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, focus marker
	SuccessColor = lipgloss.Color("#43BF6D") // Green - submitted values
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejections
	WarningColor = lipgloss.Color("#FFA500") // Orange - missing required fields
	MutedColor   = lipgloss.Color("#626262") // Gray - defaults, descriptions
	TextColor    = lipgloss.Color("#FFFFFF") // White - typed text
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
	NameColumnWidth  = 16  // Width of the field name column
)

// Shared styles
var (
	// HeaderTitleStyle is for the bar title (e.g., "ARGUMENTS")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the source line under the title
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for header detail keys (e.g., "Params:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for header detail values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// FieldNameStyle is for unfocused field names
	FieldNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(NameColumnWidth)

	// FocusedFieldNameStyle is for the focused field name
	FocusedFieldNameStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(NameColumnWidth)

	// EncodingTagStyle is for the "[integer]" tag after the name
	EncodingTagStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Width(11)

	// BufferStyle is for typed text
	BufferStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// FocusedBufferStyle underlines typed text in the focused field
	FocusedBufferStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Underline(true)

	// PlaceholderStyle is for defaults shown in empty fields
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// DescriptionStyle is for wrapped field descriptions
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(4)

	// MissingStyle marks a required field that has no value
	MissingStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// WarningTitleStyle is for the warning result title
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(NameColumnWidth + 3)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)
)

// Markers
const (
	FocusMarker     = "▸"
	NoFocusMarker   = " "
	TouchedMarker   = "●"
	UntouchedMarker = "·"
	RequiredMarker  = "*"
	SuccessMarker   = "✓"
	FailureMarker   = "✗"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return ClampWidth(width)
}

// ClampWidth limits width to [MinTerminalWidth, MaxContentWidth].
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// HeaderBorderStyle returns the border style for headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// BarBoxStyle returns the border style around the field list
func BarBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-2).
		Padding(0, 1)
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return resultBoxStyle(width, SuccessColor)
}

// WarningBoxStyle returns the border style for warning result boxes
func WarningBoxStyle(width int) lipgloss.Style {
	return resultBoxStyle(width, WarningColor)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return resultBoxStyle(width, ErrorColor)
}

func resultBoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2)
}

// TroubleshootingBoxStyle returns the border style for troubleshooting sections
func TroubleshootingBoxStyle(width int) lipgloss.Style {
	innerWidth := width - 12 // Indented within error box
	if innerWidth < 40 {
		innerWidth = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3)
}
