package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/argsbar/internal/argsbar"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Detail is one key-value line of a result box. Details render in the
// order given.
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type            ResultType // Success, failure, or warning
	Title           string     // e.g., "Arguments collected"
	Details         []Detail   // Key-value details to display
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details []Detail) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details []Detail) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := ClampWidth(r.Width)

	var (
		titleStyle lipgloss.Style
		box        lipgloss.Style
		heading    string
	)
	switch r.Type {
	case ResultFailure:
		titleStyle, box = ErrorTitleStyle, ErrorBoxStyle(width)
		heading = FailureMarker + "  FAILED"
	case ResultWarning:
		titleStyle, box = WarningTitleStyle, WarningBoxStyle(width)
		heading = "⚠  WARNING"
	default:
		titleStyle, box = SuccessTitleStyle, SuccessBoxStyle(width)
		heading = SuccessMarker + "  SUCCESS"
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, titleStyle.Render(fmt.Sprintf("   %s  ─  %s", heading, r.Title)))
	lines = append(lines, "")

	for _, d := range r.Details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()))
		lines = append(lines, "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width))
		lines = append(lines, "")
	}

	return box.Render(strings.Join(lines, "\n"))
}

// renderTroubleshootingBox renders the inner troubleshooting box
func (r *Result) renderTroubleshootingBox(width int) string {
	var lines []string
	lines = append(lines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
	lines = append(lines, "")
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}
	return TroubleshootingBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}

// summaryDetails lists the fields of bar in order, with defaults applied.
func summaryDetails(bar *argsbar.Bar) []Detail {
	var details []Detail
	for _, f := range bar.Fields() {
		value := f.Value
		if value == "" {
			value = "(empty)"
		}
		details = append(details, Detail{Key: f.Name, Value: value})
	}
	return details
}

// summaryResult builds the success box, or a warning box naming the
// required fields that are still missing.
func summaryResult(bar *argsbar.Bar) *Result {
	details := summaryDetails(bar)
	missing := bar.MissingRequired()
	if len(missing) == 0 {
		return NewSuccessResult("Arguments collected", details)
	}
	result := NewWarningResult("Required arguments missing", details)
	result.AddDetail("missing", strings.Join(missing, ", "))
	return result
}

// RenderSummary renders the values collected by bar, in field order, with
// defaults applied. Missing required fields turn the box into a warning.
func RenderSummary(bar *argsbar.Bar, width int) string {
	return summaryResult(bar).SetWidth(width).Render()
}

// RenderRejection renders the failure box for text that an encoding refused.
func RenderRejection(enc argsbar.Encoding, text string, err error, width int) string {
	return NewFailureResult(
		fmt.Sprintf("%q is not a valid %s prefix", text, enc),
		err,
		EncodingHints(enc),
	).SetWidth(width).Render()
}

// EncodingHints describes what an encoding accepts.
func EncodingHints(enc argsbar.Encoding) []string {
	switch enc {
	case argsbar.EncodingInteger:
		return []string{"Only the digits 0-9 are accepted", "Signs and separators are not permitted"}
	case argsbar.EncodingNumeric:
		return []string{"Digits 0-9 are accepted", "At most one decimal point '.' is allowed"}
	case argsbar.EncodingBoolean:
		return []string{"Spell out exactly \"true\" or \"false\" in lowercase", "Nothing may follow a completed literal"}
	default:
		return []string{"Any character is accepted"}
	}
}
