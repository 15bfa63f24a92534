package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/argsbar/internal/argsbar"
)

// Printer provides methods for printing UI components to a writer.
// CLI subcommands write all styled output through one.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// WithWidth overrides the detected terminal width. Non-positive widths are
// ignored.
func (p *Printer) WithWidth(width int) *Printer {
	if width > 0 {
		p.width = ClampWidth(width)
	}
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a header box
func (p *Printer) PrintHeader(title, source string, details []Detail) {
	p.Println(NewHeader(title, source, details).SetWidth(p.width).Render())
}

// PrintBar prints a static rendering of bar
func (p *Printer) PrintBar(bar *argsbar.Bar, showDescriptions bool) {
	p.Println(RenderBar(bar, RenderOptions{Width: p.width, ShowDescriptions: showDescriptions}))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Detail) {
	p.Println(NewSuccessResult(title, details).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details []Detail) {
	p.Println(NewWarningResult(title, details).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// PrintSummary prints the collected values of bar as a success box, or as
// a warning when required fields are missing.
func (p *Printer) PrintSummary(bar *argsbar.Bar) {
	result := summaryResult(bar)
	if result.Type == ResultWarning {
		p.PrintWarning(result.Title, result.Details)
		return
	}
	p.PrintSuccess(result.Title, result.Details)
}

// PrintRejection prints the failure box for text rejected by enc
func (p *Printer) PrintRejection(enc argsbar.Encoding, text string, err error) {
	p.Println(RenderRejection(enc, text, err, p.width))
}
