package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmOverwrite warns that path already exists and asks for a yes/no
// answer on in. Only "y" or "yes" (any case) confirms; EOF or a read error
// counts as no.
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	p := NewPrinter(out)

	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render("   ⚠  WARNING  ─  File exists")

	lines := []string{
		"",
		titleLine,
		"",
		lipgloss.NewStyle().Foreground(TextColor).Render("   • " + path),
		lipgloss.NewStyle().Foreground(TextColor).Render("   • Its parameter definitions will be replaced"),
		"",
	}
	p.Println(WarningBoxStyle(p.Width()).Render(strings.Join(lines, "\n")))
	p.Newline()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	p.Print(promptStyle.Render("Overwrite? [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		p.Newline()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		p.Newline()
		return true
	}

	p.Newline()
	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	_, _ = fmt.Fprintln(out, cancelStyle.Render("  Operation cancelled."))
	return false
}
