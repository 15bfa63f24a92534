package ui

import (
	"strings"
	"testing"

	"github.com/muurk/argsbar/internal/argsbar"
)

func sampleBar() *argsbar.Bar {
	return argsbar.NewBar([]argsbar.InputParameter{
		argsbar.NewInputParameter("name",
			argsbar.WithRequired(true),
			argsbar.WithDescription("Name of the deployment, shown in dashboards and alerts"),
		),
		argsbar.NewInputParameter("workers",
			argsbar.WithEncoding(argsbar.EncodingInteger),
			argsbar.WithDefault("4"),
		),
	})
}

func TestRenderBar(t *testing.T) {
	bar := sampleBar()
	bar.ToggleNext()
	bar.ActiveInput().PushChar('w')

	out := RenderBar(bar, RenderOptions{Width: 80})

	for _, want := range []string{"name" + RequiredMarker, "workers", "[string]", "[integer]", "w", "4", FocusMarker, TouchedMarker, CursorMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderBar() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "dashboards") {
		t.Errorf("RenderBar() rendered a description without ShowDescriptions")
	}
}

func TestRenderBarDescriptions(t *testing.T) {
	out := RenderBar(sampleBar(), RenderOptions{Width: 60, ShowDescriptions: true})
	if !strings.Contains(out, "dashboards") {
		t.Errorf("RenderBar() missing description in:\n%s", out)
	}
	if strings.Contains(out, FocusMarker) {
		t.Errorf("RenderBar() drew a focus marker on an unfocused bar")
	}
}

func TestRenderBarRequiredMissing(t *testing.T) {
	bar := sampleBar()
	if out := RenderBar(bar, RenderOptions{Width: 80}); strings.Contains(out, "(required)") {
		t.Errorf("untouched field flagged as missing:\n%s", out)
	}

	bar.ToggleNext()
	bar.ActiveInput().Touch()
	if out := RenderBar(bar, RenderOptions{Width: 80}); !strings.Contains(out, "(required)") {
		t.Errorf("touched empty required field not flagged:\n%s", out)
	}
}

func TestRenderBarEmpty(t *testing.T) {
	out := RenderBar(argsbar.NewBar(nil), RenderOptions{Width: 80})
	if !strings.Contains(out, "No parameters defined") {
		t.Errorf("RenderBar(empty) = %q", out)
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, MinTerminalWidth},
		{MinTerminalWidth - 1, MinTerminalWidth},
		{80, 80},
		{MaxContentWidth + 50, MaxContentWidth},
	}

	for _, tt := range tests {
		if got := ClampWidth(tt.width); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
