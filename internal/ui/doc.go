// Package ui renders argsbar state for the terminal.
//
// Everything here is a pure function of the model: RenderBar draws a
// *argsbar.Bar, RenderSummary draws the values it collected and
// RenderRejection explains why an encoding refused some text. The
// interactive program in internal/tui calls RenderBar from its View; the
// CLI subcommands print through a Printer.
//
// # Components
//
//   - Header: banner with a title, a source line and ordered details
//   - Bar: one line per field with focus, touched and required markers
//   - Result: success, warning or failure boxes with ordered details
//
// # Layout
//
// Widths are clamped to [MinTerminalWidth, MaxContentWidth]. Descriptions
// are word-wrapped to fit inside the bar box.
//
// # Logging Integration
//
// This package does not log. zap output is controlled by ARGSBAR_LOG_LEVEL
// and stays silent by default so that rendered output is not interleaved
// with log lines.
package ui
