// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set or the
// terminal doesn't support colors, text-based decorations (backticks,
// quotes) are used instead.
//
//	ui.Code.Sprint("cenv use work")       // Commands and code
//	ui.Path.Sprint("~/.claude-envs/work") // File paths
//	ui.Success.Sprint("✓")                // Success indicators
//	ui.Error.Sprint("✗")                  // Error indicators
//	ui.Info.Sprint("→")                   // Informational hints
//	ui.Highlight.Sprint("work")           // User values
package ui
