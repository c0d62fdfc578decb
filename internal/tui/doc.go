// Package tui provides the terminal user interface for detour.
//
// It handles:
//   - Interactive prompts and selections (using survey)
//   - Structured logging and status reporting (Splog)
//   - Progress spinners around blocking git calls (using bubbletea)
//   - Terminal detection and color control
package tui
