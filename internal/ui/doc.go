// Package ui holds the color themes and lipgloss styles shared by the CLI
// presenter, the usage text and the error handler.
package ui
