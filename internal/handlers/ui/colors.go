package ui

import (
	"github.com/AntonioJCosta/minish/internal/core/domain/command"
	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Shape Colors
var (
	shapeColors = map[command.Kind]func(a ...any) string{
		command.Plain:      color.New(color.FgWhite).SprintFunc(),
		command.Background: color.New(color.FgBlue, color.Bold).SprintFunc(),
		command.Pipeline:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		command.Redirect:   color.New(color.FgYellow, color.Bold).SprintFunc(),
	}
)

// KindColor renders a shape kind in its color.
func KindColor(k command.Kind) string {
	if paint, ok := shapeColors[k]; ok {
		return paint(k.String())
	}
	return k.String()
}

// SetColorEnabled turns colored output on or off for the whole process.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}
