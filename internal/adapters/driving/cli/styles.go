package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// outputStyles are the lipgloss styles used for terminal output.
type outputStyles struct {
	Title  lipgloss.Style
	Name   lipgloss.Style
	Meta   lipgloss.Style
	Score  lipgloss.Style
	ErrMsg lipgloss.Style
}

// styledOutput reports whether stdout is a terminal worth styling.
func styledOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newOutputStyles returns colored styles on a terminal and plain
// passthrough styles when output is piped.
func newOutputStyles() outputStyles {
	if !styledOutput() {
		plain := lipgloss.NewStyle()
		return outputStyles{Title: plain, Name: plain, Meta: plain, Score: plain, ErrMsg: plain}
	}

	return outputStyles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Name:   lipgloss.NewStyle().Bold(true),
		Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Score:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		ErrMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}
