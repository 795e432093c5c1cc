package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleNote = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleGood = lipgloss.NewStyle().Foreground(colorSuccess)
	styleFair = lipgloss.NewStyle().Foreground(colorWarning)
	stylePoor = lipgloss.NewStyle().Foreground(colorError)
)

var numberPrinter = message.NewPrinter(language.English)

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func formatScore(score float64) string {
	return numberPrinter.Sprintf("%.2f", score)
}

// scoreStyle colours a score by band.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.7:
		return styleGood
	case score >= 0.4:
		return styleFair
	default:
		return stylePoor
	}
}

func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, styleHeading.Render(title)) //nolint:errcheck
}

// printNote writes a soft-failure note. Notes go to stderr so stdout stays pipeable.
func printNote(w io.Writer, note string) {
	fmt.Fprintln(w, styleNote.Render("note: "+note)) //nolint:errcheck
}
