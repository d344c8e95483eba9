// Package console styles the CLI output.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	stepStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))
)

// Banner prints the boxed welcome banner.
func Banner() {
	banner := titleStyle.Render("🎬 Product Review Video Automation 🎬") + "\n\n" +
		"Automatically generate YouTube product review videos\n" +
		"with AI-powered scripts, voice-over, and video editing"
	fmt.Println(boxStyle.Render(banner))
}

// Step prints a bold stage header.
func Step(format string, args ...interface{}) {
	fmt.Println(stepStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a green checkmarked line.
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("  ✓ " + fmt.Sprintf(format, args...)))
}

// Warn prints a yellow warning line.
func Warn(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Dim prints a muted line.
func Dim(format string, args ...interface{}) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}

// Table prints aligned label/value rows.
func Table(title string, rows [][2]string) {
	if title != "" {
		fmt.Println(titleStyle.Render(title))
	}
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}
	for _, row := range rows {
		fmt.Printf("  %s  %s\n", labelStyle.Render(fmt.Sprintf("%-*s", width, row[0])), row[1])
	}
}

// Panel prints content inside a rounded border with an optional title.
func Panel(title, content string) {
	body := strings.TrimRight(content, "\n")
	if title != "" {
		body = titleStyle.Render(title) + "\n\n" + body
	}
	fmt.Println(boxStyle.Render(body))
}
