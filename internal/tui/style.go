package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	ChangedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

const dividerWidth = 50

func Header(text string) string {
	return HeaderStyle.Render(text)
}

func Success(text string) string {
	return SuccessStyle.Render(text)
}

func Warning(text string) string {
	return WarningStyle.Render(text)
}

func Error(text string) string {
	return ErrorStyle.Render(text)
}

func Changed(text string) string {
	return ChangedStyle.Render(text)
}

func Muted(text string) string {
	return MutedStyle.Render(text)
}

func Key(text string) string {
	return KeyStyle.Render(text)
}

func Label(text string) string {
	return LabelStyle.Render(text)
}

func Divider() string {
	return Muted(strings.Repeat("─", dividerWidth))
}
