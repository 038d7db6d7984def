package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorPeach   lipgloss.Color = "#fab387"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorAccent)
	cursorStyle     = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	departmentStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	semesterStyle   = lipgloss.NewStyle().Foreground(colorPeach)
	subjectStyle    = lipgloss.NewStyle().Foreground(colorText)
	noticeStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError)
	statusStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)
