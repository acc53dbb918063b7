package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	warnFg    = lipgloss.Color("#F59E0B")
	errorFg   = lipgloss.Color("#EF4444")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle  = lipgloss.NewStyle().Foreground(hoverFg)
)

func noticeStyle(k noticeKind) lipgloss.Style {
	switch k {
	case noticeWarn:
		return boxStyle.BorderForeground(warnFg)
	case noticeError:
		return boxStyle.BorderForeground(errorFg)
	default:
		return boxStyle.BorderForeground(accentFg)
	}
}
