package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"blueprints/internal/render"
)

const headerHeight = 1

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	width    int
	contentH int
	leftW    int
	tableH   int
	panel    bool
	canvas   render.Viewport
}

func (m Model) footerHeight() int {
	if m.helpVisible {
		return 2
	}
	return 1
}

func (m Model) layout() layout {
	l := layout{width: max(20, m.width)}
	l.contentH = max(8, m.height-headerHeight-m.footerHeight())
	l.panel = m.state.Selected != nil
	if l.panel {
		l.leftW = min(44, max(26, l.width/3))
	} else {
		l.leftW = min(l.width, 60)
	}
	// author, blank, heading ... total, create hint
	l.tableH = max(3, l.contentH-6)
	if l.panel {
		// left column, one space gap, then the bordered canvas under a title line
		availW := l.width - l.leftW - 1 - 2
		availRows := l.contentH - 1 - 2 - 1
		rows := max(1, min(availRows, availW/2))
		l.canvas = render.Viewport{
			OriginX: l.leftW + 1 + 1,
			OriginY: headerHeight + 1 + 1,
			Cols:    rows * 2,
			Rows:    rows,
			Width:   render.SurfaceWidth,
			Height:  render.SurfaceHeight,
		}
	}
	return l
}

func (m *Model) resize() {
	l := m.layout()
	m.tbl.SetColumns(columns(l.leftW))
	m.tbl.SetWidth(l.leftW)
	m.tbl.SetHeight(l.tableH)
	m.ta.SetWidth(min(60, max(20, l.width-8)))
}

func (m Model) View() string {
	l := m.layout()
	header := titleStyle.Width(l.width).MaxHeight(1).Render(" blueprints ")

	var body string
	switch {
	case m.modal != modalNone:
		body = lipgloss.Place(l.width, l.contentH, lipgloss.Center, lipgloss.Center, m.dialogView())
	case l.panel:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.listView(l), " ", m.panelView(l))
	default:
		body = m.listView(l)
	}
	body = lipgloss.NewStyle().Width(l.width).Height(l.contentH).MaxHeight(l.contentH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView(l))
}

func (m Model) listView(l layout) string {
	heading := "No author selected"
	if m.listAuthor != "" {
		heading = m.listAuthor + "'s blueprints:"
	}
	parts := []string{
		m.author.View(),
		"",
		titleStyle.Render(heading),
		m.tbl.View(),
		fmt.Sprintf("Total user points: %d", m.state.TotalPoints),
	}
	if m.state.CanCreate() {
		parts = append(parts, dimStyle.Render("n  create new blueprint"))
	}
	return appStyle.Width(l.leftW).MaxHeight(l.contentH).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) panelView(l layout) string {
	title := titleStyle.MaxWidth(l.canvas.Cols + 2).Render("Current blueprint: " + m.state.Selected.Name)
	canvas := canvasStyle.Render(m.canvasView(l.canvas))
	hint := dimStyle.MaxWidth(l.canvas.Cols + 2).Render(fmt.Sprintf("%d points  s save  esc close", len(m.state.Working)))
	return lipgloss.JoinVertical(lipgloss.Left, title, canvas, hint)
}

func (m Model) canvasView(vp render.Viewport) string {
	c := render.NewCanvas(vp.Cols, vp.Rows, vp.Width, vp.Height)
	if err := render.Replay(m.frame, c); err != nil {
		log.Printf("render: %v", err)
	}
	lines := c.Lines()
	if m.hovering {
		sx, sy := vp.FromSurface(m.hover)
		cx, cy := sx-vp.OriginX, sy-vp.OriginY
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("+") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) dialogView() string {
	switch m.modal {
	case modalCreate:
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New blueprint"),
			"",
			m.nameInput.View(),
			"",
			dimStyle.Render("enter create  esc cancel"),
		))
	case modalImport:
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Append points from WKT"),
			m.ta.View(),
		))
	case modalNotice:
		lines := []string{titleStyle.Render(m.notice.title)}
		if m.notice.body != "" {
			lines = append(lines, "", m.notice.body)
		}
		lines = append(lines, "", dimStyle.Render("press any key"))
		return noticeStyle(m.notice.kind).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return ""
}

func (m Model) footerView(l layout) string {
	status := m.status
	if m.hovering {
		status += dimStyle.Render(fmt.Sprintf("  x=%g y=%g", m.hover.X, m.hover.Y))
	}
	status = dimStyle.Width(l.width).MaxHeight(1).Render(status)
	if !m.helpVisible {
		return status
	}
	h := m.help
	h.Width = l.width
	return lipgloss.JoinVertical(lipgloss.Left, status, h.View(m.keys))
}
