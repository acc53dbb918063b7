package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"blueprints/internal/blueprint"
	"blueprints/internal/editor"
	"blueprints/internal/export"
	"blueprints/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case listLoadedMsg:
		m.onListLoaded(msg)
	case savedMsg:
		cmd = m.onSaved(msg)
	case createdMsg:
		cmd = m.onCreated(msg)
	case exportedMsg:
		m.onExported(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	m.syncKeys()
	m.resize()
	return m, cmd
}

// fetch starts a list request for the current author.
func (m *Model) fetch() tea.Cmd {
	author := m.state.Author
	seq := m.state.BeginLoad()
	m.status = fmt.Sprintf("loading blueprints for %q", author)
	return loadCmd(m.backend, m.timeout, seq, author)
}

func (m *Model) onListLoaded(msg listLoadedMsg) {
	if msg.err != nil {
		if !m.state.FailList(msg.seq) {
			log.Printf("list blueprints author=%q seq=%d: stale failure ignored: %v", msg.author, msg.seq, msg.err)
			return
		}
		log.Printf("list blueprints author=%q: %v", msg.author, msg.err)
		m.status = "could not load blueprints: " + msg.err.Error()
		return
	}
	if !m.state.ApplyList(msg.seq, msg.blueprints) {
		log.Printf("list blueprints author=%q seq=%d: stale response dropped", msg.author, msg.seq)
		return
	}
	m.listAuthor = msg.author
	m.refreshTable()
	m.status = fmt.Sprintf("%d blueprints, %d points", len(m.state.Blueprints), m.state.TotalPoints)
}

func (m *Model) onSaved(msg savedMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("update blueprint author=%q name=%q: %v", msg.author, msg.name, msg.err)
		m.notify(noticeError, "Failed to save blueprint.", msg.err.Error())
		return nil
	}
	log.Printf("update blueprint author=%q name=%q points=%d: ok", msg.author, msg.name, msg.points)
	m.notify(noticeInfo, "Blueprint saved successfully!", fmt.Sprintf("%s now has %d points.", msg.name, msg.points))
	return m.fetch()
}

func (m *Model) onCreated(msg createdMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("create blueprint author=%q name=%q: %v", msg.author, msg.name, msg.err)
		m.notify(noticeError, "Failed to create blueprint.", msg.err.Error())
		return nil
	}
	log.Printf("create blueprint author=%q name=%q: ok", msg.author, msg.name)
	m.notify(noticeInfo, "Blueprint created successfully!", fmt.Sprintf("%s is ready for points.", msg.name))
	return m.fetch()
}

func (m *Model) onExported(msg exportedMsg) {
	if msg.err != nil {
		log.Printf("export %s: %v", msg.format, msg.err)
		m.notify(noticeError, "Export failed.", msg.err.Error())
		return
	}
	m.status = fmt.Sprintf("exported %s to %s", msg.format, msg.path)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.modal {
	case modalNotice:
		// any key dismisses
		m.modal = modalNone
		return nil
	case modalCreate:
		return m.handleCreateDialog(msg)
	case modalImport:
		return m.handleImportDialog(msg)
	}
	if m.focus == focusAuthor {
		return m.handleAuthorKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m *Model) handleAuthorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.state.Author = m.author.Value()
		return m.fetch()
	case "tab", "esc":
		m.focus = focusTable
		m.author.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.author, cmd = m.author.Update(msg)
	m.state.Author = m.author.Value()
	return cmd
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusAuthor
		return m.author.Focus()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Fetch):
		return m.fetch()
	case key.Matches(msg, m.keys.Open):
		i := m.tbl.Cursor()
		if i < 0 || i >= len(m.state.Blueprints) {
			return nil
		}
		m.state.Open(m.state.Blueprints[i])
		m.redraw()
		m.status = fmt.Sprintf("opened %s (%d points)", m.state.Selected.Name, len(m.state.Working))
	case key.Matches(msg, m.keys.Close):
		m.state.Close()
		m.hovering = false
		m.redraw()
		m.status = "closed"
	case key.Matches(msg, m.keys.Create):
		return m.startCreate()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.ExportPNG):
		return m.export(export.FormatPNG)
	case key.Matches(msg, m.keys.ExportPDF):
		return m.export(export.FormatPDF)
	case key.Matches(msg, m.keys.CopyWKT):
		m.copyWKT()
	case key.Matches(msg, m.keys.Import):
		m.modal = modalImport
		m.ta.SetValue("")
		m.status = "paste mode"
		return m.ta.Focus()
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return cmd
	}
	return nil
}

// startCreate clears the surface and asks for a name without blocking.
func (m *Model) startCreate() tea.Cmd {
	if !m.state.CanCreate() {
		return nil
	}
	m.frame = render.Blank()
	m.modal = modalCreate
	m.nameInput.SetValue("")
	m.status = "name the new blueprint"
	return m.nameInput.Focus()
}

func (m *Model) handleCreateDialog(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		m.nameInput.Blur()
		m.status = "create cancelled"
		return nil
	case "enter":
		m.modal = modalNone
		m.nameInput.Blur()
		bp, err := m.state.PrepareCreate(m.nameInput.Value())
		if err != nil {
			m.status = "create cancelled: " + err.Error()
			return nil
		}
		m.status = fmt.Sprintf("creating %s", bp.Name)
		return createCmd(m.backend, m.timeout, bp)
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *Model) save() tea.Cmd {
	req, err := m.state.PrepareSave()
	switch {
	case errors.Is(err, editor.ErrNoPoints):
		log.Printf("update blueprint author=%q: %v", m.state.Author, err)
		m.notify(noticeWarn, "Nothing to save.", "Click on the canvas to add points first.")
		return nil
	case err != nil:
		m.status = err.Error()
		return nil
	}
	m.status = fmt.Sprintf("saving %s", req.Name)
	return saveCmd(m.backend, m.timeout, req)
}

func (m *Model) export(f export.Format) tea.Cmd {
	if m.state.Selected == nil {
		return nil
	}
	cmds := append([]render.Command(nil), m.frame...)
	m.status = fmt.Sprintf("exporting %s", f)
	return exportCmd(m.exportDir, m.state.Author, m.state.Selected.Name, f, cmds)
}

func (m *Model) copyWKT() {
	if m.state.Selected == nil {
		return
	}
	wkt, err := blueprint.FormatWKT(m.state.Working)
	if err != nil {
		m.notify(noticeWarn, "Nothing to copy.", "The blueprint has no points yet.")
		return
	}
	if err := m.clipboard(wkt); err != nil {
		log.Printf("copy wkt name=%q: %v", m.state.Selected.Name, err)
		m.notify(noticeError, "Copy failed.", err.Error())
		return
	}
	m.status = fmt.Sprintf("copied WKT (%d points)", len(m.state.Working))
}

func (m *Model) handleImportDialog(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		m.ta.Blur()
		m.status = "edit mode"
		return nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return nil
		}
		pts, err := blueprint.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return nil
		}
		for _, p := range pts {
			if p.X < 0 || p.Y < 0 || p.X >= render.SurfaceWidth || p.Y >= render.SurfaceHeight {
				m.status = fmt.Sprintf("wkt error: (%g, %g) is outside the %dx%d surface", p.X, p.Y, render.SurfaceWidth, render.SurfaceHeight)
				return nil
			}
		}
		for _, p := range pts {
			if err := m.state.AddPoint(p); err != nil {
				m.redraw()
				m.modal = modalNone
				m.ta.Blur()
				m.status = err.Error()
				return nil
			}
		}
		m.redraw()
		m.modal = modalNone
		m.ta.Blur()
		m.status = fmt.Sprintf("appended %d points", len(pts))
		return nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.modal != modalNone || m.state.Selected == nil {
		m.hovering = false
		return
	}
	p, ok := m.layout().canvas.ToSurface(msg.X, msg.Y)
	m.hovering, m.hover = ok, p
	if !ok {
		return
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if err := m.state.AddPoint(p); err != nil {
			m.status = err.Error()
			return
		}
		m.redraw()
		m.status = fmt.Sprintf("point %d at (%g, %g)", len(m.state.Working), p.X, p.Y)
	}
}
