package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blueprints/internal/blueprint"
	"blueprints/internal/editor"
	"blueprints/internal/render"
)

// Backend is the blueprint store the editor talks to. *api.Client
// implements it.
type Backend interface {
	List(ctx context.Context, author string) ([]blueprint.Blueprint, error)
	Create(ctx context.Context, bp blueprint.Blueprint) error
	Update(ctx context.Context, author, name string, points []blueprint.Point) error
}

// Config holds everything New needs to build a Model.
type Config struct {
	Backend Backend
	// Author pre-fills the author input and triggers a fetch on start.
	Author string
	// Timeout bounds each backend call. Zero means no limit.
	Timeout time.Duration
	// ExportDir receives PNG and PDF exports.
	ExportDir string
	// Clipboard replaces the system clipboard, mainly in tests.
	Clipboard func(string) error
}

type focus int

const (
	focusAuthor focus = iota
	focusTable
)

type modal int

const (
	modalNone modal = iota
	modalCreate
	modalImport
	modalNotice
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarn
	noticeError
)

type notice struct {
	kind  noticeKind
	title string
	body  string
}

type Model struct {
	width  int
	height int

	helpVisible bool
	status      string

	backend   Backend
	timeout   time.Duration
	exportDir string
	clipboard func(string) error

	state editor.State
	// listAuthor is the author whose list is currently shown.
	listAuthor string
	// frame is the command list last drawn on the surface.
	frame []render.Command

	focus  focus
	author textinput.Model
	tbl    table.Model

	// dialogs
	modal     modal
	nameInput textinput.Model
	ta        textarea.Model
	notice    notice

	// hover state
	hovering bool
	hover    blueprint.Point

	keys keyMap
	help help.Model

	initCmd tea.Cmd
}

func New(cfg Config) Model {
	m := Model{
		helpVisible: true,
		status:      "blueprints ready",
		backend:     cfg.Backend,
		timeout:     cfg.Timeout,
		exportDir:   cfg.ExportDir,
		clipboard:   cfg.Clipboard,
		keys:        newKeyMap(),
		help:        help.New(),
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.exportDir == "" {
		m.exportDir = "."
	}
	// author input
	m.author = textinput.New()
	m.author.Placeholder = "Author"
	m.author.Prompt = "Author: "
	m.author.CharLimit = 64
	m.author.Width = 24
	m.author.SetValue(cfg.Author)
	m.state.Author = cfg.Author
	// name dialog
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "New blueprint name"
	m.nameInput.CharLimit = 64
	m.nameInput.Width = 32
	// WKT import
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT (POLYGON, LINESTRING, MULTIPOINT). Enter appends the points; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// results table
	m.tbl = table.New(
		table.WithColumns(columns(40)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.frame = render.Blank()

	if cfg.Author != "" {
		m.focus = focusTable
		m.initCmd = m.fetch()
	} else {
		m.author.Focus()
	}
	m.syncKeys()
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initCmd)
}

func columns(width int) []table.Column {
	count := 8
	name := max(8, width-count-4)
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Points", Width: count},
	}
}

// syncKeys enables only the actions reachable from the current state.
func (m *Model) syncKeys() {
	open := m.state.Selected != nil
	m.keys.Create.SetEnabled(m.state.CanCreate())
	m.keys.Open.SetEnabled(len(m.state.Blueprints) > 0)
	m.keys.Save.SetEnabled(open)
	m.keys.Close.SetEnabled(open)
	m.keys.ExportPNG.SetEnabled(open)
	m.keys.ExportPDF.SetEnabled(open)
	m.keys.CopyWKT.SetEnabled(open)
	m.keys.Import.SetEnabled(open)
}

func (m *Model) redraw() {
	m.frame = render.Render(m.state.Working)
}

func (m *Model) notify(kind noticeKind, title, body string) {
	m.notice = notice{kind: kind, title: title, body: body}
	m.modal = modalNotice
	m.status = title
}

func (m *Model) refreshTable() {
	rows := make([]table.Row, 0, len(m.state.Blueprints))
	for _, s := range m.state.Blueprints {
		rows = append(rows, table.Row{s.Name, strconv.Itoa(s.PointCount)})
	}
	m.tbl.SetRows(rows)
	if c := m.tbl.Cursor(); c >= len(rows) {
		m.tbl.SetCursor(max(0, len(rows)-1))
	}
}
