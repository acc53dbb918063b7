package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"blueprints/internal/blueprint"
	"blueprints/internal/editor"
	"blueprints/internal/export"
	"blueprints/internal/render"
)

type listLoadedMsg struct {
	seq        uint64
	author     string
	blueprints []blueprint.Blueprint
	err        error
}

type savedMsg struct {
	author string
	name   string
	points int
	err    error
}

type createdMsg struct {
	author string
	name   string
	err    error
}

type exportedMsg struct {
	format export.Format
	path   string
	err    error
}

func withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}

func loadCmd(b Backend, timeout time.Duration, seq uint64, author string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		bps, err := b.List(ctx, author)
		return listLoadedMsg{seq: seq, author: author, blueprints: bps, err: err}
	}
}

func saveCmd(b Backend, timeout time.Duration, req editor.UpdateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		err := b.Update(ctx, req.Author, req.Name, req.Points)
		return savedMsg{author: req.Author, name: req.Name, points: len(req.Points), err: err}
	}
}

func createCmd(b Backend, timeout time.Duration, bp blueprint.Blueprint) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		err := b.Create(ctx, bp)
		return createdMsg{author: bp.Author, name: bp.Name, err: err}
	}
}

func exportCmd(dir, author, name string, f export.Format, cmds []render.Command) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(dir, author, name, f, cmds)
		return exportedMsg{format: f, path: path, err: err}
	}
}
