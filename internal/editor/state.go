// Package editor holds the blueprint editing state and the operations that
// move it. It performs no I/O: callers issue the network requests it
// prepares and feed the responses back.
package editor

import (
	"errors"
	"strings"

	"blueprints/internal/blueprint"
)

var (
	ErrNoSelection = errors.New("no blueprint is open")
	ErrNoPoints    = errors.New("blueprint has no points to save")
	ErrNoAuthor    = errors.New("author is empty")
	ErrEmptyName   = errors.New("blueprint name is empty")
)

// State is the editor state for one session.
//
// Blueprints and TotalPoints only change when a list response is applied.
// Working is the editable copy of Selected's points and never shares
// memory with it.
type State struct {
	Author      string
	Blueprints  []blueprint.Summary
	TotalPoints int
	Selected    *blueprint.Summary
	Working     []blueprint.Point

	issued  uint64
	settled uint64 // newest request that completed, success or failure
}

// UpdateRequest is everything needed to persist the open blueprint.
type UpdateRequest struct {
	Author string
	Name   string
	Points []blueprint.Point
}

// BeginLoad tags a new list request and returns its sequence number.
func (s *State) BeginLoad() uint64 {
	s.issued++
	return s.issued
}

// Stale reports whether request seq has been overtaken by a newer request
// that already completed.
func (s *State) Stale(seq uint64) bool {
	return seq <= s.settled
}

// FailList records that request seq failed. A failure still settles every
// older request, so their late responses are dropped. It returns false when
// seq itself is stale.
func (s *State) FailList(seq uint64) bool {
	if s.Stale(seq) {
		return false
	}
	s.settled = seq
	return true
}

// ApplyList replaces the list with a successful response for request seq.
// Out-of-order responses are dropped and ApplyList returns false. The open
// blueprint and its working points are left alone.
func (s *State) ApplyList(seq uint64, bps []blueprint.Blueprint) bool {
	if s.Stale(seq) {
		return false
	}
	s.settled = seq
	s.Blueprints = blueprint.Summarize(bps)
	s.TotalPoints = blueprint.TotalPoints(s.Blueprints)
	return true
}

// Open selects summary and loads a fresh copy of its points, discarding
// any unsaved edits.
func (s *State) Open(summary blueprint.Summary) {
	sel := summary
	sel.Points = blueprint.ClonePoints(summary.Points)
	s.Selected = &sel
	s.Working = blueprint.ClonePoints(summary.Points)
}

// Close deselects the open blueprint and drops its working points.
func (s *State) Close() {
	s.Selected = nil
	s.Working = nil
}

// AddPoint appends p to the working points.
func (s *State) AddPoint(p blueprint.Point) error {
	if s.Selected == nil {
		return ErrNoSelection
	}
	s.Working = append(s.Working, p)
	return nil
}

// PrepareSave builds the update for the open blueprint. An empty working
// set is refused so an existing shape is never overwritten with nothing.
func (s *State) PrepareSave() (UpdateRequest, error) {
	if s.Selected == nil {
		return UpdateRequest{}, ErrNoSelection
	}
	if len(s.Working) == 0 {
		return UpdateRequest{}, ErrNoPoints
	}
	return UpdateRequest{
		Author: s.Author,
		Name:   s.Selected.Name,
		Points: blueprint.ClonePoints(s.Working),
	}, nil
}

// CanCreate reports whether a new blueprint can be created.
func (s *State) CanCreate() bool {
	return s.Author != ""
}

// PrepareCreate builds an empty blueprint named name for the current author.
func (s *State) PrepareCreate(name string) (blueprint.Blueprint, error) {
	if !s.CanCreate() {
		return blueprint.Blueprint{}, ErrNoAuthor
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return blueprint.Blueprint{}, ErrEmptyName
	}
	return blueprint.Blueprint{
		Author: s.Author,
		Name:   name,
		Points: []blueprint.Point{},
	}, nil
}
