package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprints/internal/blueprint"
)

func squarePoints() []blueprint.Point {
	return []blueprint.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

func loaded(t *testing.T, bps ...blueprint.Blueprint) *State {
	t.Helper()
	s := &State{Author: "alice"}
	require.True(t, s.ApplyList(s.BeginLoad(), bps))
	return s
}

func TestApplyListReplacesAndTotals(t *testing.T) {
	s := loaded(t,
		blueprint.Blueprint{Name: "square", Points: squarePoints()},
		blueprint.Blueprint{Name: "tri", Points: []blueprint.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}},
	)
	assert.Len(t, s.Blueprints, 2)
	assert.Equal(t, 7, s.TotalPoints)

	require.True(t, s.ApplyList(s.BeginLoad(), nil))
	assert.Empty(t, s.Blueprints)
	assert.Equal(t, 0, s.TotalPoints)
}

func TestApplyListKeepsSelection(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "square", Points: squarePoints()})
	s.Open(s.Blueprints[0])
	require.NoError(t, s.AddPoint(blueprint.Point{X: 5, Y: 5}))

	require.True(t, s.ApplyList(s.BeginLoad(), []blueprint.Blueprint{{Name: "other"}}))
	require.NotNil(t, s.Selected)
	assert.Equal(t, "square", s.Selected.Name)
	assert.Len(t, s.Working, 5)
	assert.Equal(t, 0, s.TotalPoints)
}

func TestApplyListDropsOutOfOrderResponses(t *testing.T) {
	s := &State{Author: "alice"}
	first := s.BeginLoad()
	second := s.BeginLoad()

	require.True(t, s.ApplyList(second, []blueprint.Blueprint{{Name: "new", Points: squarePoints()}}))
	assert.True(t, s.Stale(first))
	assert.False(t, s.ApplyList(first, []blueprint.Blueprint{{Name: "old"}}))
	require.Len(t, s.Blueprints, 1)
	assert.Equal(t, "new", s.Blueprints[0].Name)
	assert.Equal(t, 4, s.TotalPoints)
}

func TestFailedNewerRequestSettlesOlder(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "kept", Points: squarePoints()})
	alice := s.BeginLoad()
	bob := s.BeginLoad()

	assert.True(t, s.FailList(bob))
	assert.True(t, s.Stale(alice))
	assert.False(t, s.ApplyList(alice, []blueprint.Blueprint{{Name: "late"}}))
	assert.False(t, s.FailList(alice))
	require.Len(t, s.Blueprints, 1)
	assert.Equal(t, "kept", s.Blueprints[0].Name)
	assert.Equal(t, 4, s.TotalPoints)

	assert.True(t, s.ApplyList(s.BeginLoad(), nil))
	assert.Empty(t, s.Blueprints)
}

func TestApplyListInOrderResponses(t *testing.T) {
	s := &State{}
	first := s.BeginLoad()
	second := s.BeginLoad()
	assert.True(t, s.ApplyList(first, []blueprint.Blueprint{{Name: "a"}}))
	assert.True(t, s.ApplyList(second, []blueprint.Blueprint{{Name: "b"}}))
	assert.Equal(t, "b", s.Blueprints[0].Name)
}

func TestOpenCopiesPoints(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "square", Points: squarePoints()})
	s.Open(s.Blueprints[0])
	assert.Equal(t, squarePoints(), s.Working)

	require.NoError(t, s.AddPoint(blueprint.Point{X: 5, Y: 5}))
	s.Working[0] = blueprint.Point{X: 99, Y: 99}
	assert.Len(t, s.Blueprints[0].Points, 4)
	assert.Equal(t, blueprint.Point{}, s.Blueprints[0].Points[0])
	assert.Len(t, s.Selected.Points, 4)
}

func TestOpenDiscardsUnsavedEdits(t *testing.T) {
	tri := []blueprint.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}
	s := loaded(t,
		blueprint.Blueprint{Name: "a", Points: squarePoints()},
		blueprint.Blueprint{Name: "b", Points: tri},
	)
	s.Open(s.Blueprints[0])
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddPoint(blueprint.Point{X: float64(40 + i), Y: 40}))
	}
	s.Open(s.Blueprints[1])
	assert.Equal(t, "b", s.Selected.Name)
	assert.Equal(t, tri, s.Working)

	s.Open(s.Blueprints[0])
	assert.Equal(t, squarePoints(), s.Working)
}

func TestAddPointAppendsInOrder(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "empty"})
	s.Open(s.Blueprints[0])
	var want []blueprint.Point
	for i := 0; i < 25; i++ {
		p := blueprint.Point{X: float64(i * 3), Y: float64(500 - i)}
		want = append(want, p)
		require.NoError(t, s.AddPoint(p))
		assert.Len(t, s.Working, i+1)
	}
	assert.Equal(t, want, s.Working)
}

func TestAddPointNeedsSelection(t *testing.T) {
	s := &State{}
	assert.ErrorIs(t, s.AddPoint(blueprint.Point{X: 1, Y: 1}), ErrNoSelection)
	assert.Empty(t, s.Working)
}

func TestPrepareSave(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "square", Points: squarePoints()})
	_, err := s.PrepareSave()
	assert.ErrorIs(t, err, ErrNoSelection)

	s.Open(s.Blueprints[0])
	require.NoError(t, s.AddPoint(blueprint.Point{X: 5, Y: 5}))
	req, err := s.PrepareSave()
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Author)
	assert.Equal(t, "square", req.Name)
	assert.Len(t, req.Points, 5)
	assert.Equal(t, blueprint.Point{X: 5, Y: 5}, req.Points[4])

	req.Points[0] = blueprint.Point{X: 1, Y: 1}
	assert.Equal(t, blueprint.Point{}, s.Working[0])
}

func TestPrepareSaveRefusesEmpty(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "blank"})
	before := s.Blueprints
	s.Open(s.Blueprints[0])
	_, err := s.PrepareSave()
	assert.ErrorIs(t, err, ErrNoPoints)
	assert.Equal(t, before, s.Blueprints)
	assert.Equal(t, 0, s.TotalPoints)
}

func TestPrepareCreate(t *testing.T) {
	s := &State{}
	assert.False(t, s.CanCreate())
	_, err := s.PrepareCreate("house")
	assert.ErrorIs(t, err, ErrNoAuthor)

	s.Author = "alice"
	assert.True(t, s.CanCreate())
	_, err = s.PrepareCreate("   ")
	assert.ErrorIs(t, err, ErrEmptyName)

	bp, err := s.PrepareCreate("  house ")
	require.NoError(t, err)
	assert.Equal(t, blueprint.Blueprint{Author: "alice", Name: "house", Points: []blueprint.Point{}}, bp)
	assert.Empty(t, s.Blueprints)
}

func TestClose(t *testing.T) {
	s := loaded(t, blueprint.Blueprint{Name: "square", Points: squarePoints()})
	s.Open(s.Blueprints[0])
	s.Close()
	assert.Nil(t, s.Selected)
	assert.Empty(t, s.Working)
	assert.ErrorIs(t, s.AddPoint(blueprint.Point{}), ErrNoSelection)
}
