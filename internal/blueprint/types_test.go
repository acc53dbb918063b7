package blueprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeKeepsOrderAndCounts(t *testing.T) {
	bps := []Blueprint{
		{Name: "square", Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		{Name: "empty"},
		{Name: "line", Points: []Point{{1, 1}, {2, 2}}},
	}
	rows := Summarize(bps)
	require.Len(t, rows, 3)
	assert.Equal(t, "square", rows[0].Name)
	assert.Equal(t, 4, rows[0].PointCount)
	assert.Equal(t, 0, rows[1].PointCount)
	assert.Equal(t, 2, rows[2].PointCount)
	assert.Equal(t, 6, TotalPoints(rows))
}

func TestTotalPointsEmpty(t *testing.T) {
	assert.Equal(t, 0, TotalPoints(nil))
	assert.Equal(t, 0, TotalPoints(Summarize(nil)))
}

func TestClonePointsIsIndependent(t *testing.T) {
	src := []Point{{1, 2}, {3, 4}}
	dst := ClonePoints(src)
	dst[0].X = 99
	dst = append(dst, Point{5, 6})
	assert.Equal(t, 1.0, src[0].X)
	assert.Len(t, src, 2)

	empty := ClonePoints(nil)
	require.NotNil(t, empty)
	b, err := json.Marshal(Blueprint{Author: "alice", Name: "new", Points: empty})
	require.NoError(t, err)
	assert.JSONEq(t, `{"author":"alice","name":"new","points":[]}`, string(b))
}
