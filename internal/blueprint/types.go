package blueprint

// Point is a position on the drawing surface, in surface pixels. Stored
// blueprints may carry fractional coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Blueprint is a named polygon owned by an author. Point order is the path order.
type Blueprint struct {
	Author string  `json:"author,omitempty"`
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Summary is the list view of a blueprint. It keeps the full points so
// opening a row needs no second fetch.
type Summary struct {
	Name       string
	PointCount int
	Points     []Point
}

// Summarize converts a list response into rows, preserving order.
func Summarize(bps []Blueprint) []Summary {
	out := make([]Summary, 0, len(bps))
	for _, bp := range bps {
		out = append(out, Summary{
			Name:       bp.Name,
			PointCount: len(bp.Points),
			Points:     bp.Points,
		})
	}
	return out
}

// TotalPoints sums PointCount over rows.
func TotalPoints(rows []Summary) int {
	total := 0
	for _, r := range rows {
		total += r.PointCount
	}
	return total
}

// ClonePoints returns an independent copy of pts. The result is never nil,
// so it encodes as [] rather than null.
func ClonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
