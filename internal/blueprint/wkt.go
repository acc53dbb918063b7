package blueprint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FormatWKT renders points as a WKT POLYGON with the ring closed back to
// the first vertex, e.g. POLYGON((0 0, 10 0, 10 10, 0 0)).
func FormatWKT(pts []Point) (string, error) {
	if len(pts) == 0 {
		return "", errors.New("wkt: no points")
	}
	ring := pts
	if pts[0] != pts[len(pts)-1] || len(pts) == 1 {
		ring = append(ClonePoints(pts), pts[0])
	}
	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, p := range ring {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	b.WriteString("))")
	return b.String(), nil
}

// ParseWKT reads the outer ring of a WKT POLYGON, or the vertices of a
// LINESTRING/MULTIPOINT, back into points. A closing vertex equal to the
// first one is dropped. Coordinates are rounded to whole pixels.
func ParseWKT(wkt string) ([]Point, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var block string
	closed := false
	switch {
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.Index(s, ")")
		if i < 0 || j <= i+1 {
			return nil, errors.New("wkt polygon: invalid")
		}
		block = s[i+2 : j]
		closed = true
	case strings.HasPrefix(up, "LINESTRING"), strings.HasPrefix(up, "MULTIPOINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt linestring: invalid")
		}
		block = strings.NewReplacer("(", "", ")", "").Replace(s[i+1 : j])
	default:
		return nil, errors.New("unsupported wkt type")
	}
	var pts []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return nil, fmt.Errorf("wkt: bad coordinate %q", strings.TrimSpace(tup))
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("wkt: bad coordinate %q: %w", strings.TrimSpace(tup), err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("wkt: bad coordinate %q: %w", strings.TrimSpace(tup), err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return pts, nil
}
