package render

import "blueprints/internal/blueprint"

// Viewport places the drawing surface on screen: a Cols×Rows block of
// cells whose top-left cell is (OriginX, OriginY), showing a surface of
// Width×Height pixels.
type Viewport struct {
	OriginX, OriginY int
	Cols, Rows       int
	Width, Height    int
}

// Contains reports whether the screen cell lies on the surface.
func (v Viewport) Contains(screenX, screenY int) bool {
	lx, ly := screenX-v.OriginX, screenY-v.OriginY
	return v.Cols > 0 && v.Rows > 0 && lx >= 0 && ly >= 0 && lx < v.Cols && ly < v.Rows
}

// ToSurface translates a pointer position into surface-local pixels: the
// surface's on-screen origin is subtracted, then the cell centre is scaled
// to surface pixels. Positions off the surface report false.
func (v Viewport) ToSurface(screenX, screenY int) (blueprint.Point, bool) {
	if !v.Contains(screenX, screenY) {
		return blueprint.Point{}, false
	}
	lx, ly := screenX-v.OriginX, screenY-v.OriginY
	x := int((float64(lx) + 0.5) * float64(v.Width) / float64(v.Cols))
	y := int((float64(ly) + 0.5) * float64(v.Height) / float64(v.Rows))
	return blueprint.Point{
		X: float64(clamp(x, 0, v.Width-1)),
		Y: float64(clamp(y, 0, v.Height-1)),
	}, true
}

// FromSurface maps a surface pixel back to the screen cell showing it.
func (v Viewport) FromSurface(p blueprint.Point) (screenX, screenY int) {
	if v.Width <= 0 || v.Height <= 0 {
		return v.OriginX, v.OriginY
	}
	cx := clamp(int(p.X*float64(v.Cols)/float64(v.Width)), 0, v.Cols-1)
	cy := clamp(int(p.Y*float64(v.Rows)/float64(v.Height)), 0, v.Rows-1)
	return v.OriginX + cx, v.OriginY + cy
}
