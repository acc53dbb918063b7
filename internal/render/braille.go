package render

import "strings"

// Canvas is a terminal drawing surface. Each cell holds a braille glyph,
// giving a 2x4 grid of dots per cell; surface pixels are scaled onto it.
type Canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask

	sw, sh float64 // surface size in pixels

	segs       [][4]int // pending path segments, micro coords
	start, cur [2]int
	hasCur     bool
}

var _ Target = (*Canvas)(nil)

// NewCanvas creates a canvas of w×h cells showing a surface of
// surfaceW×surfaceH pixels.
func NewCanvas(w, h, surfaceW, surfaceH int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Canvas{w: w, h: h, m: m, sw: float64(surfaceW), sh: float64(surfaceH)}
}

func (b *Canvas) Clear() {
	for y := range b.m {
		for x := range b.m[y] {
			b.m[y][x] = 0
		}
	}
	b.BeginPath()
}

func (b *Canvas) BeginPath() {
	b.segs = b.segs[:0]
	b.hasCur = false
}

func (b *Canvas) MoveTo(x, y float64) {
	b.start = b.micro(x, y)
	b.cur = b.start
	b.hasCur = true
}

func (b *Canvas) LineTo(x, y float64) {
	p := b.micro(x, y)
	if !b.hasCur {
		b.start, b.cur, b.hasCur = p, p, true
		return
	}
	b.segs = append(b.segs, [4]int{b.cur[0], b.cur[1], p[0], p[1]})
	b.cur = p
}

func (b *Canvas) ClosePath() {
	if !b.hasCur {
		return
	}
	b.segs = append(b.segs, [4]int{b.cur[0], b.cur[1], b.start[0], b.start[1]})
	b.cur = b.start
}

func (b *Canvas) Stroke() error {
	for _, s := range b.segs {
		b.drawLineMicro(s[0], s[1], s[2], s[3])
	}
	return nil
}

// micro maps a surface pixel onto the dot grid.
func (b *Canvas) micro(x, y float64) [2]int {
	wMic, hMic := b.w*2, b.h*4
	mx := int(x / b.sw * float64(wMic))
	my := int(y / b.sh * float64(hMic))
	return [2]int{clamp(mx, 0, wMic-1), clamp(my, 0, hMic-1)}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *Canvas) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *Canvas) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the canvas as one string per row.
func (b *Canvas) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func (b *Canvas) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Dots returns the number of dots set.
func (b *Canvas) Dots() int {
	n := 0
	for y := range b.m {
		for _, mask := range b.m[y] {
			for ; mask != 0; mask &= mask - 1 {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
