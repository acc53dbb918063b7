// Package render turns a blueprint's points into drawing commands and
// replays them onto a surface: the terminal canvas or an export target.
package render

import (
	"fmt"

	"blueprints/internal/blueprint"
)

// Surface dimensions of the reference drawing surface, in pixels.
const (
	SurfaceWidth  = 500
	SurfaceHeight = 500
)

// Op is a drawing operation.
type Op int

const (
	OpClear Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpClosePath:
		return "closePath"
	case OpStroke:
		return "stroke"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is one drawing call. X and Y are used by MoveTo and LineTo only.
type Command struct {
	Op Op
	X  float64
	Y  float64
}

func (c Command) String() string {
	if c.Op == OpMoveTo || c.Op == OpLineTo {
		return fmt.Sprintf("%s(%g,%g)", c.Op, c.X, c.Y)
	}
	return c.Op.String()
}

// Render returns the full repaint for points: clear, then, if there is
// anything to draw, a closed path through every point in order, stroked.
func Render(points []blueprint.Point) []Command {
	if len(points) == 0 {
		return []Command{{Op: OpClear}}
	}
	cmds := make([]Command, 0, len(points)+4)
	cmds = append(cmds, Command{Op: OpClear}, Command{Op: OpBeginPath})
	cmds = append(cmds, Command{Op: OpMoveTo, X: points[0].X, Y: points[0].Y})
	for _, p := range points[1:] {
		cmds = append(cmds, Command{Op: OpLineTo, X: p.X, Y: p.Y})
	}
	return append(cmds, Command{Op: OpClosePath}, Command{Op: OpStroke})
}

// Blank is the repaint of an empty surface.
func Blank() []Command {
	return []Command{{Op: OpClear}}
}

// Target is a surface that commands can be replayed onto. Coordinates are
// surface pixels.
type Target interface {
	Clear()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke() error
}

// Replay executes cmds against t in order.
func Replay(cmds []Command, t Target) error {
	for _, c := range cmds {
		switch c.Op {
		case OpClear:
			t.Clear()
		case OpBeginPath:
			t.BeginPath()
		case OpMoveTo:
			t.MoveTo(c.X, c.Y)
		case OpLineTo:
			t.LineTo(c.X, c.Y)
		case OpClosePath:
			t.ClosePath()
		case OpStroke:
			if err := t.Stroke(); err != nil {
				return fmt.Errorf("stroke: %w", err)
			}
		default:
			return fmt.Errorf("unknown drawing op %v", c.Op)
		}
	}
	return nil
}
