// Package export writes the drawing surface of an open blueprint to image
// and document files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blueprints/internal/render"
)

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Save writes cmds for author's blueprint name into dir and returns the
// file path. The surface is the reference render.SurfaceWidth×SurfaceHeight.
func Save(dir, author, name string, f Format, cmds []render.Command) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(author, name, f))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", f, err)
	}

	switch f {
	case FormatPNG:
		err = PNG(out, cmds, render.SurfaceWidth, render.SurfaceHeight)
	case FormatPDF:
		err = PDF(out, author+" / "+name, cmds, render.SurfaceWidth, render.SurfaceHeight)
	default:
		err = fmt.Errorf("unsupported format %q", f)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("export %s: %w", f, err)
	}
	return path, nil
}

// FileName is "<author>-<name>.<ext>" with characters unsafe in file names
// replaced by '_'.
func FileName(author, name string, f Format) string {
	clean := func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return "untitled"
		}
		return strings.Map(func(r rune) rune {
			switch r {
			case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
				return '_'
			}
			if r < 0x20 {
				return '_'
			}
			return r
		}, s)
	}
	return clean(author) + "-" + clean(name) + "." + string(f)
}
