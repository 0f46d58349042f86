package linker

import (
	"fmt"

	"github.com/pkg/errors"
)

// HexWidth is the width of a patched literal: "0x" and 16 hex digits.
const HexWidth = 18

// Line is one row of a module. Relocation rewrites a Field of it in place.
type Line string

type Field struct {
	Col   uint64
	Width uint64
}

func (f Field) Fits(l Line) bool {
	n := uint64(len(l))
	return f.Width <= n && f.Col <= n-f.Width
}

// Patch returns l with the columns covered by f replaced by lit.
func (l Line) Patch(f Field, lit string) (Line, error) {
	if uint64(len(lit)) != f.Width {
		return l, errors.Errorf("literal %q does not match field width %d", lit, f.Width)
	}
	if !f.Fits(l) {
		return l, errors.Errorf("field at column %d of width %d is outside line of %d columns", f.Col, f.Width, len(l))
	}
	return l[:f.Col] + Line(lit) + l[f.Col+f.Width:], nil
}

// HexLiteral encodes v as a fixed-width two's-complement literal.
func HexLiteral(v int64) string {
	return fmt.Sprintf("0x%016x", uint64(v))
}
