package linker

import (
	"fmt"
	"math"
)

type RelocType uint8

const (
	R_X86_64_32 RelocType = iota
	R_X86_64_PC32
	R_X86_64_PLT32
)

func (r RelocType) String() string {
	switch r {
	case R_X86_64_32:
		return "R_X86_64_32"
	case R_X86_64_PC32:
		return "R_X86_64_PC32"
	case R_X86_64_PLT32:
		return "R_X86_64_PLT32"
	}
	return fmt.Sprintf("R_%d", uint8(r))
}

// RelocValue computes the literal patched into a referencing line.
// sym is the target's runtime address, next the runtime address of the line
// following the reference.
func RelocValue(typ RelocType, sym uint64, addend int64, next uint64) (int64, error) {
	switch typ {
	case R_X86_64_32:
		v := int64(sym) + addend
		if v < 0 || v > math.MaxUint32 {
			return 0, &RelocOverflowError{Type: typ, Value: v}
		}
		return v, nil
	case R_X86_64_PC32, R_X86_64_PLT32:
		v := int64(sym) + addend - int64(next)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, &RelocOverflowError{Type: typ, Value: v}
		}
		return v, nil
	}
	return 0, &RelocTypeError{Type: typ}
}
