package linker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinePatch(t *testing.T) {
	l := Line("call   0x0000000000000000 ; done")
	f := Field{Col: 7, Width: HexWidth}

	got, err := l.Patch(f, HexLiteral(0x4000c0))
	require.NoError(t, err)
	require.Equal(t, Line("call   0x00000000004000c0 ; done"), got)
	require.Len(t, got, len(l))

	_, err = Line("call   0x00").Patch(f, HexLiteral(1))
	require.ErrorContains(t, err, "outside line")

	_, err = l.Patch(f, "0x1")
	require.ErrorContains(t, err, "does not match field width")
}

func TestHexLiteral(t *testing.T) {
	require.Equal(t, "0x0000000000400100", HexLiteral(0x00400100))
	require.Equal(t, "0xfffffffffffffff0", HexLiteral(-0x10))
	require.Len(t, HexLiteral(-1), HexWidth)
}

func TestRelocValue(t *testing.T) {
	v, err := RelocValue(R_X86_64_PC32, 0x00400100, 0, 0x00400110)
	require.NoError(t, err)
	require.Equal(t, int64(-0x10), v)

	v, err = RelocValue(R_X86_64_PLT32, 0x00400100, -4, 0x00400040)
	require.NoError(t, err)
	require.Equal(t, int64(0xbc), v)

	v, err = RelocValue(R_X86_64_32, 0x00400100, 8, 0x00400110)
	require.NoError(t, err)
	require.Equal(t, int64(0x00400108), v)

	_, err = RelocValue(RelocType(3), 0, 0, 0)
	require.Equal(t, &RelocTypeError{Type: 3}, err)
}

func TestRelocValueOverflow(t *testing.T) {
	for _, tc := range []struct {
		name   string
		typ    RelocType
		sym    uint64
		addend int64
		next   uint64
		want   int64
	}{
		{"absolute above 4GiB", R_X86_64_32, 0x100000000, 0, 0, 0x100000000},
		{"absolute negative", R_X86_64_32, 0, -1, 0, -1},
		{"pc-relative forward", R_X86_64_PC32, 0x80400000, 0, 0x00400000, 0x80000000},
		{"pc-relative backward", R_X86_64_PLT32, 0x00400000, -1, 0x80400000, -0x80000001},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RelocValue(tc.typ, tc.sym, tc.addend, tc.next)
			require.Equal(t, &RelocOverflowError{Type: tc.typ, Value: tc.want}, err)
		})
	}

	v, err := RelocValue(R_X86_64_PC32, 0x00400000, 0, 0x80400000)
	require.NoError(t, err)
	require.Equal(t, int64(-0x80000000), v)

	v, err = RelocValue(R_X86_64_32, 0xffffffff, 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0xffffffff), v)
}

func TestFieldFitsLargeColumn(t *testing.T) {
	l := Line("jmp    0x0000000000000000")
	require.True(t, Field{Col: 7, Width: HexWidth}.Fits(l))
	require.False(t, Field{Col: 8, Width: HexWidth}.Fits(l))
	require.False(t, Field{Col: math.MaxUint64 - 5, Width: HexWidth}.Fits(l))
	require.False(t, Field{Col: 0, Width: math.MaxUint64}.Fits(l))

	_, err := l.Patch(Field{Col: math.MaxUint64 - 5, Width: HexWidth}, HexLiteral(0))
	require.ErrorContains(t, err, "outside line")
}
