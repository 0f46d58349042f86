package linker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteMap(t *testing.T) {
	cfg := DefaultConfig()
	img, err := Link([]*ObjectFile{mainObject(), sumObject()}, WithConfig(cfg))
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteMap(&buf, img, cfg)
	out := buf.String()

	for _, want := range []string{
		"SECTION", "ADDRESS",
		".text", "0x00400000",
		".bss", "0x00400320",
		"STB_LOCAL", "parray",
		"0x004001c0", // sum
		"0x00400318", // bias
	} {
		require.Contains(t, out, want)
	}
}

func TestSymbolAddr(t *testing.T) {
	cfg := DefaultConfig()
	img, err := Link([]*ObjectFile{mainObject(), sumObject()}, WithConfig(cfg))
	require.NoError(t, err)

	for name, want := range map[string]uint64{
		"main":   0x400000,
		"sum":    0x4001c0,
		"array":  0x400300,
		"parray": 0x400310,
		"bias":   0x400318,
		"result": 0x400320,
	} {
		syms := img.FindSymbols(name)
		require.Len(t, syms, 1, name)
		require.Equal(t, want, SymbolAddr(img, syms[0], cfg), name)
	}

	require.Zero(t, SymbolAddr(img, Sym{Shndx: SectionUndef}, cfg))
	require.Zero(t, SymbolAddr(img, Sym{Shndx: SectionSymtab}, cfg))
}
