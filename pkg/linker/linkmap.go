package linker

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// SymbolAddr returns the runtime address of sym inside img, or 0 when its
// section has no runtime address.
func SymbolAddr(img *ObjectFile, sym Sym, cfg Config) uint64 {
	shdr := img.FindSection(sym.Shndx)
	if shdr == nil || shdr.Name == SectionSymtab {
		return 0
	}
	return shdr.Addr + sym.Value*cfg.Unit(shdr.Name)
}

// WriteMap prints the section and symbol tables of a linked image.
func WriteMap(w io.Writer, img *ObjectFile, cfg Config) {
	sections := tablewriter.NewWriter(w)
	sections.SetHeader([]string{"Section", "Address", "Offset", "Lines"})
	sections.AppendBulk(lo.Map(img.Sections, func(shdr SectionHeader, _ int) []string {
		return []string{
			shdr.Name,
			fmt.Sprintf("0x%08x", shdr.Addr),
			strconv.FormatUint(shdr.Offset, 10),
			strconv.FormatUint(shdr.Size, 10),
		}
	}))
	sections.Render()

	symbols := tablewriter.NewWriter(w)
	symbols.SetHeader([]string{"Symbol", "Bind", "Type", "Section", "Value", "Size", "Address"})
	symbols.AppendBulk(lo.Map(img.Symbols, func(sym Sym, _ int) []string {
		return []string{
			sym.Name,
			sym.Bind.String(),
			sym.Type.String(),
			sym.Shndx,
			strconv.FormatUint(sym.Value, 10),
			strconv.FormatUint(sym.Size, 10),
			fmt.Sprintf("0x%08x", SymbolAddr(img, sym, cfg)),
		}
	}))
	symbols.Render()
}
