package linker

import (
	"github.com/go-kit/log/level"
	"github.com/samber/lo"

	"tinyld/pkg/utils"
)

// Output sections in image order. The .bss row follows .data in the
// section table and gives tentative definitions an address, but it
// occupies no lines.
var outputSectionNames = []string{SectionText, SectionRodata, SectionData, SectionBss}

type OutputSection struct {
	Chunk
	Members []*Symbol
	Unit    uint64
}

func NewOutputSection(name string, unit uint64) *OutputSection {
	o := &OutputSection{Chunk: NewChunk(name)}
	o.Unit = unit
	o.Nobits = name == SectionBss
	return o
}

func (o *OutputSection) UpdateShdr(ctx *Context) {
	o.Shdr.Size = lo.SumBy(o.Members, func(sym *Symbol) uint64 {
		return sym.ElfSym().Size
	})
}

// CopyBuf places every member at the running offset of the section, copies
// its lines and records its merged symbol table entry.
func (o *OutputSection) CopyBuf(ctx *Context) error {
	offset := uint64(0)
	for _, sym := range o.Members {
		size := sym.ElfSym().Size
		sym.Fragment = NewSectionFragment(o, offset)

		if !o.Nobits {
			start := sym.Fragment.GetLine(0)
			if limit := ctx.Args.Config.MaxLines; start+size > uint64(limit) {
				return &CapacityError{Limit: limit, What: "lines"}
			}
			utils.Assertf(start+size <= uint64(len(ctx.Buf)),
				"%s: lines [%d,%d) outside merged buffer of %d", o.Shdr.Name, start, start+size, len(ctx.Buf))
			copy(ctx.Buf[start:start+size], sym.InputSection.GetLines(sym.Value, size))
		}

		sym.DstIdx = ctx.Symtab.AddSymbol(sym)
		offset += size

		level.Debug(ctx.Logger).Log(
			"msg", "merged symbol",
			"name", sym.Name,
			"file", sym.File.Name,
			"section", o.Shdr.Name,
			"offset", sym.Fragment.Offset,
			"size", size,
			"addr", sym.Fragment.GetAddr(),
		)
	}

	utils.Assertf(offset == o.Shdr.Size, "%s: merged %d lines, planned %d", o.Shdr.Name, offset, o.Shdr.Size)
	return nil
}

func GetOutputSection(ctx *Context, name string) *OutputSection {
	for _, osec := range ctx.OutputSections {
		if osec.Shdr.Name == name {
			return osec
		}
	}
	return nil
}
