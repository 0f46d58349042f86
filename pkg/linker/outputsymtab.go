package linker

import "tinyld/pkg/utils"

// OutputSymtab is the trailing symbol table of the merged image. Its section
// row only describes where the table sits; it has no runtime address.
type OutputSymtab struct {
	Chunk
	Syms []Sym
}

func NewOutputSymtab() *OutputSymtab {
	return &OutputSymtab{Chunk: NewChunk(SectionSymtab)}
}

func (o *OutputSymtab) UpdateShdr(ctx *Context) {
	o.Shdr.Size = uint64(len(ctx.Symbols))
}

// AddSymbol appends the merged entry of sym and returns its index.
func (o *OutputSymtab) AddSymbol(sym *Symbol) int32 {
	esym := sym.ElfSym()
	out := Sym{
		Name:  esym.Name,
		Bind:  esym.Bind,
		Type:  esym.Type,
		Shndx: sym.Shndx,
		Size:  esym.Size,
	}
	if sym.Fragment != nil {
		out.Value = sym.Fragment.Offset
	}

	o.Syms = append(o.Syms, out)
	return int32(len(o.Syms) - 1)
}

func (o *OutputSymtab) CopyBuf(ctx *Context) error {
	utils.Assertf(uint64(len(o.Syms)) == o.Shdr.Size, "symtab has %d entries, planned %d", len(o.Syms), o.Shdr.Size)
	utils.Assert(o.Shdr.Offset+o.Shdr.Size == uint64(len(ctx.Buf)))

	for i, sym := range o.Syms {
		if err := writeRow(ctx, o.Shdr.Offset+uint64(i), sym.String()); err != nil {
			return err
		}
	}
	return nil
}
