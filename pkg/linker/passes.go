package linker

import (
	"sort"

	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"tinyld/pkg/utils"
)

func ResolveSymbols(ctx *Context) error {
	for i, file := range ctx.Objs {
		for j := range file.Symbols {
			if err := resolveSymbol(ctx, i, int32(j)); err != nil {
				return err
			}
		}
	}

	return finishSymbols(ctx)
}

func resolveSymbol(ctx *Context, fileIdx int, symIdx int32) error {
	file := ctx.Objs[fileIdx]
	esym := &file.Symbols[symIdx]

	if esym.Bind == BindLocal {
		// locals never collide, even with the same name
		ctx.Symbols = append(ctx.Symbols, NewSymbol(file, fileIdx, symIdx))
		return nil
	}

	candidate := GetSymbolByName(ctx, esym.Name)
	if candidate == nil {
		sym := NewSymbol(file, fileIdx, symIdx)
		ctx.Symbols = append(ctx.Symbols, sym)
		ctx.SymbolMap[esym.Name] = sym
		return nil
	}

	replace, err := simpleResolution(candidate.ElfSym(), esym)
	if err != nil {
		return err
	}

	loser := NewSymbol(file, fileIdx, symIdx)
	if replace {
		prev := *candidate
		candidate.Set(file, fileIdx, symIdx)
		loser = &prev
	}

	// a lost definition still owns lines in its file; remember them so
	// relocations inside it can be dropped
	if tier, _ := Precedence(loser.ElfSym()); tier == TierStrong {
		ctx.Discarded[loser.FileIdx] = append(ctx.Discarded[loser.FileIdx], loser)
	}
	return nil
}

// finishSymbols checks and normalizes every surviving entry, then groups
// them by owning file.
func finishSymbols(ctx *Context) error {
	var undefined *multierror.Error

	for _, sym := range ctx.Symbols {
		esym := sym.ElfSym()
		tier, err := Precedence(esym)
		if err != nil {
			return err
		}

		switch tier {
		case TierTentative:
			sym.Shndx = SectionBss
			sym.Value = 0
		case TierUndefined:
			if esym.Bind != BindWeak && !ctx.Args.Config.AllowUndefined {
				undefined = multierror.Append(undefined, &UndefinedSymbolError{Name: sym.Name, File: sym.File.Name})
			}
		case TierStrong:
			if hasContent(sym.Shndx) {
				shndx := sym.File.FindSectionIndex(sym.Shndx)
				utils.Assert(shndx >= 0)
				sym.SetInputSection(NewInputSection(sym.File, uint32(shndx)))
			}
		}

		ctx.FileSymbols[sym.FileIdx] = append(ctx.FileSymbols[sym.FileIdx], sym)

		level.Debug(ctx.Logger).Log(
			"msg", "resolved symbol",
			"name", sym.Name,
			"bind", esym.Bind,
			"type", esym.Type,
			"section", sym.Shndx,
			"value", sym.Value,
			"size", esym.Size,
			"tier", tier,
			"file", sym.File.Name,
		)
	}

	for _, syms := range ctx.FileSymbols {
		sort.SliceStable(syms, func(i, j int) bool {
			return syms[i].SymIdx < syms[j].SymIdx
		})
	}

	return undefined.ErrorOrNil()
}

func CreateSyntheticSections(ctx *Context) {
	ctx.Ehdr = NewOutputEhdr()
	ctx.Shdr = NewOutputShdr()
	ctx.Symtab = NewOutputSymtab()
}

// BinSections assigns every placed symbol to its output section, files in
// input order and symbols in symbol table order.
func BinSections(ctx *Context) {
	cfg := &ctx.Args.Config
	ctx.OutputSections = lo.Map(outputSectionNames, func(name string, _ int) *OutputSection {
		return NewOutputSection(name, cfg.Unit(name))
	})

	for _, syms := range ctx.FileSymbols {
		for _, sym := range syms {
			if osec := GetOutputSection(ctx, sym.Shndx); osec != nil {
				osec.Members = append(osec.Members, sym)
			}
		}
	}
}

// ComputeSectionSizes sizes every chunk and drops empty output sections.
func ComputeSectionSizes(ctx *Context) {
	ctx.Chunks = []Chunker{ctx.Ehdr, ctx.Shdr}
	for _, osec := range ctx.OutputSections {
		ctx.Chunks = append(ctx.Chunks, osec)
	}
	ctx.Chunks = append(ctx.Chunks, ctx.Symtab)

	for _, chunk := range ctx.Chunks {
		chunk.UpdateShdr(ctx)
	}

	ctx.Chunks = utils.RemoveIf(ctx.Chunks, func(chunk Chunker) bool {
		osec, ok := chunk.(*OutputSection)
		return ok && osec.Shdr.Size == 0
	})

	ctx.Shdr.UpdateShdr(ctx)
}

// SetOutputSectionOffsets assigns runtime addresses and line offsets, then
// allocates the merged buffer. It returns the total line count.
func SetOutputSectionOffsets(ctx *Context) (uint64, error) {
	cfg := &ctx.Args.Config

	addr := cfg.BaseAddress
	for _, osec := range ctx.OutputSections {
		osec.Shdr.Addr = addr
		addr += osec.Shdr.Size * osec.Unit
	}

	fileoff := uint64(0)
	for _, chunk := range ctx.Chunks {
		chunk.GetShdr().Offset = fileoff
		fileoff += FileLines(chunk)
	}

	if fileoff > uint64(cfg.MaxLines) {
		return fileoff, &CapacityError{Limit: cfg.MaxLines, What: "lines"}
	}

	ctx.Buf = make([]Line, fileoff)
	return fileoff, nil
}

// LayoutSections plans the merged image and writes its header lines and
// section table.
func LayoutSections(ctx *Context) error {
	CreateSyntheticSections(ctx)
	BinSections(ctx)
	ComputeSectionSizes(ctx)

	total, err := SetOutputSectionOffsets(ctx)
	if err != nil {
		return err
	}

	for _, chunk := range ctx.Chunks {
		level.Debug(ctx.Logger).Log(
			"msg", "planned chunk",
			"name", chunk.GetName(),
			"addr", chunk.GetShdr().Addr,
			"offset", chunk.GetShdr().Offset,
			"size", chunk.GetShdr().Size,
		)
	}
	level.Debug(ctx.Logger).Log("msg", "planned image", "lines", total, "sections", ctx.Shdr.Shdr.Size)

	if err := ctx.Ehdr.CopyBuf(ctx); err != nil {
		return err
	}
	return ctx.Shdr.CopyBuf(ctx)
}

func MergeSections(ctx *Context) error {
	for _, osec := range ctx.OutputSections {
		if err := osec.CopyBuf(ctx); err != nil {
			return err
		}
	}

	// surviving undefined symbols have no section to live in
	for _, sym := range ctx.Symbols {
		if sym.Fragment == nil {
			sym.DstIdx = ctx.Symtab.AddSymbol(sym)
		}
	}

	return ctx.Symtab.CopyBuf(ctx)
}

func RelocateSymbols(ctx *Context) error {
	for i, file := range ctx.Objs {
		for _, section := range []string{SectionText, SectionData} {
			relocs := file.Relocs(section)
			if len(relocs) == 0 {
				continue
			}

			ranges := NewSectionRanges(ctx.FileSymbols[i], section)
			for _, rel := range relocs {
				if err := applyReloc(ctx, i, section, ranges, rel); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func applyReloc(ctx *Context, fileIdx int, section string, ranges *SectionRanges, rel Reloc) error {
	file := ctx.Objs[fileIdx]

	sym := ranges.GetSymbol(rel.Row)
	if sym == nil {
		if isDiscarded(ctx, fileIdx, section, rel.Row) {
			level.Debug(ctx.Logger).Log("msg", "dropped relocation in discarded symbol", "file", file.Name, "section", section, "row", rel.Row)
			return nil
		}
		return &UnresolvedRelocationError{File: file.Name, Section: section, Row: rel.Row}
	}

	target, err := referencedSymbol(ctx, fileIdx, rel.Sym)
	if err != nil {
		return err
	}

	frag := sym.Fragment
	utils.Assert(frag != nil)
	osec := frag.OutputSection

	row := frag.Offset + rel.Row - sym.Value
	next := osec.Shdr.Addr + (row+1)*osec.Unit
	val, err := RelocValue(rel.Type, target.GetAddr(), rel.Addend, next)
	if err != nil {
		return errors.Wrapf(err, "%s: %s relocation at row %d", file.Name, section, rel.Row)
	}

	line := frag.GetLine(rel.Row - sym.Value)
	patched, err := ctx.Buf[line].Patch(Field{Col: rel.Col, Width: HexWidth}, HexLiteral(val))
	if err != nil {
		return errors.Wrapf(err, "%s: %s relocation at row %d", file.Name, section, rel.Row)
	}
	ctx.Buf[line] = patched

	level.Debug(ctx.Logger).Log(
		"msg", "applied relocation",
		"file", file.Name,
		"section", section,
		"row", rel.Row,
		"type", rel.Type,
		"target", target.Name,
		"line", line,
		"value", HexLiteral(val),
	)
	return nil
}

// referencedSymbol maps a file's symbol index to its resolution entry:
// locals to their own entry, globals and weaks by name.
func referencedSymbol(ctx *Context, fileIdx int, symIdx uint32) (*Symbol, error) {
	file := ctx.Objs[fileIdx]
	esym := &file.Symbols[symIdx]

	var sym *Symbol
	if esym.Bind == BindLocal {
		sym, _ = lo.Find(ctx.FileSymbols[fileIdx], func(s *Symbol) bool {
			return s.SymIdx == int32(symIdx)
		})
	} else {
		sym = GetSymbolByName(ctx, esym.Name)
	}
	utils.Assertf(sym != nil, "%s: symbol %q missing from resolution map", file.Name, esym.Name)

	if sym.Fragment == nil && sym.ElfSym().Bind != BindWeak {
		return nil, &UndefinedSymbolError{Name: esym.Name, File: file.Name}
	}
	return sym, nil
}

func isDiscarded(ctx *Context, fileIdx int, section string, row uint64) bool {
	return lo.ContainsBy(ctx.Discarded[fileIdx], func(sym *Symbol) bool {
		return sym.Contains(section, row)
	})
}
