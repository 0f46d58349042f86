package linker

import "tinyld/pkg/utils"

// Symbol is one entry of the resolution map: the winning definition of a
// symbol and, once merged, where it landed.
type Symbol struct {
	File         *ObjectFile
	FileIdx      int
	InputSection *InputSection
	Fragment     *SectionFragment
	Name         string

	// Effective section and value. Tentative definitions are moved to .bss
	// here; the input file is left untouched.
	Shndx string
	Value uint64

	SymIdx int32
	DstIdx int32
}

func NewSymbol(file *ObjectFile, fileIdx int, symIdx int32) *Symbol {
	s := &Symbol{DstIdx: -1}
	s.Set(file, fileIdx, symIdx)
	return s
}

// Set points the entry at another definition of the same symbol.
func (s *Symbol) Set(file *ObjectFile, fileIdx int, symIdx int32) {
	s.File = file
	s.FileIdx = fileIdx
	s.SymIdx = symIdx

	esym := s.ElfSym()
	s.Name = esym.Name
	s.Shndx = esym.Shndx
	s.Value = esym.Value
}

func (s *Symbol) SetInputSection(isec *InputSection) {
	s.InputSection = isec
}

func GetSymbolByName(ctx *Context, name string) *Symbol {
	if sym, ok := ctx.SymbolMap[name]; ok {
		return sym
	}
	return nil
}

func (s *Symbol) ElfSym() *Sym {
	utils.Assert(s.SymIdx >= 0 && int(s.SymIdx) < len(s.File.Symbols))
	return &s.File.Symbols[s.SymIdx]
}

// Contains reports whether row of section falls inside the symbol's lines.
func (s *Symbol) Contains(section string, row uint64) bool {
	return s.Shndx == section && row >= s.Value && row < s.Value+s.ElfSym().Size
}

// GetAddr returns the runtime address of the merged symbol. Symbols that
// were never placed, such as weak undefined ones, resolve to 0.
func (s *Symbol) GetAddr() uint64 {
	if s.Fragment == nil {
		return 0
	}
	return s.Fragment.GetAddr()
}
