package linker

import "sort"

// SectionRanges indexes the symbols one file defines in one section by the
// first line they cover.
type SectionRanges struct {
	Offsets []uint64
	Symbols []*Symbol
}

func NewSectionRanges(syms []*Symbol, section string) *SectionRanges {
	r := &SectionRanges{}
	for _, sym := range syms {
		if sym.Shndx == section && sym.ElfSym().Size > 0 {
			r.Symbols = append(r.Symbols, sym)
		}
	}

	sort.SliceStable(r.Symbols, func(i, j int) bool {
		return r.Symbols[i].Value < r.Symbols[j].Value
	})

	r.Offsets = make([]uint64, len(r.Symbols))
	for i, sym := range r.Symbols {
		r.Offsets[i] = sym.Value
	}
	return r
}

// GetSymbol returns the symbol whose lines contain row, or nil.
func (r *SectionRanges) GetSymbol(row uint64) *Symbol {
	pos := sort.Search(len(r.Offsets), func(i int) bool {
		return row < r.Offsets[i]
	})

	if pos == 0 {
		return nil
	}

	sym := r.Symbols[pos-1]
	if row >= sym.Value+sym.ElfSym().Size {
		return nil
	}
	return sym
}
