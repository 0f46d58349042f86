package linker

// SectionFragment is where a symbol landed inside an output section.
type SectionFragment struct {
	OutputSection *OutputSection
	Offset        uint64
}

func NewSectionFragment(o *OutputSection, offset uint64) *SectionFragment {
	return &SectionFragment{
		OutputSection: o,
		Offset:        offset,
	}
}

func (s *SectionFragment) GetAddr() uint64 {
	return s.OutputSection.Shdr.Addr + s.Offset*s.OutputSection.Unit
}

// GetLine returns the index in the merged buffer of the fragment's row-th line.
func (s *SectionFragment) GetLine(row uint64) uint64 {
	return s.OutputSection.Shdr.Offset + s.Offset + row
}
