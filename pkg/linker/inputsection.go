package linker

import "tinyld/pkg/utils"

type InputSection struct {
	File     *ObjectFile
	Contents []Line
	Shndx    uint32
}

func NewInputSection(file *ObjectFile, shndx uint32) *InputSection {
	s := &InputSection{
		File:  file,
		Shndx: shndx,
	}

	s.Contents = file.SectionLines(s.Shdr())
	utils.Assert(uint64(len(s.Contents)) == s.Shdr().Size)

	return s
}

func (i *InputSection) Shdr() *SectionHeader {
	utils.Assert(i.Shndx < uint32(len(i.File.Sections)))
	return &i.File.Sections[i.Shndx]
}

func (i *InputSection) Name() string {
	return i.Shdr().Name
}

// GetLines returns size lines starting at the in-section offset value.
func (i *InputSection) GetLines(value, size uint64) []Line {
	n := uint64(len(i.Contents))
	utils.Assertf(size <= n && value <= n-size,
		"%s: %d lines at %d outside %s", i.File.Name, size, value, i.Name())
	return i.Contents[value : value+size]
}
