package linker

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ObjectFile is one module: its row buffer and the tables describing it.
// The merged image has the same shape, with no relocations left.
type ObjectFile struct {
	Name       string
	Lines      []Line
	Sections   []SectionHeader
	Symbols    []Sym
	TextRelocs []Reloc
	DataRelocs []Reloc
}

func NewObjectFile(name string) *ObjectFile {
	return &ObjectFile{Name: name}
}

func (o *ObjectFile) FindSection(name string) *SectionHeader {
	if idx := o.FindSectionIndex(name); idx >= 0 {
		return &o.Sections[idx]
	}
	return nil
}

func (o *ObjectFile) FindSectionIndex(name string) int {
	for i := 0; i < len(o.Sections); i++ {
		if o.Sections[i].Name == name {
			return i
		}
	}
	return -1
}

// Relocs returns the relocation table applying to the named section.
func (o *ObjectFile) Relocs(section string) []Reloc {
	switch section {
	case SectionText:
		return o.TextRelocs
	case SectionData:
		return o.DataRelocs
	}
	return nil
}

// FindSymbols returns every symbol table entry with the given name.
func (o *ObjectFile) FindSymbols(name string) []Sym {
	var syms []Sym
	for _, sym := range o.Symbols {
		if sym.Name == name {
			syms = append(syms, sym)
		}
	}
	return syms
}

// SectionLines returns the rows covered by shdr, or nil when they fall
// outside the buffer.
func (o *ObjectFile) SectionLines(shdr *SectionHeader) []Line {
	if shdr.Offset > uint64(len(o.Lines)) || shdr.Size > uint64(len(o.Lines))-shdr.Offset {
		return nil
	}
	return o.Lines[shdr.Offset : shdr.Offset+shdr.Size]
}

func (o *ObjectFile) String() string {
	var sb strings.Builder
	for _, l := range o.Lines {
		sb.WriteString(string(l))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fingerprint hashes the row buffer. Two links of the same inputs in the
// same order yield the same fingerprint.
func (o *ObjectFile) Fingerprint() uint64 {
	h := xxhash.New()
	for _, l := range o.Lines {
		_, _ = h.WriteString(string(l))
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
