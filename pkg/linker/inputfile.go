package linker

import (
	"fmt"
	"strings"
)

const (
	SectionUndef  = "SHN_UNDEF"
	SectionCommon = "COMMON"
	SectionText   = ".text"
	SectionRodata = ".rodata"
	SectionData   = ".data"
	SectionBss    = ".bss"
	SectionSymtab = ".symtab"
)

// HeaderLines is the number of rows before the section table: the total
// line count and the section count.
const HeaderLines = 2

type SectionHeader struct {
	Name   string
	Addr   uint64 /* Runtime address. */
	Offset uint64 /* Line offset in the row buffer. */
	Size   uint64 /* Count of lines. */
}

func (s SectionHeader) String() string {
	return fmt.Sprintf("%s,0x%x,%d,%d", s.Name, s.Addr, s.Offset, s.Size)
}

type Bind uint8

const (
	BindLocal Bind = iota
	BindGlobal
	BindWeak
)

func (b Bind) String() string {
	switch b {
	case BindLocal:
		return "STB_LOCAL"
	case BindGlobal:
		return "STB_GLOBAL"
	case BindWeak:
		return "STB_WEAK"
	}
	return fmt.Sprintf("STB_%d", uint8(b))
}

type SymType uint8

const (
	TypeNone SymType = iota
	TypeObject
	TypeFunc
)

func (t SymType) String() string {
	switch t {
	case TypeNone:
		return "STT_NOTYPE"
	case TypeObject:
		return "STT_OBJECT"
	case TypeFunc:
		return "STT_FUNC"
	}
	return fmt.Sprintf("STT_%d", uint8(t))
}

type Sym struct {
	Name  string
	Bind  Bind
	Type  SymType
	Shndx string /* Owning section name. */
	Value uint64 /* In-section line offset. */
	Size  uint64 /* Count of lines. */
}

func (s Sym) String() string {
	return strings.Join([]string{
		s.Name,
		s.Bind.String(),
		s.Type.String(),
		s.Shndx,
		fmt.Sprint(s.Value),
		fmt.Sprint(s.Size),
	}, ",")
}

func (s Sym) IsUndef() bool {
	return s.Shndx == SectionUndef
}

type Reloc struct {
	Row    uint64 /* Line offset within the referencing section. */
	Col    uint64 /* Column of the patched literal within the line. */
	Type   RelocType
	Sym    uint32 /* Index into the module's symbol table. */
	Addend int64
}
