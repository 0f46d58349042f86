package linker

import "strconv"

type testSection struct {
	name  string
	lines []string
}

// newTestObject lays a module out the way the text parser hands it over:
// header lines, section table, content, symbol table.
func newTestObject(name string, sections []testSection, syms []Sym, text, data []Reloc) *ObjectFile {
	obj := NewObjectFile(name)
	obj.Symbols = syms
	obj.TextRelocs = text
	obj.DataRelocs = data

	count := len(sections) + 1
	offset := uint64(HeaderLines + count)
	for _, s := range sections {
		obj.Sections = append(obj.Sections, SectionHeader{Name: s.name, Offset: offset, Size: uint64(len(s.lines))})
		offset += uint64(len(s.lines))
	}
	obj.Sections = append(obj.Sections, SectionHeader{Name: SectionSymtab, Offset: offset, Size: uint64(len(syms))})

	total := offset + uint64(len(syms))
	obj.Lines = append(obj.Lines, Line(strconv.FormatUint(total, 10)), Line(strconv.Itoa(count)))
	for _, shdr := range obj.Sections {
		obj.Lines = append(obj.Lines, Line(shdr.String()))
	}
	for _, s := range sections {
		for _, l := range s.lines {
			obj.Lines = append(obj.Lines, Line(l))
		}
	}
	for _, sym := range syms {
		obj.Lines = append(obj.Lines, Line(sym.String()))
	}
	return obj
}

func mainObject() *ObjectFile {
	return newTestObject("main.o",
		[]testSection{
			{SectionText, []string{
				"push   %rbp",
				"mov    %rsp,%rbp",
				"lea    0x0000000000000000(%rip),%rdi",
				"call   0x0000000000000000",
				"mov    %rax,0x0000000000000000(%rip)",
				"pop    %rbp",
				"ret",
			}},
			{SectionData, []string{
				"0x0000000000000012",
				"0x0000000000000034",
				"0x0000000000000000",
			}},
		},
		[]Sym{
			{Name: "array", Bind: BindGlobal, Type: TypeObject, Shndx: SectionData, Value: 0, Size: 2},
			{Name: "main", Bind: BindGlobal, Type: TypeFunc, Shndx: SectionText, Value: 0, Size: 7},
			{Name: "sum", Bind: BindGlobal, Type: TypeNone, Shndx: SectionUndef},
			{Name: "result", Bind: BindGlobal, Type: TypeObject, Shndx: SectionCommon, Value: 8, Size: 1},
			{Name: "parray", Bind: BindLocal, Type: TypeObject, Shndx: SectionData, Value: 2, Size: 1},
		},
		[]Reloc{
			{Row: 2, Col: 7, Type: R_X86_64_PC32, Sym: 0},
			{Row: 3, Col: 7, Type: R_X86_64_PLT32, Sym: 2},
			{Row: 4, Col: 12, Type: R_X86_64_PC32, Sym: 3},
		},
		[]Reloc{
			{Row: 2, Col: 0, Type: R_X86_64_32, Sym: 0},
		},
	)
}

func sumObject() *ObjectFile {
	return newTestObject("sum.o",
		[]testSection{
			{SectionText, []string{
				"push   %rbp",
				"mov    %rsp,%rbp",
				"mov    0x0000000000000000(%rip),%rax",
				"pop    %rbp",
				"ret",
			}},
			{SectionData, []string{
				"0x0000000000000003",
			}},
		},
		[]Sym{
			{Name: "sum", Bind: BindGlobal, Type: TypeFunc, Shndx: SectionText, Value: 0, Size: 5},
			{Name: "bias", Bind: BindGlobal, Type: TypeObject, Shndx: SectionData, Value: 0, Size: 1},
		},
		[]Reloc{
			{Row: 2, Col: 7, Type: R_X86_64_PC32, Sym: 1},
		},
		nil,
	)
}

// textObject defines a single function made of n padding lines.
func textObject(name, fn string, bind Bind, n int) *ObjectFile {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "nop"
	}
	return newTestObject(name,
		[]testSection{{SectionText, lines}},
		[]Sym{{Name: fn, Bind: bind, Type: TypeFunc, Shndx: SectionText, Size: uint64(n)}},
		nil, nil,
	)
}

func lines(ls []Line) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = string(l)
	}
	return out
}
