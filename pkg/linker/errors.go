package linker

import "fmt"

// DuplicateSymbolError reports two strong definitions of one global name.
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("strong symbol %q is redeclared", e.Name)
}

// PrecedenceError reports a symbol whose section and type map to no
// precedence tier.
type PrecedenceError struct {
	Name    string
	Section string
	Type    SymType
}

func (e *PrecedenceError) Error() string {
	return fmt.Sprintf("cannot determine precedence of symbol %q (section %s, type %s)", e.Name, e.Section, e.Type)
}

type CapacityError struct {
	Limit int
	What  string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: more than %d %s", e.Limit, e.What)
}

// UnresolvedRelocationError reports a relocation row that no surviving
// symbol of its module covers.
type UnresolvedRelocationError struct {
	File    string
	Section string
	Row     uint64
}

func (e *UnresolvedRelocationError) Error() string {
	return fmt.Sprintf("%s: no symbol in %s contains relocation row %d", e.File, e.Section, e.Row)
}

type RelocTypeError struct {
	Type RelocType
}

func (e *RelocTypeError) Error() string {
	return fmt.Sprintf("unknown relocation type %d", uint8(e.Type))
}

// RelocOverflowError reports a relocated value outside the 32-bit range of
// its relocation type.
type RelocOverflowError struct {
	Type  RelocType
	Value int64
}

func (e *RelocOverflowError) Error() string {
	return fmt.Sprintf("%s value %#x does not fit in 32 bits", e.Type, e.Value)
}

type UndefinedSymbolError struct {
	Name string
	File string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("%s: undefined symbol %q", e.File, e.Name)
}

type MalformedObjectError struct {
	File   string
	Reason string
}

func (e *MalformedObjectError) Error() string {
	return fmt.Sprintf("%s: malformed object: %s", e.File, e.Reason)
}
