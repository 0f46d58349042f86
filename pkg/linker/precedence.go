package linker

type Tier uint8

const (
	TierUndefined Tier = iota
	TierTentative
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierUndefined:
		return "undefined"
	case TierTentative:
		return "tentative"
	case TierStrong:
		return "strong"
	}
	return "unknown"
}

/*
	bind    type    section              tier
	--------------------------------------------
	any     notype  SHN_UNDEF            undefined
	any     object  COMMON               tentative
	any     object  .data .rodata .bss   strong
	any     func    .text                strong
*/
func Precedence(sym *Sym) (Tier, error) {
	switch {
	case sym.IsUndef() && sym.Type == TypeNone:
		return TierUndefined, nil
	case sym.Shndx == SectionCommon && sym.Type == TypeObject:
		return TierTentative, nil
	case sym.Shndx == SectionText && sym.Type == TypeFunc:
		return TierStrong, nil
	case sym.Type == TypeObject &&
		(sym.Shndx == SectionData || sym.Shndx == SectionRodata || sym.Shndx == SectionBss):
		return TierStrong, nil
	}

	return 0, &PrecedenceError{Name: sym.Name, Section: sym.Shndx, Type: sym.Type}
}

// simpleResolution decides whether incoming replaces the current candidate
// of the same global name.
func simpleResolution(candidate, incoming *Sym) (bool, error) {
	pre1, err := Precedence(incoming)
	if err != nil {
		return false, err
	}
	pre2, err := Precedence(candidate)
	if err != nil {
		return false, err
	}

	if pre1 == TierStrong && pre2 == TierStrong {
		weak1 := incoming.Bind == BindWeak
		weak2 := candidate.Bind == BindWeak
		switch {
		case weak1 && weak2:
			return false, nil
		case weak1 || weak2:
			return weak2, nil
		}
		return false, &DuplicateSymbolError{Name: incoming.Name}
	}

	if pre1 != TierStrong && pre2 != TierStrong {
		return pre1 > pre2, nil
	}

	return pre1 == TierStrong, nil
}
