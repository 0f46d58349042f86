package linker

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ReadInputFiles registers objs with the context, in order, after checking
// that each one is consistent enough to be linked.
func ReadInputFiles(ctx *Context, objs []*ObjectFile) error {
	var errs *multierror.Error
	for _, obj := range objs {
		if err := CheckObjectFile(ctx, obj); err != nil {
			errs = multierror.Append(errs, err)
		}
		ctx.Objs = append(ctx.Objs, obj)
	}

	ctx.FileSymbols = make([][]*Symbol, len(ctx.Objs))
	ctx.Discarded = make([][]*Symbol, len(ctx.Objs))
	return errs.ErrorOrNil()
}

func hasContent(section string) bool {
	return section == SectionText || section == SectionRodata || section == SectionData
}

func CheckObjectFile(ctx *Context, obj *ObjectFile) error {
	cfg := &ctx.Args.Config

	var errs *multierror.Error
	malformed := func(format string, args ...any) {
		errs = multierror.Append(errs, &MalformedObjectError{File: obj.Name, Reason: fmt.Sprintf(format, args...)})
	}

	if len(obj.Lines) > cfg.MaxLines {
		errs = multierror.Append(errs, &CapacityError{Limit: cfg.MaxLines, What: "lines"})
	}
	for _, l := range obj.Lines {
		if len(l) > cfg.MaxLineWidth {
			errs = multierror.Append(errs, &CapacityError{Limit: cfg.MaxLineWidth, What: "columns per line"})
			break
		}
	}

	for i := range obj.Sections {
		shdr := &obj.Sections[i]
		if shdr.Name != SectionBss && obj.SectionLines(shdr) == nil {
			malformed("section %s of %d lines at %d outside %d lines", shdr.Name, shdr.Size, shdr.Offset, len(obj.Lines))
		}
	}

	for _, sym := range obj.Symbols {
		if sym.Bind > BindWeak {
			malformed("symbol %q has unknown binding %s", sym.Name, sym.Bind)
		}
		if sym.Type > TypeFunc {
			malformed("symbol %q has unknown type %s", sym.Name, sym.Type)
		}
		if !hasContent(sym.Shndx) {
			continue
		}
		shdr := obj.FindSection(sym.Shndx)
		if shdr == nil {
			malformed("symbol %q refers to missing section %s", sym.Name, sym.Shndx)
			continue
		}
		if sym.Size > shdr.Size || sym.Value > shdr.Size-sym.Size {
			malformed("symbol %q of %d lines at %d outside %s of %d lines", sym.Name, sym.Size, sym.Value, shdr.Name, shdr.Size)
		}
	}

	for _, section := range []string{SectionText, SectionData} {
		relocs := obj.Relocs(section)
		if len(relocs) == 0 {
			continue
		}
		shdr := obj.FindSection(section)
		if shdr == nil {
			malformed("relocations for missing section %s", section)
			continue
		}
		lines := obj.SectionLines(shdr)
		for _, rel := range relocs {
			if int(rel.Sym) >= len(obj.Symbols) {
				malformed("%s relocation at row %d refers to symbol %d of %d", section, rel.Row, rel.Sym, len(obj.Symbols))
			}
			if rel.Row >= uint64(len(lines)) {
				malformed("%s relocation row %d outside section of %d lines", section, rel.Row, shdr.Size)
				continue
			}
			if f := (Field{Col: rel.Col, Width: HexWidth}); !f.Fits(lines[rel.Row]) {
				malformed("%s relocation at row %d: column %d leaves no room for a %d column literal", section, rel.Row, rel.Col, HexWidth)
			}
		}
	}

	return errs.ErrorOrNil()
}
