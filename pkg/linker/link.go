package linker

import (
	"github.com/go-kit/log"
	"github.com/pkg/errors"
)

type Option func(*Context)

func WithConfig(cfg Config) Option {
	return func(ctx *Context) {
		ctx.Args.Config = cfg
	}
}

func WithLogger(logger log.Logger) Option {
	return func(ctx *Context) {
		ctx.Logger = logger
	}
}

// WithOutput names the merged image.
func WithOutput(name string) Option {
	return func(ctx *Context) {
		ctx.Args.Output = name
	}
}

// Link merges objs, in the given order, into one address-assigned image.
// The order is significant: when two candidates for a global name rank the
// same, the first one wins. On error no image is returned.
func Link(objs []*ObjectFile, opts ...Option) (*ObjectFile, error) {
	ctx := NewContext()
	for _, opt := range opts {
		opt(ctx)
	}

	if err := ctx.Args.Config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid linker config")
	}
	if err := ReadInputFiles(ctx, objs); err != nil {
		return nil, errors.Wrap(err, "reading input files")
	}
	if err := ResolveSymbols(ctx); err != nil {
		return nil, errors.Wrap(err, "symbol resolution")
	}
	if err := LayoutSections(ctx); err != nil {
		return nil, errors.Wrap(err, "section layout")
	}
	if err := MergeSections(ctx); err != nil {
		return nil, errors.Wrap(err, "merging sections")
	}
	if err := RelocateSymbols(ctx); err != nil {
		return nil, errors.Wrap(err, "relocation")
	}

	return ctx.Output(), nil
}

// Output builds the merged image from a finished link.
func (ctx *Context) Output() *ObjectFile {
	out := NewObjectFile(ctx.Args.Output)
	out.Lines = ctx.Buf
	for _, chunk := range ctx.Chunks {
		if IsSection(chunk) {
			out.Sections = append(out.Sections, *chunk.GetShdr())
		}
	}
	out.Symbols = ctx.Symtab.Syms
	return out
}
