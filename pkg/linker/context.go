package linker

import (
	"github.com/go-kit/log"
)

type ContextArgs struct {
	Output string
	Config Config
}

// Context holds the state of a single link. Nothing in it outlives Link.
type Context struct {
	Args   ContextArgs
	Logger log.Logger
	Objs   []*ObjectFile

	// Symbols is the resolution map in insertion order. SymbolMap indexes its
	// global and weak entries by name.
	Symbols   []*Symbol
	SymbolMap map[string]*Symbol

	// Per input file: the surviving entries it owns, sorted by symbol index,
	// and the strong definitions that lost to another file.
	FileSymbols [][]*Symbol
	Discarded   [][]*Symbol

	Ehdr   *OutputEhdr
	Shdr   *OutputShdr
	Symtab *OutputSymtab

	OutputSections []*OutputSection

	Chunks []Chunker
	Buf    []Line
}

func NewContext() *Context {
	return &Context{
		Args: ContextArgs{
			Output: "a.out",
			Config: DefaultConfig(),
		},
		Logger:    log.NewNopLogger(),
		SymbolMap: make(map[string]*Symbol),
	}
}
