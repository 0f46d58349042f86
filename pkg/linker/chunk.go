package linker

type Chunker interface {
	GetName() string
	GetShdr() *SectionHeader
	UpdateShdr(ctx *Context)
	CopyBuf(ctx *Context) error
}

type Chunk struct {
	Shdr SectionHeader
	// Nobits chunks take address space but no lines of the buffer.
	Nobits bool
}

func NewChunk(name string) Chunk {
	return Chunk{
		Shdr: SectionHeader{Name: name},
	}
}

func (c *Chunk) GetName() string {
	return c.Shdr.Name
}

func (c *Chunk) GetShdr() *SectionHeader {
	return &c.Shdr
}

func (c *Chunk) UpdateShdr(ctx *Context) {}

// FileLines is the number of buffer lines a chunk occupies.
func FileLines(c Chunker) uint64 {
	if osec, ok := c.(*OutputSection); ok && osec.Nobits {
		return 0
	}
	return c.GetShdr().Size
}

// IsSection reports whether the chunk has a row in the section table.
func IsSection(c Chunker) bool {
	switch c.(type) {
	case *OutputSection, *OutputSymtab:
		return true
	}
	return false
}
