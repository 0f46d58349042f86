package linker

import (
	"tinyld/pkg/utils"
)

// OutputShdr is the section table: one row per section chunk.
type OutputShdr struct {
	Chunk
}

func NewOutputShdr() *OutputShdr {
	return &OutputShdr{}
}

func (o *OutputShdr) UpdateShdr(ctx *Context) {
	n := uint64(0)
	for _, chunk := range ctx.Chunks {
		if IsSection(chunk) {
			n++
		}
	}

	o.Shdr.Size = n
}

func (o *OutputShdr) CopyBuf(ctx *Context) error {
	i := o.Shdr.Offset
	for _, chunk := range ctx.Chunks {
		if !IsSection(chunk) {
			continue
		}
		if err := writeRow(ctx, i, chunk.GetShdr().String()); err != nil {
			return err
		}
		i++
	}

	utils.Assert(i == o.Shdr.Offset+o.Shdr.Size)
	return nil
}

// writeRow stores a generated row, refusing rows wider than a line.
func writeRow(ctx *Context, i uint64, row string) error {
	if limit := ctx.Args.Config.MaxLineWidth; len(row) > limit {
		return &CapacityError{Limit: limit, What: "columns per line"}
	}
	ctx.Buf[i] = Line(row)
	return nil
}
