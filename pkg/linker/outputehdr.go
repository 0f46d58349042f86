package linker

import (
	"strconv"

	"tinyld/pkg/utils"
)

// OutputEhdr is the two header lines: total line count and section count.
type OutputEhdr struct {
	Chunk
}

func NewOutputEhdr() *OutputEhdr {
	return &OutputEhdr{
		Chunk{
			Shdr: SectionHeader{
				Size: HeaderLines,
			},
		},
	}
}

func (o *OutputEhdr) CopyBuf(ctx *Context) error {
	utils.Assert(o.Shdr.Offset+HeaderLines <= uint64(len(ctx.Buf)))

	ctx.Buf[o.Shdr.Offset] = Line(strconv.Itoa(len(ctx.Buf)))
	ctx.Buf[o.Shdr.Offset+1] = Line(strconv.FormatUint(ctx.Shdr.Shdr.Size, 10))
	return nil
}
