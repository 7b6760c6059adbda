package softfont

import (
	"github.com/npillmayer/softfont/core"
)

// maxRasterBytes bounds the decoded raster of a compressed bitmap character.
// Width and height come from a 16-byte header; without a bound a tiny block
// could request gigabytes.
const maxRasterBytes = 1 << 24

// decodeRLE decodes a PCL5 class 2 (compressed) bitmap character.
// The first hdr bytes are copied verbatim. Each row of the compressed data
// starts with a repeat count, followed by run lengths of alternating white
// and black pixels, starting with white. The row is then replicated repeat
// count times. A run exceeding the rest of the row is an error.
func decodeRLE(data []byte, hdr, width, height int) ([]byte, error) {
	wb := (width + 7) >> 3
	if wb*height > maxRasterBytes {
		return nil, core.Error(core.EMEMORY, "bitmap of %d×%d pixels too large", width, height)
	}
	out := make([]byte, hdr+wb*height)
	copy(out, data[:hdr])
	src, end := hdr, len(data)
	y := 0
	for src < end && y < height {
		reps := int(data[src])
		src++
		row := out[hdr+y*wb : hdr+(y+1)*wb]
		x, black := 0, false
		for src < end && x < width {
			rlen := int(data[src])
			src++
			if rlen > width-x {
				return nil, errRange("compressed bitmap: row %d overrun at x=%d by run of %d",
					y, x, rlen)
			}
			if black {
				for ; rlen > 0; rlen-- {
					row[x>>3] |= 0x80 >> (x & 7)
					x++
				}
			} else {
				x += rlen
			}
			black = !black
		}
		y++
		for ; reps > 0 && y < height; reps, y = reps-1, y+1 {
			copy(out[hdr+y*wb:hdr+(y+1)*wb], row)
		}
	}
	return out, nil
}
