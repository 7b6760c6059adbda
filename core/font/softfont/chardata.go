package softfont

import (
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
)

// PCL5 character formats (byte 0 of a character block).
const (
	pclCharBitmap      = 4
	pclCharIntellifont = 10
	pclCharTrueType    = 15
)

// PCL5 character classes (byte 3).
const (
	classBitmap           = 1
	classCompressedBitmap = 2
	classContour          = 3
	classCompound         = 4
)

const (
	pclBitmapCharHeader = 16 // 4 bytes format/class + 12 bytes descriptor
	pxlBitmapCharHeader = 10
)

// AddPCLCharacter validates a PCL5 character block and adds the character
// to the glyph table of res under code. On error the glyph table remains
// unchanged.
func AddPCLCharacter(res *font.Resource, code uint16, data []byte) error {
	g, err := pclCharacter(res.Header, code, data)
	if err != nil {
		tracer().Debugf("PCL character %d rejected: %v", code, err)
		return err
	}
	_, err = res.AddGlyph(g)
	return err
}

func pclCharacter(h *font.Header, code uint16, data []byte) (*font.Glyph, error) {
	count := len(data)
	if count < 4 || int(data[2]) > count-2 {
		return nil, errRange("character block of %d bytes, descriptor size %d", count, desc(data))
	}
	if data[1] != 0 {
		return nil, core.Error(core.EUNIMPLEMENTED, "character continuation blocks are not supported")
	}
	g := &font.Glyph{Code: code, Technology: h.Technology, Format: data[0], Class: data[3]}
	b := binarySegm(data)
	switch data[0] {
	case pclCharBitmap:
		if data[2] != 14 || h.Technology != font.Bitmap {
			return nil, errRange("bitmap character for %s font, descriptor size %d", h.Technology, data[2])
		}
		m := &font.BitmapMetrics{
			LeftOffset: int16(u16(b[6:])),
			TopOffset:  int16(u16(b[8:])),
			Width:      u16(b[10:]),
			Height:     u16(b[12:]),
			DeltaX:     int16(u16(b[14:])),
		}
		g.Bitmap = m
		switch data[3] {
		case classBitmap:
			if count != pclBitmapCharHeader+m.RowBytes()*int(m.Height) {
				return nil, errRange("bitmap character %d×%d has %d bytes", m.Width, m.Height, count)
			}
			g.Data = append([]byte(nil), data...)
		case classCompressedBitmap:
			raster, err := decodeRLE(data, pclBitmapCharHeader, int(m.Width), int(m.Height))
			if err != nil {
				return nil, err
			}
			raster[3] = classBitmap
			g.Data, g.Class = raster, classBitmap
		default:
			return nil, errRange("bitmap character class %d", data[3])
		}
	case pclCharIntellifont:
		if data[2] != 2 || h.Technology != font.Intellifont {
			return nil, errRange("Intellifont character for %s font, descriptor size %d", h.Technology, data[2])
		}
		if err := intellifontCharacter(g, b); err != nil {
			return nil, err
		}
		g.Data = append([]byte(nil), data...)
	case pclCharTrueType:
		if h.Technology != font.TrueType {
			return nil, errRange("TrueType character for %s font", h.Technology)
		}
		// descriptor, then 2 bytes data size, 2 bytes glyph ID, glyph data
		start := 2 + int(data[2])
		size, err := b.u16(start)
		if err != nil || count < start+4 || count != start+int(size) {
			return nil, errRange("TrueType character of %d bytes, declared data size %d", count, size)
		}
		g.GlyphID = u16(b[start+2:])
		g.Data = append([]byte(nil), data...)
	default:
		return nil, errRange("character format %d", data[0])
	}
	return g, nil
}

func desc(data []byte) int {
	if len(data) > 2 {
		return int(data[2])
	}
	return -1
}

// intellifontCharacter checks the structure of an Intellifont character.
func intellifontCharacter(g *font.Glyph, b binarySegm) error {
	count := len(b)
	switch b[3] {
	case classContour:
		if count < 14 {
			return errRange("Intellifont character of %d bytes", count)
		}
		dataSize := int(u16(b[4:]))
		contour, metric := int(u16(b[6:])), int(u16(b[8:]))
		outline, xy := int(u16(b[10:])), int(u16(b[12:]))
		// the contour data excludes 4 bytes of header and 2 bytes of checksum
		if dataSize != count-6 || contour < 10 || metric < contour ||
			outline < metric || xy < outline || xy > count-6 {
			return errRange("Intellifont character: size %d, offsets %d ≤ %d ≤ %d ≤ %d ≤ %d",
				dataSize, contour, metric, outline, xy, count-6)
		}
	case classCompound:
		if count < 8 {
			return errRange("Intellifont compound character of %d bytes", count)
		}
		// the number of components is a single byte
		n := int(b[6])
		if count != 8+n*6+2 {
			return errRange("Intellifont compound character with %d components has %d bytes", n, count)
		}
		g.Components = uint8(n)
	default:
		return errRange("Intellifont character class %d", b[3])
	}
	return nil
}

// AddPXLCharacter validates a PCL XL character block and adds the character
// to the glyph table of res under code. On error the glyph table remains
// unchanged.
func AddPXLCharacter(res *font.Resource, code uint16, data []byte) error {
	g, err := pxlCharacter(res.Header, code, data)
	if err != nil {
		tracer().Debugf("PCL XL character %d rejected: %v", code, err)
		return err
	}
	_, err = res.AddGlyph(g)
	return err
}

func pxlCharacter(h *font.Header, code uint16, data []byte) (*font.Glyph, error) {
	size := len(data)
	if size < 2 {
		return nil, core.Error(core.ECHARDATA, "character block of %d bytes", size)
	}
	g := &font.Glyph{Code: code, Technology: h.Technology, Format: data[0], Class: data[1]}
	b := binarySegm(data)
	switch data[0] {
	case 0: // bitmap
		if h.Technology != font.Bitmap {
			return nil, core.Error(core.EFSTMISMATCH, "bitmap character for %s font", h.Technology)
		}
		if data[1] != 0 {
			return nil, core.Error(core.ECHARCLASS, "bitmap character class %d", data[1])
		}
		if size < pxlBitmapCharHeader {
			return nil, core.Error(core.ECHARDATA, "bitmap character of %d bytes", size)
		}
		m := &font.BitmapMetrics{
			LeftOffset: int16(u16(b[2:])),
			TopOffset:  int16(u16(b[4:])),
			Width:      u16(b[6:]),
			Height:     u16(b[8:]),
		}
		if size != pxlBitmapCharHeader+m.RowBytes()*int(m.Height) {
			return nil, core.Error(core.ECHARDATA, "bitmap character %d×%d has %d bytes",
				m.Width, m.Height, size)
		}
		g.Bitmap = m
	case 1: // TrueType outline
		if h.Technology != font.TrueType {
			return nil, core.Error(core.EFSTMISMATCH, "TrueType character for %s font", h.Technology)
		}
		if data[1] != 0 {
			return nil, core.Error(core.ECHARCLASS, "TrueType character class %d", data[1])
		}
		if size < 6 || size != 2+int(u16(b[2:])) {
			return nil, core.Error(core.ECHARDATA, "TrueType character of %d bytes", size)
		}
		g.GlyphID = u16(b[4:])
	default:
		return nil, core.Error(core.ECHARFORMAT, "character format %d", data[0])
	}
	g.Data = append([]byte(nil), data...)
	return g, nil
}
