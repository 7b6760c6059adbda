/*
Package synth synthesizes well-formed soft-font blocks.

Print jobs carrying soft fonts are rarely at hand when one needs them. This
package builds minimal, but structurally valid, font headers and character
blocks for both dialects. Callers may then corrupt single fields to
provoke validation errors.

	hdr := synth.PCLHeader(synth.HeaderSpec{Format: 0, Name: "Sample"})
	chr := synth.PCLBitmapChar(8, 8)
*/
package synth

import (
	"encoding/binary"

	"github.com/npillmayer/softfont/core/font"
)

// HeaderSpec describes a font header to synthesize. Zero fields get
// reasonable defaults.
type HeaderSpec struct {
	Format       uint8 // PCL5 header format: 0, 10, 11, 15, 16 or 20
	Name         string
	SymbolSet    uint16 // default 277 (Roman-8)
	Spacing      uint8
	Style        uint16
	StrokeWeight int8
	Typeface     uint16
	SerifStyle   uint8
	Pitch        uint16 // quarter dots (bitmap) or design units (scalable)
	Height       uint16 // quarter dots (bitmap)
	LastCode     uint16
	ResX, ResY   uint16 // resolution bitmaps only, default 300×300
	UnitsPerEm   uint16 // TrueType head table; 0 omits the head table
	ScaleFactor  uint16 // TrueType scale factor at offset 64
	FSType       uint16 // OS/2 fsType
	WithOS2      bool   // include an OS/2 table
	Complement   [8]byte
}

const (
	defaultSymbolSet = 277
)

var be = binary.BigEndian

// PCLHeader creates a PCL5 font header block ("ESC ) s # W" payload).
func PCLHeader(s HeaderSpec) []byte {
	size := 64
	switch s.Format {
	case 20:
		size = 68
	case 10:
		size = 80
	case 11:
		size = 88
	case 15, 16:
		size = 72
	}
	b := make([]byte, size)
	be.PutUint16(b[0:], uint16(size))
	b[2] = s.Format
	b[3] = byte(font.Type8Bit)
	b[4] = byte(s.Style >> 8)
	b[13] = s.Spacing
	ss := s.SymbolSet
	if ss == 0 {
		ss = defaultSymbolSet
	}
	be.PutUint16(b[14:], ss)
	be.PutUint16(b[16:], s.Pitch)
	be.PutUint16(b[18:], s.Height)
	b[23] = byte(s.Style)
	b[24] = byte(s.StrokeWeight)
	b[25] = byte(s.Typeface)
	b[26] = byte(s.Typeface >> 8)
	b[27] = s.SerifStyle
	be.PutUint16(b[38:], s.LastCode)
	name := make([]byte, 16)
	for i := range name {
		name[i] = ' '
	}
	copy(name, s.Name)
	copy(b[48:], name)
	switch s.Format {
	case 20:
		x, y := resolution(s)
		be.PutUint16(b[64:], x)
		be.PutUint16(b[66:], y)
	case 11:
		copy(b[78:], s.Complement[:])
	case 15, 16:
		be.PutUint16(b[64:], s.ScaleFactor)
		b[70] = byte(font.TrueType)
		b[71] = 0
		gt := GlobalTrueType(s.UnitsPerEm, s.FSType, s.WithOS2)
		b = append(b, Segment(font.SegmentGlobalTrueType, gt, s.Format == 16)...)
		b = append(b, Segment(font.SegmentNull, nil, s.Format == 16)...)
		b = append(b, 0, 0) // reserved, checksum
	}
	return b
}

func resolution(s HeaderSpec) (uint16, uint16) {
	if s.ResX == 0 || s.ResY == 0 {
		return 300, 300
	}
	return s.ResX, s.ResY
}

// Segment creates a segment with a 2-byte ID and a 2- or 4-byte size.
func Segment(id uint16, payload []byte, large bool) []byte {
	var b []byte
	b = be.AppendUint16(b, id)
	if large {
		b = be.AppendUint32(b, uint32(len(payload)))
	} else {
		b = be.AppendUint16(b, uint16(len(payload)))
	}
	return append(b, payload...)
}

// GlobalTrueType creates the payload of a GT segment: a table directory
// with a 'head' table (if unitsPerEm > 0) and an optional 'OS/2' table.
func GlobalTrueType(unitsPerEm, fsType uint16, withOS2 bool) []byte {
	type table struct {
		tag  string
		data []byte
	}
	var tables []table
	if unitsPerEm > 0 {
		head := make([]byte, 54)
		be.PutUint32(head[0:], 0x00010000)
		be.PutUint32(head[12:], 0x5F0F3CF5) // magic
		be.PutUint16(head[18:], unitsPerEm)
		tables = append(tables, table{"head", head})
	}
	if withOS2 {
		os2 := make([]byte, 78)
		be.PutUint16(os2[8:], fsType)
		tables = append(tables, table{"OS/2", os2})
	}
	var b []byte
	b = be.AppendUint32(b, 0x00010000)
	b = be.AppendUint16(b, uint16(len(tables)))
	b = append(b, make([]byte, 6)...)
	off := 12 + 16*len(tables)
	for _, t := range tables {
		b = append(b, t.tag...)
		b = be.AppendUint32(b, 0) // checksum
		b = be.AppendUint32(b, uint32(off))
		b = be.AppendUint32(b, uint32(len(t.data)))
		off += len(t.data)
	}
	for _, t := range tables {
		b = append(b, t.data...)
	}
	return b
}

// PCLBitmapChar creates an uncompressed (class 1) PCL5 bitmap character of
// a given size, with a checkerboard raster.
func PCLBitmapChar(width, height int) []byte {
	b := pclBitmapCharHeader(width, height, 1)
	wb := (width + 7) / 8
	for y := 0; y < height; y++ {
		for x := 0; x < wb; x++ {
			if y%2 == 0 {
				b = append(b, 0xaa)
			} else {
				b = append(b, 0x55)
			}
		}
	}
	return b
}

// PCLCompressedChar creates a compressed (class 2) PCL5 bitmap character.
// Every row is given as a repeat count followed by alternating white and
// black run lengths.
func PCLCompressedChar(width, height int, rows ...[]byte) []byte {
	b := pclBitmapCharHeader(width, height, 2)
	for _, r := range rows {
		b = append(b, r...)
	}
	return b
}

func pclBitmapCharHeader(width, height int, class byte) []byte {
	b := make([]byte, 16)
	b[0] = 4  // format
	b[1] = 0  // continuation
	b[2] = 14 // descriptor size
	b[3] = class
	be.PutUint16(b[10:], uint16(width))
	be.PutUint16(b[12:], uint16(height))
	be.PutUint16(b[14:], uint16(width*4))
	return b
}

// PCLIntellifontContour creates a non-compound (class 3) Intellifont
// character of a total size with the given offsets. The data size field is
// set to size-6.
func PCLIntellifontContour(size int, contour, metric, outline, xy uint16) []byte {
	if size < 14 {
		size = 14
	}
	b := make([]byte, size)
	b[0], b[2], b[3] = 10, 2, 3
	be.PutUint16(b[4:], uint16(size-6))
	be.PutUint16(b[6:], contour)
	be.PutUint16(b[8:], metric)
	be.PutUint16(b[10:], outline)
	be.PutUint16(b[12:], xy)
	return b
}

// PCLIntellifontCompound creates a compound (class 4) Intellifont character
// with n components.
func PCLIntellifontCompound(n int) []byte {
	b := make([]byte, 8+6*n+2)
	b[0], b[2], b[3] = 10, 2, 4
	b[6] = byte(n)
	return b
}

// PCLTrueTypeChar creates a PCL5 TrueType character block.
func PCLTrueTypeChar(glyphID uint16, glyph []byte) []byte {
	b := []byte{15, 0, 2, 15}
	b = be.AppendUint16(b, uint16(4+len(glyph)))
	b = be.AppendUint16(b, glyphID)
	return append(b, glyph...)
}

// PXLHeader creates a PCL XL font header of a scaling technology.
// Bitmap fonts carry a BR segment with the given resolution, TrueType fonts
// a GT segment.
func PXLHeader(fst font.Technology, numChars uint16, s HeaderSpec) []byte {
	b := make([]byte, 8)
	ss := s.SymbolSet
	if ss == 0 {
		ss = defaultSymbolSet
	}
	be.PutUint16(b[2:], ss)
	b[4] = byte(fst)
	be.PutUint16(b[6:], numChars)
	switch fst {
	case font.Bitmap:
		br := make([]byte, 6)
		x, y := resolution(s)
		be.PutUint16(br[2:], x)
		be.PutUint16(br[4:], y)
		b = append(b, Segment(font.SegmentBitmapResolution, br, true)...)
	case font.TrueType:
		gt := GlobalTrueType(s.UnitsPerEm, s.FSType, s.WithOS2)
		b = append(b, Segment(font.SegmentGlobalTrueType, gt, true)...)
	}
	return append(b, Segment(font.SegmentNull, nil, true)...)
}

// PXLBitmapChar creates a PCL XL bitmap character of a given size.
func PXLBitmapChar(width, height int) []byte {
	b := make([]byte, 10, 10+(width+7)/8*height)
	be.PutUint16(b[6:], uint16(width))
	be.PutUint16(b[8:], uint16(height))
	for i := 0; i < (width+7)/8*height; i++ {
		b = append(b, 0xff)
	}
	return b
}

// PXLTrueTypeChar creates a PCL XL TrueType character block.
func PXLTrueTypeChar(glyphID uint16, glyph []byte) []byte {
	b := []byte{1, 0}
	b = be.AppendUint16(b, uint16(4+len(glyph)))
	b = be.AppendUint16(b, glyphID)
	return append(b, glyph...)
}
