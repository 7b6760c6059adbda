/*
Package font is the data model for downloaded (soft) fonts.

There is a certain confusion in the nomenclature of printer fonts. We will
stick to the following definitions:

* A "font header" is the binary block a print job transmits to announce a
font. Its first bytes tell the "scaling technology", i.e. how glyphs of the
font are encoded: bitmaps, TrueType outlines or Intellifont outlines.

* A "character" (or glyph) is a second kind of binary block, transmitted
after the header. It is addressed by a character code and added to the
glyph table of a previously defined font.

* A "resource" is a validated font header together with its glyph table,
as it is stored in a font directory under a font ID.

Two page description languages feed this model, PCL5 and PCL XL. They
share the scaling technologies but disagree on byte layouts; see package
softfont for the decoders.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Technology is the scaling technology of a font, i.e. the encoding of
// its glyphs.
type Technology uint8

// Scaling technologies. The values are the wire values of the
// FontScalingTechnology byte of PCL5 and PCL XL font headers.
const (
	Intellifont Technology = 0
	TrueType    Technology = 1
	Bitmap      Technology = 254
)

func (t Technology) String() string {
	switch t {
	case Intellifont:
		return "Intellifont"
	case TrueType:
		return "TrueType"
	case Bitmap:
		return "Bitmap"
	}
	return fmt.Sprintf("Technology(%d)", uint8(t))
}

// Storage is the lifetime class of a font resource.
type Storage uint8

// Storage classes. Fonts downloaded by a job start out as Temporary and
// are removed on printer reset; Permanent fonts survive a reset.
const (
	Temporary Storage = iota
	Permanent
	Internal
	MassStorage
)

func (s Storage) String() string {
	switch s {
	case Temporary:
		return "temporary"
	case Permanent:
		return "permanent"
	case Internal:
		return "internal"
	case MassStorage:
		return "mass-storage"
	}
	return fmt.Sprintf("Storage(%d)", uint8(s))
}

// Dialect is the page description language a font block was written for.
type Dialect uint8

// Supported dialects.
const (
	PCL5 Dialect = iota
	PCLXL
)

func (d Dialect) String() string {
	if d == PCLXL {
		return "PCL XL"
	}
	return "PCL5"
}

// Type is the font type byte of a header: bound 7-bit, 8-bit, 16-bit.
type Type uint8

// Font types as defined by PCL.
const (
	Type7Bit  Type = 0
	Type8Bit  Type = 1
	TypePC8   Type = 2
	Type16Bit Type = 3
)

// Segment is a tagged, length-prefixed sub-block of a scalable font header.
// Offset and Size locate the segment's payload within Header.Raw.
type Segment struct {
	ID     uint16
	Offset int
	Size   int
}

// Segment IDs for the segments a font header may carry.
const (
	SegmentGlobalTrueType   uint16 = 'G'<<8 | 'T'
	SegmentGalleyCharacter  uint16 = 'G'<<8 | 'C'
	SegmentVerticalTx       uint16 = 'V'<<8 | 'T'
	SegmentBitmapResolution uint16 = 'B'<<8 | 'R'
	SegmentNull             uint16 = 0xffff
)

// Header is the structural summary of a font header block, tagged with its
// scaling technology. Fields not applicable to a technology stay zero.
type Header struct {
	Dialect      Dialect
	Technology   Technology
	Format       uint8  // header format (PCL5) or format byte (PCL XL)
	Variety      uint8  // must be 0 for all known fonts
	FontType     Type   // bound/unbound character set size
	Orientation  uint8  // 0–3
	SymbolSet    uint16 // PCL symbol set id, e.g. 277 = "8U"
	Spacing      uint8  // 0 = fixed, 1 = proportional
	Style        uint16 // PCL style word: posture, width, structure
	StrokeWeight int8   // -7 (ultra thin) … +7 (ultra black)
	Typeface     uint16
	SerifStyle   uint8
	ResolutionX  uint16 // bitmap fonts only
	ResolutionY  uint16
	UnitsPerEm   uint16  // TrueType fonts only
	Complement   [8]byte // Intellifont unbound fonts only
	NumChars     uint16  // declared character count, unclamped
	PitchCP      uint32  // pitch in centipoints (relative for scalable fonts)
	Height4ths   uint32  // height in quarter points (bitmap fonts)
	Name         string  // decoded font name
	FSType       uint16  // OS/2 embedding flags, if HasFSType
	HasFSType    bool
	Segments     []Segment
	Raw          []byte // the complete header block
}

// Bound is true for fonts with a bound character set, i.e. fonts which
// cannot be re-mapped to a different symbol set.
func (h *Header) Bound() bool {
	return h.Technology != Intellifont || h.Format != 11
}

// Segment returns the payload of the first segment with a given ID.
func (h *Header) Segment(id uint16) ([]byte, bool) {
	for _, s := range h.Segments {
		if s.ID == id {
			if s.Offset < 0 || s.Offset+s.Size > len(h.Raw) {
				return nil, false
			}
			return h.Raw[s.Offset : s.Offset+s.Size], true
		}
	}
	return nil, false
}

// Glyph capacity bounds. Declared character counts are clamped to bound
// the memory a hostile header may request.
const (
	MinGlyphCapacity = 20
	MaxGlyphCapacity = 300
)
