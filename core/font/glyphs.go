package font

import (
	"sort"

	"github.com/npillmayer/softfont/core"
)

// BitmapMetrics are the per-glyph metrics of a bitmap character, in dots.
type BitmapMetrics struct {
	LeftOffset int16
	TopOffset  int16
	Width      uint16
	Height     uint16
	DeltaX     int16 // escapement in quarter dots
}

// RowBytes is the number of bytes per bitmap row, i.e. ceil(width/8).
func (m BitmapMetrics) RowBytes() int {
	return (int(m.Width) + 7) / 8
}

// Glyph is a single character of a soft font.
//
// Data holds the complete character block as received, except for
// compressed bitmaps, which are stored decoded (Class is then 1).
type Glyph struct {
	Code       uint16
	Technology Technology
	Format     uint8 // character format byte of the block
	Class      uint8
	Data       []byte
	Bitmap     *BitmapMetrics // bitmap glyphs only
	GlyphID    uint16         // TrueType glyphs only
	Components uint8          // Intellifont compound glyphs only
}

// Bits returns the raster of a bitmap glyph, i.e. the data following the
// character header. It returns nil for outline glyphs.
func (g *Glyph) Bits(headerSize int) []byte {
	if g == nil || g.Bitmap == nil || headerSize > len(g.Data) {
		return nil
	}
	return g.Data[headerSize:]
}

// GlyphTable maps character codes to glyphs.
//
// The initial capacity is derived from a font header's declared character
// count and clamped, so that a header cannot make us allocate arbitrary
// amounts of memory up front. The table is mutated only through a
// Resource.
//
// The table grows past its initial capacity on demand, but the glyph data it
// holds may not exceed MaxGlyphTableSize bytes.
type GlyphTable struct {
	capacity int
	size     int // sum of glyph data lengths
	limit    int // 0 means MaxGlyphTableSize
	glyphs   map[uint16]*Glyph
}

// MaxGlyphTableSize is the upper bound of glyph data bytes per font.
const MaxGlyphTableSize = 64 << 20

// NewGlyphTable creates an empty glyph table for a declared number of
// characters. The capacity is clamped to [MinGlyphCapacity, MaxGlyphCapacity].
func NewGlyphTable(declared int) *GlyphTable {
	return &GlyphTable{
		capacity: ClampCapacity(declared),
		glyphs:   make(map[uint16]*Glyph, ClampCapacity(declared)),
	}
}

// NewCappedGlyphTable creates an empty glyph table with a capacity of at most
// MaxGlyphCapacity, but without a lower bound.
func NewCappedGlyphTable(declared int) *GlyphTable {
	if declared > MaxGlyphCapacity {
		declared = MaxGlyphCapacity
	} else if declared < 0 {
		declared = 0
	}
	return &GlyphTable{
		capacity: declared,
		glyphs:   make(map[uint16]*Glyph, declared),
	}
}

// ClampCapacity clamps a declared character count to the glyph table bounds.
func ClampCapacity(declared int) int {
	if declared < MinGlyphCapacity {
		return MinGlyphCapacity
	}
	if declared > MaxGlyphCapacity {
		return MaxGlyphCapacity
	}
	return declared
}

// Capacity returns the clamped initial capacity of the table.
func (gt *GlyphTable) Capacity() int {
	if gt == nil {
		return 0
	}
	return gt.capacity
}

// Len returns the number of glyphs in the table.
func (gt *GlyphTable) Len() int {
	if gt == nil {
		return 0
	}
	return len(gt.glyphs)
}

// Lookup finds the glyph for a character code.
func (gt *GlyphTable) Lookup(code uint16) (*Glyph, bool) {
	if gt == nil {
		return nil, false
	}
	g, ok := gt.glyphs[code]
	return g, ok
}

// Codes returns the character codes present in the table, sorted.
func (gt *GlyphTable) Codes() []uint16 {
	if gt == nil {
		return nil
	}
	codes := make([]uint16, 0, len(gt.glyphs))
	for c := range gt.glyphs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Size returns the number of glyph data bytes held by the table.
func (gt *GlyphTable) Size() int {
	if gt == nil {
		return 0
	}
	return gt.size
}

func (gt *GlyphTable) add(g *Glyph) (replaced bool, err error) {
	old, replaced := gt.glyphs[g.Code]
	size := gt.size + len(g.Data)
	if replaced {
		size -= len(old.Data)
	}
	limit := gt.limit
	if limit <= 0 {
		limit = MaxGlyphTableSize
	}
	if size > limit {
		return false, core.Error(core.EOVERFLOW, "glyph %d exceeds glyph table limit of %d bytes",
			g.Code, limit)
	}
	gt.glyphs[g.Code] = g
	gt.size = size
	return replaced, nil
}

func (gt *GlyphTable) remove(code uint16) bool {
	g, ok := gt.glyphs[code]
	if !ok {
		return false
	}
	gt.size -= len(g.Data)
	delete(gt.glyphs, code)
	return true
}

func (gt *GlyphTable) clone() *GlyphTable {
	c := &GlyphTable{
		capacity: gt.capacity,
		size:     gt.size,
		limit:    gt.limit,
		glyphs:   make(map[uint16]*Glyph, len(gt.glyphs)),
	}
	for code, g := range gt.glyphs {
		cg := *g
		cg.Data = append([]byte(nil), g.Data...)
		if g.Bitmap != nil {
			m := *g.Bitmap
			cg.Bitmap = &m
		}
		c.glyphs[code] = &cg
	}
	return c
}
