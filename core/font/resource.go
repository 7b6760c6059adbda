package font

// Resource is a validated soft font: its header summary, its glyph table
// and its lifetime class. Resources are created by the validators of package
// softfont only after a header block passed validation; glyphs are added
// one at a time with AddGlyph.
type Resource struct {
	Header           *Header
	Storage          Storage
	DataArePermanent bool // header bytes are owned by someone else (ROM, disk)
	RegistryNumber   int  // number assigned by a permanent-font registry, or -1
	glyphs           *GlyphTable
	selections       int
}

// NewResource creates a temporary resource for a validated header and an
// empty glyph table. If glyphs is nil, a table of minimum capacity is used.
func NewResource(h *Header, glyphs *GlyphTable) *Resource {
	if glyphs == nil {
		glyphs = NewGlyphTable(0)
	}
	return &Resource{
		Header:         h,
		Storage:        Temporary,
		RegistryNumber: -1,
		glyphs:         glyphs,
	}
}

// Technology returns the scaling technology of the font.
func (r *Resource) Technology() Technology {
	return r.Header.Technology
}

// Glyphs returns the read-only view of the glyph table.
func (r *Resource) Glyphs() *GlyphTable {
	return r.glyphs
}

// AddGlyph inserts a validated glyph, replacing a glyph with the same code.
// If the glyph table cannot hold the glyph, an error with code EOVERFLOW is
// returned and the table is left unchanged.
func (r *Resource) AddGlyph(g *Glyph) (replaced bool, err error) {
	if replaced, err = r.glyphs.add(g); err != nil {
		T().Errorf("font %q: %v", r.Header.Name, err)
		return
	}
	T().Debugf("font %q: glyph %d added (%s), %d glyphs", r.Header.Name, g.Code,
		g.Technology, r.glyphs.Len())
	return
}

// RemoveGlyph deletes the glyph for a character code.
func (r *Resource) RemoveGlyph(code uint16) bool {
	return r.glyphs.remove(code)
}

// Clone returns a deep copy of the resource as a temporary font. The copy
// is not referenced by any selection.
func (r *Resource) Clone() *Resource {
	h := *r.Header
	h.Raw = append([]byte(nil), r.Header.Raw...)
	h.Segments = append([]Segment(nil), r.Header.Segments...)
	return &Resource{
		Header:         &h,
		Storage:        Temporary,
		RegistryNumber: -1,
		glyphs:         r.glyphs.clone(),
	}
}

// AttachSelection records that a selection slot refers to this resource.
func (r *Resource) AttachSelection() {
	r.selections++
}

// DetachSelection removes a selection reference.
func (r *Resource) DetachSelection() {
	if r.selections > 0 {
		r.selections--
	}
}

// Selections returns the number of selection slots referring to the resource.
func (r *Resource) Selections() int {
	return r.selections
}
