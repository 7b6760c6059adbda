package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/softfont/core"
	xfont "golang.org/x/image/font"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
		"Univers Light":                          {xfont.StyleNormal, xfont.WeightLight},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestClampCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	for declared, expected := range map[int]int{
		0: 20, 5: 20, 20: 20, 21: 21, 256: 256, 300: 300, 301: 300, 65535: 300, -1: 20,
	} {
		if c := NewGlyphTable(declared).Capacity(); c != expected {
			t.Errorf("declared %d: expected capacity %d, have %d", declared, expected, c)
		}
	}
	if c := NewCappedGlyphTable(5).Capacity(); c != 5 {
		t.Errorf("expected capped table to keep small capacity 5, have %d", c)
	}
	if c := NewCappedGlyphTable(1000).Capacity(); c != 300 {
		t.Errorf("expected capped table to be capped at 300, have %d", c)
	}
}

func TestResourceGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	r := NewResource(&Header{Technology: Bitmap, Name: "Test"}, NewGlyphTable(2))
	if r.Storage != Temporary || r.RegistryNumber != -1 {
		t.Errorf("expected new resource to be temporary and unregistered")
	}
	g := &Glyph{Code: 65, Technology: Bitmap, Data: []byte{4, 0, 14, 1},
		Bitmap: &BitmapMetrics{Width: 8, Height: 1}}
	if replaced, err := r.AddGlyph(g); replaced || err != nil {
		t.Errorf("first insertion must not report a replacement, err = %v", err)
	}
	if replaced, _ := r.AddGlyph(&Glyph{Code: 65, Technology: Bitmap}); !replaced {
		t.Errorf("second insertion for same code must report a replacement")
	}
	r.AddGlyph(g)
	c := r.Clone()
	c.Glyphs().glyphs[65].Data[0] = 99
	if g.Data[0] != 4 {
		t.Errorf("clone shares glyph data with original")
	}
	if !r.RemoveGlyph(65) || r.Glyphs().Len() != 0 {
		t.Errorf("expected glyph 65 to be removed")
	}
	if c.Glyphs().Len() != 1 {
		t.Errorf("removing from original must not affect clone")
	}
	if codes := c.Glyphs().Codes(); len(codes) != 1 || codes[0] != 65 {
		t.Errorf("expected codes [65], have %v", codes)
	}
}

func TestGlyphTableOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	r := NewResource(&Header{Technology: TrueType, Name: "Small"}, NewGlyphTable(0))
	r.glyphs.limit = 8
	if _, err := r.AddGlyph(&Glyph{Code: 1, Technology: TrueType, Data: make([]byte, 6)}); err != nil {
		t.Fatalf("glyph within limit rejected: %v", err)
	}
	_, err := r.AddGlyph(&Glyph{Code: 2, Technology: TrueType, Data: make([]byte, 3)})
	if core.Code(err) != core.EOVERFLOW {
		t.Errorf("expected EOVERFLOW, have %v", err)
	}
	if r.Glyphs().Len() != 1 || r.Glyphs().Size() != 6 {
		t.Errorf("failed insertion changed the table: %d glyphs, %d bytes",
			r.Glyphs().Len(), r.Glyphs().Size())
	}
	// replacing a glyph only counts the difference
	if replaced, err := r.AddGlyph(&Glyph{Code: 1, Technology: TrueType, Data: make([]byte, 8)}); !replaced || err != nil {
		t.Errorf("expected replacement within limit, have %v, %v", replaced, err)
	}
	r.RemoveGlyph(1)
	if r.Glyphs().Size() != 0 {
		t.Errorf("expected empty table to hold 0 bytes, has %d", r.Glyphs().Size())
	}
	if _, err := r.AddGlyph(&Glyph{Code: 2, Technology: TrueType, Data: make([]byte, 3)}); err != nil {
		t.Errorf("glyph rejected after removal: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	h := &Header{
		Technology:   Bitmap,
		Name:         "Courier",
		Spacing:      0,
		SerifStyle:   3,
		SymbolSet:    277,
		Style:        1,
		StrokeWeight: 3,
		PitchCP:      1200,
		Height4ths:   48,
	}
	d := Describe(h)
	for _, f := range []Flags{FixedPitch, Serif, Nonsymbolic, Italic, ForceBold} {
		if !d.Flags.Is(f) {
			t.Errorf("expected flag %#x to be set in %#x", f, d.Flags)
		}
	}
	if d.Flags.Is(Symbolic) || d.Flags.Is(Script) {
		t.Errorf("unexpected flags %#x", d.Flags)
	}
	if d.Style != xfont.StyleItalic || d.Weight != xfont.WeightBold {
		t.Errorf("expected bold italic, have style %d weight %d", d.Style, d.Weight)
	}
	if d.Pitch.Centipoints() != 1200 {
		t.Errorf("expected pitch of 12bp, have %s", d.Pitch)
	}
	h.SymbolSet, h.SerifStyle, h.Spacing = 621, 9, 1
	d = Describe(h)
	if !d.Flags.Is(Symbolic) || !d.Flags.Is(Script) || d.Flags.Is(FixedPitch) {
		t.Errorf("expected symbolic script font, have flags %#x", d.Flags)
	}
}

func TestDecodeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	raw := []byte{'C', 'a', 'f', 0xe9, ' ', ' ', 0, 'x'}
	if n := DecodeName(raw); n != "Café" {
		t.Errorf("expected Latin-1 name Café, have %q", n)
	}
}
