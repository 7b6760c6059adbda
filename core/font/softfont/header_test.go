package softfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/softfont/synth"
)

func expectCode(t *testing.T, what string, err error, code int) {
	t.Helper()
	if core.Code(err) != code {
		t.Errorf("%s: expected error code %d, have %d (%v)", what, code, core.Code(err), err)
	}
}

func TestPCLBitmapHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	data := synth.PCLHeader(synth.HeaderSpec{Format: 0, Name: "Sample", Pitch: 120, Height: 200})
	if len(data) != 64 {
		t.Fatalf("expected synthesized header of 64 bytes, have %d", len(data))
	}
	res, err := ParsePCLHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	h := res.Header
	if h.Technology != font.Bitmap || h.Dialect != font.PCL5 {
		t.Errorf("expected PCL5 bitmap font, have %s %s", h.Dialect, h.Technology)
	}
	if h.ResolutionX != 300 || h.ResolutionY != 300 {
		t.Errorf("expected default resolution of 300dpi, have %d×%d", h.ResolutionX, h.ResolutionY)
	}
	if h.PitchCP != 720 {
		t.Errorf("expected pitch of 720cp, have %d", h.PitchCP)
	}
	if h.Height4ths != 48 {
		t.Errorf("expected height of 48 quarter points, have %d", h.Height4ths)
	}
	if h.Name != "Sample" || h.SymbolSet != 277 {
		t.Errorf("unexpected name %q or symbol set %d", h.Name, h.SymbolSet)
	}
	if res.Glyphs().Len() != 0 || res.Storage != font.Temporary {
		t.Errorf("expected empty temporary font")
	}
	data[48] = 'X'
	if h.Raw[48] != 'S' {
		t.Errorf("header must own a copy of the block")
	}
}

func TestPCLResolutionBitmapHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	data := synth.PCLHeader(synth.HeaderSpec{Format: 20, ResX: 600, ResY: 600, Pitch: 240, Height: 400})
	res, err := ParsePCLHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if res.Header.ResolutionX != 600 || res.Header.PitchCP != 720 || res.Header.Height4ths != 48 {
		t.Errorf("unexpected metrics %+v", res.Header)
	}
	if _, err = ParsePCLHeader(data[:64]); err == nil {
		// 64 bytes are enough for the common part, not for the resolution
		t.Errorf("expected truncated resolution header to fail")
	}
	expectCode(t, "truncated resolution header", err, core.ERANGE)
	data[65], data[64] = 0, 0
	_, err = ParsePCLHeader(data)
	expectCode(t, "zero resolution", err, core.EINVALIDFONT)
}

func TestPCLHeaderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	data := synth.PCLHeader(synth.HeaderSpec{Format: 0})
	_, err := ParsePCLHeader(data[:63])
	expectCode(t, "short header", err, core.ERANGE)
	for _, f := range []byte{1, 9, 12, 14, 17, 21, 255} {
		data[2] = f
		_, err = ParsePCLHeader(data)
		expectCode(t, "unknown format", err, core.EINVALIDFONT)
	}
}

func TestPCLTrueTypeHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	for _, format := range []uint8{15, 16} {
		data := synth.PCLHeader(synth.HeaderSpec{Format: format, Name: "Arial", Pitch: 1229,
			UnitsPerEm: 2048, LastCode: 500, FSType: 0x0002, WithOS2: true})
		res, err := ParsePCLHeader(data)
		if err != nil {
			t.Fatalf("format %d: %v", format, err)
		}
		h := res.Header
		if h.Technology != font.TrueType || h.UnitsPerEm != 2048 {
			t.Errorf("format %d: expected TrueType with 2048 units per em, have %s/%d",
				format, h.Technology, h.UnitsPerEm)
		}
		if h.PitchCP != 60 {
			t.Errorf("format %d: expected pitch 60cp, have %d", format, h.PitchCP)
		}
		if !h.HasFSType || h.FSType != 0x0002 {
			t.Errorf("format %d: expected fsType 2", format)
		}
		if res.Glyphs().Capacity() != 300 {
			t.Errorf("format %d: expected glyph capacity clamped to 300, have %d", format,
				res.Glyphs().Capacity())
		}
		if _, ok := h.Segment(font.SegmentGlobalTrueType); !ok {
			t.Errorf("format %d: expected GT segment to be recorded", format)
		}
	}
	data := synth.PCLHeader(synth.HeaderSpec{Format: 15, LastCode: 3, ScaleFactor: 1000})
	res, err := ParsePCLHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if res.Header.UnitsPerEm != 1000 || res.Glyphs().Capacity() != 20 {
		t.Errorf("expected scale factor as units per em and capacity 20, have %d/%d",
			res.Header.UnitsPerEm, res.Glyphs().Capacity())
	}
}

func TestPCLTrueTypeHeaderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	good := func() []byte {
		return synth.PCLHeader(synth.HeaderSpec{Format: 15, UnitsPerEm: 1024})
	}
	data := good()
	data[70] = 254
	_, err := ParsePCLHeader(data)
	expectCode(t, "bitmap technology", err, core.EINVALIDFONT)
	data = good()
	data[71] = 1
	_, err = ParsePCLHeader(data)
	expectCode(t, "variety", err, core.EINVALIDFONT)
	data = good()
	data[72], data[73] = 'X', 'X' // rename GT segment
	_, err = ParsePCLHeader(data)
	expectCode(t, "missing GT", err, core.EINVALIDFONT)
	data = good()
	data[74], data[75] = 0xff, 0xff // GT size overruns block
	_, err = ParsePCLHeader(data)
	expectCode(t, "segment overrun", err, core.EINVALIDFONT)
	data = good()
	_, err = ParsePCLHeader(append(data[:len(data)-6], 0, 0))
	expectCode(t, "missing null segment", err, core.EINVALIDFONT)
	data = good()
	data[0], data[1] = 0, 10
	_, err = ParsePCLHeader(data)
	expectCode(t, "descriptor size", err, core.EINVALIDFONT)
	data = synth.PCLHeader(synth.HeaderSpec{Format: 15})
	_, err = ParsePCLHeader(data)
	expectCode(t, "units per em", err, core.EINVALIDFONT)
}

func TestPCLIntellifontHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	res, err := ParsePCLHeader(synth.PCLHeader(synth.HeaderSpec{Format: 11, Pitch: 8782}))
	if err != nil {
		t.Fatal(err)
	}
	h := res.Header
	if h.Technology != font.Intellifont || h.Bound() {
		t.Errorf("expected unbound Intellifont font")
	}
	if h.Complement != [8]byte{0, 0, 0, 0, 0, 0, 0, 7} {
		t.Errorf("expected zero complement to be replaced, have %v", h.Complement)
	}
	if h.PitchCP != 100 {
		t.Errorf("expected pitch of 100cp, have %d", h.PitchCP)
	}
	c := [8]byte{0xff, 0, 0, 0, 0, 0, 0, 0xfe}
	res, _ = ParsePCLHeader(synth.PCLHeader(synth.HeaderSpec{Format: 11, Complement: c}))
	if res.Header.Complement != c {
		t.Errorf("expected complement to be kept, have %v", res.Header.Complement)
	}
	short := synth.PCLHeader(synth.HeaderSpec{Format: 11})[:80]
	_, err = ParsePCLHeader(short)
	expectCode(t, "short unbound header", err, core.ERANGE)
	res, err = ParsePCLHeader(synth.PCLHeader(synth.HeaderSpec{Format: 10}))
	if err != nil || !res.Header.Bound() {
		t.Errorf("expected bound Intellifont font, have %v", err)
	}
}

func TestPXLHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	data := synth.PXLHeader(font.Bitmap, 5, synth.HeaderSpec{ResX: 600, ResY: 300})
	res, err := ParsePXLHeader([]byte("Bitmap01"), data)
	if err != nil {
		t.Fatal(err)
	}
	h := res.Header
	if h.Technology != font.Bitmap || h.ResolutionX != 600 || h.ResolutionY != 300 {
		t.Errorf("expected 600×300 bitmap font, have %s %d×%d", h.Technology, h.ResolutionX, h.ResolutionY)
	}
	if h.Name != "Bitmap01" || res.Glyphs().Capacity() != 5 {
		t.Errorf("unexpected name %q or capacity %d", h.Name, res.Glyphs().Capacity())
	}
	data = synth.PXLHeader(font.TrueType, 1000, synth.HeaderSpec{UnitsPerEm: 2048})
	res, err = ParsePXLHeader([]byte("Arial"), data)
	if err != nil {
		t.Fatal(err)
	}
	if res.Header.UnitsPerEm != 2048 || res.Glyphs().Capacity() != 300 {
		t.Errorf("expected 2048 units per em and capacity 300, have %d/%d",
			res.Header.UnitsPerEm, res.Glyphs().Capacity())
	}
}

func TestPXLHeaderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	tt := func() []byte {
		return synth.PXLHeader(font.TrueType, 10, synth.HeaderSpec{UnitsPerEm: 2048})
	}
	bm := func() []byte {
		return synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{})
	}
	name := []byte("F")
	_, err := ParsePXLHeader(name, bm()[:19])
	expectCode(t, "short header", err, core.EFONTDATA)
	for _, i := range []int{0, 5} {
		data := tt()
		data[i] = 1
		_, err = ParsePXLHeader(name, data)
		expectCode(t, "format/variety", err, core.EHEADERFIELDS)
	}
	data := tt()
	data[4] = 3
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "technology", err, core.EHEADERFIELDS)
	data = tt()
	data[1] = 1
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "TrueType orientation", err, core.EHEADERFIELDS)
	data = bm()
	data[1] = 3
	if _, err = ParsePXLHeader(name, data); err != nil {
		t.Errorf("expected orientation 3 to be legal for bitmap fonts, have %v", err)
	}
	data[1] = 4
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "bitmap orientation", err, core.EHEADERFIELDS)
	data = bm()
	data[4] = byte(font.TrueType)
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "BR segment in TrueType font", err, core.EBRSEGMENT)
	data = tt()
	data[8], data[9] = 'X', 'X'
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "missing GT", err, core.EMISSINGSEGMENT)
	data = tt()
	_, err = ParsePXLHeader(name, data[:len(data)-6])
	expectCode(t, "missing null segment", err, core.EMISSINGSEGMENT)
	data = append(tt(), 0)
	data[len(data)-2] = 1 // null segment of size 1
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "null segment size", err, core.ENULLSEGMENT)
	data = tt()
	data[10] = 0x7f // GT size overruns block
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "segment overrun", err, core.ESEGMENT)
	data = tt()
	data[14+5] = 50 // number of tables in GT table directory
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "GT table directory", err, core.EGTSEGMENT)
	data = bm()
	data[14+3] = 0 // x resolution
	data[14+2] = 0
	_, err = ParsePXLHeader(name, data)
	expectCode(t, "zero resolution", err, core.EBRSEGMENT)
}

func TestPrefixCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	pxl := PrefixCheck(font.PCLXL)
	if err := pxl(synth.PXLHeader(font.TrueType, 1, synth.HeaderSpec{})[:PrefixSize]); err != nil {
		t.Errorf("expected valid prefix, have %v", err)
	}
	bad := synth.PXLHeader(font.TrueType, 1, synth.HeaderSpec{})[:PrefixSize]
	bad[5] = 9
	expectCode(t, "PCL XL prefix", pxl(bad), core.EHEADERFIELDS)
	pcl := PrefixCheck(font.PCL5)
	hdr := synth.PCLHeader(synth.HeaderSpec{Format: 16})
	if err := pcl(hdr[:PrefixSize]); err != nil {
		t.Errorf("expected valid prefix, have %v", err)
	}
	hdr[2] = 99
	expectCode(t, "PCL prefix", pcl(hdr[:PrefixSize]), core.EINVALIDFONT)
}
