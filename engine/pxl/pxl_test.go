package pxl

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/download"
	"github.com/npillmayer/softfont/core/font/fontregistry"
	"github.com/npillmayer/softfont/core/font/softfont/synth"
	"github.com/npillmayer/softfont/engine/session"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PXLTestEnviron struct {
	suite.Suite
	st *State
}

// listen for 'go test' command --> run test methods
func TestPXLOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.pxl")
	defer teardown()
	suite.Run(t, new(PXLTestEnviron))
}

// run before each test method
func (env *PXLTestEnviron) SetupTest() {
	opts := session.DefaultOptions()
	opts.MaxDownload = 1 << 16
	env.st = NewState(session.New(opts))
}

func (env *PXLTestEnviron) download(name string, header []byte) {
	env.Require().NoError(env.st.BeginFontHeader([]byte(name)))
	src := NewSource(header)
	status, err := env.st.ReadFontHeader(len(header), src)
	env.Require().NoError(err)
	env.Require().Equal(download.Complete, status)
	env.Require().NoError(env.st.EndFontHeader())
}

func (env *PXLTestEnviron) lookup(name string) (*font.Resource, bool) {
	return env.st.Session().Fonts.Lookup(fontregistry.StringID([]byte(name)))
}

// --- Tests -----------------------------------------------------------------

func (env *PXLTestEnviron) TestHeaderInPieces() {
	header := synth.PXLHeader(font.TrueType, 100, synth.HeaderSpec{UnitsPerEm: 2048})
	env.Require().NoError(env.st.BeginFontHeader([]byte("Arial")))
	src := NewSource(nil)
	status, err := env.st.ReadFontHeader(len(header), src)
	env.Require().NoError(err)
	env.Equal(download.NeedMoreData, status, "no data available yet")
	for i := 0; i < len(header)-1; i++ {
		src.Supply(header[i : i+1])
		status, err = env.st.ReadFontHeader(len(header), src)
		env.Require().NoError(err)
		env.Require().Equal(download.NeedMoreData, status)
		env.Require().Equal(i+1, src.Position())
	}
	src.Supply(append(header[len(header)-1:], 0xc0))
	status, err = env.st.ReadFontHeader(len(header), src)
	env.Require().NoError(err)
	env.Equal(download.Complete, status)
	env.Equal(1, src.Available(), "next operator's data must be left")
	env.Equal(0, src.Position())
	_, ok := env.lookup("Arial")
	env.False(ok, "font under construction must not be in the directory")
	env.Require().NoError(env.st.EndFontHeader())
	res, ok := env.lookup("Arial")
	env.Require().True(ok)
	env.Equal(font.TrueType, res.Technology())
	env.Equal(uint16(2048), res.Header.UnitsPerEm)
	env.Equal(100, res.Glyphs().Capacity())
}

func (env *PXLTestEnviron) TestHeaderSplitAcrossOperators() {
	header := synth.PXLHeader(font.Bitmap, 500, synth.HeaderSpec{ResX: 600, ResY: 600})
	env.Require().NoError(env.st.BeginFontHeader([]byte("Split")))
	src := NewSource(header)
	status, err := env.st.ReadFontHeader(10, src)
	env.Require().NoError(err)
	env.Equal(download.Complete, status)
	status, err = env.st.ReadFontHeader(0, src)
	env.Require().NoError(err)
	env.Equal(download.Complete, status)
	status, err = env.st.ReadFontHeader(len(header)-10, src)
	env.Require().NoError(err)
	env.Equal(download.Complete, status)
	env.Require().NoError(env.st.EndFontHeader())
	res, ok := env.lookup("Split")
	env.Require().True(ok)
	env.Equal(uint16(600), res.Header.ResolutionX)
	env.Equal(300, res.Glyphs().Capacity(), "glyph capacity is capped")
}

func (env *PXLTestEnviron) TestHeaderErrors() {
	env.download("Taken", synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{}))
	err := env.st.BeginFontHeader([]byte("Taken"))
	env.Equal(core.EEXISTS, core.Code(err))
	//
	header := synth.PXLHeader(font.TrueType, 10, synth.HeaderSpec{UnitsPerEm: 1000})
	header[1] = 1 // orientation must be 0 for TrueType
	env.Require().NoError(env.st.BeginFontHeader([]byte("Broken")))
	_, err = env.st.ReadFontHeader(len(header), NewSource(header[:8]))
	env.Equal(core.EHEADERFIELDS, core.Code(err), "header fields must be checked after 8 bytes")
	err = env.st.EndFontHeader()
	env.Equal(core.EINVALID, core.Code(err), "rejected download must be dropped")
	_, ok := env.lookup("Broken")
	env.False(ok)
	//
	env.Require().NoError(env.st.BeginFontHeader([]byte("Short")))
	_, err = env.st.ReadFontHeader(100, NewSource([]byte{0, 0, 0, 0, 254, 0, 0, 10}))
	env.Require().NoError(err)
	err = env.st.EndFontHeader()
	env.Equal(core.EFONTDATA, core.Code(err))
	//
	env.Require().NoError(env.st.BeginFontHeader([]byte("Huge")))
	_, err = env.st.ReadFontHeader(1<<20, NewSource([]byte{0}))
	env.Equal(core.EMEMORY, core.Code(err))
	_, err = env.st.ReadFontHeader(10, NewSource([]byte{0}))
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *PXLTestEnviron) TestCharacters() {
	env.download("Bitmaps", synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{}))
	err := env.st.BeginChar([]byte("Nope"))
	env.Equal(core.EUNDEFINED, core.Code(err))
	env.Require().NoError(env.st.BeginChar([]byte("Bitmaps")))
	char := synth.PXLBitmapChar(12, 12)
	src := NewSource(char[:5])
	status, err := env.st.ReadChar('a', len(char), src)
	env.Require().NoError(err)
	env.Equal(download.NeedMoreData, status)
	src.Supply(char[5:])
	status, err = env.st.ReadChar('a', len(char), src)
	env.Require().NoError(err)
	env.Equal(download.Complete, status)
	_, err = env.st.ReadChar('b', 1, NewSource([]byte{0}))
	env.Equal(core.ECHARDATA, core.Code(err))
	tt := synth.PXLTrueTypeChar(5, []byte{1, 2, 3})
	_, err = env.st.ReadChar('c', len(tt), NewSource(tt))
	env.Equal(core.EFSTMISMATCH, core.Code(err))
	env.Require().NoError(env.st.EndChar())
	res, _ := env.lookup("Bitmaps")
	env.Equal(1, res.Glyphs().Len())
	_, err = env.st.ReadChar('d', len(char), NewSource(char))
	env.Equal(core.EINVALID, core.Code(err), "ReadChar after EndChar")
}

func (env *PXLTestEnviron) TestCharacterFontRemoved() {
	env.download("Gone", synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{}))
	env.Require().NoError(env.st.BeginChar([]byte("Gone")))
	env.Require().NoError(env.st.RemoveFont([]byte("Gone")))
	char := synth.PXLBitmapChar(8, 8)
	_, err := env.st.ReadChar('a', len(char), NewSource(char))
	env.Equal(core.EUNDEFINED, core.Code(err))
}

func (env *PXLTestEnviron) TestResidentFonts() {
	fonts := env.st.Session().Fonts
	for name, storage := range map[string]font.Storage{"Courier": font.Internal, "Disk": font.MassStorage} {
		env.download(name, synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{}))
		res, _ := env.lookup(name)
		res.Storage = storage
	}
	err := env.st.BeginChar([]byte("Courier"))
	env.Equal(core.EREPLACE, core.Code(err))
	env.Require().NoError(env.st.RemoveFont([]byte("Courier")))
	env.Require().NoError(env.st.RemoveFont([]byte("Disk")))
	env.Require().NoError(env.st.RemoveFont([]byte("Unknown")))
	env.Equal([]string{
		"InternalFontNotRemoved - Courier",
		"MassStorageFontNotRemoved - Disk",
		"UndefinedFontNotRemoved - Unknown",
	}, env.st.Session().Warnings())
	env.Equal(2, fonts.Len())
	env.st.EndSession()
	env.Equal(2, fonts.Len(), "resident fonts survive the session")
}

func (env *PXLTestEnviron) TestSetFont() {
	err := env.st.SetFont([]byte("Missing"), 12, 277)
	env.Equal(core.EUNDEFINED, core.Code(err))
	env.download("Current", synth.PXLHeader(font.TrueType, 10, synth.HeaderSpec{UnitsPerEm: 1000}))
	env.Require().NoError(env.st.SetFont([]byte("Current"), 12, 277))
	res, size, ss, err := env.st.CurrentFont()
	env.Require().NoError(err)
	env.Equal(font.TrueType, res.Technology())
	env.Equal(12.0, size)
	env.Equal(uint16(277), ss)
	env.Require().NoError(env.st.RemoveFont([]byte("Current")))
	_, _, _, err = env.st.CurrentFont()
	env.Equal(core.EUNDEFINED, core.Code(err))
	env.Empty(env.st.Session().Warnings())
}

func (env *PXLTestEnviron) TestEndSession() {
	env.download("Downloaded", synth.PXLHeader(font.Bitmap, 10, synth.HeaderSpec{}))
	env.Require().NoError(env.st.BeginFontHeader([]byte("Pending")))
	env.st.EndSession()
	env.Equal(0, env.st.Session().Fonts.Len())
	err := env.st.EndFontHeader()
	env.Equal(core.EINVALID, core.Code(err))
}
