package softfont

import (
	"math"

	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
)

// PCL5 header formats.
const (
	pclFormatBitmap             = 0
	pclFormatIntellifontBound   = 10
	pclFormatIntellifontUnbound = 11
	pclFormatTrueType           = 15
	pclFormatTrueTypeLarge      = 16
	pclFormatResolutionBitmap   = 20
)

const (
	pclHeaderMin        = 64 // size of the common part of all PCL font headers
	pclResolutionMin    = 68 // resolution-specified bitmap header
	pclTrueTypeDescMin  = 72 // descriptor of a TrueType header, up to Variety
	pclComplementOffset = 78 // character complement of unbound Intellifont fonts
	defaultResolution   = 300
	intellifontEmUnits  = 8782 // design units per em of Intellifont outlines
)

// pclTechnology maps a PCL5 header format to a scaling technology.
func pclTechnology(format uint8) (font.Technology, bool) {
	switch format {
	case pclFormatBitmap, pclFormatResolutionBitmap:
		return font.Bitmap, true
	case pclFormatIntellifontBound, pclFormatIntellifontUnbound:
		return font.Intellifont, true
	case pclFormatTrueType, pclFormatTrueTypeLarge:
		return font.TrueType, true
	}
	return 0, false
}

// ParsePCLHeader validates a complete PCL5 font header block and creates a
// temporary font resource with an empty glyph table. The block is copied.
func ParsePCLHeader(data []byte) (*font.Resource, error) {
	if len(data) < pclHeaderMin {
		return nil, errRange("PCL font header of %d bytes, need at least %d", len(data), pclHeaderMin)
	}
	b := binarySegm(append([]byte(nil), data...))
	r := &fieldReader{b: b}
	descSize := int(r.u16(0))
	h := &font.Header{Dialect: font.PCL5, Format: r.u8(2), Raw: b}
	fst, ok := pclTechnology(h.Format)
	if !ok {
		return nil, errPCL("unknown header format %d", h.Format)
	}
	h.Technology = fst
	h.FontType = font.Type(r.u8(3))
	h.Orientation = r.u8(12)
	h.Spacing = r.u8(13)
	h.SymbolSet = r.u16(14)
	pitch, pitchExt := r.u16(16), r.u8(40)
	height := r.u16(18)
	h.Style = uint16(r.u8(4))<<8 | uint16(r.u8(23))
	h.StrokeWeight = r.i8(24)
	h.Typeface = uint16(r.u8(26))<<8 | uint16(r.u8(25))
	h.SerifStyle = r.u8(27)
	h.NumChars = r.u16(38) // last code
	h.Name = font.DecodeName(r.bytes(48, 16))
	if r.err != nil {
		return nil, core.WrapError(r.err, core.EINTERNAL, "PCL font header")
	}
	var glyphs *font.GlyphTable
	switch fst {
	case font.Bitmap:
		if err := pclBitmapHeader(h, r, pitch, pitchExt, height); err != nil {
			return nil, err
		}
		glyphs = font.NewGlyphTable(256)
	case font.TrueType:
		if err := pclTrueTypeHeader(h, r, descSize, pitch); err != nil {
			return nil, err
		}
		glyphs = font.NewGlyphTable(int(h.NumChars))
	case font.Intellifont:
		if err := pclIntellifontHeader(h, r, pitch); err != nil {
			return nil, err
		}
		glyphs = font.NewGlyphTable(256)
	}
	tracer().Infof("PCL font header: %s font %q, format %d, symbol set %d, %d bytes",
		fst, h.Name, h.Format, h.SymbolSet, len(b))
	return font.NewResource(h, glyphs), nil
}

func pclBitmapHeader(h *font.Header, r *fieldReader, pitch uint16, pitchExt uint8, height uint16) error {
	h.ResolutionX, h.ResolutionY = defaultResolution, defaultResolution
	if h.Format == pclFormatResolutionBitmap {
		if len(r.b) < pclResolutionMin {
			return errRange("resolution bitmap header of %d bytes, need %d", len(r.b), pclResolutionMin)
		}
		h.ResolutionX, h.ResolutionY = r.u16(64), r.u16(66)
		if h.ResolutionX == 0 || h.ResolutionY == 0 {
			return errPCL("bitmap resolution of 0")
		}
	}
	// pitch is in quarter dots, with 8 more bits of fraction in PitchExtended
	pitch1024 := float64(uint32(pitch)<<8 + uint32(pitchExt))
	h.PitchCP = uint32(pitch1024 / 1024.0 / float64(h.ResolutionX) * 7200.0)
	h.Height4ths = uint32(math.Floor(float64(height)*72.0/float64(h.ResolutionX) + 0.5))
	return nil
}

func pclTrueTypeHeader(h *font.Header, r *fieldReader, descSize int, pitch uint16) error {
	if descSize < pclTrueTypeDescMin || descSize > len(r.b)-2 {
		return errPCL("descriptor size %d out of range", descSize)
	}
	if fst := r.u8(70); font.Technology(fst) != font.TrueType {
		return errPCL("scaling technology %d in TrueType header", fst)
	}
	if h.Variety = r.u8(71); h.Variety != 0 {
		return errPCL("variety %d", h.Variety)
	}
	scan, err := scanSegments(r.b, font.TrueType, descSize, len(r.b)-2,
		h.Format == pclFormatTrueTypeLarge, &pclSegmentErrors)
	if err != nil {
		return err
	}
	h.Segments = scan.segments
	gt, err := parseGlobalTrueType(scan.gt, core.EINVALIDFONT)
	if err != nil {
		return err
	}
	h.UnitsPerEm = gt.unitsPerEm
	if h.UnitsPerEm == 0 {
		h.UnitsPerEm = r.u16(64) // scale factor
	}
	if h.UnitsPerEm == 0 {
		return errPCL("units per em of 0")
	}
	h.FSType, h.HasFSType = gt.fsType, gt.hasFSType
	// pitch is the design unit width for scalable fonts
	h.PitchCP = uint32(pitch) * 100 / uint32(h.UnitsPerEm)
	return nil
}

func pclIntellifontHeader(h *font.Header, r *fieldReader, pitch uint16) error {
	if h.Format == pclFormatIntellifontUnbound {
		c, err := r.b.view(pclComplementOffset, len(h.Complement))
		if err != nil {
			return errRange("unbound Intellifont header of %d bytes lacks character complement",
				len(r.b))
		}
		copy(h.Complement[:], c)
		if h.Complement == [8]byte{} {
			h.Complement[7] = 0x07
		}
	}
	h.PitchCP = uint32(pitch) * 100 / intellifontEmUnits
	return nil
}
