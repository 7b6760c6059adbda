package softfont

import (
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
)

const (
	pxlPrefixSize = 8                  // fixed part of a PCL XL font header
	pxlHeaderMin  = pxlPrefixSize + 12 // fixed part + one required segment + null segment
)

// checkPXLPrefix validates the fixed fields of a PCL XL font header: format
// (byte 0) and variety (byte 5) must be 0, byte 4 selects the scaling
// technology, and orientation (byte 1) must fit the technology.
func checkPXLPrefix(b binarySegm) error {
	if len(b) < pxlPrefixSize {
		return core.Error(core.EFONTDATA, "PCL XL font header of %d bytes", len(b))
	}
	if b[0]|b[5] != 0 {
		return core.Error(core.EHEADERFIELDS, "font format %d, variety %d", b[0], b[5])
	}
	switch font.Technology(b[4]) {
	case font.TrueType:
		if b[1] != 0 {
			return core.Error(core.EHEADERFIELDS, "orientation %d of TrueType font", b[1])
		}
	case font.Bitmap:
		if b[1]&^3 != 0 {
			return core.Error(core.EHEADERFIELDS, "orientation %d of bitmap font", b[1])
		}
	default:
		return core.Error(core.EHEADERFIELDS, "font scaling technology %d", b[4])
	}
	return nil
}

// ParsePXLHeader validates a complete PCL XL font header block and creates a
// temporary font resource with an empty glyph table. The font name is the
// name given to BeginFontHeader. The block is copied.
func ParsePXLHeader(name []byte, data []byte) (*font.Resource, error) {
	if len(data) < pxlHeaderMin {
		return nil, core.Error(core.EFONTDATA, "PCL XL font header of %d bytes, need at least %d",
			len(data), pxlHeaderMin)
	}
	b := binarySegm(append([]byte(nil), data...))
	if err := checkPXLPrefix(b[:pxlPrefixSize]); err != nil {
		return nil, err
	}
	h := &font.Header{
		Dialect:     font.PCLXL,
		Technology:  font.Technology(b[4]),
		Orientation: b[1],
		SymbolSet:   u16(b[2:]),
		NumChars:    u16(b[6:]),
		FontType:    font.Type16Bit,
		Spacing:     1,
		Name:        font.DecodeName(name),
		Raw:         b,
	}
	scan, err := scanSegments(b, h.Technology, pxlPrefixSize, len(b), true, &pxlSegmentErrors)
	if err != nil {
		return nil, err
	}
	h.Segments = scan.segments
	switch h.Technology {
	case font.Bitmap:
		h.ResolutionX, h.ResolutionY = defaultResolution, defaultResolution
		if scan.resX != 0 {
			h.ResolutionX, h.ResolutionY = scan.resX, scan.resY
		}
	case font.TrueType:
		gt, err := parseGlobalTrueType(scan.gt, core.EGTSEGMENT)
		if err != nil {
			return nil, err
		}
		h.UnitsPerEm = gt.unitsPerEm
		h.FSType, h.HasFSType = gt.fsType, gt.hasFSType
	}
	tracer().Infof("PCL XL font header: %s font %q, symbol set %d, %d chars, %d bytes",
		h.Technology, h.Name, h.SymbolSet, h.NumChars, len(b))
	// some fonts ask for unreasonably large tables
	return font.NewResource(h, font.NewCappedGlyphTable(int(h.NumChars))), nil
}

// PrefixCheck returns an eager check of the first 8 bytes of a font header
// of a dialect, suitable for a download reassembler. For PCL XL it checks
// format, variety, scaling technology and orientation; for PCL5 it checks
// the header format.
func PrefixCheck(dialect font.Dialect) func(prefix []byte) error {
	if dialect == font.PCLXL {
		return func(prefix []byte) error {
			return checkPXLPrefix(prefix)
		}
	}
	return func(prefix []byte) error {
		if len(prefix) < 3 {
			return nil
		}
		if _, ok := pclTechnology(prefix[2]); !ok {
			return errPCL("unknown header format %d", prefix[2])
		}
		return nil
	}
}

// PrefixSize is the size of the header prefix checked by PrefixCheck.
const PrefixSize = pxlPrefixSize
