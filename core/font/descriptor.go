package font

import (
	"strings"

	"github.com/npillmayer/softfont/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/text/encoding/charmap"
)

// Flags are font descriptor flags, bit-compatible with the /Flags entry of
// a PDF font descriptor.
type Flags uint32

// Descriptor flags.
const (
	FixedPitch  Flags = 1 << 0
	Serif       Flags = 1 << 1
	Symbolic    Flags = 1 << 2
	Script      Flags = 1 << 3
	Nonsymbolic Flags = 1 << 5
	Italic      Flags = 1 << 6
	AllCap      Flags = 1 << 16
	SmallCap    Flags = 1 << 17
	ForceBold   Flags = 1 << 18
)

// Is checks whether all bits of f are set.
func (fl Flags) Is(f Flags) bool {
	return fl&f == f
}

// Descriptor is what an output stage needs to know about a soft font to
// emit it: family name, scaling technology, flags and metrics.
type Descriptor struct {
	Family      string
	Technology  Technology
	Flags       Flags
	Style       xfont.Style
	Weight      xfont.Weight
	Pitch       dimen.Dimen // fixed-pitch advance, bitmap fonts only
	Height      dimen.Dimen // bitmap fonts only
	ResolutionX uint16
	ResolutionY uint16
	UnitsPerEm  uint16
	FSType      uint16
	HasFSType   bool
}

// Symbol sets for which a font counts as symbolic: 19M (Symbol) and
// 579L (Wingdings).
const (
	symbolSetSymbol    = 621
	symbolSetWingdings = 18540
)

// Describe derives a descriptor from a font header.
func Describe(h *Header) Descriptor {
	d := Descriptor{
		Family:      h.Name,
		Technology:  h.Technology,
		ResolutionX: h.ResolutionX,
		ResolutionY: h.ResolutionY,
		UnitsPerEm:  h.UnitsPerEm,
		FSType:      h.FSType,
		HasFSType:   h.HasFSType,
		Style:       xfont.StyleNormal,
		Weight:      strokeWeight(h.StrokeWeight),
	}
	if h.Spacing == 0 {
		d.Flags |= FixedPitch
	}
	switch {
	case h.SerifStyle >= 2 && h.SerifStyle <= 7:
		d.Flags |= Serif
	case h.SerifStyle >= 8 && h.SerifStyle <= 11:
		d.Flags |= Script
	}
	if h.SymbolSet == symbolSetSymbol || h.SymbolSet == symbolSetWingdings {
		d.Flags |= Symbolic
	} else {
		d.Flags |= Nonsymbolic
	}
	if h.Style&0x3 != 0 { // posture: italic or alternate italic
		d.Flags |= Italic
		d.Style = xfont.StyleItalic
	}
	if h.StrokeWeight >= 3 {
		d.Flags |= ForceBold
	}
	if h.Technology == Bitmap {
		d.Pitch = dimen.FromCentipoints(h.PitchCP)
		d.Height = dimen.FromQuarterPoints(h.Height4ths)
	}
	return d
}

func strokeWeight(w int8) xfont.Weight {
	switch {
	case w <= -6:
		return xfont.WeightThin
	case w <= -4:
		return xfont.WeightExtraLight
	case w < 0:
		return xfont.WeightLight
	case w == 0:
		return xfont.WeightNormal
	case w == 1:
		return xfont.WeightMedium
	case w == 2:
		return xfont.WeightSemiBold
	case w == 3:
		return xfont.WeightBold
	case w <= 5:
		return xfont.WeightExtraBold
	}
	return xfont.WeightBlack
}

// DecodeName decodes an 8-bit font name field. Font names are
// transmitted as Latin-1, padded with NULs or spaces.
func DecodeName(raw []byte) string {
	if i := indexNUL(raw); i >= 0 {
		raw = raw[:i]
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	return strings.TrimSpace(string(s))
}

func indexNUL(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
