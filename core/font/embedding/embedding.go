/*
Package embedding decides whether a soft font is to be embedded into an
output document.

Fonts of the standard 14 set are referenced by name and never embedded.
TrueType fonts may forbid embedding by their OS/2 fsType field; such a
restriction is overridden for font families on the whitelist (see package
whitelist), if the caller permits it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package embedding

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/whitelist"
)

// tracer writes to trace with key 'softfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("softfont.fonts")
}

// Status is the embedding status of a font.
type Status int8

const (
	Standard Status = iota // standard font, referenced by name
	NoEmbed
	Embed
)

func (s Status) String() string {
	switch s {
	case Standard:
		return "standard"
	case NoEmbed:
		return "not embedded"
	case Embed:
		return "embedded"
	}
	return "?"
}

// fsType bits restricting embedding.
const (
	RestrictedLicense uint16 = 0x0002
	BitmapOnly        uint16 = 0x0200
)

// Options control embedding decisions.
type Options struct {
	AllowWhitelist bool     // whitelisted families override fsType restrictions
	EmbedAllFonts  bool     // embed fonts not mentioned in AlwaysEmbed
	AlwaysEmbed    []string // family names
	NeverEmbed     []string // family names
}

// DefaultOptions embeds every font allowed to be embedded and lets the
// whitelist override restrictive flags.
func DefaultOptions() Options {
	return Options{AllowWhitelist: true, EmbedAllFonts: true}
}

// Decision is the outcome of Decide.
type Decision struct {
	Status     Status
	Overridden bool // a restrictive fsType has been overridden by the whitelist
	Reason     string
}

var standardFonts = map[string]bool{
	"Courier": true, "Courier-Bold": true, "Courier-Oblique": true, "Courier-BoldOblique": true,
	"Helvetica": true, "Helvetica-Bold": true, "Helvetica-Oblique": true, "Helvetica-BoldOblique": true,
	"Times-Roman": true, "Times-Bold": true, "Times-Italic": true, "Times-BoldItalic": true,
	"Symbol": true, "ZapfDingbats": true,
}

// IsStandard is true for the names of the standard 14 fonts.
func IsStandard(family string) bool {
	return standardFonts[strings.TrimSpace(family)]
}

// Decide determines the embedding status of a font. Restrictions of the
// font license take precedence over AlwaysEmbed; only the whitelist may
// lift them.
func Decide(desc font.Descriptor, opts Options) Decision {
	family := strings.TrimSpace(desc.Family)
	always := contains(opts.AlwaysEmbed, family)
	if IsStandard(family) && !always {
		return Decision{Status: Standard, Reason: "standard font"}
	}
	if desc.Technology == font.TrueType && desc.HasFSType && restricted(desc.FSType) {
		if opts.AllowWhitelist && whitelist.MayEmbed(family) {
			tracer().Infof("font %q: fsType %#04x overridden by whitelist", family, desc.FSType)
			return Decision{Status: Embed, Overridden: true, Reason: "whitelisted family"}
		}
		return Decision{Status: NoEmbed, Reason: "embedding restricted by fsType"}
	}
	if contains(opts.NeverEmbed, family) {
		return Decision{Status: NoEmbed, Reason: "never-embed list"}
	}
	if always {
		return Decision{Status: Embed, Reason: "always-embed list"}
	}
	if !opts.EmbedAllFonts {
		return Decision{Status: NoEmbed, Reason: "embedding of fonts disabled"}
	}
	return Decision{Status: Embed, Reason: desc.Technology.String() + " font"}
}

func restricted(fsType uint16) bool {
	return fsType&(RestrictedLicense|BitmapOnly) != 0
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if strings.TrimSpace(n) == name {
			return true
		}
	}
	return false
}
