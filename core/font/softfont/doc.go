/*
Package softfont validates downloaded font headers and character blocks
and builds font resources from them.

Two dialects are supported: PCL5 ("ESC ) s # W" font headers and
"ESC ( s # W" character data) and PCL XL (ReadFontHeader / ReadChar
operators). Both carry fonts of three scaling technologies, bitmap,
TrueType and Intellifont (PCL5 only), but their byte layouts and their
error vocabularies differ. Validation therefore dispatches on dialect
first and on technology second, and the rules of the two dialects are
kept separate even where they look alike.

No field of a block is trusted. All multi-byte integers are big-endian and
are read through bounds-checked accessors; offsets and lengths found in a
block are checked against the block before they are used. A block which
fails validation never produces a Resource, and a character which fails
validation leaves the glyph table of its font untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package softfont

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/softfont/core"
)

// tracer writes to trace with key 'softfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("softfont.fonts")
}

// errPCL creates an error for a malformed PCL5 font header. PCL5 reports
// every structural violation of a header as an invalid font.
func errPCL(format string, v ...interface{}) error {
	return core.Error(core.EINVALIDFONT, "PCL font header: "+format, v...)
}

func errRange(format string, v ...interface{}) error {
	return core.Error(core.ERANGE, format, v...)
}
