/*
Package pcl implements the PCL5 soft-font commands on a session.

Commands arrive already parsed, with their numeric argument or their data
block:

	ESC * c # D     AssignFontID
	ESC * c # F     FontControl
	ESC ) s # W     FontHeader
	ESC * c # E     CharacterCode
	ESC ( s # W     CharacterData
	ESC & n # W     AlphanumericID

Data blocks may as well be fed piecemeal through a Stream, as returned by
StreamFontHeader and StreamCharacterData.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcl

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'softfont.pcl'
func tracer() tracing.Trace {
	return tracing.Select("softfont.pcl")
}
