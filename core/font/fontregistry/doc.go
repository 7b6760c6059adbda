/*
Package fontregistry manages the directories of downloaded soft fonts.

A Directory maps font IDs to validated font resources (see package
softfont). IDs may carry synonyms, created by aliasing; deleting a font
through any of its IDs removes all of them. Selection slots reference
fonts weakly: when a selected font is deleted, the slot is cleared and
must be resolved again.

Each interpreter session owns its directories; they are not safe for
concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'softfont.registry'
func tracer() tracing.Trace {
	return tracing.Select("softfont.registry")
}
