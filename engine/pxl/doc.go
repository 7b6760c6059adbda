/*
Package pxl implements the PCL XL font operators on a session.

Font headers and characters are downloaded by operator sequences:

	BeginFontHeader  ReadFontHeader…  EndFontHeader
	BeginChar        ReadChar…        EndChar

ReadFontHeader and ReadChar consume their data from a Source and report
download.NeedMoreData until the declared number of bytes has arrived.
A font under construction is kept by the interpreter state; it enters the
font directory only at EndFontHeader, after validation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pxl

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'softfont.pxl'
func tracer() tracing.Trace {
	return tracing.Select("softfont.pxl")
}
