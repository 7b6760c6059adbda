/*
Package locate finds the fonts installed on the local system and checks
their families against the embedding whitelist.

Two sources are consulted. The platform font directories are searched
with go-findfont and every TrueType/OpenType file found is opened to read
its family name. If fontconfig is configured, the output of 'fc-list' is
used instead, which is faster and knows about fonts in non-standard
locations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'softfont.locate'.
func tracer() tracing.Trace {
	return tracing.Select("softfont.locate")
}
