/*
Package session holds the state of an interpreter session concerning soft
fonts: the font directory, the macro dictionary, the list of permanent
fonts and the warnings produced while interpreting a job.

A session is driven by a single interpreter thread. Components outside the
session refer to fonts by ID only and re-resolve them after any deletion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package session

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'softfont.session'
func tracer() tracing.Trace {
	return tracing.Select("softfont.session")
}
