/*
Package download reassembles font and character blocks which arrive in
pieces.

Print jobs transmit a font header or a character definition as a declared
length followed by the payload, and the I/O loop of an interpreter hands
the payload to us in chunks of whatever size happened to be in its input
buffer. A Reassembler accumulates these chunks until the declared length
is reached. It never blocks: a caller feeds what it has and is told
whether more data is needed.

	r, err := download.New(declared,
	    download.WithLimit(maxDownload),
	    download.WithPrefixCheck(8, softfont.PrefixCheck(font.PCL5)))
	...
	status, n, err := r.Feed(buf)
	if status == download.Complete {
	    block := r.Bytes()
	}

Once enough bytes for a fixed-size prefix have arrived, optional prefix
checks run on the partial block. A hostile transfer which announces a huge
block but carries a broken header is thus rejected long before its end.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package download

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'softfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("softfont.fonts")
}
