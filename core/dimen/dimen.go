// Package dimen implements dimensions and units for font metrics.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PT   Dimen = 65291   // printers point 1/72.27 inch
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// Centipoints returns a dimension in 1/100 big points, rounded.
func (d Dimen) Centipoints() int {
	return int(math.Floor(float64(d)*100/float64(BP) + 0.5))
}

// FromCentipoints creates a dimension from 1/100 big points.
// PCL expresses pitch in centipoints.
func FromCentipoints(cp uint32) Dimen {
	return clamp(float64(cp) * float64(BP) / 100)
}

// FromQuarterPoints creates a dimension from 1/4 big points.
// PCL expresses font height in quarter points.
func FromQuarterPoints(qp uint32) Dimen {
	return clamp(float64(qp) * float64(BP) / 4)
}

// FromDots creates a dimension from a number of device dots at a given
// resolution (dots per inch). A resolution of 0 yields Zero.
func FromDots(dots float64, resolution uint16) Dimen {
	if resolution == 0 {
		return Zero
	}
	return clamp(dots / float64(resolution) * float64(IN))
}

func clamp(x float64) Dimen {
	if x >= Infinity {
		return Infinity
	}
	if x <= -Infinity {
		return -Infinity
	}
	return Dimen(math.Floor(x + 0.5))
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
