package download

import (
	"errors"

	"github.com/npillmayer/softfont/core"
)

// Status is the state of a reassembly after a call to Feed.
type Status int

// A reassembly either needs more data or is complete.
const (
	NeedMoreData Status = iota
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "need-more-data"
}

// PrefixCheck validates the first bytes of a partially received block.
type PrefixCheck func(prefix []byte) error

type prefixCheck struct {
	n     int
	check PrefixCheck
	done  bool
}

// Option configures a Reassembler.
type Option func(*Reassembler)

// WithPrefixCheck registers a check which runs as soon as at least n bytes
// have been received. If the block is shorter than n bytes, the check does
// not run; the validator of the complete block has to reject it.
func WithPrefixCheck(n int, check PrefixCheck) Option {
	return func(r *Reassembler) {
		if check != nil && n > 0 {
			r.checks = append(r.checks, prefixCheck{n: n, check: check})
		}
	}
}

// WithLimit bounds the total number of bytes a reassembler will accept.
// Declarations exceeding the limit fail with EMEMORY. A limit <= 0 means
// no limit.
func WithLimit(max int) Option {
	return func(r *Reassembler) {
		r.limit = max
	}
}

// Reassembler accumulates a block of declared length from chunks of
// arbitrary size.
type Reassembler struct {
	declared int
	buf      []byte
	checks   []prefixCheck
	limit    int
	reported bool  // completion has been reported to the client
	err      error // sticky error after discarding
}

var errDiscarded = errors.New("reassembly buffer has been discarded")

// New begins a reassembly for a block of declared length.
func New(declared int, opts ...Option) (*Reassembler, error) {
	r := &Reassembler{declared: declared}
	for _, opt := range opts {
		opt(r)
	}
	if declared < 0 {
		return nil, core.Error(core.ERANGE, "negative block length %d", declared)
	}
	if r.limit > 0 && declared > r.limit {
		return nil, core.Error(core.EMEMORY, "block length %d exceeds limit of %d bytes",
			declared, r.limit)
	}
	r.buf = make([]byte, 0, declared)
	tracer().Debugf("reassembly of %d bytes started", declared)
	return r, nil
}

// Feed appends bytes from chunk, consuming at most the number of bytes still
// missing. It returns the number of bytes consumed; bytes beyond the declared
// length are left to the caller.
//
// Once the declared length has been reached, Feed reports Complete exactly
// once. Feeding a complete reassembly again is an error, as is feeding a
// discarded one.
func (r *Reassembler) Feed(chunk []byte) (Status, int, error) {
	if r.err != nil {
		return NeedMoreData, 0, r.err
	}
	if r.reported {
		return Complete, 0, core.Error(core.ERANGE,
			"block of %d bytes is already complete", r.declared)
	}
	n := len(chunk)
	if rest := r.declared - len(r.buf); n > rest {
		n = rest
	}
	r.buf = append(r.buf, chunk[:n]...)
	if err := r.runChecks(); err != nil {
		r.fail(err)
		return NeedMoreData, n, err
	}
	if len(r.buf) < r.declared {
		return NeedMoreData, n, nil
	}
	r.reported = true
	tracer().Debugf("reassembly of %d bytes complete", r.declared)
	return Complete, n, nil
}

func (r *Reassembler) runChecks() error {
	for i := range r.checks {
		c := &r.checks[i]
		if c.done || len(r.buf) < c.n {
			continue
		}
		c.done = true
		if err := c.check(r.buf[:c.n]); err != nil {
			tracer().Infof("block rejected after %d of %d bytes: %v", len(r.buf), r.declared, err)
			return err
		}
	}
	return nil
}

// Extend appends n more declared bytes to a complete reassembly. Some
// protocols split one logical block into several data commands of their
// own declared lengths.
func (r *Reassembler) Extend(n int) error {
	if r.err != nil {
		return r.err
	}
	if n < 0 {
		return core.Error(core.ERANGE, "negative extension %d", n)
	}
	if !r.reported {
		return core.Error(core.ERANGE, "cannot extend incomplete block (%d of %d bytes)",
			len(r.buf), r.declared)
	}
	if r.limit > 0 && r.declared+n > r.limit {
		err := core.Error(core.EMEMORY, "block length %d exceeds limit of %d bytes",
			r.declared+n, r.limit)
		r.fail(err)
		return err
	}
	r.declared += n
	r.reported = n == 0
	return nil
}

// Continue is called when a client protocol announces that more segments
// follow for the same logical object. Continuations are not supported; the
// reassembly is discarded and an EUNIMPLEMENTED error is returned.
func (r *Reassembler) Continue() error {
	err := core.Error(core.EUNIMPLEMENTED, "continuation blocks are not supported")
	r.fail(err)
	return err
}

// Bytes returns the complete block, or nil if it is not complete yet.
func (r *Reassembler) Bytes() []byte {
	if r.err != nil || !r.reported {
		return nil
	}
	return r.buf
}

// Take returns the complete block and releases it from the reassembler,
// which may not be used afterwards.
func (r *Reassembler) Take() []byte {
	b := r.Bytes()
	if b != nil {
		r.buf = nil
		r.err = errDiscarded
	}
	return b
}

// Status returns the state of the reassembly.
func (r *Reassembler) Status() Status {
	if r.err == nil && len(r.buf) == r.declared {
		return Complete
	}
	return NeedMoreData
}

// Received returns the number of bytes received so far.
func (r *Reassembler) Received() int {
	return len(r.buf)
}

// Declared returns the declared length of the block.
func (r *Reassembler) Declared() int {
	return r.declared
}

// Remaining returns the number of bytes still missing.
func (r *Reassembler) Remaining() int {
	if r.err != nil {
		return 0
	}
	return r.declared - len(r.buf)
}

// Discard releases the buffer. Subsequent calls to Feed fail.
func (r *Reassembler) Discard() {
	r.fail(errDiscarded)
}

func (r *Reassembler) fail(err error) {
	r.buf = nil
	if r.err == nil {
		r.err = err
	}
}
