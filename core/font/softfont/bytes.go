package softfont

import (
	"errors"
)

// Reading bytes from a font block. Every access is bounds-checked; no
// offset read from the block is used without checking it against the
// block's size first.

var errBufferBounds = errors.New("buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of a font block.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u8 returns the byte in b at offset i.
func (b binarySegm) u8(i int) (uint8, error) {
	if i < 0 || i >= len(b) {
		return 0, errBufferBounds
	}
	return b[i], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// fieldReader reads a sequence of fields from a block, remembering the
// first bounds error. This keeps decoding of fixed-layout headers readable:
// all fields are read, then the error is checked once.
type fieldReader struct {
	b   binarySegm
	err error
}

func (r *fieldReader) u8(i int) uint8 {
	n, err := r.b.u8(i)
	r.note(err)
	return n
}

func (r *fieldReader) i8(i int) int8 {
	return int8(r.u8(i))
}

func (r *fieldReader) u16(i int) uint16 {
	n, err := r.b.u16(i)
	r.note(err)
	return n
}

func (r *fieldReader) bytes(i, n int) []byte {
	v, err := r.b.view(i, n)
	r.note(err)
	return v
}

func (r *fieldReader) note(err error) {
	if r.err == nil {
		r.err = err
	}
}
