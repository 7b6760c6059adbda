package pxl

// Source is the data source of a streaming operator: the bytes of the
// input available at the moment, and the number of bytes the current
// operator has consumed.
type Source struct {
	data     []byte
	position int
}

// NewSource creates a source with initial data.
func NewSource(data []byte) *Source {
	return &Source{data: data}
}

// Supply appends input data.
func (src *Source) Supply(data []byte) {
	src.data = append(src.data, data...)
}

// Available returns the number of bytes which may be consumed.
func (src *Source) Available() int {
	return len(src.data)
}

// Position returns the number of bytes the current operator has consumed.
func (src *Source) Position() int {
	return src.position
}

// Bytes returns the available data without consuming it.
func (src *Source) Bytes() []byte {
	return src.data
}

func (src *Source) consume(n int) {
	src.data = src.data[n:]
	src.position += n
}

// operatorDone prepares the source for the next operator.
func (src *Source) operatorDone() {
	src.position = 0
}
