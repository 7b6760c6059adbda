package fontregistry

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// FontID addresses an entry of a Dict. IDs are either numeric (PCL's
// "ESC * c # D") or strings of arbitrary bytes (PCL alphanumeric IDs, PCL XL
// font names). Both kinds are mapped into the same key space: a numeric ID
// is keyed by its big-endian bytes, 2 bytes for values up to 0xFFFF and 4
// bytes above.
type FontID struct {
	key     string
	numeric bool
}

// NumericID creates a font ID from a number.
func NumericID(n uint32) FontID {
	var b []byte
	if n <= 0xffff {
		b = binary.BigEndian.AppendUint16(nil, uint16(n))
	} else {
		b = binary.BigEndian.AppendUint32(nil, n)
	}
	return FontID{key: string(b), numeric: true}
}

// StringID creates a font ID from a byte string. Comparison is byte-exact.
func StringID(s []byte) FontID {
	return FontID{key: string(s)}
}

// Key returns the bytes by which the ID is looked up.
func (id FontID) Key() []byte {
	return []byte(id.key)
}

// IsNumeric is true for IDs created by NumericID.
func (id FontID) IsNumeric() bool {
	return id.numeric
}

// Same is true if two IDs address the same entry key.
func (id FontID) Same(other FontID) bool {
	return id.key == other.key
}

func (id FontID) String() string {
	if id.numeric {
		switch len(id.key) {
		case 2:
			return "#" + strconv.Itoa(int(binary.BigEndian.Uint16([]byte(id.key))))
		case 4:
			return "#" + strconv.Itoa(int(binary.BigEndian.Uint32([]byte(id.key))))
		}
	}
	return fmt.Sprintf("%q", id.key)
}
