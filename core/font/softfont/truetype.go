package softfont

import (
	"github.com/npillmayer/softfont/core"
)

// globalTT holds what we need from the table directory carried by the global
// TrueType segment of a scalable font.
type globalTT struct {
	unitsPerEm uint16
	fsType     uint16
	hasFSType  bool
	tables     []string
}

func tag(b []byte) string {
	return string(b[:4])
}

// parseGlobalTrueType scans the table directory in a GT segment. Table
// offsets are relative to the start of the segment's payload. Only 'head'
// and 'OS/2' are inspected.
func parseGlobalTrueType(gt binarySegm, code int) (*globalTT, error) {
	// Offset table is 12 bytes, followed by 16-byte table records.
	numTables, err := gt.u16(4)
	if err != nil {
		return nil, core.Error(code, "global TrueType segment too short (%d bytes)", len(gt))
	}
	recs, err := gt.view(12, 16*int(numTables))
	if err != nil {
		return nil, core.Error(code, "table directory with %d records exceeds segment", numTables)
	}
	g := &globalTT{}
	for r := recs; len(r) >= 16; r = r[16:] {
		t := tag(r)
		off, size := u32(r[8:12]), u32(r[12:16])
		if off > uint32(len(gt)) || size > uint32(len(gt))-off {
			return nil, core.Error(code, "table %q exceeds global TrueType segment", t)
		}
		table := gt[off : off+size]
		g.tables = append(g.tables, t)
		switch t {
		case "head":
			if g.unitsPerEm, err = table.u16(18); err != nil {
				return nil, core.Error(code, "size of head table")
			}
		case "OS/2":
			if g.fsType, err = table.u16(8); err != nil {
				return nil, core.Error(code, "size of OS/2 table")
			}
			g.hasFSType = true
		}
	}
	tracer().Debugf("global TrueType segment has tables %v", g.tables)
	return g, nil
}
