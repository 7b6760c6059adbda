package softfont

import (
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
)

// segmentErrors maps structural violations of a segmented header to the
// error codes of a dialect.
type segmentErrors struct {
	fontData      int
	segment       int
	headerFields  int
	nullSize      int
	missing       int
	globalTT      int
	galley        int
	verticalTx    int
	bitmapRes     int
	checkContents bool // check contents of GC and VT segments
}

// PCL5 knows only one error for malformed fonts.
var pclSegmentErrors = segmentErrors{
	fontData:     core.EINVALIDFONT,
	segment:      core.EINVALIDFONT,
	headerFields: core.EINVALIDFONT,
	nullSize:     core.EINVALIDFONT,
	missing:      core.EINVALIDFONT,
	globalTT:     core.EINVALIDFONT,
	galley:       core.EINVALIDFONT,
	verticalTx:   core.EINVALIDFONT,
	bitmapRes:    core.EINVALIDFONT,
}

var pxlSegmentErrors = segmentErrors{
	fontData:      core.EFONTDATA,
	segment:       core.ESEGMENT,
	headerFields:  core.EHEADERFIELDS,
	nullSize:      core.ENULLSEGMENT,
	missing:       core.EMISSINGSEGMENT,
	globalTT:      core.EGTSEGMENT,
	galley:        core.EGCSEGMENT,
	verticalTx:    core.EVTSEGMENT,
	bitmapRes:     core.EBRSEGMENT,
	checkContents: true,
}

// segmentScan is the result of scanning the segments of a header.
type segmentScan struct {
	segments []font.Segment
	resX     uint16 // from a BR segment, 0 if absent
	resY     uint16
	gt       binarySegm // payload of the GT segment, nil if absent
}

// scanSegments scans the segment list of a header block between start and
// end. Every segment is a 2-byte ID, a 2- or 4-byte size (large) and the
// payload; the list is terminated by a null segment of size 0.
func scanSegments(b binarySegm, fst font.Technology, start, end int, large bool,
	errs *segmentErrors) (*segmentScan, error) {
	//
	if end > len(b) || start < 0 || start > end {
		return nil, core.Error(errs.fontData, "segment list [%d…%d] exceeds block of %d bytes",
			start, end, len(b))
	}
	wsize := 2
	if large {
		wsize = 4
	}
	scan := &segmentScan{}
	null := false
	pos := start
	for end-pos >= 2+wsize {
		id := u16(b[pos:])
		var size int
		if large {
			size = int(u32(b[pos+2:]))
		} else {
			size = int(u16(b[pos+2:]))
		}
		data := pos + 2 + wsize
		if size < 0 || size > end-data {
			return nil, core.Error(errs.segment, "segment %s at %d: size %d exceeds block",
				segmentName(id), pos, size)
		}
		payload := b[data : data+size]
		tracer().Debugf("segment %s at %d, %d bytes", segmentName(id), pos, size)
		scan.segments = append(scan.segments, font.Segment{ID: id, Offset: data, Size: size})
		switch id {
		case font.SegmentNull:
			if size != 0 {
				return nil, core.Error(errs.nullSize, "null segment with size %d", size)
			}
			null = true
		case font.SegmentBitmapResolution:
			if fst != font.Bitmap || size != 6 || u16(payload) != 0 {
				return nil, core.Error(errs.bitmapRes, "malformed bitmap resolution segment")
			}
			scan.resX, scan.resY = u16(payload[2:]), u16(payload[4:])
			if scan.resX == 0 || scan.resY == 0 {
				return nil, core.Error(errs.bitmapRes, "bitmap resolution of 0")
			}
		case font.SegmentGlobalTrueType:
			if fst != font.TrueType {
				return nil, core.Error(errs.globalTT, "global TrueType segment in %s font", fst)
			}
			scan.gt = payload
		case font.SegmentGalleyCharacter:
			if errs.checkContents {
				if size < 6 || u16(payload) != 0 || size != 6+6*int(u16(payload[4:])) {
					return nil, core.Error(errs.galley, "malformed galley character segment")
				}
			}
		case font.SegmentVerticalTx:
			if fst != font.TrueType {
				return nil, core.Error(errs.verticalTx, "vertical tx segment in %s font", fst)
			}
			if errs.checkContents && (size == 0 || size%4 != 0) {
				return nil, core.Error(errs.verticalTx, "malformed vertical tx segment of size %d", size)
			}
		}
		if null {
			break
		}
		pos = data + size
	}
	if !null {
		return nil, core.Error(errs.missing, "missing null segment")
	}
	if fst == font.TrueType && scan.gt == nil {
		return nil, core.Error(errs.missing, "missing global TrueType segment")
	}
	return scan, nil
}

func segmentName(id uint16) string {
	if id == font.SegmentNull {
		return "NULL"
	}
	c1, c2 := byte(id>>8), byte(id)
	if c1 >= 'A' && c1 <= 'Z' && c2 >= 'A' && c2 <= 'Z' {
		return string([]byte{c1, c2})
	}
	return "??"
}
