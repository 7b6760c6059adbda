package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestUnitConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.core")
	defer teardown()
	//
	if d := FromCentipoints(1200); d != 12*BP {
		t.Errorf("(1) expected 1200cp to be 12bp (%d), is %d", 12*BP, d)
	}
	if d := FromQuarterPoints(48); d != 12*BP {
		t.Errorf("(2) expected 48 quarter points to be 12bp, is %d", d)
	}
	if d := FromDots(300, 300); d != IN {
		t.Errorf("(3) expected 300 dots at 300dpi to be 1in, is %d", d)
	}
	if d := FromDots(300, 0); d != Zero {
		t.Errorf("(4) expected zero resolution to yield zero, is %d", d)
	}
	if cp := (12 * BP).Centipoints(); cp != 1200 {
		t.Errorf("(5) expected 12bp to be 1200cp, is %d", cp)
	}
}

func TestMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.core")
	defer teardown()
	//
	if Min(BP, PT) != PT || Max(BP, PT) != BP {
		t.Errorf("expected PT < BP")
	}
}
