package whitelist

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpacingInvariance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	for _, name := range []string{"Times New Roman", "TimesNewRoman", "Times  New   Roman", " Times New Roman "} {
		if !MayEmbed(name) {
			t.Errorf("expected %q to be whitelisted", name)
		}
		if MayEmbed(name) != MayEmbed(name) {
			t.Errorf("lookup of %q is not idempotent", name)
		}
	}
	for _, name := range []string{"Arial", "Comic Sans MS", "Zzyzx"} {
		if MayEmbed(name) {
			t.Errorf("expected %q not to be whitelisted", name)
		}
	}
}

func TestEveryEntryIsFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	if Len() != 466 {
		t.Errorf("expected 466 names, have %d", Len())
	}
	for _, name := range names {
		if !MayEmbed(name) {
			t.Errorf("table entry %q not found", name)
		}
	}
	t1 := sorted()
	for i := 1; i < len(t1); i++ {
		if order(t1[i-1], t1[i]) > 0 {
			t.Errorf("table not sorted at %d: %q > %q", i, t1[i-1], t1[i])
		}
	}
}

func TestQueryLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	if Contains([]byte("Courier"), 0) {
		t.Errorf("query of length 0 must not match")
	}
	if Contains(nil, 10) || Contains([]byte("    "), 4) {
		t.Errorf("empty or blank query must not match")
	}
	if !Contains([]byte("Courier"), 100) {
		t.Errorf("query length must be clamped to the name")
	}
	if !Contains([]byte("SymbolXYZ"), 6) {
		t.Errorf("expected comparison to stop at the query length")
	}
	if !Contains([]byte("Adobe FanHeiti"), 14) {
		t.Errorf("expected entry sorted apart from its source position to be found")
	}
}

func TestStyledFamilyNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	for _, name := range names {
		for _, styled := range []string{name + " Italic", name + " Bold", name + "X", name + " Z"} {
			if !MayEmbed(styled) {
				t.Errorf("%q starts with entry %q but is not found", styled, name)
			}
		}
	}
	if !MayEmbed("Helvetica Italic") || !MayEmbed("ITC Garamond Italic") {
		t.Errorf("expected styled variants of whitelisted families to be found")
	}
}

func TestSearchAgreesWithLinearScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	linear := func(q string) bool {
		if blank([]byte(q)) {
			return false
		}
		for _, e := range names {
			if compare(e, []byte(q)) == 0 {
				return true
			}
		}
		return false
	}
	queries := []string{"Arial", "Zzyzx", "Comic Sans MS", "A", "Helv", "  Times", "Q"}
	for _, name := range names {
		queries = append(queries, name, name[:len(name)/2], name+" Regular")
	}
	for _, q := range queries {
		if got, want := MayEmbed(q), linear(q); got != want {
			t.Errorf("lookup of %q = %v, linear scan says %v", q, got, want)
		}
	}
}
