package embedding

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/softfont/core/font"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	restrictedTT := func(family string) font.Descriptor {
		return font.Descriptor{Family: family, Technology: font.TrueType, FSType: RestrictedLicense, HasFSType: true}
	}
	noWhitelist := DefaultOptions()
	noWhitelist.AllowWhitelist = false
	for i, c := range []struct {
		desc       font.Descriptor
		opts       Options
		status     Status
		overridden bool
	}{
		{font.Descriptor{Family: "Courier", Technology: font.Bitmap}, DefaultOptions(), Standard, false},
		{font.Descriptor{Family: "Line Printer", Technology: font.Bitmap}, DefaultOptions(), Embed, false},
		{font.Descriptor{Family: "Univers", Technology: font.Intellifont}, DefaultOptions(), Embed, false},
		{restrictedTT("Times New Roman"), DefaultOptions(), Embed, true},
		{restrictedTT("TimesNewRoman"), DefaultOptions(), Embed, true},
		{restrictedTT("Times New Roman"), noWhitelist, NoEmbed, false},
		{restrictedTT("Arial"), DefaultOptions(), NoEmbed, false},
		{restrictedTT("Arial"), Options{AlwaysEmbed: []string{"Arial"}}, NoEmbed, false},
		{font.Descriptor{Family: "Arial", Technology: font.TrueType, FSType: BitmapOnly, HasFSType: true},
			DefaultOptions(), NoEmbed, false},
		{font.Descriptor{Family: "Arial", Technology: font.TrueType, FSType: 0x0008, HasFSType: true},
			DefaultOptions(), Embed, false},
		{font.Descriptor{Family: "Arial", Technology: font.TrueType}, Options{EmbedAllFonts: true, NeverEmbed: []string{"Arial"}},
			NoEmbed, false},
		{font.Descriptor{Family: "Arial", Technology: font.TrueType}, Options{}, NoEmbed, false},
		{font.Descriptor{Family: "Courier", Technology: font.Bitmap}, Options{AlwaysEmbed: []string{"Courier"}}, Embed, false},
	} {
		d := Decide(c.desc, c.opts)
		assert.Equal(t, c.status, d.Status, "case %d (%s): %s", i, c.desc.Family, d.Reason)
		assert.Equal(t, c.overridden, d.Overridden, "case %d (%s)", i, c.desc.Family)
	}
}

func TestStandardNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "softfont.fonts")
	defer teardown()
	//
	assert.True(t, IsStandard("Times-Roman "))
	assert.True(t, IsStandard("ZapfDingbats"))
	assert.False(t, IsStandard("Times"))
	assert.Equal(t, "not embedded", NoEmbed.String())
}
