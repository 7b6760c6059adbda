package session

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font/fontregistry"
)

// PermanentFonts is the list of soft fonts surviving the end of a job, as
// a printer job language keeps it. Fonts are numbered in the order they
// become permanent.
type PermanentFonts struct {
	fonts *treemap.Map // int → fontregistry.FontID
}

// NewPermanentFonts creates an empty list.
func NewPermanentFonts() *PermanentFonts {
	return &PermanentFonts{fonts: treemap.NewWithIntComparator()}
}

// RegisterPermanentFont adds a font and returns its number.
func (pf *PermanentFonts) RegisterPermanentFont(id fontregistry.FontID) int {
	n := 1
	if !pf.fonts.Empty() {
		max, _ := pf.fonts.Max()
		n = max.(int) + 1
	}
	pf.fonts.Put(n, id)
	tracer().Infof("permanent font #%d is %v", n, id)
	return n
}

// NotifyPermanentFontRemoved removes a font from the list.
func (pf *PermanentFonts) NotifyPermanentFontRemoved(id fontregistry.FontID, number int) error {
	if _, ok := pf.fonts.Get(number); !ok {
		return core.Error(core.EMISSING, "no permanent font #%d (%v)", number, id)
	}
	pf.fonts.Remove(number)
	tracer().Infof("permanent font #%d (%v) removed", number, id)
	return nil
}

// Lookup finds the ID of a permanent font by its number.
func (pf *PermanentFonts) Lookup(number int) (fontregistry.FontID, bool) {
	v, ok := pf.fonts.Get(number)
	if !ok {
		return fontregistry.FontID{}, false
	}
	return v.(fontregistry.FontID), true
}

// Numbers returns the numbers of all permanent fonts in ascending order.
func (pf *PermanentFonts) Numbers() []int {
	keys := pf.fonts.Keys()
	numbers := make([]int, len(keys))
	for i, k := range keys {
		numbers[i] = k.(int)
	}
	return numbers
}

// Len returns the number of permanent fonts.
func (pf *PermanentFonts) Len() int {
	return pf.fonts.Size()
}
