package pcl

import (
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/fontregistry"
	"github.com/npillmayer/softfont/core/font/softfont"
	"github.com/npillmayer/softfont/engine/session"
)

// Font control operations (ESC * c # F).
const (
	DeleteAllFonts       = 0
	DeleteTemporaryFonts = 1
	DeleteFont           = 2
	DeleteCharacter      = 3
	MakeTemporary        = 4
	MakePermanent        = 5
	CopyCurrentFont      = 6
)

// Alphanumeric ID operations (ESC & n # W).
const (
	SetFontID        = 0
	AliasFontID      = 1
	SelectPrimary    = 2
	SelectSecondary  = 3
	SetMacroID       = 4
	AliasMacroID     = 5
	DeleteFontAlias  = 20
	DeleteMacroAlias = 21
	MediaSelect      = 100
)

// ResetKind flags the kind of a reset.
type ResetKind uint8

// Kinds of resets. Only initial, printer and overlay resets concern soft
// fonts.
const (
	ResetInitial ResetKind = 1 << iota
	ResetCold
	ResetPrinter
	ResetOverlay
	ResetPermanent
)

type idKind uint8

const (
	numericID idKind = iota
	stringID
)

// State is the soft-font state of a PCL5 interpreter.
type State struct {
	session       *session.Context
	fontID        uint32
	alphaFontID   []byte
	fontIDKind    idKind
	macroID       uint32
	alphaMacroID  []byte
	macroIDKind   idKind
	characterCode uint16
	selection     [2]*fontregistry.Slot // primary, secondary
	selected      int
}

// NewState creates the PCL5 state for a session.
func NewState(s *session.Context) *State {
	return &State{
		session: s,
		selection: [2]*fontregistry.Slot{
			s.Fonts.NewSlot("primary"),
			s.Fonts.NewSlot("secondary"),
		},
	}
}

// Session returns the session the state operates on.
func (st *State) Session() *session.Context {
	return st.session
}

// CurrentFontID returns the ID fonts are defined and addressed by.
func (st *State) CurrentFontID() fontregistry.FontID {
	if st.fontIDKind == stringID {
		return fontregistry.StringID(st.alphaFontID)
	}
	return fontregistry.NumericID(st.fontID)
}

// CurrentMacroID returns the ID macros are addressed by.
func (st *State) CurrentMacroID() fontregistry.FontID {
	if st.macroIDKind == stringID {
		return fontregistry.StringID(st.alphaMacroID)
	}
	return fontregistry.NumericID(st.macroID)
}

// AssignFontID sets the current font ID to a number (ESC * c # D).
func (st *State) AssignFontID(n uint32) {
	st.fontID = n
	st.fontIDKind = numericID
}

// AssignMacroID sets the current macro ID to a number (ESC & f # Y).
func (st *State) AssignMacroID(n uint32) {
	st.macroID = n
	st.macroIDKind = numericID
}

// CharacterCode sets the code of the next character definition
// (ESC * c # E).
func (st *State) CharacterCode(code uint16) {
	st.characterCode = code
}

// FontControl performs a font control operation (ESC * c # F). Unknown
// operations are ignored.
func (st *State) FontControl(op int) error {
	fonts := st.session.Fonts
	id := st.CurrentFontID()
	switch op {
	case DeleteAllFonts:
		fonts.DeleteAll()
	case DeleteTemporaryFonts:
		fonts.DeleteTemporary()
	case DeleteFont:
		fonts.Delete(id)
	case DeleteCharacter:
		if res, ok := fonts.Lookup(id); ok {
			res.RemoveGlyph(st.characterCode)
		}
	case MakeTemporary:
		if _, ok := fonts.Lookup(id); ok {
			return fonts.SetStorage(id, font.Temporary)
		}
	case MakePermanent:
		if _, ok := fonts.Lookup(id); ok {
			return fonts.SetStorage(id, font.Permanent)
		}
	case CopyCurrentFont:
		res, err := st.CurrentFont()
		if err != nil {
			return err
		}
		clone := res.Clone()
		clone.DataArePermanent = false
		return fonts.Define(id, clone)
	default:
		tracer().Debugf("ignoring font control %d", op)
	}
	return nil
}

// FontHeader defines a font from a complete header block (ESC ) s # W).
// The font replaces any font stored under the current font ID. If the
// header is invalid, the directory is left untouched.
func (st *State) FontHeader(data []byte) error {
	res, err := softfont.ParsePCLHeader(data)
	if err != nil {
		tracer().Errorf("font header for %v rejected: %v", st.CurrentFontID(), err)
		return err
	}
	return st.session.Fonts.Define(st.CurrentFontID(), res)
}

// CharacterData adds a character to the font stored under the current
// font ID (ESC ( s # W). Without such a font, the data are ignored.
func (st *State) CharacterData(data []byte) error {
	res, ok := st.session.Fonts.Lookup(st.CurrentFontID())
	if !ok {
		tracer().Debugf("no font %v for character %d", st.CurrentFontID(), st.characterCode)
		return nil
	}
	return softfont.AddPCLCharacter(res, st.characterCode, data)
}

// AlphanumericID performs an alphanumeric ID command (ESC & n # W). The
// first byte of data is the operation, the rest is a string ID.
func (st *State) AlphanumericID(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if len(data) > st.session.Options.StringIDMax {
		return core.Error(core.ERANGE, "alphanumeric ID of %d bytes exceeds %d",
			len(data), st.session.Options.StringIDMax)
	}
	op, sid := data[0], fontregistry.StringID(data[1:])
	fonts := st.session.Fonts
	switch op {
	case SetFontID:
		st.alphaFontID = append([]byte(nil), data[1:]...)
		st.fontIDKind = stringID
	case AliasFontID:
		if _, ok := fonts.Lookup(sid); ok {
			return fonts.Alias(sid, st.CurrentFontID())
		}
	case SelectPrimary, SelectSecondary:
		if _, ok := fonts.Lookup(sid); !ok {
			return nil
		}
		which := int(op - SelectPrimary)
		if err := fonts.Select(st.selection[which], sid); err != nil {
			return err
		}
		if op == SelectPrimary {
			st.selected = 0
		}
	case SetMacroID:
		st.alphaMacroID = append([]byte(nil), data[1:]...)
		st.macroIDKind = stringID
	case AliasMacroID:
		st.session.Macros.PutSynonym(sid, st.CurrentMacroID())
	case DeleteFontAlias:
		if st.fontIDKind == stringID {
			fonts.Delete(st.CurrentFontID())
		}
	case DeleteMacroAlias:
		if st.macroIDKind == stringID {
			st.session.Macros.Undef(st.CurrentMacroID())
		}
	case MediaSelect:
		return core.Error(core.EUNIMPLEMENTED, "media select by alphanumeric ID")
	default:
		return core.Error(core.ERANGE, "unknown alphanumeric ID operation %d", op)
	}
	return nil
}

// SelectFont selects the font stored under a numeric ID as the primary
// or secondary font (ESC ( # X, ESC ) # X).
func (st *State) SelectFont(n uint32, secondary bool) error {
	which := 0
	if secondary {
		which = 1
	}
	if err := st.session.Fonts.Select(st.selection[which], fontregistry.NumericID(n)); err != nil {
		return err
	}
	st.selected = which
	return nil
}

// Shift switches between primary (SI) and secondary (SO) font.
func (st *State) Shift(secondary bool) {
	st.selected = 0
	if secondary {
		st.selected = 1
	}
}

// CurrentFont returns the selected font. If the selected font has been
// deleted, the selection has to be recomputed by font attributes, which is
// not done here; an EMISSING error is returned instead.
func (st *State) CurrentFont() (*font.Resource, error) {
	slot := st.selection[st.selected]
	res, ok := st.session.Fonts.Resolve(slot)
	if !ok {
		return nil, core.Error(core.EMISSING, "%s font needs to be recomputed", slot.Name())
	}
	return res, nil
}

// Selection returns the primary or secondary selection slot.
func (st *State) Selection(secondary bool) *fontregistry.Slot {
	if secondary {
		return st.selection[1]
	}
	return st.selection[0]
}

// DefineMacro stores a macro body under the current macro ID.
func (st *State) DefineMacro(body []byte) {
	st.session.Macros.Put(st.CurrentMacroID(), append([]byte(nil), body...))
}

// Macro looks up the macro stored under the current macro ID.
func (st *State) Macro() ([]byte, bool) {
	v, ok := st.session.Macros.Find(st.CurrentMacroID())
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Reset resets the soft-font state. A printer reset deletes all
// temporary fonts.
func (st *State) Reset(kind ResetKind) {
	if kind&(ResetInitial|ResetPrinter|ResetOverlay) == 0 {
		return
	}
	st.fontID = 0
	st.characterCode = 0
	st.fontIDKind = numericID
	if kind&ResetPrinter != 0 {
		st.session.Fonts.DeleteTemporary()
	}
	st.alphaFontID = nil
	tracer().Debugf("soft-font state reset (%#x)", kind)
}
