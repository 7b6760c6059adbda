package pxl

import (
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/download"
	"github.com/npillmayer/softfont/core/font/fontregistry"
	"github.com/npillmayer/softfont/core/font/softfont"
	"github.com/npillmayer/softfont/engine/session"
)

// Warnings recorded by RemoveFont.
const (
	UndefinedFontNotRemoved   = "UndefinedFontNotRemoved"
	InternalFontNotRemoved    = "InternalFontNotRemoved"
	MassStorageFontNotRemoved = "MassStorageFontNotRemoved"
)

// State is the font state of a PCL XL interpreter.
type State struct {
	session   *session.Context
	header    *headerDownload
	charFont  *fontregistry.FontID // target of BeginChar
	char      *download.Reassembler
	current   *fontregistry.Slot
	charSize  float64
	symbolSet uint16
}

type headerDownload struct {
	name []byte
	r    *download.Reassembler
}

// NewState creates the PCL XL font state for a session.
func NewState(s *session.Context) *State {
	return &State{
		session: s,
		current: s.Fonts.NewSlot("current"),
	}
}

// Session returns the session the state operates on.
func (st *State) Session() *session.Context {
	return st.session
}

func fontName(name []byte) string {
	return font.DecodeName(name)
}

// BeginFontHeader starts the download of a font named name. The name must
// not be in use.
func (st *State) BeginFontHeader(name []byte) error {
	if _, ok := st.session.Fonts.Lookup(fontregistry.StringID(name)); ok {
		return core.Error(core.EEXISTS, "FontNameAlreadyExists - %s", fontName(name))
	}
	if st.header != nil {
		tracer().Infof("font header download %q abandoned", fontName(st.header.name))
		st.dropHeader()
	}
	st.header = &headerDownload{name: append([]byte(nil), name...)}
	tracer().Debugf("font header download %q started", fontName(name))
	return nil
}

// ReadFontHeader reads a piece of font header of length bytes from src.
// A font header may be split into several ReadFontHeader operators.
func (st *State) ReadFontHeader(length int, src *Source) (download.Status, error) {
	h := st.header
	if h == nil {
		return download.NeedMoreData, core.Error(core.EINVALID, "ReadFontHeader without BeginFontHeader")
	}
	if h.r == nil || h.r.Status() == download.Complete {
		if length == 0 {
			src.operatorDone()
			return download.Complete, nil
		}
		if src.Available() == 0 {
			return download.NeedMoreData, nil
		}
		if err := st.allocHeader(length); err != nil {
			st.dropHeader()
			return download.NeedMoreData, err
		}
	}
	status, n, err := h.r.Feed(src.Bytes())
	src.consume(n)
	if err != nil {
		st.dropHeader()
		return status, err
	}
	if status == download.Complete {
		src.operatorDone()
	}
	return status, nil
}

func (st *State) allocHeader(length int) error {
	h := st.header
	if h.r != nil {
		return h.r.Extend(length)
	}
	r, err := download.New(length,
		download.WithLimit(st.session.Options.MaxDownload),
		download.WithPrefixCheck(softfont.PrefixSize, softfont.PrefixCheck(font.PCLXL)))
	if err != nil {
		return err
	}
	h.r = r
	return nil
}

func (st *State) dropHeader() {
	if st.header != nil && st.header.r != nil {
		st.header.r.Discard()
	}
	st.header = nil
}

// EndFontHeader validates the downloaded header and enters the font into
// the directory.
func (st *State) EndFontHeader() error {
	h := st.header
	if h == nil {
		return core.Error(core.EINVALID, "EndFontHeader without BeginFontHeader")
	}
	st.header = nil
	var data []byte
	if h.r != nil {
		data = h.r.Take()
		if data == nil {
			return core.Error(core.EFONTDATA, "font header %q incomplete", fontName(h.name))
		}
	}
	res, err := softfont.ParsePXLHeader(h.name, data)
	if err != nil {
		tracer().Errorf("font header %q rejected: %v", fontName(h.name), err)
		return err
	}
	return st.session.Fonts.Define(fontregistry.StringID(h.name), res)
}

// BeginChar starts the download of characters for a downloaded font.
func (st *State) BeginChar(name []byte) error {
	id := fontregistry.StringID(name)
	res, ok := st.session.Fonts.Lookup(id)
	if !ok {
		return core.Error(core.EUNDEFINED, "FontUndefined - %s", fontName(name))
	}
	if res.Storage != font.Temporary {
		return core.Error(core.EREPLACE, "cannot replace characters of %s font %s",
			res.Storage, fontName(name))
	}
	st.charFont = &id
	return nil
}

// ReadChar reads a character definition of size bytes from src and adds
// it to the font of BeginChar.
func (st *State) ReadChar(code uint16, size int, src *Source) (download.Status, error) {
	if st.charFont == nil {
		return download.NeedMoreData, core.Error(core.EINVALID, "ReadChar without BeginChar")
	}
	if st.char == nil {
		if size < 2 {
			return download.NeedMoreData, core.Error(core.ECHARDATA, "character data of %d bytes", size)
		}
		if src.Available() == 0 {
			return download.NeedMoreData, nil
		}
		r, err := download.New(size, download.WithLimit(st.session.Options.MaxDownload))
		if err != nil {
			return download.NeedMoreData, err
		}
		st.char = r
	}
	status, n, err := st.char.Feed(src.Bytes())
	src.consume(n)
	if err != nil || status != download.Complete {
		if err != nil {
			st.char = nil
		}
		return status, err
	}
	data := st.char.Take()
	st.char = nil
	src.operatorDone()
	res, ok := st.session.Fonts.Lookup(*st.charFont)
	if !ok {
		return status, core.Error(core.EUNDEFINED, "font of character %d went away", code)
	}
	return status, softfont.AddPXLCharacter(res, code, data)
}

// EndChar ends a character download sequence.
func (st *State) EndChar() error {
	if st.char != nil {
		st.char.Discard()
		st.char = nil
	}
	st.charFont = nil
	return nil
}

// RemoveFont removes a downloaded font. Removing an undefined, internal
// or mass-storage font is not an error; a warning is recorded instead.
func (st *State) RemoveFont(name []byte) error {
	id := fontregistry.StringID(name)
	res, ok := st.session.Fonts.Lookup(id)
	switch {
	case !ok:
		st.session.Warn("%s - %s", UndefinedFontNotRemoved, fontName(name))
	case res.Storage == font.Internal:
		st.session.Warn("%s - %s", InternalFontNotRemoved, fontName(name))
	case res.Storage == font.MassStorage:
		st.session.Warn("%s - %s", MassStorageFontNotRemoved, fontName(name))
	default:
		st.session.Fonts.Delete(id)
	}
	return nil
}

// SetFont makes a font the current font.
func (st *State) SetFont(name []byte, charSize float64, symbolSet uint16) error {
	if err := st.session.Fonts.Select(st.current, fontregistry.StringID(name)); err != nil {
		return core.WrapError(err, core.EUNDEFINED, "FontUndefined - %s", fontName(name))
	}
	st.charSize = charSize
	st.symbolSet = symbolSet
	return nil
}

// CurrentFont returns the current font, its size and symbol set.
func (st *State) CurrentFont() (*font.Resource, float64, uint16, error) {
	res, ok := st.session.Fonts.Resolve(st.current)
	if !ok {
		return nil, 0, 0, core.Error(core.EUNDEFINED, "NoCurrentFont")
	}
	return res, st.charSize, st.symbolSet, nil
}

// EndSession drops unfinished downloads and all temporary fonts.
func (st *State) EndSession() {
	st.dropHeader()
	st.EndChar()
	st.session.Fonts.DeleteTemporary()
}
