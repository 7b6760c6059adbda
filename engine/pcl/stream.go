package pcl

import (
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/download"
	"github.com/npillmayer/softfont/core/font/softfont"
)

// Stream is a data command whose block arrives in pieces. When the block
// is complete, the command is executed.
type Stream struct {
	r       *download.Reassembler
	command func([]byte) error
	name    string
}

// StreamFontHeader begins a font header command for a block of count
// bytes. The header format is checked as soon as it has arrived.
func (st *State) StreamFontHeader(count int) (*Stream, error) {
	r, err := download.New(count,
		download.WithLimit(st.session.Options.MaxDownload),
		download.WithPrefixCheck(3, softfont.PrefixCheck(font.PCL5)))
	if err != nil {
		return nil, err
	}
	return &Stream{r: r, command: st.FontHeader, name: "font header"}, nil
}

// StreamCharacterData begins a character data command for a block of
// count bytes. Continuation blocks are rejected as soon as the flag has
// arrived, provided a font to receive the character exists.
func (st *State) StreamCharacterData(count int) (*Stream, error) {
	s := &Stream{command: st.CharacterData, name: "character data"}
	opts := []download.Option{download.WithLimit(st.session.Options.MaxDownload)}
	if _, ok := st.session.Fonts.Lookup(st.CurrentFontID()); ok {
		opts = append(opts, download.WithPrefixCheck(2, s.rejectContinuation))
	}
	r, err := download.New(count, opts...)
	if err != nil {
		return nil, err
	}
	s.r = r
	return s, nil
}

// rejectContinuation checks the continuation flag of a character block.
func (s *Stream) rejectContinuation(prefix []byte) error {
	if prefix[1] != 0 {
		tracer().Infof("%s announces a continuation block", s.name)
		return s.r.Continue()
	}
	return nil
}

// Feed hands the next piece of the block to the stream. It returns the
// number of bytes consumed; bytes beyond the block belong to the next
// command. On completion, the command is executed and its error returned.
func (s *Stream) Feed(chunk []byte) (download.Status, int, error) {
	status, n, err := s.r.Feed(chunk)
	if err != nil || status != download.Complete {
		return status, n, err
	}
	tracer().Debugf("%s of %d bytes complete", s.name, s.r.Declared())
	return status, n, s.command(s.r.Take())
}

// Remaining returns the number of bytes still missing.
func (s *Stream) Remaining() int {
	return s.r.Remaining()
}
