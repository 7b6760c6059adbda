package fontregistry

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
)

// PermanentRegistry is notified about fonts which outlive a job. A printer
// job language keeps such a list to report and restore fonts across
// resets. RegisterPermanentFont returns a number identifying the font
// within the registry.
type PermanentRegistry interface {
	RegisterPermanentFont(id FontID) int
	NotifyPermanentFontRemoved(id FontID, number int) error
}

// Directory is a type for holding the soft fonts downloaded during an
// interpreter session.
type Directory struct {
	name     string
	fonts    *Dict // FontID → *font.Resource
	slots    []*Slot
	registry PermanentRegistry
}

// Option configures a Directory.
type Option func(*Directory)

// WithPermanentRegistry connects a directory to a registry of permanent
// fonts.
func WithPermanentRegistry(r PermanentRegistry) Option {
	return func(d *Directory) {
		d.registry = r
	}
}

// NewDirectory creates an empty font directory. The name is used for
// tracing only.
func NewDirectory(name string, opts ...Option) *Directory {
	d := &Directory{
		name:  name,
		fonts: NewDict(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Define stores a validated resource under id. A font already stored
// under id is deleted first, exactly as Delete would do it.
func (d *Directory) Define(id FontID, res *font.Resource) error {
	if res == nil || res.Header == nil {
		return core.Error(core.EINVALID, "directory %s cannot store null font %v", d.name, id)
	}
	if _, ok := d.fonts.Find(id); ok {
		tracer().Debugf("directory %s replaces font %v", d.name, id)
		d.Delete(id)
	}
	d.fonts.Put(id, res)
	tracer().Infof("directory %s stores font %v (%s, %s, %d glyphs)", d.name, id,
		res.Technology(), res.Storage, res.Glyphs().Len())
	return nil
}

// Lookup finds the font stored under id or one of its synonyms.
func (d *Directory) Lookup(id FontID) (*font.Resource, bool) {
	v, ok := d.fonts.Find(id)
	if !ok {
		return nil, false
	}
	return v.(*font.Resource), true
}

// Alias makes alias a synonym for the font stored under existing. A
// different font stored under alias is deleted first.
func (d *Directory) Alias(existing, alias FontID) error {
	target, ok := d.Lookup(existing)
	if !ok {
		return core.Error(core.EMISSING, "directory %s has no font %v to alias", d.name, existing)
	}
	if r, ok := d.Lookup(alias); ok && r != target {
		d.Delete(alias)
	}
	d.fonts.PutSynonym(existing, alias)
	tracer().Debugf("directory %s: %v is alias for %v", d.name, alias, existing)
	return nil
}

// Synonyms returns all IDs of the font stored under id, the defining ID
// first.
func (d *Directory) Synonyms(id FontID) []FontID {
	return d.fonts.Synonyms(id)
}

// SetStorage moves a soft font between the temporary and permanent
// classes. The permanent-font registry, if one is connected, is told about
// fonts becoming permanent and about fonts ceasing to be.
func (d *Directory) SetStorage(id FontID, storage font.Storage) error {
	res, ok := d.Lookup(id)
	if !ok {
		return core.Error(core.EMISSING, "directory %s has no font %v", d.name, id)
	}
	if storage != font.Temporary && storage != font.Permanent {
		return core.Error(core.EINVALID, "soft font %v cannot be made %s", id, storage)
	}
	if res.Storage != font.Temporary && res.Storage != font.Permanent {
		return core.Error(core.EINVALID, "%s font %v cannot change storage class", res.Storage, id)
	}
	if storage == res.Storage {
		return nil
	}
	res.Storage = storage
	if d.registry != nil {
		if storage == font.Permanent {
			res.RegistryNumber = d.registry.RegisterPermanentFont(d.primary(id))
		} else {
			if err := d.registry.NotifyPermanentFontRemoved(d.primary(id), res.RegistryNumber); err != nil {
				tracer().Errorf("directory %s: font %v made temporary: %v", d.name, id, err)
			}
			res.RegistryNumber = -1
		}
	}
	tracer().Debugf("directory %s: font %v is %s", d.name, id, storage)
	return nil
}

func (d *Directory) primary(id FontID) FontID {
	if syn := d.fonts.Synonyms(id); len(syn) > 0 {
		return syn[0]
	}
	return id
}

// Delete removes the font stored under id together with all its synonyms.
// Selection slots referring to the font are cleared. Removal of a
// permanent font is reported to the permanent-font registry first; an
// error reported back is logged and does not stop the removal.
func (d *Directory) Delete(id FontID) bool {
	res, ok := d.Lookup(id)
	if !ok {
		return false
	}
	for _, s := range d.slots {
		if s.resource == res {
			s.clear()
		}
	}
	if res.Storage == font.Permanent && d.registry != nil {
		if err := d.registry.NotifyPermanentFontRemoved(d.primary(id), res.RegistryNumber); err != nil {
			tracer().Errorf("directory %s: removing permanent font %v: %v", d.name, id, err)
		}
	}
	d.fonts.Undef(id)
	tracer().Debugf("directory %s deleted font %v", d.name, id)
	return true
}

// DeleteAll removes all downloaded fonts, temporary and permanent ones.
// Internal and mass-storage fonts stay.
func (d *Directory) DeleteAll() {
	d.deleteIf(func(r *font.Resource) bool {
		return r.Storage == font.Temporary || r.Storage == font.Permanent
	})
}

// DeleteTemporary removes all temporary fonts.
func (d *Directory) DeleteTemporary() {
	d.deleteIf(func(r *font.Resource) bool {
		return r.Storage == font.Temporary
	})
}

func (d *Directory) deleteIf(pred func(*font.Resource) bool) {
	d.fonts.Each(func(id FontID, v interface{}) bool {
		if pred(v.(*font.Resource)) {
			d.Delete(id)
		}
		return true
	})
}

// DescriptorFor summarizes the font stored under id.
func (d *Directory) DescriptorFor(id FontID) (font.Descriptor, error) {
	res, ok := d.Lookup(id)
	if !ok {
		return font.Descriptor{}, core.Error(core.EMISSING, "directory %s has no font %v", d.name, id)
	}
	return font.Describe(res.Header), nil
}

// Each calls f for every font in definition order, with its defining ID.
// Enumeration stops if f returns false.
func (d *Directory) Each(f func(id FontID, res *font.Resource) bool) {
	d.fonts.Each(func(id FontID, v interface{}) bool {
		return f(id, v.(*font.Resource))
	})
}

// Len returns the number of fonts, not counting synonyms.
func (d *Directory) Len() int {
	return d.fonts.Len()
}

// LogDirectory is a helper function to dump the list of fonts in a
// directory to the trace-file (log-level Info).
func (d *Directory) LogDirectory() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- fonts in %s ---", d.name)
	d.Each(func(id FontID, res *font.Resource) bool {
		tracer().Infof("font %v = %q %s %s, %d glyphs, aliases %v", id, res.Header.Name,
			res.Technology(), res.Storage, res.Glyphs().Len(), d.Synonyms(id)[1:])
		return true
	})
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// --- Selection slots -------------------------------------------------------

// Slot is a font selection (primary, secondary, current) which refers to a
// font of a directory without owning it. A slot is either resolved to a
// font or needs to be recomputed by the selection logic of the
// interpreter.
type Slot struct {
	name     string
	id       FontID
	resource *font.Resource
}

// NewSlot creates an unresolved selection slot tracked by the directory.
func (d *Directory) NewSlot(name string) *Slot {
	s := &Slot{name: name}
	d.slots = append(d.slots, s)
	return s
}

// Name returns the name of the slot.
func (s *Slot) Name() string {
	return s.name
}

// NeedsRecompute is true if the slot does not refer to a font.
func (s *Slot) NeedsRecompute() bool {
	return s.resource == nil
}

// ID returns the font ID a slot was selected with.
func (s *Slot) ID() (FontID, bool) {
	return s.id, s.resource != nil
}

func (s *Slot) clear() {
	if s.resource != nil {
		tracer().Debugf("selection %s: font %v went away", s.name, s.id)
		s.resource.DetachSelection()
	}
	s.resource = nil
	s.id = FontID{}
}

// Select resolves a slot to the font stored under id.
func (d *Directory) Select(s *Slot, id FontID) error {
	res, ok := d.Lookup(id)
	if !ok {
		return core.Error(core.EMISSING, "directory %s has no font %v to select", d.name, id)
	}
	s.clear()
	s.id, s.resource = id, res
	res.AttachSelection()
	return nil
}

// Resolve returns the font a slot refers to. It is nil, false if the slot
// needs to be recomputed.
func (d *Directory) Resolve(s *Slot) (*font.Resource, bool) {
	if s.resource == nil {
		return nil, false
	}
	if res, ok := d.Lookup(s.id); !ok || res != s.resource {
		s.clear()
		return nil, false
	}
	return s.resource, true
}

// Unselect clears a slot.
func (d *Directory) Unselect(s *Slot) {
	s.clear()
}
