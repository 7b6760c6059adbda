package session

import (
	"fmt"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/softfont/core/font/embedding"
	"github.com/npillmayer/softfont/core/font/fontregistry"
)

// Context is the soft-font state of an interpreter session. It owns the
// font directory and the macro dictionary.
type Context struct {
	Options   Options
	Fonts     *fontregistry.Directory
	Macros    *fontregistry.Dict
	Permanent *PermanentFonts
	warnings  []string
}

// New creates a session context with the given options.
func New(opts Options) *Context {
	perm := NewPermanentFonts()
	return &Context{
		Options:   opts,
		Fonts:     fontregistry.NewDirectory("soft fonts", fontregistry.WithPermanentRegistry(perm)),
		Macros:    fontregistry.NewDict(),
		Permanent: perm,
	}
}

// NewFromConfig creates a session context configured by conf.
func NewFromConfig(conf schuko.Configuration) *Context {
	return New(OptionsFromConfig(conf))
}

// Warn records a warning for the job. Warnings do not stop
// interpretation.
func (ctx *Context) Warn(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	tracer().Infof("warning: %s", msg)
	ctx.warnings = append(ctx.warnings, msg)
}

// Warnings returns the warnings recorded so far.
func (ctx *Context) Warnings() []string {
	return ctx.warnings
}

// ClearWarnings drops all recorded warnings.
func (ctx *Context) ClearWarnings() {
	ctx.warnings = nil
}

// EmbeddingDecision decides whether the font stored under id is to be
// embedded into an output document.
func (ctx *Context) EmbeddingDecision(id fontregistry.FontID) (embedding.Decision, error) {
	desc, err := ctx.Fonts.DescriptorFor(id)
	if err != nil {
		return embedding.Decision{}, err
	}
	d := embedding.Decide(desc, ctx.Options.Embedding)
	tracer().Debugf("font %v (%q): %s, %s", id, desc.Family, d.Status, d.Reason)
	return d, nil
}

// Release deletes all downloaded fonts and macros.
func (ctx *Context) Release() {
	ctx.Fonts.DeleteAll()
	ctx.Macros.Release()
	ctx.warnings = nil
}
