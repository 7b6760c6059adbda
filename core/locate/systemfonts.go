package locate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/whitelist"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// Installed is a font file installed on the local system.
type Installed struct {
	Path        string
	Family      string
	Style       xfont.Style
	Weight      xfont.Weight
	Whitelisted bool // the family may be embedded regardless of license flags
}

func installed(path, family string) Installed {
	style, weight := font.GuessStyleAndWeight(path)
	return Installed{
		Path:        path,
		Family:      family,
		Style:       style,
		Weight:      weight,
		Whitelisted: whitelist.MayEmbed(family),
	}
}

// ScanSystemFonts inspects the TrueType and OpenType files in the platform
// font directories. If pattern is not empty, only files with pattern in
// their name are inspected. Font collections are skipped.
func ScanSystemFonts(pattern string) ([]Installed, error) {
	pattern = strings.ToLower(pattern)
	var fonts []Installed
	var buf sfnt.Buffer
	for _, path := range findfont.List() {
		base := strings.ToLower(filepath.Base(path))
		if pattern != "" && !strings.Contains(base, pattern) {
			continue
		}
		if !isFontFile(base) {
			continue
		}
		family, err := FamilyName(path, &buf)
		if err != nil {
			tracer().Debugf("skipping %s: %v", path, err)
			continue
		}
		fonts = append(fonts, installed(path, family))
	}
	if len(fonts) == 0 {
		return nil, core.Error(core.EMISSING, "no system fonts found for %q", pattern)
	}
	sortInstalled(fonts)
	tracer().Infof("found %d system fonts", len(fonts))
	return fonts, nil
}

// FindSystemFont locates a single installed font by file name, e.g.
// "Arial.ttf" or "arial".
func FindSystemFont(name string) (Installed, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return Installed{}, core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	family, err := FamilyName(path, nil)
	if err != nil {
		return Installed{}, err
	}
	return installed(path, family), nil
}

// FamilyName reads the family name of a TrueType or OpenType font file.
// buf may be nil.
func FamilyName(path string, buf *sfnt.Buffer) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot read %s", path)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", core.WrapError(err, core.EINVALIDFONT, "cannot parse %s", path)
	}
	name, err := f.Name(buf, sfnt.NameIDFamily)
	if err != nil {
		return "", core.WrapError(err, core.EFONTDATA, "font %s has no family name", path)
	}
	return name, nil
}

func isFontFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".ttf" || ext == ".otf"
}

func sortInstalled(fonts []Installed) {
	sort.Slice(fonts, func(i, j int) bool {
		if fonts[i].Family != fonts[j].Family {
			return fonts[i].Family < fonts[j].Family
		}
		return fonts[i].Path < fonts[j].Path
	})
}
