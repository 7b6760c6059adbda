package font

import (
	"path"
	"strings"

	xfont "golang.org/x/image/font"
)

// GuessStyleAndWeight tries to guess a font's style and weight from a font
// name or from the name of a font file, e.g. "Arial-BoldItalic.ttf" or
// "Gill Sans MT Bold Italic".
func GuessStyleAndWeight(fontname string) (xfont.Style, xfont.Weight) {
	fontname = path.Base(fontname)
	if ext := path.Ext(fontname); len(ext) == 4 {
		fontname = fontname[:len(fontname)-len(ext)]
	}
	fontname = strings.ToLower(fontname)
	s := strings.FieldsFunc(fontname, func(r rune) bool { return r == '-' || r == ' ' })
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontname, "italic") || strings.Contains(fontname, "oblique") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontname, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontname, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
