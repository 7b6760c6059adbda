package locate

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/softfont/core"
)

// KeyFontConfig is the configuration key for the absolute path of the
// 'fc-list' binary.
const KeyFontConfig = "fontconfig"

// FontConfigured is true if conf points to a fontconfig binary.
func FontConfigured(conf schuko.Configuration) bool {
	return conf != nil && conf.IsSet(KeyFontConfig) && conf.GetString(KeyFontConfig) != ""
}

// ListFontConfig lists installed fonts with the help of fontconfig
// (https://www.freedesktop.org/wiki/Software/fontconfig/). We call the
// binary instead of using the C library because of possible version issues.
func ListFontConfig(conf schuko.Configuration, pattern string) ([]Installed, error) {
	fcpath, err := fontConfigBinary(conf)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	fccmd := exec.Command(fcpath)
	fccmd.Stdout = &out
	if err = fccmd.Run(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "running %s", fcpath)
	}
	fonts, err := ParseFontConfigList(&out, pattern)
	if err != nil {
		return nil, err
	}
	if len(fonts) == 0 {
		return nil, core.Error(core.EMISSING, "fontconfig lists no fonts for %q", pattern)
	}
	return fonts, nil
}

func fontConfigBinary(conf schuko.Configuration) (string, error) {
	if !FontConfigured(conf) {
		tracer().Infof("fontconfig not configured: key '%s' should point to 'fc-list'", KeyFontConfig)
		return "", core.Error(core.EMISSING, "fontconfig not configured")
	}
	fcpath := conf.GetString(KeyFontConfig)
	if !filepath.IsAbs(fcpath) {
		return "", core.Error(core.EINVALID, "fontconfig binary fc-list must be an absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return fcpath, nil
}

// ParseFontConfigList reads the output of fc-list, which has lines of the
// form
//
//	/usr/share/fonts/Vera.ttf: Bitstream Vera Sans:style=Roman
//
// Font collections and non-TrueType files are skipped. If pattern is not
// empty, only families containing pattern are kept.
func ParseFontConfigList(r io.Reader, pattern string) ([]Installed, error) {
	pattern = strings.ToLower(pattern)
	var fonts []Installed
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		if !isFontFile(strings.ToLower(fontpath)) {
			skipped++
			continue
		}
		// a font may list several family names, the first one is canonical
		family := strings.TrimSpace(strings.Split(fields[1], ",")[0])
		family = strings.TrimPrefix(family, ".")
		if family == "" {
			continue
		}
		if pattern != "" && !strings.Contains(strings.ToLower(family), pattern) {
			continue
		}
		fonts = append(fonts, installed(fontpath, family))
	}
	if err := scanner.Err(); err != nil {
		return fonts, core.WrapError(err, core.EINVALID, "reading fontconfig font list")
	}
	if skipped > 0 {
		tracer().Debugf("skipping %d fonts which are neither TrueType nor OpenType", skipped)
	}
	sortInstalled(fonts)
	return fonts, nil
}
