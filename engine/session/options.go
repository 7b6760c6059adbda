package session

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/softfont/core/font/embedding"
)

// Configuration keys.
const (
	KeyMaxDownload  = "softfont.max-download"
	KeyWhitelist    = "embedding.whitelist"
	KeyEmbedAll     = "embedding.embed-all"
	KeyAlwaysEmbed  = "embedding.always"
	KeyNeverEmbed   = "embedding.never"
	KeyStringIDMax  = "pcl.string-id-max"
	DefaultMaxBytes = 16 << 20
	DefaultIDMax    = 512
)

// Options are the session parameters taken from the application
// configuration.
type Options struct {
	MaxDownload int // upper bound for declared block lengths
	StringIDMax int // upper bound for PCL alphanumeric ID commands
	Embedding   embedding.Options
}

// DefaultOptions returns options for a session without configuration.
func DefaultOptions() Options {
	return Options{
		MaxDownload: DefaultMaxBytes,
		StringIDMax: DefaultIDMax,
		Embedding:   embedding.DefaultOptions(),
	}
}

// OptionsFromConfig reads session options from a configuration. Keys not
// set keep their defaults.
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet(KeyMaxDownload) {
		if n := conf.GetInt(KeyMaxDownload); n > 0 {
			opts.MaxDownload = n
		} else {
			tracer().Errorf("ignoring config %s = %q", KeyMaxDownload, conf.GetString(KeyMaxDownload))
		}
	}
	if conf.IsSet(KeyStringIDMax) {
		if n := conf.GetInt(KeyStringIDMax); n > 0 {
			opts.StringIDMax = n
		} else {
			tracer().Errorf("ignoring config %s = %q", KeyStringIDMax, conf.GetString(KeyStringIDMax))
		}
	}
	if conf.IsSet(KeyWhitelist) {
		opts.Embedding.AllowWhitelist = conf.GetBool(KeyWhitelist)
	}
	if conf.IsSet(KeyEmbedAll) {
		opts.Embedding.EmbedAllFonts = conf.GetBool(KeyEmbedAll)
	}
	opts.Embedding.AlwaysEmbed = nameList(conf, KeyAlwaysEmbed)
	opts.Embedding.NeverEmbed = nameList(conf, KeyNeverEmbed)
	return opts
}

// nameList splits a comma-separated list of font names.
func nameList(conf schuko.Configuration, key string) []string {
	if !conf.IsSet(key) {
		return nil
	}
	var names []string
	for _, n := range strings.Split(conf.GetString(key), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
