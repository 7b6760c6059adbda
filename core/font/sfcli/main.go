/*
Command sfcli is an interactive shell for the soft-font directory.

It downloads synthesized or file-based font headers and characters the way
a PCL5 or PCL XL job would, and lets the user inspect the directory and
the embedding decisions for its fonts. Numeric font IDs take the PCL5
path, string IDs the PCL XL path.

	sfcli -trace Debug -conf softfont.max-download=65536 -conf fontconfig=/usr/bin/fc-list
*/
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font"
	"github.com/npillmayer/softfont/core/font/fontregistry"
	"github.com/npillmayer/softfont/core/font/softfont/synth"
	"github.com/npillmayer/softfont/core/font/whitelist"
	"github.com/npillmayer/softfont/core/locate"
	"github.com/npillmayer/softfont/engine/pcl"
	"github.com/npillmayer/softfont/engine/pxl"
	"github.com/npillmayer/softfont/engine/session"
	"github.com/pterm/pterm"
)

// tracer traces with key 'softfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("softfont.fonts")
}

type confList []string

func (l *confList) String() string     { return strings.Join(*l, ",") }
func (l *confList) Set(s string) error { *l = append(*l, s); return nil }

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.softfont.fonts":   "Info",
		"trace.softfont.pcl":     "Info",
		"trace.softfont.pxl":     "Info",
		"trace.softfont.session": "Info",
		"trace.softfont.locate":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	var settings confList
	flag.Var(&settings, "conf", "Session setting key=value, may be repeated")
	flag.Parse()
	for _, s := range settings {
		if kv := strings.SplitN(s, "=", 2); len(kv) == 2 {
			conf[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the soft-font CLI")
	//
	// set up REPL
	repl, err := readline.New("sf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp(session.NewFromConfig(conf))
	intp.repl, intp.conf = repl, conf
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	conf     schuko.Configuration
	commands *commandTable
	session  *session.Context
	pcl      *pcl.State
	pxl      *pxl.State
}

func newIntp(s *session.Context) *Intp {
	return &Intp{
		commands: newCommandTable(),
		session:  s,
		pcl:      pcl.NewState(s),
		pxl:      pxl.NewState(s),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.commands.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		intp.flushWarnings()
		if quit {
			break
		}
	}
	intp.session.Release()
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	if cmd.code != HELP && cmd.code != QUIT && cmd.code != LIST && cmd.code != SCAN && cmd.code != RESET {
		if err := cmd.need(1, usage(cmd.code)); err != nil {
			return false, err
		}
	}
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg(0), intp.commands)
	case SAMPLE:
		return false, intp.sample(parseFontID(cmd.arg(0)), cmd.arg(1), cmd.arg(2))
	case LOAD:
		if err := cmd.need(2, usage(LOAD)); err != nil {
			return false, err
		}
		data, err := os.ReadFile(cmd.arg(1))
		if err != nil {
			return false, core.WrapError(err, core.EMISSING, "cannot read %s", cmd.arg(1))
		}
		return false, intp.downloadHeader(parseFontID(cmd.arg(0)), data)
	case CHAR:
		if err := cmd.need(3, usage(CHAR)); err != nil {
			return false, err
		}
		code, err := parseNumber(cmd.arg(1), "character code")
		if err != nil {
			return false, err
		}
		data, err := os.ReadFile(cmd.arg(2))
		if err != nil {
			return false, core.WrapError(err, core.EMISSING, "cannot read %s", cmd.arg(2))
		}
		return false, intp.downloadChar(parseFontID(cmd.arg(0)), uint16(code), data)
	case LIST:
		intp.list()
	case DELETE:
		id := parseFontID(cmd.arg(0))
		if id.IsNumeric() {
			intp.selectID(id)
			return false, intp.pcl.FontControl(pcl.DeleteFont)
		}
		return false, intp.pxl.RemoveFont([]byte(cmd.arg(0)))
	case ALIAS:
		if err := cmd.need(2, usage(ALIAS)); err != nil {
			return false, err
		}
		return false, intp.session.Fonts.Alias(parseFontID(cmd.arg(0)), parseFontID(cmd.arg(1)))
	case PERMANENT:
		return false, intp.session.Fonts.SetStorage(parseFontID(cmd.arg(0)), font.Permanent)
	case TEMPORARY:
		return false, intp.session.Fonts.SetStorage(parseFontID(cmd.arg(0)), font.Temporary)
	case EMBED:
		d, err := intp.session.EmbeddingDecision(parseFontID(cmd.arg(0)))
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s: %s (%s)", cmd.arg(0), d.Status, d.Reason)
	case WHITELIST:
		family := strings.Join(cmd.args, " ")
		if whitelist.MayEmbed(family) {
			pterm.Success.Printfln("%q is whitelisted", family)
		} else {
			pterm.Warning.Printfln("%q is not whitelisted", family)
		}
	case SCAN:
		return false, intp.scan(cmd.arg(0))
	case RESET:
		intp.pcl.Reset(pcl.ResetPrinter)
		intp.pxl.EndSession()
		pterm.Info.Println("temporary fonts removed")
	}
	return false, nil
}

// selectID makes id the current PCL font ID.
func (intp *Intp) selectID(id fontregistry.FontID) {
	if id.IsNumeric() {
		intp.pcl.AssignFontID(numeric(id))
		return
	}
	if err := intp.pcl.AlphanumericID(append([]byte{pcl.SetFontID}, id.Key()...)); err != nil {
		tracer().Errorf("font ID %v: %v", id, err)
	}
}

func numeric(id fontregistry.FontID) uint32 {
	var n uint32
	for _, b := range []byte(id.Key()) {
		n = n<<8 | uint32(b)
	}
	return n
}

// downloadHeader defines a font from a header block. Numeric IDs are
// downloaded as a PCL5 job would do it, string IDs as a PCL XL job.
func (intp *Intp) downloadHeader(id fontregistry.FontID, data []byte) error {
	if id.IsNumeric() {
		intp.selectID(id)
		s, err := intp.pcl.StreamFontHeader(len(data))
		if err != nil {
			return err
		}
		_, _, err = s.Feed(data)
		return err
	}
	name := []byte(id.Key())
	if err := intp.pxl.BeginFontHeader(name); err != nil {
		return err
	}
	src := pxl.NewSource(data)
	if _, err := intp.pxl.ReadFontHeader(len(data), src); err != nil {
		return err
	}
	return intp.pxl.EndFontHeader()
}

func (intp *Intp) downloadChar(id fontregistry.FontID, code uint16, data []byte) error {
	if _, ok := intp.session.Fonts.Lookup(id); !ok {
		return core.Error(core.EMISSING, "no font %v", id)
	}
	if id.IsNumeric() {
		intp.selectID(id)
		intp.pcl.CharacterCode(code)
		return intp.pcl.CharacterData(data)
	}
	name := []byte(id.Key())
	if err := intp.pxl.BeginChar(name); err != nil {
		return err
	}
	defer intp.pxl.EndChar()
	_, err := intp.pxl.ReadChar(code, len(data), pxl.NewSource(data))
	return err
}

// sample downloads a synthesized font with a few characters.
func (intp *Intp) sample(id fontregistry.FontID, kind, name string) error {
	if name == "" {
		name = "Sample"
	}
	spec := synth.HeaderSpec{Name: name, UnitsPerEm: 2048, WithOS2: true}
	var header []byte
	var chars [][]byte
	switch strings.ToLower(kind) {
	case "", "bitmap":
		if id.IsNumeric() {
			header = synth.PCLHeader(spec)
			chars = [][]byte{synth.PCLBitmapChar(8, 12), synth.PCLBitmapChar(10, 12)}
		} else {
			header = synth.PXLHeader(font.Bitmap, 256, spec)
			chars = [][]byte{synth.PXLBitmapChar(8, 12), synth.PXLBitmapChar(10, 12)}
		}
	case "truetype":
		spec.Format = 15
		glyph := []byte{0, 0, 0, 0}
		if id.IsNumeric() {
			header = synth.PCLHeader(spec)
			chars = [][]byte{synth.PCLTrueTypeChar(3, glyph), synth.PCLTrueTypeChar(4, glyph)}
		} else {
			header = synth.PXLHeader(font.TrueType, 256, spec)
			chars = [][]byte{synth.PXLTrueTypeChar(3, glyph), synth.PXLTrueTypeChar(4, glyph)}
		}
	case "intellifont":
		if !id.IsNumeric() {
			return core.Error(core.EINVALID, "Intellifont fonts need a numeric ID")
		}
		spec.Format = 10
		header = synth.PCLHeader(spec)
		chars = [][]byte{synth.PCLIntellifontContour(32, 14, 14, 14, 14), synth.PCLIntellifontCompound(2)}
	default:
		return core.Error(core.EINVALID, "unknown scaling technology %q", kind)
	}
	if err := intp.downloadHeader(id, header); err != nil {
		return err
	}
	for i, c := range chars {
		if err := intp.downloadChar(id, uint16('A'+i), c); err != nil {
			return err
		}
	}
	pterm.Success.Printfln("font %v defined with %d characters", id, len(chars))
	return nil
}

func (intp *Intp) list() {
	data := pterm.TableData{{"ID", "Name", "Technology", "Storage", "Glyphs", "Aliases", "Embedding"}}
	intp.session.Fonts.Each(func(id fontregistry.FontID, res *font.Resource) bool {
		var aliases []string
		for _, syn := range intp.session.Fonts.Synonyms(id)[1:] {
			aliases = append(aliases, syn.String())
		}
		embed := "?"
		if d, err := intp.session.EmbeddingDecision(id); err == nil {
			embed = d.Status.String()
		}
		data = append(data, []string{
			id.String(), res.Header.Name, res.Technology().String(), res.Storage.String(),
			pterm.Sprint(res.Glyphs().Len()), strings.Join(aliases, " "), embed,
		})
		return true
	})
	if len(data) == 1 {
		pterm.Info.Println("no fonts defined")
		return
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	intp.session.Fonts.LogDirectory()
}

// scan checks installed fonts against the embedding whitelist. fontconfig
// is preferred if it is configured.
func (intp *Intp) scan(pattern string) error {
	var fonts []locate.Installed
	var err error
	if locate.FontConfigured(intp.conf) {
		fonts, err = locate.ListFontConfig(intp.conf, pattern)
	} else {
		fonts, err = locate.ScanSystemFonts(pattern)
	}
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Family", "Style", "Weight", "Whitelisted", "File"}}
	for _, f := range fonts {
		listed := ""
		if f.Whitelisted {
			listed = "yes"
		}
		data = append(data, []string{f.Family, pterm.Sprint(f.Style), pterm.Sprint(f.Weight), listed, f.Path})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) flushWarnings() {
	for _, w := range intp.session.Warnings() {
		pterm.Warning.Println(w)
	}
	intp.session.ClearWarnings()
}

func help(topic string, commands *commandTable) {
	if topic != "" {
		if code, err := commands.Lookup(topic); err == nil {
			pterm.Info.Println(usage(code))
			return
		}
	}
	pterm.Info.Println("Commands (unique prefixes suffice)")
	for code := QUIT; code <= RESET; code++ {
		pterm.Println("  " + usage(code))
	}
}
