package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/softfont/core"
	"github.com/npillmayer/softfont/core/font/fontregistry"
)

// Op codes of the interpreter.
const (
	QUIT int = iota
	HELP
	SAMPLE
	LOAD
	CHAR
	LIST
	DELETE
	ALIAS
	PERMANENT
	TEMPORARY
	EMBED
	WHITELIST
	SCAN
	RESET
)

var commandNames = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"sample":    SAMPLE,
	"load":      LOAD,
	"char":      CHAR,
	"list":      LIST,
	"delete":    DELETE,
	"alias":     ALIAS,
	"permanent": PERMANENT,
	"temporary": TEMPORARY,
	"embed":     EMBED,
	"whitelist": WHITELIST,
	"scan":      SCAN,
	"reset":     RESET,
}

// commandTable resolves commands by unique prefixes, e.g. "perm" for
// "permanent".
type commandTable struct {
	t *trie.Trie
}

func newCommandTable() *commandTable {
	ct := &commandTable{t: trie.New()}
	for name, code := range commandNames {
		ct.t.Add(name, code)
	}
	return ct
}

// Lookup finds the command for a word. Ambiguous prefixes are an error.
func (ct *commandTable) Lookup(word string) (int, error) {
	word = strings.ToLower(word)
	if node, ok := ct.t.Find(word); ok {
		return node.Meta().(int), nil
	}
	candidates := ct.t.PrefixSearch(word)
	switch len(candidates) {
	case 0:
		return HELP, core.Error(core.EINVALID, "unknown command %q", word)
	case 1:
		node, _ := ct.t.Find(candidates[0])
		return node.Meta().(int), nil
	}
	sort.Strings(candidates)
	return HELP, core.Error(core.EINVALID, "command %q is ambiguous: %s", word,
		strings.Join(candidates, ", "))
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string
}

func (ct *commandTable) parseCommand(line string) (*Command, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return &Command{code: HELP}, nil
	}
	code, err := ct.Lookup(words[0])
	if err != nil {
		return nil, err
	}
	tracer().Debugf("command %q → %d, args %v", words[0], code, words[1:])
	return &Command{code: code, args: words[1:]}, nil
}

func (cmd *Command) arg(i int) string {
	if i < len(cmd.args) {
		return cmd.args[i]
	}
	return ""
}

func (cmd *Command) need(n int, usage string) error {
	if len(cmd.args) < n {
		return core.Error(core.EMISSING, "usage: %s", usage)
	}
	return nil
}

// parseFontID reads a font ID argument. Numbers are numeric IDs, anything
// else is a string ID.
func parseFontID(s string) fontregistry.FontID {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return fontregistry.NumericID(uint32(n))
	}
	return fontregistry.StringID([]byte(s))
}

func parseNumber(s string, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "%s not numeric: %q", what, s)
	}
	return n, nil
}

func usage(code int) string {
	for name, c := range commandNames {
		if c == code {
			return fmt.Sprintf("%s %s", name, synopsis[code])
		}
	}
	return ""
}

var synopsis = map[int]string{
	QUIT:      "",
	HELP:      "[command]",
	SAMPLE:    "<id> [bitmap|truetype|intellifont] [name]",
	LOAD:      "<id> <file>",
	CHAR:      "<id> <code> <file>",
	LIST:      "",
	DELETE:    "<id>",
	ALIAS:     "<id> <alias>",
	PERMANENT: "<id>",
	TEMPORARY: "<id>",
	EMBED:     "<id>",
	WHITELIST: "<family name>",
	SCAN:      "[pattern]",
	RESET:     "",
}
