package registry

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Alias renames a Windows-only environment variable to its nearest host
// equivalent before substitution.
type Alias struct {
	From string
	To   string
}

// DefaultAliases is the built-in rename table, applied in order.
var DefaultAliases = []Alias{
	{From: "USERPROFILE", To: "HOME"},
	{From: "USERNAME", To: "USER"},
	{From: "APPDATA", To: "XDG_CONFIG_HOME"},
}

var envToken = regexp.MustCompile(`%(.+?)%`)

// Expander substitutes %NAME% tokens with environment values.
type Expander struct {
	aliases []Alias
	lookup  func(string) (string, bool)
}

// NewExpander returns an Expander applying aliases in order and reading
// variables through lookup (os.LookupEnv when nil).
func NewExpander(aliases []Alias, lookup func(string) (string, bool)) *Expander {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Expander{aliases: aliases, lookup: lookup}
}

// Expand rewrites aliased tokens, substitutes every defined %NAME% token and
// converts backslashes to the host separator. Undefined tokens are left as
// they are. Substituted values are not scanned again.
func (e *Expander) Expand(s string) string {
	for _, a := range e.aliases {
		s = strings.ReplaceAll(s, "%"+a.From+"%", "%"+a.To+"%")
	}

	s = envToken.ReplaceAllStringFunc(s, func(token string) string {
		if val, ok := e.lookup(token[1 : len(token)-1]); ok {
			return val
		}
		return token
	})

	if filepath.Separator != '\\' {
		s = strings.ReplaceAll(s, `\`, string(filepath.Separator))
	}
	return s
}

// ExpandEnvironmentStrings expands s against the process environment with
// the default aliases.
func ExpandEnvironmentStrings(s string) string {
	return NewExpander(DefaultAliases, nil).Expand(s)
}
