package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvironmentStrings(t *testing.T) {
	const testStr = "testvar"
	t.Setenv("TEST", testStr)
	t.Setenv("HOME", testStr)

	assert.Equal(t, testStr, ExpandEnvironmentStrings("%TEST%"))
	assert.Equal(t, testStr, ExpandEnvironmentStrings("%USERPROFILE%"))
}

func TestExpander_Expand(t *testing.T) {
	env := map[string]string{
		"TEST":  "testvar",
		"HOME":  "/home/me",
		"USER":  "me",
		"EMPTY": "",
		"A":     "%B%",
		"B":     "never",
	}
	e := NewExpander(DefaultAliases, mapLookup(env))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "%TEST%", want: "testvar"},
		{name: "alias", in: "%USERPROFILE%", want: "/home/me"},
		{name: "second alias", in: "%USERNAME%", want: "me"},
		{name: "undefined left untouched", in: "%UNDEFINED_VAR%", want: "%UNDEFINED_VAR%"},
		{name: "undefined alias target left renamed", in: "%APPDATA%", want: "%XDG_CONFIG_HOME%"},
		{name: "defined empty", in: "[%EMPTY%]", want: "[]"},
		{name: "repeated", in: "%TEST%-%TEST%", want: "testvar-testvar"},
		{name: "not recursive", in: "%A%", want: "%B%"},
		{name: "no tokens", in: "plain text", want: "plain text"},
		{name: "lone percent", in: "100%", want: "100%"},
		{name: "mixed", in: "x%TEST%y%NOPE%z", want: "xtestvary%NOPE%z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Expand(tt.in))
		})
	}
}

func TestExpander_NormalizesSeparators(t *testing.T) {
	e := NewExpander(DefaultAliases, mapLookup(map[string]string{"HOME": "/home/me"}))

	got := e.Expand(`%USERPROFILE%\AppData\Local`)
	if filepath.Separator == '\\' {
		assert.Equal(t, `/home/me\AppData\Local`, got)
		return
	}
	assert.Equal(t, "/home/me/AppData/Local", got)
}

func TestExpander_CustomAliases(t *testing.T) {
	e := NewExpander([]Alias{{From: "TEMP", To: "TMPDIR"}}, mapLookup(map[string]string{"TMPDIR": "/tmp"}))
	assert.Equal(t, "/tmp", e.Expand("%TEMP%"))
	assert.Equal(t, "%USERPROFILE%", e.Expand("%USERPROFILE%"), "only the configured table applies")
}

func TestConfig_Expander(t *testing.T) {
	t.Setenv("UNIXREG_EXPAND_TEST", "ok")
	cfg := Config{Aliases: []Alias{{From: "WINONLY", To: "UNIXREG_EXPAND_TEST"}}}
	assert.Equal(t, "ok", cfg.Expander().Expand("%WINONLY%"))
}
