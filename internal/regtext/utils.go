package regtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/unixreg/pkg/types"
)

// unescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \"
func unescapeRegString(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '"') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found.
// The search starts at position 1 (assuming the opening quote is at position 0).
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] != '"' {
			continue
		}
		numBackslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			numBackslashes++
		}
		if numBackslashes%2 == 1 {
			continue
		}
		return i
	}
	return -1
}

// removeWhitespace removes whitespace and line continuation characters
// from a string. This is used when normalizing hex data that spanned lines.
func removeWhitespace(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for _, ch := range s {
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' && ch != '\\' {
			result.WriteRune(ch)
		}
	}

	return result.String()
}

// checkHexBytes validates comma-separated hex bytes (the part after "hex:").
// Single-digit bytes are accepted, matching regedit.
func checkHexBytes(list string) error {
	if list == "" {
		return nil
	}
	for _, p := range strings.Split(list, HexByteSeparator) {
		if p == "" {
			continue
		}
		if len(p) > 2 {
			return fmt.Errorf("invalid hex byte %q", p)
		}
		if _, err := strconv.ParseUint(p, 16, 8); err != nil {
			return fmt.Errorf("invalid hex byte %q", p)
		}
	}
	return nil
}

// parseHexValueType extracts the registry type from a hex() prefix.
// For example, "hex(2):..." returns REG_EXPAND_SZ and the byte list.
func parseHexValueType(payload string) (types.RegType, string, error) {
	closeParen := strings.Index(payload, ")")
	if closeParen < len(HexTypedPrefix) {
		return 0, "", errors.New("unterminated hex type")
	}
	n, err := strconv.ParseUint(payload[len(HexTypedPrefix):closeParen], 16, 32)
	if err != nil {
		return 0, "", fmt.Errorf("invalid hex type %q", payload[:closeParen+1])
	}
	rest := payload[closeParen+1:]
	if !strings.HasPrefix(rest, ":") {
		return 0, "", fmt.Errorf("missing ':' after %q", payload[:closeParen+1])
	}
	return types.RegType(n), rest[1:], nil
}
