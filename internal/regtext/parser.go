package regtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/unixreg/pkg/types"
)

// Op is one edit produced by Parse.
type Op interface{ isOp() }

// OpCreateKey creates a key. It is emitted once per distinct section.
type OpCreateKey struct {
	Root types.RootKey
	Path string // "/"-separated, relative to Root
}

func (OpCreateKey) isOp() {}

// OpDeleteKey deletes a key ([-path] section).
type OpDeleteKey struct {
	Root types.RootKey
	Path string
}

func (OpDeleteKey) isOp() {}

// OpSetValue sets a value. Data is the unescaped text of string values and
// the normalized raw payload (e.g. "dword:00000001", "hex:01,02") otherwise.
type OpSetValue struct {
	Root types.RootKey
	Path string
	Name string // "" for the default value
	Type types.RegType
	Data string
}

func (OpSetValue) isOp() {}

// OpDeleteValue deletes a value ("name"=-).
type OpDeleteValue struct {
	Root types.RootKey
	Path string
	Name string
}

func (OpDeleteValue) isOp() {}

// ParseOptions controls Parse.
type ParseOptions struct {
	// Encoding is used when the input has no byte order mark: "UTF-8"
	// (default), "UTF-16LE", "UTF-16BE" or "WINDOWS-1252".
	Encoding string
}

// section is the key currently receiving values.
type section struct {
	root types.RootKey
	path string
	ok   bool
}

// Parse reads .reg text and returns the edits it describes, in file order.
//
// The header line is optional. Section paths may start with a root name
// (HKEY_CURRENT_USER, HKCU, ...); paths without one belong to the current
// user.
func Parse(r io.Reader, opts ParseOptions) ([]Op, error) {
	dr, err := newDecodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(dr)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var (
		ops       []Op
		current   section
		seenKeys  = make(map[string]bool)
		pending   strings.Builder
		startLine int
		lineNo    int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))

		if pending.Len() == 0 {
			if line == "" || strings.HasPrefix(line, CommentPrefix) {
				continue
			}
			if line == RegFileHeader || line == RegFileHeaderV4 {
				continue
			}
			if strings.HasPrefix(line, KeyOpenBracket) {
				op, next, err := parseSection(line, lineNo)
				if err != nil {
					return nil, err
				}
				current = next
				switch op := op.(type) {
				case OpCreateKey:
					id := op.Root.String() + KeySeparator + op.Path
					if seenKeys[id] {
						continue
					}
					seenKeys[id] = true
				case OpDeleteKey:
					delete(seenKeys, op.Root.String()+KeySeparator+op.Path)
				}
				ops = append(ops, op)
				continue
			}
			startLine = lineNo
		}

		if strings.HasSuffix(line, LineContinuation) {
			pending.WriteString(strings.TrimSuffix(line, LineContinuation))
			continue
		}
		pending.WriteString(line)
		logical := pending.String()
		pending.Reset()

		op, err := parseValueLine(current, logical, startLine)
		if err != nil {
			return nil, err
		}
		if op != nil {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("regtext: scanning .reg file: %w", err)
	}
	if pending.Len() > 0 {
		op, err := parseValueLine(current, pending.String(), startLine)
		if err != nil {
			return nil, err
		}
		if op != nil {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func formatError(line int, format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  fmt.Sprintf("regtext: line %d: %s", line, fmt.Sprintf(format, args...)),
	}
}

// parseSection handles a [path] or [-path] line.
func parseSection(line string, lineNo int) (Op, section, error) {
	if !strings.HasSuffix(line, KeyCloseBracket) {
		return nil, section{}, formatError(lineNo, "malformed section %q", line)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(line, KeyOpenBracket), KeyCloseBracket)

	if strings.HasPrefix(body, DeleteKeyPrefix) {
		root, path := SplitKeyPath(strings.TrimSpace(body[len(DeleteKeyPrefix):]))
		return OpDeleteKey{Root: root, Path: path}, section{}, nil
	}

	root, path := SplitKeyPath(strings.TrimSpace(body))
	return OpCreateKey{Root: root, Path: path}, section{root: root, path: path, ok: true}, nil
}

// SplitKeyPath splits a registry path such as HKCU\Software\App into its root
// and a "/"-separated path. Paths without a recognized root belong to
// HKEY_CURRENT_USER.
func SplitKeyPath(p string) (types.RootKey, string) {
	p = strings.Trim(p, Backslash)
	first, rest, _ := strings.Cut(p, Backslash)
	root, ok := types.ParseRootKey(first)
	if !ok {
		root, rest = types.HKEY_CURRENT_USER, p
	}
	rest = strings.ReplaceAll(rest, Backslash, KeySeparator)
	return root, strings.Trim(rest, KeySeparator)
}

func parseValueLine(cur section, line string, lineNo int) (Op, error) {
	if !cur.ok {
		return nil, formatError(lineNo, "value without section: %q", line)
	}

	var name, payload string
	switch {
	case strings.HasPrefix(line, DefaultValuePrefix):
		payload = line[len(DefaultValuePrefix):]
	case strings.HasPrefix(line, Quote):
		end := findClosingQuote(line)
		if end < 0 {
			return nil, formatError(lineNo, "unterminated value name in %q", line)
		}
		name = unescapeRegString(line[1:end])
		rest := strings.TrimSpace(line[end+1:])
		if !strings.HasPrefix(rest, ValueAssignment) {
			return nil, formatError(lineNo, "missing '=' in %q", line)
		}
		payload = rest[len(ValueAssignment):]
	default:
		return nil, formatError(lineNo, "malformed value line %q", line)
	}

	payload = strings.TrimSpace(payload)
	if payload == DeleteValueToken {
		return OpDeleteValue{Root: cur.root, Path: cur.path, Name: name}, nil
	}

	typ, data, err := parsePayload(payload)
	if err != nil {
		return nil, formatError(lineNo, "value %q: %v", name, err)
	}
	return OpSetValue{Root: cur.root, Path: cur.path, Name: name, Type: typ, Data: data}, nil
}

// parsePayload classifies the right-hand side of a value line.
func parsePayload(payload string) (types.RegType, string, error) {
	lower := strings.ToLower(payload)
	switch {
	case strings.HasPrefix(payload, Quote):
		if len(payload) < 2 || !strings.HasSuffix(payload, Quote) || findClosingQuote(payload) != len(payload)-1 {
			return 0, "", fmt.Errorf("unterminated string %q", payload)
		}
		return types.REG_SZ, unescapeRegString(payload[1 : len(payload)-1]), nil

	case strings.HasPrefix(lower, DWORDPrefix):
		digits := payload[len(DWORDPrefix):]
		if len(digits) != DWORDHexLength {
			return 0, "", fmt.Errorf("invalid dword %q", payload)
		}
		if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
			return 0, "", fmt.Errorf("invalid dword %q", payload)
		}
		return types.REG_DWORD, DWORDPrefix + strings.ToLower(digits), nil

	case strings.HasPrefix(lower, QWORDPrefix):
		digits := payload[len(QWORDPrefix):]
		if len(digits) == 0 || len(digits) > QWORDHexLength {
			return 0, "", fmt.Errorf("invalid qword %q", payload)
		}
		if _, err := strconv.ParseUint(digits, 16, 64); err != nil {
			return 0, "", fmt.Errorf("invalid qword %q", payload)
		}
		return types.REG_QWORD, QWORDPrefix + strings.ToLower(digits), nil

	case strings.HasPrefix(lower, HexPrefix):
		list := strings.ToLower(removeWhitespace(payload[len(HexPrefix):]))
		if err := checkHexBytes(list); err != nil {
			return 0, "", err
		}
		return types.REG_BINARY, HexPrefix + list, nil

	case strings.HasPrefix(lower, HexTypedPrefix):
		typ, rest, err := parseHexValueType(lower)
		if err != nil {
			return 0, "", err
		}
		list := removeWhitespace(rest)
		if err := checkHexBytes(list); err != nil {
			return 0, "", err
		}
		return typ, fmt.Sprintf("hex(%x):%s", uint32(typ), list), nil

	default:
		return 0, "", fmt.Errorf("unsupported value %q", payload)
	}
}
