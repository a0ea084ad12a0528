package rule

import (
	"errors"
	"strings"
)

const (
	globalScopeToken = "~"
	keySeparator     = ':'
	escapeChar       = '\\'
)

var ErrMalformedKey = errors.New("malformed rule key")

// Key is the globally unique identity of a rule: rule ids are only unique
// inside a scope.
type Key struct {
	Scope string
	ID    string
}

// Encode flattens the key into a single index document id. The encoding is
// injective: separators and escape characters inside either component are
// escaped, and the global scope maps to a reserved token that no escaped
// scope can produce.
func (k Key) Encode() string {
	var b strings.Builder
	if k.Scope == "" {
		b.WriteString(globalScopeToken)
	} else {
		escapeInto(&b, k.Scope, true)
	}
	b.WriteByte(keySeparator)
	escapeInto(&b, k.ID, false)
	return b.String()
}

func DecodeKey(encoded string) (Key, error) {
	scope, rest, err := unescapeUntilSeparator(encoded)
	if err != nil {
		return Key{}, err
	}
	if rest == nil {
		return Key{}, ErrMalformedKey
	}
	id, tail, err := unescapeUntilSeparator(*rest)
	if err != nil {
		return Key{}, err
	}
	if tail != nil {
		return Key{}, ErrMalformedKey
	}
	if scope.raw == globalScopeToken {
		return Key{ID: id.value}, nil
	}
	return Key{Scope: scope.value, ID: id.value}, nil
}

func escapeInto(b *strings.Builder, s string, isScope bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == escapeChar, c == keySeparator:
			b.WriteByte(escapeChar)
		case isScope && c == globalScopeToken[0]:
			b.WriteByte(escapeChar)
		}
		b.WriteByte(c)
	}
}

type segment struct {
	raw   string
	value string
}

func unescapeUntilSeparator(s string) (segment, *string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case escapeChar:
			if i+1 >= len(s) {
				return segment{}, nil, ErrMalformedKey
			}
			i++
			b.WriteByte(s[i])
		case keySeparator:
			rest := s[i+1:]
			return segment{raw: s[:i], value: b.String()}, &rest, nil
		default:
			b.WriteByte(c)
		}
	}
	return segment{raw: s, value: b.String()}, nil, nil
}
