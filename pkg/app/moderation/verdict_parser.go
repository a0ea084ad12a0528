package moderation

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

const (
	fieldIsViolation = "is_violation"
	fieldReason      = "reason"
)

var parserPool fastjson.ParserPool

// ParseVerdict extracts the verdict object from free-form model output.
// Surrounding prose and markdown fences are ignored: the first brace-balanced
// span that decodes as a JSON object is used. A missing or null
// is_violation reads as false and a missing, null or empty reason as
// ReasonMissing; any other type for either field is an error.
func ParseVerdict(raw string) (Result, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	for start := strings.IndexByte(raw, '{'); start >= 0; {
		if end := matchingBrace(raw, start); end >= 0 {
			v, err := p.Parse(raw[start : end+1])
			if err == nil && v.Type() == fastjson.TypeObject {
				return decodeVerdict(v)
			}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return Result{}, fmt.Errorf("%w: no JSON object found in model output", ErrUnparsableVerdict)
}

func decodeVerdict(v *fastjson.Value) (Result, error) {
	res := Result{Verdict: VerdictNoViolation, Reason: ReasonMissing}

	if iv := v.Get(fieldIsViolation); iv != nil {
		switch iv.Type() {
		case fastjson.TypeTrue:
			res.Verdict = VerdictViolation
		case fastjson.TypeFalse, fastjson.TypeNull:
		default:
			return Result{}, fmt.Errorf("%w: %s must be a boolean, got %s", ErrUnparsableVerdict, fieldIsViolation, iv.Type())
		}
	}

	if rv := v.Get(fieldReason); rv != nil {
		switch rv.Type() {
		case fastjson.TypeString:
			if s := strings.TrimSpace(string(rv.GetStringBytes())); s != "" {
				res.Reason = s
			}
		case fastjson.TypeNull:
		default:
			return Result{}, fmt.Errorf("%w: %s must be a string, got %s", ErrUnparsableVerdict, fieldReason, rv.Type())
		}
	}
	return res, nil
}

// matchingBrace returns the index of the brace closing the one at start,
// skipping braces inside JSON strings, or -1 when unbalanced.
func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
