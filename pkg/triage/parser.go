package triage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError is the sentinel returned when model output cannot be turned
// into structured data. It carries the raw reply for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractJSON returns the first balanced brace-delimited region of raw,
// skipping braces inside JSON string literals. Models wrap JSON in prose or
// markdown fences; this isolates the object without being fooled by either.
func ExtractJSON(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// Parse unmarshals raw model output into v. It first tries the reply
// verbatim, then retries on the first balanced brace region. It never
// panics; on repeated failure it returns a *ParseError carrying raw.
func Parse(raw string, v any) error {
	trimmed := strings.TrimSpace(raw)

	err := json.Unmarshal([]byte(trimmed), v)
	if err == nil {
		return nil
	}

	if region, ok := ExtractJSON(trimmed); ok {
		if err2 := json.Unmarshal([]byte(region), v); err2 == nil {
			return nil
		} else {
			err = err2
		}
	}

	return &ParseError{Raw: raw, Err: err}
}
