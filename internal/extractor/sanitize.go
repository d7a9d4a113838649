package extractor

import "strings"

// Boundary selects how Sanitize repairs text that does not start with the
// expected JSON delimiter.
type Boundary int

const (
	// ArrayWrap wraps the text in [ ].
	ArrayWrap Boundary = iota
	// ArraySlice keeps the span from the first [ to the last ].
	ArraySlice
	// Object keeps the span from the first { to the last }.
	Object
)

// Sanitize strips U+0000..U+001F, trims whitespace and repairs the outer
// delimiters according to b. It never guarantees well-formed JSON.
func Sanitize(text string, b Boundary) string {
	text = strings.TrimSpace(stripControl(text))

	switch b {
	case ArrayWrap:
		if !strings.HasPrefix(text, "[") {
			text = "[" + text + "]"
		}
	case ArraySlice:
		if !strings.HasPrefix(text, "[") {
			text = sliceBetween(text, "[", "]")
		}
	case Object:
		if !strings.HasPrefix(text, "{") {
			text = sliceBetween(text, "{", "}")
		}
	}
	return text
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x1F {
			return -1
		}
		return r
	}, s)
}

// sliceBetween returns s[first open : last close+1], or s when no such span exists.
func sliceBetween(s, open, close string) string {
	start := strings.Index(s, open)
	end := strings.LastIndex(s, close)
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}
