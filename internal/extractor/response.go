package extractor

import "regexp"

var (
	jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFence  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON returns the interior of the first ```json fenced block in raw,
// else the first untagged fenced block, else raw unchanged. Whitespace between
// the fence markers and the payload is dropped.
func ExtractJSON(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := anyFence.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}
