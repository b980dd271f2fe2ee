package telegram

import (
	"strings"
	"unicode/utf16"
)

// MaxMessageLength is Telegram's sendMessage text limit, in UTF-16 code units.
const MaxMessageLength = 4096

// splitSeparators are tried in order; cutting on blank lines keeps HTML cards whole.
var splitSeparators = []string{"\n\n", "\n"}

// SplitText cuts text into chunks of at most limit UTF-16 code units,
// preferring paragraph then line boundaries.
func SplitText(text string, limit int) []string {
	if limit <= 0 || textLen(text) <= limit {
		return []string{text}
	}
	return splitOn(text, limit, splitSeparators)
}

func splitOn(text string, limit int, seps []string) []string {
	if textLen(text) <= limit {
		return []string{text}
	}
	if len(seps) == 0 {
		return hardCut(text, limit)
	}

	sep := seps[0]
	var chunks []string
	cur, started := "", false
	for _, part := range strings.Split(text, sep) {
		if textLen(part) > limit {
			if started {
				chunks = append(chunks, cur)
				cur, started = "", false
			}
			chunks = append(chunks, splitOn(part, limit, seps[1:])...)
			continue
		}
		switch {
		case !started:
			cur, started = part, true
		case textLen(cur)+textLen(sep)+textLen(part) <= limit:
			cur += sep + part
		default:
			chunks = append(chunks, cur)
			cur = part
		}
	}
	if started {
		chunks = append(chunks, cur)
	}

	// drop chunks that are only whitespace left over from separators
	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

func hardCut(text string, limit int) []string {
	var chunks []string
	var b strings.Builder
	n := 0
	for _, r := range text {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if n+w > limit {
			chunks = append(chunks, b.String())
			b.Reset()
			n = 0
		}
		b.WriteRune(r)
		n += w
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

func textLen(s string) int {
	n := 0
	for _, r := range s {
		if w := utf16.RuneLen(r); w > 0 {
			n += w
		} else {
			n++
		}
	}
	return n
}
