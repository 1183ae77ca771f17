// Package markup splits lightly-marked-up text (Telegram-flavored markdown)
// into length-bounded chunks without corrupting the markup.
//
// The package works in two stages: a single-pass scanner finds "protected
// zones" (fenced code blocks, inline code, links, formatting spans), then the
// splitter places chunk boundaries so that atomic zones are never cut and
// reopenable zones are closed at the end of one chunk and reopened at the
// start of the next.
//
// All offsets and lengths are rune-based. Length ceilings therefore count
// characters, and a forced mid-word split can never land inside a UTF-8
// sequence.
package markup

// Zone marks a span of source text whose markup must survive chunking intact.
type Zone struct {
	// Start and End are half-open rune offsets into the source; End points
	// past the closing delimiter.
	Start int
	End   int

	// OpenTag reopens the zone at the start of a continuation chunk. For
	// fenced blocks it is the entire opening line, language tag included.
	OpenTag string

	// CloseTag closes the zone at the end of a truncated chunk.
	CloseTag string

	// RequireNewline zones (fenced blocks) need their delimiter on its own
	// line when closed and reopened.
	RequireNewline bool

	// Atomic zones (inline code, links) must never be split.
	Atomic bool
}

var fenceTag = []rune("```")

// FindZones scans text once, left to right, and returns its protected zones
// in source order. Zones never overlap and are not nested: a zone's interior
// is not re-scanned, so markers inside an earlier zone are swallowed as raw
// text. Unmatched openers are ordinary text.
func FindZones(text string) []Zone {
	return scanZones([]rune(text))
}

func scanZones(src []rune) []Zone {
	var zones []Zone
	n := len(src)
	i := 0

	for i < n {
		// A backslash escapes the next character; neither can open a zone.
		if src[i] == '\\' {
			i += 2
			continue
		}

		// ```fenced block```
		if hasTag(src, i, fenceTag) {
			if end := findClose(src, i+3, fenceTag); end != -1 {
				zones = append(zones, Zone{
					Start:          i,
					End:            end,
					OpenTag:        fenceOpenTag(src[i:end]),
					CloseTag:       string(fenceTag),
					RequireNewline: true,
				})
				i = end
				continue
			}
		}

		// `inline code`
		if src[i] == '`' {
			if end := findClose(src, i+1, []rune{'`'}); end != -1 {
				zones = append(zones, Zone{
					Start:    i,
					End:      end,
					OpenTag:  "`",
					CloseTag: "`",
					Atomic:   true,
				})
				i = end
				continue
			}
		}

		// [text](url)
		if src[i] == '[' {
			if textEnd := findClose(src, i+1, []rune{']'}); textEnd != -1 && textEnd < n && src[textEnd] == '(' {
				if urlEnd := findClose(src, textEnd+1, []rune{')'}); urlEnd != -1 {
					// The whole construct is carried verbatim, never
					// reopened, so it needs no tags.
					zones = append(zones, Zone{
						Start:  i,
						End:    urlEnd,
						Atomic: true,
					})
					i = urlEnd
					continue
				}
			}
		}

		// Formatting spans: *, _, __, ~, ||
		if tag := formattingTag(src, i); tag != nil {
			if end := findClose(src, i+len(tag), tag); end != -1 {
				zones = append(zones, Zone{
					Start:    i,
					End:      end,
					OpenTag:  string(tag),
					CloseTag: string(tag),
				})
				i = end
				continue
			}
		}

		i++
	}

	return zones
}

// formattingTag returns the formatting marker starting at position i, or nil.
// Double underscore is only recognized when two underscores are adjacent.
func formattingTag(src []rune, i int) []rune {
	switch src[i] {
	case '*':
		return []rune{'*'}
	case '_':
		if i+1 < len(src) && src[i+1] == '_' {
			return []rune{'_', '_'}
		}
		return []rune{'_'}
	case '~':
		return []rune{'~'}
	case '|':
		if i+1 < len(src) && src[i+1] == '|' {
			return []rune{'|', '|'}
		}
	}
	return nil
}

// fenceOpenTag extracts the opening line of a fenced block span, language tag
// included. A single-line fence has no interior newline; the bare delimiter
// is used instead.
func fenceOpenTag(span []rune) string {
	for i, r := range span {
		if r == '\n' {
			return string(span[:i])
		}
	}
	return string(fenceTag)
}

// isEscaped reports whether the rune at index i is escaped: an odd number of
// consecutive backslashes immediately precedes it.
func isEscaped(src []rune, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && src[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 != 0
}

// findClose finds the next unescaped occurrence of tag at or after from and
// returns the position just past it, or -1 if there is none.
func findClose(src []rune, from int, tag []rune) int {
	for i := from; i+len(tag) <= len(src); i++ {
		if !hasTag(src, i, tag) {
			continue
		}
		if isEscaped(src, i) {
			continue
		}
		return i + len(tag)
	}
	return -1
}

// hasTag reports whether tag occurs at position i.
func hasTag(src []rune, i int, tag []rune) bool {
	if i+len(tag) > len(src) {
		return false
	}
	for j, r := range tag {
		if src[i+j] != r {
			return false
		}
	}
	return true
}
