package markup

import "unicode/utf8"

// Splitting constants.
const (
	// DefaultMaxLength is used when the caller passes a non-positive ceiling.
	DefaultMaxLength = 4096

	// minProgress bounds the chunk body from below so an oversized reopening
	// prefix can never stall the cursor.
	minProgress = 100

	// boundaryLookback is how far back the splitter searches for a newline
	// or space before settling on a mid-word split.
	boundaryLookback = 150
)

// Split segments text into chunks of at most maxLength runes each, as closely
// as zone constraints allow, without breaking markup. A non-positive
// maxLength falls back to DefaultMaxLength.
//
// Chunk boundaries prefer a nearby newline over a space over a mid-word cut.
// Atomic zones are pushed whole into the next chunk; reopenable zones are
// closed at the chunk edge and reopened at the start of the next chunk, with
// fence delimiters placed on their own line. Stripped of that synthetic
// markup, the chunks partition the source exactly: in order, no gaps, no
// overlaps.
func Split(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	src := []rune(text)
	zones := scanZones(src)

	var chunks []string
	currentPos := 0
	pendingPrefix := ""
	n := len(src)

	for currentPos < n {
		effectiveMax := maxLength - utf8.RuneCountInString(pendingPrefix)
		if effectiveMax <= 0 {
			effectiveMax = minProgress
		}
		if n-currentPos <= effectiveMax {
			chunks = append(chunks, pendingPrefix+string(src[currentPos:]))
			break
		}

		splitPos := currentPos + effectiveMax

		// Never end a chunk mid-escape: walk back over a trailing run of
		// backslashes that are not themselves escaped.
		for splitPos > currentPos && src[splitPos-1] == '\\' && !isEscaped(src, splitPos-1) {
			splitPos--
		}

		var active *Zone
		for z := range zones {
			if zones[z].Start < splitPos && splitPos < zones[z].End {
				active = &zones[z]
				break
			}
		}

		suffix := ""
		nextPrefix := ""

		if active != nil {
			if active.Atomic {
				// Defer the whole zone to the next chunk. A zone that
				// already straddles currentPos was cut by a previous chunk;
				// it is left alone and the split may land inside it.
				if active.Start > currentPos {
					splitPos = active.Start
					active = nil
				}
			} else {
				if active.RequireNewline {
					suffix = "\n" + active.CloseTag
					nextPrefix = active.OpenTag + "\n"
				} else {
					suffix = active.CloseTag
					nextPrefix = active.OpenTag
				}
				if suffixLen := utf8.RuneCountInString(suffix); splitPos+suffixLen > currentPos+effectiveMax {
					splitPos -= suffixLen
				}
			}
		}

		// Under a tiny ceiling the adjustments above can land the boundary at
		// or before the cursor. Force one rune of progress so slicing stays
		// forward and the loop terminates.
		if splitPos <= currentPos {
			splitPos = currentPos + 1
		}

		// Look back a bounded distance for a nicer boundary. A newline wins
		// outright; a space is kept as a fallback but the search continues,
		// so the closest newline beats any space.
		bestSplit := splitPos
		foundNiceSplit := false
		searchBackLimit := splitPos - boundaryLookback
		if searchBackLimit < currentPos {
			searchBackLimit = currentPos
		}

		for i := splitPos; i > searchBackLimit; i-- {
			if src[i-1] == '\\' && !isEscaped(src, i-1) {
				continue
			}
			c := src[i-1]
			if c == '\n' {
				bestSplit = i
				foundNiceSplit = true
				break
			}
			if c == ' ' && !foundNiceSplit {
				bestSplit = i
				foundNiceSplit = true
			}
		}

		if foundNiceSplit {
			splitPos = bestSplit
		}

		chunks = append(chunks, pendingPrefix+string(src[currentPos:splitPos])+suffix)
		currentPos = splitPos
		pendingPrefix = nextPrefix
	}

	return chunks
}
