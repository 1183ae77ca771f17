package yaedit

import "yaedit/internal/markup"

// DefaultChunkLength is the ceiling used when splitting text for a batch.
const DefaultChunkLength = 10000

// splitter memoizes split results process-wide; splitting is pure, so a
// shared cache is safe and repeated Translate/Transform calls on the same
// text skip the rescan.
var splitter = markup.NewSplitter(markup.DefaultCacheCapacity)

// Split segments text into chunks of at most maxLength runes without
// breaking markup: atomic spans (inline code, links) are never cut, and
// reopenable spans (emphasis, fenced blocks) are closed at one chunk's edge
// and reopened at the next chunk's start. A non-positive maxLength falls
// back to a 4096-rune default.
//
// Split is deterministic: identical (text, maxLength) pairs always yield
// identical chunk sequences.
func Split(text string, maxLength int) []string {
	return splitter.Split(text, maxLength)
}
