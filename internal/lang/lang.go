// Package lang decides which half of the ru/en pair a text is written in.
// The remote editor only works with that pair, so detection is a dominant-
// script count rather than general language identification.
package lang

import (
	"errors"
	"unicode"
)

// ErrEmptyText rejects empty input; detection on nothing is meaningless.
var ErrEmptyText = errors.New("lang: text cannot be empty")

// Pair returns the dominant language of text and its counterpart. Cyrillic
// and Latin letters are counted case-insensitively; ties prefer Russian.
func Pair(text string) (src, dst string, err error) {
	if text == "" {
		return "", "", ErrEmptyText
	}

	cyrillic := 0
	latin := 0
	for _, r := range text {
		r = unicode.ToLower(r)
		switch {
		case (r >= 'а' && r <= 'я') || r == 'ё':
			cyrillic++
		case r >= 'a' && r <= 'z':
			latin++
		}
	}

	if latin > cyrillic {
		return "en", "ru", nil
	}
	return "ru", "en", nil
}
