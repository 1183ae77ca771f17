package lang

import (
	"errors"
	"testing"
)

func TestPair(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSrc string
		wantDst string
	}{
		{name: "russian text", input: "привет, мир", wantSrc: "ru", wantDst: "en"},
		{name: "english text", input: "hello, world", wantSrc: "en", wantDst: "ru"},
		{name: "mixed mostly russian", input: "это текст with word", wantSrc: "ru", wantDst: "en"},
		{name: "mixed mostly english", input: "this is длинный text here", wantSrc: "en", wantDst: "ru"},
		{name: "tie prefers russian", input: "да ok", wantSrc: "ru", wantDst: "en"},
		{name: "uppercase counted", input: "ПРИВЕТ", wantSrc: "ru", wantDst: "en"},
		{name: "yo counted as cyrillic", input: "ёж и ёлка!!!", wantSrc: "ru", wantDst: "en"},
		{name: "no letters at all prefers russian", input: "1234 !?", wantSrc: "ru", wantDst: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst, err := Pair(tt.input)
			if err != nil {
				t.Fatalf("Pair(%q) returned error: %v", tt.input, err)
			}
			if src != tt.wantSrc || dst != tt.wantDst {
				t.Errorf("Pair(%q) = (%q, %q), want (%q, %q)",
					tt.input, src, dst, tt.wantSrc, tt.wantDst)
			}
		})
	}
}

func TestPairEmptyText(t *testing.T) {
	_, _, err := Pair("")
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("Pair(\"\") error = %v, want ErrEmptyText", err)
	}
}
