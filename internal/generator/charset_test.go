// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"strings"
	"testing"
)

func TestCharset_FullAlphabet(t *testing.T) {
	if got := len(DefaultConfig().charset()); got != 94 {
		t.Fatalf("expected 94 characters, got %d", got)
	}
}

func TestCharset_SymbolCount(t *testing.T) {
	// The symbol category is the 32 printable ASCII punctuation chars.
	if len(SymbolChars) != 32 {
		t.Fatalf("expected 32 symbols, got %d", len(SymbolChars))
	}
}

func TestCharset_ExclusionRemovesAmbiguous(t *testing.T) {
	cfg := Config{Length: 1, UseDigits: true, ExcludeAmbiguous: true}
	charset := cfg.charset()
	if strings.ContainsAny(charset, "01") {
		t.Fatalf("ambiguous digits present in %q", charset)
	}
	if len(charset) != 8 {
		t.Fatalf("expected 8 digits after exclusion, got %d", len(charset))
	}
}

func TestDedupe(t *testing.T) {
	if got := dedupe("aabbccabc"); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
	if got := dedupe(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestStripAmbiguous(t *testing.T) {
	if got := stripAmbiguous("0O1lI|x"); got != "x" {
		t.Fatalf("expected %q, got %q", "x", got)
	}
}

func TestCategorySets_ExclusionDropsEmptySets(t *testing.T) {
	cfg := Config{
		Length: 4, UseDigits: true, CustomChars: "0O1lI|",
		ExcludeAmbiguous: true,
	}
	// Custom chars are emptied by the exclusion; only digits remain.
	sets := cfg.categorySets()
	if len(sets) != 1 {
		t.Fatalf("expected 1 category set, got %d", len(sets))
	}
	if sets[0] != "23456789" {
		t.Fatalf("expected post-exclusion digits, got %q", sets[0])
	}
}
