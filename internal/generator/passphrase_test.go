// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestGeneratePassphrase_Structure(t *testing.T) {
	p, err := GeneratePassphrase(DefaultPassphraseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(p.Value, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 words, got %d (%q)", len(parts), p.Value)
	}
	if p.Words != 4 {
		t.Fatalf("expected word count 4, got %d", p.Words)
	}
	if p.AlphabetSize != len(defaultWords) {
		t.Fatalf("expected alphabet size %d, got %d", len(defaultWords), p.AlphabetSize)
	}

	for _, part := range parts {
		if !containsWord(defaultWords, strings.ToLower(part)) {
			t.Fatalf("word %q not from the wordlist", part)
		}
		// Capitalize is on by default.
		if part[0] < 'A' || part[0] > 'Z' {
			t.Fatalf("word %q not capitalized", part)
		}
	}
}

func TestGeneratePassphrase_NoCapitalize(t *testing.T) {
	cfg := DefaultPassphraseConfig()
	cfg.Capitalize = false
	p, err := GeneratePassphrase(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, part := range strings.Split(p.Value, "-") {
		if !containsWord(defaultWords, part) {
			t.Fatalf("word %q not from the wordlist", part)
		}
	}
}

func TestGeneratePassphrase_CustomSeparatorAndWordlist(t *testing.T) {
	cfg := PassphraseConfig{
		Words:     3,
		Separator: " ",
		Wordlist:  []string{"correct"},
	}
	p, err := GeneratePassphrase(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Value != "correct correct correct" {
		t.Fatalf("unexpected passphrase %q", p.Value)
	}
	if p.AlphabetSize != 1 {
		t.Fatalf("expected alphabet size 1, got %d", p.AlphabetSize)
	}
}

func TestGeneratePassphrase_ZeroWords(t *testing.T) {
	cfg := DefaultPassphraseConfig()
	cfg.Words = 0
	_, err := GeneratePassphrase(cfg)
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected a configuration error, got %v", err)
	}
}

func TestDefaultWordlist_Loaded(t *testing.T) {
	if len(defaultWords) != 64 {
		t.Fatalf("expected 64 embedded words, got %d", len(defaultWords))
	}
	for _, w := range defaultWords {
		if w != strings.ToLower(w) {
			t.Fatalf("wordlist entry %q not lowercase", w)
		}
	}
}

func containsWord(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}
