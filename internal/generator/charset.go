// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import "strings"

// Character categories available for password generation. Symbols is
// the full set of 32 printable ASCII punctuation characters.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ambiguousChars are visually confusable glyphs that can be excluded
// from the alphabet on request (0/O, 1/l/I and the pipe symbol).
const ambiguousChars = "0O1lI|"

// charset assembles the selection alphabet for a config: the union of
// the enabled categories plus any custom characters, with ambiguous
// characters stripped when requested and duplicates removed while
// preserving order.
func (c Config) charset() string {
	var b strings.Builder
	if c.UseUppercase {
		b.WriteString(UppercaseChars)
	}
	if c.UseLowercase {
		b.WriteString(LowercaseChars)
	}
	if c.UseDigits {
		b.WriteString(DigitChars)
	}
	if c.UseSymbols {
		b.WriteString(SymbolChars)
	}
	b.WriteString(c.CustomChars)

	chars := b.String()
	if c.ExcludeAmbiguous {
		chars = stripAmbiguous(chars)
	}
	return dedupe(chars)
}

// categorySets returns the post-exclusion character set of every
// enabled category, in a stable order. Custom characters count as
// their own category for the guaranteed-inclusion constraint.
func (c Config) categorySets() []string {
	var sets []string
	add := func(enabled bool, chars string) {
		if !enabled {
			return
		}
		if c.ExcludeAmbiguous {
			chars = stripAmbiguous(chars)
		}
		if chars != "" {
			sets = append(sets, chars)
		}
	}
	add(c.UseUppercase, UppercaseChars)
	add(c.UseLowercase, LowercaseChars)
	add(c.UseDigits, DigitChars)
	add(c.UseSymbols, SymbolChars)
	add(c.CustomChars != "", dedupe(c.CustomChars))
	return sets
}

// stripAmbiguous removes all ambiguous characters from chars.
func stripAmbiguous(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if !strings.ContainsRune(ambiguousChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dedupe removes duplicate runes while preserving first-seen order.
// Custom characters may overlap the built-in categories; a duplicate in
// the alphabet would skew the uniform distribution towards it.
func dedupe(chars string) string {
	seen := make(map[rune]bool, len(chars))
	var b strings.Builder
	for _, r := range chars {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
