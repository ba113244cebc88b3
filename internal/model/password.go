// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the shared data structures used throughout the
// Fortress application, representing core entities like generated
// passwords and their strength reports.
package model

import "unicode/utf8"

// Strength is a discrete password strength category derived from an
// entropy estimate. Categories are ordered from weakest to strongest.
type Strength int

const (
	StrengthVeryWeak Strength = iota
	StrengthWeak
	StrengthFair
	StrengthStrong
	StrengthVeryStrong
)

// String returns the canonical English label for the strength category.
func (s Strength) String() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthFair:
		return "Fair"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	}
	return "Unknown"
}

// Password is a generated secret together with the parameters that
// produced it. It is a transient return value and is never persisted.
type Password struct {
	// Value is the generated character sequence.
	Value string
	// AlphabetSize is the number of distinct symbols each position was
	// drawn from. For passphrases this is the wordlist size.
	AlphabetSize int
	// Category counts of the generated value. Zero for categories that
	// were disabled or simply did not occur.
	Lowercase int
	Uppercase int
	Digits    int
	Symbols   int
	// Words is the number of words in a passphrase, zero for character
	// passwords.
	Words int
}

// Length returns the number of characters in the generated value.
// Characters are counted as runes; a multibyte custom character is one
// character.
func (p Password) Length() int {
	return utf8.RuneCountInString(p.Value)
}

// EntropyReport is the strength assessment of a password: raw entropy
// in bits, the derived strength category and a human-readable estimate
// of the time needed to brute-force it.
type EntropyReport struct {
	Bits      float64
	Strength  Strength
	CrackTime string
}
