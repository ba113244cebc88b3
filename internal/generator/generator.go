// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package generator produces passwords and passphrases using the
// platform's cryptographically secure randomness source. Every draw,
// including the shuffle used for the guaranteed-category constraint,
// goes through crypto/rand; no seeded pseudorandom generator is
// involved anywhere.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/fortresspw/fortress/internal/model"
)

// MaxLength caps password length to keep alphabet math and rendering
// sane. Matches the upper bound enforced by configuration validation.
const MaxLength = 1024

// ErrConfiguration is the base error for all configuration validation
// failures. Callers can match the whole taxonomy with
// errors.Is(err, ErrConfiguration).
var ErrConfiguration = errors.New("invalid configuration")

var (
	ErrLengthTooShort     = fmt.Errorf("%w: password length must be at least 1", ErrConfiguration)
	ErrLengthTooLong      = fmt.Errorf("%w: password length cannot exceed %d", ErrConfiguration, MaxLength)
	ErrNoCategories       = fmt.Errorf("%w: at least one character set must be enabled", ErrConfiguration)
	ErrEmptyCharset       = fmt.Errorf("%w: no characters available for password generation", ErrConfiguration)
	ErrLengthInsufficient = fmt.Errorf("%w: password length must be at least the number of enabled character sets", ErrConfiguration)
)

// Config describes the parameters for password generation. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// Length is the number of characters to generate.
	Length int
	// Category toggles. At least one must be enabled unless CustomChars
	// is non-empty.
	UseLowercase bool
	UseUppercase bool
	UseDigits    bool
	UseSymbols   bool
	// ExcludeAmbiguous removes visually confusable characters (0/O,
	// 1/l/I, |) from the alphabet before any sampling occurs.
	ExcludeAmbiguous bool
	// CustomChars are additional characters merged into the alphabet.
	CustomChars string
	// RequireEachCategory guarantees at least one character from every
	// enabled category in the output.
	RequireEachCategory bool
}

// DefaultConfig returns the standard generation parameters: 16
// characters with all four categories enabled.
func DefaultConfig() Config {
	return Config{
		Length:       16,
		UseLowercase: true,
		UseUppercase: true,
		UseDigits:    true,
		UseSymbols:   true,
	}
}

// Validate checks the configuration without consuming any randomness.
// Generation must fail here, before the first draw, on any invalid
// combination.
func (c Config) Validate() error {
	if c.Length < 1 {
		return ErrLengthTooShort
	}
	if c.Length > MaxLength {
		return ErrLengthTooLong
	}
	if !c.UseLowercase && !c.UseUppercase && !c.UseDigits && !c.UseSymbols && c.CustomChars == "" {
		return ErrNoCategories
	}
	if c.charset() == "" {
		return ErrEmptyCharset
	}
	if c.RequireEachCategory && c.Length < len(c.categorySets()) {
		return ErrLengthInsufficient
	}
	return nil
}

// Generate produces a password of exactly c.Length characters, each
// drawn independently and uniformly from the configured alphabet.
//
// With RequireEachCategory set, one character is first drawn from every
// enabled category, the remaining positions are filled from the full
// alphabet and the result is shuffled with a crypto/rand Fisher-Yates
// pass so the guaranteed characters are not predictably placed.
func Generate(c Config) (model.Password, error) {
	if err := c.Validate(); err != nil {
		return model.Password{}, err
	}

	charset := []rune(c.charset())
	out := make([]rune, 0, c.Length)

	if c.RequireEachCategory {
		for _, set := range c.categorySets() {
			ch, err := randChar([]rune(set))
			if err != nil {
				return model.Password{}, err
			}
			out = append(out, ch)
		}
	}

	for len(out) < c.Length {
		ch, err := randChar(charset)
		if err != nil {
			return model.Password{}, err
		}
		out = append(out, ch)
	}

	if c.RequireEachCategory {
		if err := secureShuffle(out); err != nil {
			return model.Password{}, err
		}
	}

	return describe(string(out), len(charset)), nil
}

// describe wraps a generated value in a model.Password with its
// alphabet size and per-category counts.
func describe(value string, alphabetSize int) model.Password {
	p := model.Password{Value: value, AlphabetSize: alphabetSize}
	for _, r := range value {
		switch {
		case strings.ContainsRune(LowercaseChars, r):
			p.Lowercase++
		case strings.ContainsRune(UppercaseChars, r):
			p.Uppercase++
		case strings.ContainsRune(DigitChars, r):
			p.Digits++
		case strings.ContainsRune(SymbolChars, r):
			p.Symbols++
		}
	}
	return p
}

// randChar picks one character from charset using crypto/rand. The
// charset is indexed as runes so multibyte custom characters are drawn
// whole, never as byte fragments.
func randChar(charset []rune) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("could not read secure random source: %w", err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs an in-place Fisher-Yates shuffle drawing its
// randomness from crypto/rand. math/rand would make the guaranteed
// character positions predictable.
func secureShuffle(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("could not read secure random source: %w", err)
		}
		j := n.Int64()
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
