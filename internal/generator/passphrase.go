// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import (
	"crypto/rand"
	_ "embed"
	"fmt"
	"math/big"
	"strings"

	"github.com/fortresspw/fortress/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordlistRaw embeds the default passphrase wordlist, one word per
// line, into the binary.
//
//go:embed wordlist.txt
var wordlistRaw string

// defaultWords is the parsed default wordlist.
var defaultWords = strings.Fields(wordlistRaw)

var (
	ErrNoWords       = fmt.Errorf("%w: passphrase must contain at least one word", ErrConfiguration)
	ErrEmptyWordlist = fmt.Errorf("%w: wordlist must not be empty", ErrConfiguration)
)

// PassphraseConfig describes the parameters for passphrase generation.
type PassphraseConfig struct {
	// Words is the number of words to compose.
	Words int
	// Separator is inserted between words.
	Separator string
	// Capitalize title-cases every word.
	Capitalize bool
	// Wordlist overrides the embedded default wordlist when non-empty.
	Wordlist []string
}

// DefaultPassphraseConfig returns the standard passphrase parameters:
// four capitalized words joined by hyphens.
func DefaultPassphraseConfig() PassphraseConfig {
	return PassphraseConfig{
		Words:      4,
		Separator:  "-",
		Capitalize: true,
	}
}

// GeneratePassphrase composes a passphrase of c.Words words drawn
// uniformly at random from the wordlist using crypto/rand. The
// resulting Password carries the wordlist size as its alphabet size,
// so entropy is measured in words, not characters.
func GeneratePassphrase(c PassphraseConfig) (model.Password, error) {
	if c.Words < 1 {
		return model.Password{}, ErrNoWords
	}
	words := c.Wordlist
	if len(words) == 0 {
		words = defaultWords
	}
	if len(words) == 0 {
		return model.Password{}, ErrEmptyWordlist
	}

	caser := cases.Title(language.English)
	picked := make([]string, c.Words)
	for i := range picked {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
		if err != nil {
			return model.Password{}, fmt.Errorf("could not read secure random source: %w", err)
		}
		w := words[n.Int64()]
		if c.Capitalize {
			w = caser.String(w)
		}
		picked[i] = w
	}

	return model.Password{
		Value:        strings.Join(picked, c.Separator),
		AlphabetSize: len(words),
		Words:        c.Words,
	}, nil
}
