// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package entropy estimates password strength. The model is Shannon
// entropy over a uniform alphabet: bits = length * log2(alphabet size).
//
// For passwords Fortress generated itself the alphabet size is known
// and the figure is exact. For arbitrary strings the alphabet is
// inferred from which character categories are present, which assumes
// independence and uniformity that human-chosen passwords do not have.
// The estimate therefore systematically overstates the strength of
// dictionary words and keyboard patterns. That is an accepted
// limitation of the model, not something to paper over with dictionary
// heuristics.
package entropy

import (
	"fmt"
	"math"
	"strings"

	"github.com/fortresspw/fortress/internal/model"
)

// DefaultGuessRate is the assumed attacker speed for crack-time
// estimates: ten billion guesses per second, achievable with a modern
// GPU cluster. It is a default, not part of the contract; callers can
// pass their own rate.
const DefaultGuessRate = 1e10

// Inferred alphabet sizes per character category.
const (
	lowerSize   = 26
	upperSize   = 26
	digitSize   = 10
	symbolSize  = 32
	unicodeSize = 100
)

// ForAlphabet returns the exact entropy in bits of a string of the
// given length drawn uniformly from an alphabet of the given size.
// Zero when the length is not positive or the alphabet has at most one
// symbol (log2(1) = 0).
func ForAlphabet(length, alphabetSize int) float64 {
	if length <= 0 || alphabetSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabetSize))
}

// Calculate estimates the entropy in bits of an arbitrary string by
// inferring its alphabet size from the character categories present.
func Calculate(password string) float64 {
	return ForAlphabet(len([]rune(password)), InferAlphabetSize(password))
}

// InferAlphabetSize estimates the alphabet a password was drawn from:
// each category present contributes its full size (lowercase 26,
// uppercase 26, digits 10, symbols 32, anything else 100 for the
// unicode long tail).
func InferAlphabetSize(password string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < 128 && strings.ContainsRune("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", r):
			hasSymbol = true
		default:
			hasOther = true
		}
	}

	size := 0
	if hasLower {
		size += lowerSize
	}
	if hasUpper {
		size += upperSize
	}
	if hasDigit {
		size += digitSize
	}
	if hasSymbol {
		size += symbolSize
	}
	if hasOther {
		size += unicodeSize
	}
	return size
}

// Classify maps an entropy value to its strength band. Bands are
// lower-inclusive, upper-exclusive; the top band is unbounded:
//
//	< 28    Very Weak
//	28-35   Weak
//	36-59   Fair
//	60-127  Strong
//	>= 128  Very Strong
func Classify(bits float64) model.Strength {
	switch {
	case bits < 28:
		return model.StrengthVeryWeak
	case bits < 36:
		return model.StrengthWeak
	case bits < 60:
		return model.StrengthFair
	case bits < 128:
		return model.StrengthStrong
	default:
		return model.StrengthVeryStrong
	}
}

// Estimate builds the full strength report for an entropy value under
// the given guess rate. A rate of zero or less falls back to
// DefaultGuessRate.
func Estimate(bits, guessesPerSecond float64) model.EntropyReport {
	return model.EntropyReport{
		Bits:      bits,
		Strength:  Classify(bits),
		CrackTime: CrackTime(bits, guessesPerSecond),
	}
}

// CrackTime renders the expected brute-force duration for an entropy
// value as a human-readable string. The expected number of guesses is
// half the keyspace, 2^(bits-1); the duration is successively converted
// to the coarsest unit with magnitude >= 1.
func CrackTime(bits, guessesPerSecond float64) string {
	if guessesPerSecond <= 0 {
		guessesPerSecond = DefaultGuessRate
	}
	// 2^(bits-1) expected guesses; overflows to +Inf for very large
	// entropy, which correctly lands in the "centuries" branch.
	seconds := math.Pow(2, bits-1) / guessesPerSecond

	const (
		minute = 60
		hour   = 60 * minute
		day    = 24 * hour
		year   = 365 * day
	)

	switch {
	case seconds < 1:
		return "Instantly"
	case seconds < minute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minutes", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hours", seconds/hour)
	case seconds < year:
		return fmt.Sprintf("%.0f days", seconds/day)
	case seconds < year*1e6:
		return fmt.Sprintf("%.0f years", seconds/year)
	default:
		return "centuries"
	}
}

// Check produces the full report for an arbitrary, externally supplied
// password: empty input yields zero entropy, Very Weak and "Instantly".
func Check(password string, guessesPerSecond float64) model.EntropyReport {
	return Estimate(Calculate(password), guessesPerSecond)
}
