// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package entropy

import (
	"math"
	"testing"

	"github.com/fortresspw/fortress/internal/model"
)

func TestForAlphabet_KnownValues(t *testing.T) {
	// 16 characters over the full 94-char alphabet.
	got := ForAlphabet(16, 94)
	if math.Abs(got-104.87) > 0.01 {
		t.Fatalf("expected about 104.87 bits, got %f", got)
	}
}

func TestForAlphabet_EdgeCases(t *testing.T) {
	if got := ForAlphabet(0, 94); got != 0 {
		t.Fatalf("zero length: expected 0 bits, got %f", got)
	}
	// log2(1) = 0 regardless of length.
	if got := ForAlphabet(1000, 1); got != 0 {
		t.Fatalf("single-symbol alphabet: expected 0 bits, got %f", got)
	}
	if got := ForAlphabet(10, 0); got != 0 {
		t.Fatalf("empty alphabet: expected 0 bits, got %f", got)
	}
}

func TestForAlphabet_Monotonicity(t *testing.T) {
	// Non-decreasing in length for fixed alphabet size.
	prev := 0.0
	for length := 1; length <= 128; length++ {
		bits := ForAlphabet(length, 26)
		if bits < prev {
			t.Fatalf("entropy decreased at length %d: %f < %f", length, bits, prev)
		}
		prev = bits
	}

	// Non-decreasing in alphabet size for fixed length.
	prev = 0.0
	for size := 2; size <= 256; size++ {
		bits := ForAlphabet(16, size)
		if bits < prev {
			t.Fatalf("entropy decreased at alphabet size %d: %f < %f", size, bits, prev)
		}
		prev = bits
	}
}

func TestCalculate_LowercaseOnly(t *testing.T) {
	// 4 chars, inferred alphabet 26: 4 * log2(26) = 18.80 bits.
	got := Calculate("aaaa")
	if math.Abs(got-18.80) > 0.01 {
		t.Fatalf("expected about 18.80 bits, got %f", got)
	}
}

func TestCalculate_EmptyString(t *testing.T) {
	if got := Calculate(""); got != 0 {
		t.Fatalf("expected 0 bits, got %f", got)
	}
}

func TestInferAlphabetSize(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 26},
		{"ABC", 26},
		{"abcABC", 52},
		{"abc123", 36},
		{"Abc1!", 94},
		{"1234", 10},
		{"!?.", 32},
		{"pässword", 126}, // lowercase + unicode bucket
	}
	for _, tc := range tests {
		if got := InferAlphabetSize(tc.password); got != tc.want {
			t.Fatalf("InferAlphabetSize(%q) = %d, want %d", tc.password, got, tc.want)
		}
	}
}

func TestClassify_BandBoundaries(t *testing.T) {
	tests := []struct {
		bits float64
		want model.Strength
	}{
		{0, model.StrengthVeryWeak},
		{27.999, model.StrengthVeryWeak},
		{28, model.StrengthWeak},
		{35.999, model.StrengthWeak},
		{36, model.StrengthFair},
		{59.999, model.StrengthFair},
		{60, model.StrengthStrong},
		{104.87, model.StrengthStrong},
		{127.999, model.StrengthStrong},
		{128, model.StrengthVeryStrong},
		{4096, model.StrengthVeryStrong},
	}
	for _, tc := range tests {
		if got := Classify(tc.bits); got != tc.want {
			t.Fatalf("Classify(%f) = %v, want %v", tc.bits, got, tc.want)
		}
	}
}

func TestCrackTime_Units(t *testing.T) {
	tests := []struct {
		bits float64
		want string
	}{
		{0, "Instantly"},
		{10, "Instantly"},
		{40, "55 seconds"},
		{45, "29 minutes"},
		{50, "16 hours"},
		{55, "21 days"},
		{65, "58 years"},
		{100, "centuries"},
		{4096, "centuries"}, // overflows to +Inf internally
	}
	for _, tc := range tests {
		if got := CrackTime(tc.bits, DefaultGuessRate); got != tc.want {
			t.Fatalf("CrackTime(%f) = %q, want %q", tc.bits, got, tc.want)
		}
	}
}

func TestCrackTime_RateIsConfigurable(t *testing.T) {
	// 2^39 guesses take ~55 s at 1e10/s but are instant at 1e12/s.
	if got := CrackTime(40, 1e12); got != "Instantly" {
		t.Fatalf("expected Instantly at the faster rate, got %q", got)
	}
	// A non-positive rate falls back to the default.
	if got := CrackTime(40, 0); got != "55 seconds" {
		t.Fatalf("expected default-rate estimate, got %q", got)
	}
}

func TestCheck_EmptyPassword(t *testing.T) {
	report := Check("", DefaultGuessRate)
	if report.Bits != 0 {
		t.Fatalf("expected 0 bits, got %f", report.Bits)
	}
	if report.Strength != model.StrengthVeryWeak {
		t.Fatalf("expected Very Weak, got %v", report.Strength)
	}
	if report.CrackTime != "Instantly" {
		t.Fatalf("expected Instantly, got %q", report.CrackTime)
	}
}

func TestEstimate_FullReport(t *testing.T) {
	report := Estimate(ForAlphabet(16, 94), DefaultGuessRate)
	if report.Strength != model.StrengthStrong {
		t.Fatalf("expected Strong for a default 16-char password, got %v", report.Strength)
	}
	if report.CrackTime != "centuries" {
		t.Fatalf("expected centuries, got %q", report.CrackTime)
	}
}
