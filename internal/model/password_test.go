// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestStrength_String(t *testing.T) {
	tests := []struct {
		s    Strength
		want string
	}{
		{StrengthVeryWeak, "Very Weak"},
		{StrengthWeak, "Weak"},
		{StrengthFair, "Fair"},
		{StrengthStrong, "Strong"},
		{StrengthVeryStrong, "Very Strong"},
		{Strength(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Fatalf("Strength(%d).String() = %q, want %q", tc.s, got, tc.want)
		}
	}
}

func TestStrength_Ordering(t *testing.T) {
	if !(StrengthVeryWeak < StrengthWeak && StrengthWeak < StrengthFair &&
		StrengthFair < StrengthStrong && StrengthStrong < StrengthVeryStrong) {
		t.Fatal("strength categories must be ordered weakest to strongest")
	}
}

func TestPassword_Length(t *testing.T) {
	p := Password{Value: "secret"}
	if p.Length() != 6 {
		t.Fatalf("expected 6, got %d", p.Length())
	}

	// Multibyte characters count once each.
	p = Password{Value: "éøéø"}
	if p.Length() != 4 {
		t.Fatalf("expected 4, got %d", p.Length())
	}
}
