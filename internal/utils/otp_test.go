package utils

import (
	"regexp"
	"testing"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func TestGenerateOtp_FixedWidth(t *testing.T) {
	// leading zeros must be preserved: "001234" is a valid code
	for i := 0; i < 1000; i++ {
		code, err := GenerateOtp()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sixDigits.MatchString(code) {
			t.Fatalf("expected a 6-digit code, got %q", code)
		}
	}
}

func TestGenerateOtp_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := GenerateOtp()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = struct{}{}
	}

	// 100 draws from a million values virtually never collapse to one
	if len(seen) < 2 {
		t.Errorf("expected varied codes, got %d distinct value(s)", len(seen))
	}
}
