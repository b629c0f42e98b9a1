package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"  padded@example.com  ",
		"weird+tag@example.co",
	}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"plain",
		"no-at.example.com",
		"two@@example.com",
		"spaces in@example.com",
		"user@nodot",
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}

func TestIsValidFrequency(t *testing.T) {
	if !IsValidFrequency("daily") || !IsValidFrequency("weekly") {
		t.Fatal("daily and weekly must be accepted")
	}
	for _, f := range []string{"monthly", "Daily", "", "WEEKLY"} {
		if IsValidFrequency(f) {
			t.Errorf("expected %q to be rejected", f)
		}
	}
}
