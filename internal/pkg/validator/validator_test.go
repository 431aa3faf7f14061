package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2026-02-15", true},
		{"2026-01-01", true},
		{"2026-13-01", false},
		{"2026-02-30", false},
		{"15/02/2026", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidDate(c.input)
		if got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPostalCode(t *testing.T) {
	valid := []string{"08301", "28001", "08000"}
	invalid := []string{"8301", "083011", "0830a", "", "083 1"}
	for _, code := range valid {
		if !IsValidPostalCode(code) {
			t.Errorf("IsValidPostalCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidPostalCode(code) {
			t.Errorf("IsValidPostalCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"612345678", "+34612345678", "34612345678", "612 345 678", "612-345-678"}
	invalid := []string{"61234567", "6123456789", "61234567a", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"08:00", "8:00", "23:59", "0:00", "12:30"}
	invalid := []string{"24:00", "12:60", "8", "8:0", "ab:cd", ""}
	for _, ts := range valid {
		if !IsValidTime(ts) {
			t.Errorf("IsValidTime(%q) = false, want true", ts)
		}
	}
	for _, ts := range invalid {
		if IsValidTime(ts) {
			t.Errorf("IsValidTime(%q) = true, want false", ts)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"8:00", "08:00", false},
		{"08:00", "08:00", false},
		{" 9:30 ", "09:30", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"nope", "", true},
	}
	for _, c := range cases {
		got, err := NormalizeTime(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("NormalizeTime(%q) expected error, got %q", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeTime(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	days := []string{"monday", "tuesday"}
	if !IsInSlice("monday", days) {
		t.Error("IsInSlice(monday) = false, want true")
	}
	if IsInSlice("Monday", days) {
		t.Error("IsInSlice(Monday) = true, want false")
	}
	if IsInSlice("", days) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email must be a valid email address"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
