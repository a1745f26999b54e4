package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
	}
	for _, c := range cases {
		if got := IsEmpty(c.in); got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"dana@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"dana@", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.in); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2026-01-13", true},
		{"2026-02-30", false},
		{"13/01/2026", false},
		{"2026-1-3", false},
		{"", false},
	}
	for _, c := range cases {
		if _, got := IsValidDate(c.in); got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9am", false},
		{"09:60", false},
		{"", false},
	}
	for _, c := range cases {
		if _, got := IsValidClockTime(c.in); got != c.want {
			t.Errorf("IsValidClockTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "is required"},
	}

	if got := errs.Error(); got != "email: is required; password: is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["email"] != "is required" || m["password"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
