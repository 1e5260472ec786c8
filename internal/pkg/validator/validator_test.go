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

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "0000000000"}
	invalid := []string{"", "12345", "98765432101", "98765abc10", "987 654321", "+919876543"}
	for _, mobile := range valid {
		if !IsValidMobile(mobile) {
			t.Errorf("IsValidMobile(%q) = false, want true", mobile)
		}
	}
	for _, mobile := range invalid {
		if IsValidMobile(mobile) {
			t.Errorf("IsValidMobile(%q) = true, want false", mobile)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "12345"}
	invalid := []string{"", "12a", "-1", "1.5", " 1"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	departments := []string{"Production", "HR", "IT"}
	if !IsInSlice("HR", departments) {
		t.Error("IsInSlice(HR) = false, want true")
	}
	if IsInSlice("hr", departments) {
		t.Error("IsInSlice(hr) = true, want false")
	}
	if IsInSlice("Warehouse", departments) {
		t.Error("IsInSlice(Warehouse) = true, want false")
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "gate.desk-1", "hr_user"}
	invalid := []string{"", "ab", "user name", "user@name"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "mobile", Message: "mobile must be exactly 10 digits"},
	}

	want := "name: name is required; mobile: mobile must be exactly 10 digits"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["name"] != "name is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
