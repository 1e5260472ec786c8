package staff

import (
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusOut, false},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusOut, true},
		{StatusApproved, StatusCompleted, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusOut, StatusCompleted, true},
		{StatusOut, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
		{StatusCompleted, StatusOut, false},
		{StatusCompleted, StatusPending, false},
	}
	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		if got != c.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []Status{StatusRejected, StatusCompleted}
	nonTerminal := []Status{StatusPending, StatusApproved, StatusOut}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}
	for _, s := range nonTerminal {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
}

func TestIsActive(t *testing.T) {
	active := []Status{StatusApproved, StatusOut}
	inactive := []Status{StatusPending, StatusRejected, StatusCompleted}

	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("%s.IsActive() = false, want true", s)
		}
	}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("%s.IsActive() = true, want false", s)
		}
	}
}

func TestIsValidPurpose(t *testing.T) {
	valid := []Purpose{PurposeOfficeWork, PurposeHome, PurposeHalfDay}
	invalid := []Purpose{"", "Vacation", "office work"}

	for _, p := range valid {
		if !IsValidPurpose(p) {
			t.Errorf("IsValidPurpose(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPurpose(p) {
			t.Errorf("IsValidPurpose(%q) = true, want false", p)
		}
	}
}
