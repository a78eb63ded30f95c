package job

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{StatusApplied, StatusReview, true},
		{StatusApplied, StatusInterview, true},
		{StatusApplied, StatusOffer, true},
		{StatusApplied, StatusRejected, true},
		{StatusApplied, StatusAccepted, false},

		{StatusReview, StatusInterview, true},
		{StatusReview, StatusOffer, true},
		{StatusReview, StatusRejected, true},
		{StatusReview, StatusApplied, false},
		{StatusReview, StatusAccepted, false},

		{StatusInterview, StatusOffer, true},
		{StatusInterview, StatusRejected, true},
		{StatusInterview, StatusReview, false},

		{StatusOffer, StatusAccepted, true},
		{StatusOffer, StatusRejected, true},
		{StatusOffer, StatusInterview, false},

		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusApplied, false},
		{StatusWithdrawn, StatusReview, false},

		{"bogus", StatusReview, false},
		{StatusApplied, "bogus", false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanWithdraw(t *testing.T) {
	for _, s := range []string{StatusApplied, StatusReview, StatusInterview, StatusOffer} {
		if !CanWithdraw(s) {
			t.Errorf("CanWithdraw(%q) = false, want true", s)
		}
	}
	for _, s := range []string{StatusAccepted, StatusRejected, StatusWithdrawn, "bogus"} {
		if CanWithdraw(s) {
			t.Errorf("CanWithdraw(%q) = true, want false", s)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	terminal := map[string]bool{
		StatusAccepted:  true,
		StatusRejected:  true,
		StatusWithdrawn: true,
		StatusApplied:   false,
		StatusReview:    false,
		StatusInterview: false,
		StatusOffer:     false,
	}
	for s, want := range terminal {
		if got := IsTerminalStatus(s); got != want {
			t.Errorf("IsTerminalStatus(%q) = %v, want %v", s, got, want)
		}
	}
}
