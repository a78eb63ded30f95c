package repository

import (
	"reflect"
	"testing"
)

func TestJoinSkills(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"Go"}, "Go"},
		{[]string{"Go", "PostgreSQL", "Redis"}, "Go, PostgreSQL, Redis"},
		{[]string{" Go ", "", "  ", "SQL"}, "Go, SQL"},
	}
	for _, tc := range cases {
		if got := joinSkills(tc.in); got != tc.want {
			t.Errorf("joinSkills(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"Go", []string{"Go"}},
		{"Go, PostgreSQL, Redis", []string{"Go", "PostgreSQL", "Redis"}},
		{" Go ,, SQL ,", []string{"Go", "SQL"}},
	}
	for _, tc := range cases {
		if got := splitSkills(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitSkills(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
