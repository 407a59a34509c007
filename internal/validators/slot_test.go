package validators

import "testing"

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-05-01", true},
		{"2024-12-31", true},
		{"", false},
		{"01/05/2024", false},
		{"2024-13-01", false},
		{"2024-05-32", false},
		{"amanhã", false},
	}

	for _, tc := range cases {
		if got := IsValidDate(tc.date); got != tc.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	cases := []struct {
		hm   string
		want bool
	}{
		{"09:00", true},
		{"09:30", true},
		{"17:00", true},
		{"00:00", true},
		{"", false},
		{"09:15", false},
		{"09:45", false},
		{"25:00", false},
		{"9h30", false},
	}

	for _, tc := range cases {
		if got := IsValidTime(tc.hm); got != tc.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", tc.hm, got, tc.want)
		}
	}
}
