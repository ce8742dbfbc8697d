package money

import "testing"

func TestParseMinor(t *testing.T) {
	cases := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"10", 1000, false},
		{"99.9", 9990, false},
		{"99.90", 9990, false},
		{"0.01", 1, false},
		{"-3.50", -350, false},
		{" 12.00 ", 1200, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.999", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseMinor(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMinor(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMinor(%q): unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMinor(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestFormatMinor(t *testing.T) {
	if got := FormatMinor(9990); got != "99.90" {
		t.Fatalf("FormatMinor(9990) = %q", got)
	}
	if got := FormatMinor(0); got != "0.00" {
		t.Fatalf("FormatMinor(0) = %q", got)
	}
	if got := FormatMinor(-350); got != "-3.50" {
		t.Fatalf("FormatMinor(-350) = %q", got)
	}
}
