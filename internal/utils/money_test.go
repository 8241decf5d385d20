package utils

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{12345, "123.45"},
		{50000, "500.00"},
		{-12345, "-123.45"},
	}
	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Errorf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"123.45", 12345},
		{"123.4", 12340},
		{"123", 12300},
		{"0.05", 5},
		{"-1.50", -150},
		{" 500.00 ", 50000},
	}
	for _, c := range cases {
		got, err := ParseCents(c.in)
		if err != nil {
			t.Errorf("ParseCents(%q) returned error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCents(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseCentsRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.x"} {
		if _, err := ParseCents(in); err == nil {
			t.Errorf("ParseCents(%q) expected error", in)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 999999} {
		got, err := ParseCents(FormatCents(cents))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", cents, err)
		}
		if got != cents {
			t.Fatalf("round trip of %d yielded %d", cents, got)
		}
	}
}
