package proc

import "testing"

func TestParseStat(t *testing.T) {
	// comm may contain spaces and parentheses; everything before the last
	// ')' belongs to it. utime=150 stime=50 rss=500 pages.
	line := "1234 (my (weird) proc) S 1 1 1 0 -1 0 0 0 0 0 150 50 0 0 20 0 1 0 100 4096000 500"

	info, ok := parseStat(line, 4096)
	if !ok {
		t.Fatal("parseStat rejected a valid line")
	}
	if info.comm != "my (weird) proc" {
		t.Fatalf("comm = %q, want %q", info.comm, "my (weird) proc")
	}
	if info.procTime != 200 {
		t.Fatalf("procTime = %d, want 200", info.procTime)
	}
	if info.rssBytes != 500*4096 {
		t.Fatalf("rssBytes = %d, want %d", info.rssBytes, 500*4096)
	}
}

func TestParseStatRejectsMalformedLines(t *testing.T) {
	cases := []string{
		"",
		"1234 no-parens S 1 1",
		"1234 (short) S 1 1 1",
		"garbage ) ( inverted",
	}
	for _, line := range cases {
		if _, ok := parseStat(line, 4096); ok {
			t.Errorf("parseStat accepted %q", line)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"4829", true},
		{"", false},
		{"12a", false},
		{"self", false},
		{"-1", false},
	}
	for _, c := range cases {
		if got := IsNumeric(c.in); got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
