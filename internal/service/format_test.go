package service

import "testing"

func TestPrettyPrintStat(t *testing.T) {
	cases := []struct {
		input  int64
		output string
	}{
		{input: 0, output: "+0"},
		{input: -5, output: "+0"},
		{input: 7, output: "+7"},
		{input: 512, output: "+512"},
		{input: 1234, output: "+1.2k"},
		{input: 2500000, output: "+2.5M"},
	}

	for _, c := range cases {
		if got := PrettyPrintStat(c.input); got != c.output {
			t.Errorf("PrettyPrintStat(%d) = %q, expected %q", c.input, got, c.output)
		}
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		input  int64
		output string
	}{
		{input: 0, output: "0"},
		{input: 999, output: "999"},
		{input: 1000, output: "1,000"},
		{input: 704753890, output: "704,753,890"},
	}

	for _, c := range cases {
		if got := FormatCount(c.input); got != c.output {
			t.Errorf("FormatCount(%d) = %q, expected %q", c.input, got, c.output)
		}
	}
}
