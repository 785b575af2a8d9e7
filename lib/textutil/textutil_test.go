package textutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGain(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{raw: "+12,345", expected: 12345},
		{raw: "+1,200", expected: 1200},
		{raw: "+100", expected: 100},
		{raw: "0", expected: 0},
		{raw: "-50", expected: -50},
		{raw: "-1,500,000", expected: -1500000},
		{raw: " +42 ", expected: 42},
		{raw: "", expected: 0},
		{raw: "+", expected: 0},
		{raw: "garbage", expected: 0},
		{raw: "12.5", expected: 0},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, ParseGain(test.raw), "raw=%q", test.raw)
	}
}

func TestParseGainRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 999, 1000, 12345, 1500000, 987654321} {
		require.Equal(t, n, ParseGain(FormatGain(n)))
	}
}

func TestOrdinal(t *testing.T) {
	expected := map[int]string{
		0:   "0th",
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		10:  "10th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		20:  "20th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
		112: "112th",
		121: "121st",
	}
	for n, want := range expected {
		require.Equal(t, want, Ordinal(n))
	}

	// the suffix rule must hold over the whole range, not just spot checks
	for n := 0; n <= 121; n++ {
		suffix := "th"
		if n%100 < 10 || n%100 > 20 {
			switch n % 10 {
			case 1:
				suffix = "st"
			case 2:
				suffix = "nd"
			case 3:
				suffix = "rd"
			}
		}
		require.Equal(t, fmt.Sprintf("%d%s", n, suffix), Ordinal(n))
	}
}

func TestFormatGain(t *testing.T) {
	cases := []struct {
		n        int
		expected string
	}{
		{n: 0, expected: "+0"},
		{n: 7, expected: "+7"},
		{n: 999, expected: "+999"},
		{n: 1000, expected: "+1,000"},
		{n: 12345, expected: "+12,345"},
		{n: 1500000, expected: "+1,500,000"},
		{n: -1200, expected: "-1,200"},
	}
	for _, test := range cases {
		require.Equal(t, test.expected, FormatGain(test.n))
	}
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "kharsek", NormalizeName("  Khar sek\n"))
	require.Equal(t, "bounddeathslicer", NormalizeName("Bound Death Slicer"))
}
