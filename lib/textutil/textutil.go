package textutil

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// ParseGain converts a guildstats change string like "+12,345" into an
// integer. Malformed input yields 0 with a warning instead of an error,
// a single garbled cell should never take down the whole run.
func ParseGain(raw string) int {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		slog.Warn("could not parse experience change", "raw", raw)
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("could not parse experience change", "raw", raw, "err", err)
		return 0
	}
	return n
}

// Ordinal renders n with its english ordinal suffix ("1st", "11th", "21st").
func Ordinal(n int) string {
	suffix := "th"
	if last2 := n % 100; last2 < 10 || last2 > 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FormatGain renders an integer gain back into the "+12,345" form used
// in leaderboard embeds and tables.
func FormatGain(n int) string {
	sign := "+"
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}
	return sign + grouped.String()
}
