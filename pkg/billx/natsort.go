package billx

import (
	"strings"
)

// naturalToken is one run of a name split into digit and non-digit runs.
type naturalToken struct {
	digits bool
	text   string // lowercased text, or the digit run without leading zeros
}

// naturalKey splits s into alternating non-digit and digit runs. The first
// token is always a (possibly empty) text run, so tokens of two keys at the
// same index are always of the same kind.
func naturalKey(s string) []naturalToken {
	var tokens []naturalToken
	start, digits := 0, false
	flush := func(end int) {
		run := s[start:end]
		if digits {
			run = strings.TrimLeft(run, "0")
		} else {
			run = strings.ToLower(run)
		}
		tokens = append(tokens, naturalToken{digits: digits, text: run})
	}
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if isDigit != digits {
			flush(i)
			start, digits = i, isDigit
		}
	}
	flush(len(s))
	if digits {
		// re.split semantics: a name ending in digits has a trailing empty text run
		tokens = append(tokens, naturalToken{})
	}
	return tokens
}

func compareToken(a, b naturalToken) int {
	if a.digits && b.digits && len(a.text) != len(b.text) {
		if len(a.text) < len(b.text) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.text, b.text)
}

// compareNatural orders names so that embedded numbers compare by value:
// "bill2" sorts before "bill10". Text runs compare case-insensitively.
func compareNatural(a, b string) int {
	ka, kb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := compareToken(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	return len(ka) - len(kb)
}

// NaturalLess reports whether a sorts before b in natural order.
func NaturalLess(a, b string) bool {
	return compareNatural(a, b) < 0
}
