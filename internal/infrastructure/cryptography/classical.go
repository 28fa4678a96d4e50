package cryptography

import (
	"strings"

	"github.com/Shrihari123456/cryptography/internal/domain/cryptoalg"
)

// transformLetters uppercases text and replaces every letter A-Z with shift(i, x),
// where i is the rune position in text and x the letter value 0-25.
// Other runes are copied unchanged.
func transformLetters(text string, shift func(pos, x int) int) string {
	upper := strings.ToUpper(text)

	var sb strings.Builder
	sb.Grow(len(upper))

	pos := 0
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune('A' + rune(shift(pos, int(r-'A'))))
		} else {
			sb.WriteRune(r)
		}
		pos++
	}

	return sb.String()
}

// mod26 normalizes x into [0, 26).
func mod26(x int) int {
	return ((x % cryptoalg.AlphabetSize) + cryptoalg.AlphabetSize) % cryptoalg.AlphabetSize
}
