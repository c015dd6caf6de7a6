package ciphers

import "strings"

// upperLetters uppercases text and strips everything outside A-Z.
func upperLetters(text string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
