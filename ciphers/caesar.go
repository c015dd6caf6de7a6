package ciphers

import (
	"fmt"
	"strings"

	"cryptolab-backend/mathutil"
)

// CaesarStep records how one letter was transformed.
type CaesarStep struct {
	Original    string `json:"original"`
	OriginalPos int    `json:"original_pos"`
	Shift       int    `json:"shift"`
	NewPos      int    `json:"new_pos"`
	Encrypted   string `json:"encrypted,omitempty"`
	Decrypted   string `json:"decrypted,omitempty"`
	Calculation string `json:"calculation"`
}

// CaesarResult is the outcome of a Caesar encryption or decryption,
// including a per-letter trace.
type CaesarResult struct {
	Result    string       `json:"result"`
	Steps     []CaesarStep `json:"steps"`
	Shift     int          `json:"shift"`
	Operation string       `json:"operation"`
}

// CaesarEncrypt shifts every letter of plaintext forward by shift
// positions, E(x) = (x + k) mod 26. Non-letters pass through unchanged.
// Any integer shift is accepted and normalized to 0-25.
func CaesarEncrypt(plaintext string, shift int) *CaesarResult {
	shift = mathutil.Mod(shift, 26)

	var result strings.Builder
	steps := make([]CaesarStep, 0)

	for _, ch := range strings.ToUpper(plaintext) {
		if ch < 'A' || ch > 'Z' {
			result.WriteRune(ch)
			continue
		}

		pos := int(ch - 'A')
		newPos := mathutil.Mod(pos+shift, 26)
		newCh := string(rune('A' + newPos))

		result.WriteString(newCh)
		steps = append(steps, CaesarStep{
			Original:    string(ch),
			OriginalPos: pos,
			Shift:       shift,
			NewPos:      newPos,
			Encrypted:   newCh,
			Calculation: fmt.Sprintf("%c(%d) + %d = %s(%d)", ch, pos, shift, newCh, newPos),
		})
	}

	return &CaesarResult{
		Result:    result.String(),
		Steps:     steps,
		Shift:     shift,
		Operation: "encrypt",
	}
}

// CaesarDecrypt reverses CaesarEncrypt for the same shift,
// D(x) = (x - k) mod 26.
func CaesarDecrypt(ciphertext string, shift int) *CaesarResult {
	shift = mathutil.Mod(shift, 26)

	var result strings.Builder
	steps := make([]CaesarStep, 0)

	for _, ch := range strings.ToUpper(ciphertext) {
		if ch < 'A' || ch > 'Z' {
			result.WriteRune(ch)
			continue
		}

		pos := int(ch - 'A')
		newPos := mathutil.Mod(pos-shift, 26)
		newCh := string(rune('A' + newPos))

		result.WriteString(newCh)
		steps = append(steps, CaesarStep{
			Original:    string(ch),
			OriginalPos: pos,
			Shift:       shift,
			NewPos:      newPos,
			Decrypted:   newCh,
			Calculation: fmt.Sprintf("%c(%d) - %d = %s(%d)", ch, pos, shift, newCh, newPos),
		})
	}

	return &CaesarResult{
		Result:    result.String(),
		Steps:     steps,
		Shift:     shift,
		Operation: "decrypt",
	}
}

// CaesarMapping returns the full 26-letter substitution table for the
// given shift.
func CaesarMapping(shift int) map[string]string {
	shift = mathutil.Mod(shift, 26)

	mapping := make(map[string]string, 26)
	for i := 0; i < 26; i++ {
		original := string(rune('A' + i))
		encrypted := string(rune('A' + mathutil.Mod(i+shift, 26)))
		mapping[original] = encrypted
	}
	return mapping
}
