package ciphers

import (
	"fmt"
	"strings"

	"cryptolab-backend/mathutil"
)

// ValidAValues lists every multiplicative key coprime with 26.
var ValidAValues = []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}

// IsValidA reports whether a can be used as the affine multiplicative
// key, i.e. gcd(a, 26) = 1.
func IsValidA(a int) bool {
	return mathutil.GCD(a, 26) == 1
}

func invalidAError(a int) *KeyError {
	return &KeyError{
		Message: fmt.Sprintf("invalid key 'a=%d': must be coprime with 26", a),
		ValidA:  ValidAValues,
	}
}

// AffineKey echoes the key pair in responses.
type AffineKey struct {
	A int `json:"a"`
	B int `json:"b"`
}

// AffineStep records how one letter was transformed.
type AffineStep struct {
	Original    string `json:"original"`
	Pos         int    `json:"pos"`
	NewPos      int    `json:"new_pos"`
	Encrypted   string `json:"encrypted,omitempty"`
	Decrypted   string `json:"decrypted,omitempty"`
	Calculation string `json:"calculation"`
}

// AffineResult is the outcome of an affine encryption or decryption.
type AffineResult struct {
	Result    string       `json:"result"`
	Steps     []AffineStep `json:"steps"`
	Key       AffineKey    `json:"key"`
	AInverse  int          `json:"a_inverse"`
	Formula   string       `json:"formula"`
	Operation string       `json:"operation"`
}

// AffineEncrypt encrypts plaintext with E(x) = (a*x + b) mod 26.
// Returns a *KeyError when a is not coprime with 26; b is normalized
// to 0-25. Non-letters pass through unchanged.
func AffineEncrypt(plaintext string, a, b int) (*AffineResult, error) {
	if !IsValidA(a) {
		return nil, invalidAError(a)
	}

	b = mathutil.Mod(b, 26)

	var result strings.Builder
	steps := make([]AffineStep, 0)

	for _, ch := range strings.ToUpper(plaintext) {
		if ch < 'A' || ch > 'Z' {
			result.WriteRune(ch)
			continue
		}

		x := int(ch - 'A')
		newPos := mathutil.Mod(a*x+b, 26)
		newCh := string(rune('A' + newPos))

		result.WriteString(newCh)
		steps = append(steps, AffineStep{
			Original:    string(ch),
			Pos:         x,
			NewPos:      newPos,
			Encrypted:   newCh,
			Calculation: fmt.Sprintf("E(%c) = (%d*%d + %d) mod 26 = %d = %s", ch, a, x, b, newPos, newCh),
		})
	}

	// The inverse always exists here since a passed validation.
	aInverse, _ := mathutil.ModInverse(a, 26)

	return &AffineResult{
		Result:    result.String(),
		Steps:     steps,
		Key:       AffineKey{A: a, B: b},
		AInverse:  aInverse,
		Formula:   fmt.Sprintf("E(x) = (%dx + %d) mod 26", a, b),
		Operation: "encrypt",
	}, nil
}

// AffineDecrypt decrypts ciphertext with D(y) = a^-1 * (y - b) mod 26.
// Returns a *KeyError when a is not coprime with 26.
func AffineDecrypt(ciphertext string, a, b int) (*AffineResult, error) {
	if !IsValidA(a) {
		return nil, invalidAError(a)
	}

	aInverse, _ := mathutil.ModInverse(a, 26)
	b = mathutil.Mod(b, 26)

	var result strings.Builder
	steps := make([]AffineStep, 0)

	for _, ch := range strings.ToUpper(ciphertext) {
		if ch < 'A' || ch > 'Z' {
			result.WriteRune(ch)
			continue
		}

		y := int(ch - 'A')
		newPos := mathutil.Mod(aInverse*(y-b), 26)
		newCh := string(rune('A' + newPos))

		result.WriteString(newCh)
		steps = append(steps, AffineStep{
			Original:    string(ch),
			Pos:         y,
			NewPos:      newPos,
			Decrypted:   newCh,
			Calculation: fmt.Sprintf("D(%c) = %d*(%d - %d) mod 26 = %d = %s", ch, aInverse, y, b, newPos, newCh),
		})
	}

	return &AffineResult{
		Result:    result.String(),
		Steps:     steps,
		Key:       AffineKey{A: a, B: b},
		AInverse:  aInverse,
		Formula:   fmt.Sprintf("D(y) = %d(y - %d) mod 26", aInverse, b),
		Operation: "decrypt",
	}, nil
}

// AffineMapping returns the full 26-letter substitution table for the
// key pair, without processing arbitrary text. Returns a *KeyError when
// a is not coprime with 26.
func AffineMapping(a, b int) (map[string]string, error) {
	if !IsValidA(a) {
		return nil, invalidAError(a)
	}

	b = mathutil.Mod(b, 26)

	mapping := make(map[string]string, 26)
	for i := 0; i < 26; i++ {
		original := string(rune('A' + i))
		encrypted := string(rune('A' + mathutil.Mod(a*i+b, 26)))
		mapping[original] = encrypted
	}
	return mapping, nil
}
