package ciphers

import (
	"fmt"

	"cryptolab-backend/mathutil"
)

// WindowAttempt logs one candidate window of the known plaintext scan.
type WindowAttempt struct {
	Position   int    `json:"position"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
	Invertible bool   `json:"invertible"`
	Reason     string `json:"reason"`
}

// CrackWindow identifies the 4-letter window the key was solved from.
type CrackWindow struct {
	Position   int    `json:"position"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

// CrackVerification reports whether re-encrypting the full known
// plaintext with the recovered key reproduces the known ciphertext.
type CrackVerification struct {
	Encrypted string `json:"encrypted"`
	Expected  string `json:"expected"`
	Match     bool   `json:"match"`
}

// CrackResult is the outcome of the known plaintext attack. Success is
// false when a candidate key was found but failed verification; that is
// a legitimate observable outcome, not an error.
type CrackResult struct {
	Success         bool              `json:"success"`
	KeyMatrix       mathutil.Matrix   `json:"key_matrix"`
	KnownPlaintext  string            `json:"known_plaintext"`
	KnownCiphertext string            `json:"known_ciphertext"`
	UsedWindow      CrackWindow       `json:"used_window"`
	Attempts        []WindowAttempt   `json:"positions_tried"`
	Verification    CrackVerification `json:"verification"`
}

// windowMatrix builds a 2x2 matrix whose columns are the two digraphs
// of the 4-letter window starting at pos.
func windowMatrix(text string, pos int) mathutil.Matrix {
	return mathutil.Matrix{
		{int(text[pos] - 'A'), int(text[pos+2] - 'A')},
		{int(text[pos+1] - 'A'), int(text[pos+3] - 'A')},
	}
}

// HillCrack recovers the 2x2 Hill key from a known plaintext/ciphertext
// pair. It scans even offsets for a window whose plaintext matrix is
// invertible mod 26, solves K = C * P^-1 at the first such window, and
// verifies K against the entire truncated sample. It does not try
// further windows when verification fails. Returns a *CrackError when
// the samples are too short or every window is singular.
func HillCrack(knownPlaintext, knownCiphertext string) (*CrackResult, error) {
	plainFull := prepareHillText(knownPlaintext)
	cipherFull := prepareHillText(knownCiphertext)

	if len(plainFull) < 4 || len(cipherFull) < 4 {
		return nil, &CrackError{
			Message: "need at least 4 letters of known plaintext and ciphertext",
		}
	}

	// Truncate to the shorter sample so positions stay aligned.
	minLen := len(plainFull)
	if len(cipherFull) < minLen {
		minLen = len(cipherFull)
	}
	plainFull = plainFull[:minLen]
	cipherFull = cipherFull[:minLen]

	attempts := make([]WindowAttempt, 0)
	var key mathutil.Matrix
	var used *CrackWindow

	// Step by 2 to preserve digraph alignment.
	for pos := 0; pos+4 <= minLen; pos += 2 {
		pWindow := plainFull[pos : pos+4]
		cWindow := cipherFull[pos : pos+4]

		p := windowMatrix(plainFull, pos)
		detMod := mathutil.Mod(p.Determinant(), 26)
		g := mathutil.GCD(detMod, 26)

		if g != 1 {
			attempts = append(attempts, WindowAttempt{
				Position:   pos,
				Plaintext:  pWindow,
				Ciphertext: cWindow,
				Invertible: false,
				Reason:     fmt.Sprintf("gcd(%d, 26) = %d != 1", detMod, g),
			})
			continue
		}

		attempts = append(attempts, WindowAttempt{
			Position:   pos,
			Plaintext:  pWindow,
			Ciphertext: cWindow,
			Invertible: true,
			Reason:     "matrix is invertible",
		})

		pInv, _ := p.Inverse()
		c := windowMatrix(cipherFull, pos)
		key = c.Multiply(pInv)
		used = &CrackWindow{Position: pos, Plaintext: pWindow, Ciphertext: cWindow}
		break
	}

	if used == nil {
		return nil, &CrackError{
			Message:    "no invertible plaintext matrix found: every window has gcd(det, 26) != 1",
			Attempts:   attempts,
			Suggestion: "try a longer plaintext/ciphertext pair with more varied letter combinations",
		}
	}

	// Verify against the whole truncated sample. A candidate key that is
	// itself singular mod 26 cannot encrypt and simply fails to verify.
	encrypted := ""
	if enc, err := HillEncrypt(plainFull, key); err == nil {
		encrypted = enc.Result
	}
	match := encrypted == cipherFull

	return &CrackResult{
		Success:         match,
		KeyMatrix:       key,
		KnownPlaintext:  plainFull,
		KnownCiphertext: cipherFull,
		UsedWindow:      *used,
		Attempts:        attempts,
		Verification: CrackVerification{
			Encrypted: encrypted,
			Expected:  cipherFull,
			Match:     match,
		},
	}, nil
}
