// Package ciphers implements the four classic ciphers exposed by the
// CryptoLab API: Caesar, Affine, Playfair and Hill (with a known
// plaintext cracker). All functions here are pure and HTTP-unaware.
package ciphers

// KeyError reports a cipher key that failed validation. It carries the
// diagnostic detail transports need to explain the rejection.
type KeyError struct {
	Message string
	// GCDWith26 is the offending gcd for determinant-based rejections,
	// zero when not applicable.
	GCDWith26 int
	// ValidA lists the accepted multiplicative keys for affine
	// rejections, nil otherwise.
	ValidA []int
}

func (e *KeyError) Error() string {
	return e.Message
}

// CrackError reports that the known plaintext attack could not produce
// a candidate key: the samples were too short, or every aligned window
// produced a singular plaintext matrix.
type CrackError struct {
	Message    string
	Attempts   []WindowAttempt
	Suggestion string
}

func (e *CrackError) Error() string {
	return e.Message
}
