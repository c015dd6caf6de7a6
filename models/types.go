// Package models contain the request and error models for the API
package models

import "cryptolab-backend/ciphers"

// CaesarRequest carries text plus the shift key.
type CaesarRequest struct {
	Text  string `json:"text" binding:"required"`
	Shift int    `json:"shift" binding:"min=0,max=25"`
}

// AffineRequest carries text plus the (a, b) key pair. The core
// validates that a is coprime with 26.
type AffineRequest struct {
	Text string `json:"text" binding:"required"`
	A    int    `json:"a"`
	B    int    `json:"b" binding:"min=0,max=25"`
}

// PlayfairRequest carries text plus the matrix keyword.
type PlayfairRequest struct {
	Text    string `json:"text" binding:"required"`
	Keyword string `json:"keyword" binding:"required"`
}

// HillRequest carries text plus the 2x2 key matrix. The matrix arrives
// as nested slices so a wrong shape is rejected explicitly instead of
// being silently truncated.
type HillRequest struct {
	Text   string  `json:"text" binding:"required"`
	Matrix [][]int `json:"matrix" binding:"required"`
}

// HillValidateRequest carries just a candidate key matrix.
type HillValidateRequest struct {
	Matrix [][]int `json:"matrix" binding:"required"`
}

// HillCrackRequest carries a known plaintext/ciphertext pair for the
// key recovery attack.
type HillCrackRequest struct {
	KnownPlaintext  string `json:"known_plaintext" binding:"required,min=4"`
	KnownCiphertext string `json:"known_ciphertext" binding:"required,min=4"`
}

// ErrorResponse is the body of every client-error reply. The optional
// fields surface the diagnostic detail the core attaches to failures.
type ErrorResponse struct {
	Error        string                  `json:"error"`
	ValidAValues []int                   `json:"valid_a_values,omitempty"`
	GCDWith26    int                     `json:"gcd_with_26,omitempty"`
	Attempts     []ciphers.WindowAttempt `json:"positions_tried,omitempty"`
	Suggestion   string                  `json:"suggestion,omitempty"`
}
