package ciphers

import (
	"fmt"
	"strings"

	"cryptolab-backend/mathutil"
)

// MatrixValidation is the structured verdict on a Hill key matrix.
type MatrixValidation struct {
	Valid            bool   `json:"valid"`
	Determinant      int    `json:"determinant"`
	DeterminantMod26 int    `json:"determinant_mod_26"`
	GCDWith26        int    `json:"gcd_with_26"`
	Error            string `json:"error,omitempty"`
}

// HillStep records how one 2-letter vector was transformed.
type HillStep struct {
	Pair         string          `json:"pair"`
	Vector       mathutil.Vector `json:"vector"`
	Calculation  string          `json:"calculation"`
	ResultVector mathutil.Vector `json:"result_vector"`
	Encrypted    string          `json:"encrypted_pair,omitempty"`
	Decrypted    string          `json:"decrypted_pair,omitempty"`
}

// HillResult is the outcome of a Hill encryption or decryption. The
// inverse matrix is reported in both directions for transparency.
type HillResult struct {
	Result           string          `json:"result"`
	Steps            []HillStep      `json:"steps"`
	KeyMatrix        mathutil.Matrix `json:"key_matrix"`
	InverseMatrix    mathutil.Matrix `json:"inverse_matrix"`
	Determinant      int             `json:"determinant"`
	DeterminantMod26 int             `json:"determinant_mod_26"`
	PreparedText     string          `json:"prepared_text"`
	Operation        string          `json:"operation"`
}

// MatrixFromRows converts a request-shaped matrix into the fixed 2x2
// kernel type, rejecting any other shape with a *KeyError.
func MatrixFromRows(rows [][]int) (mathutil.Matrix, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return mathutil.Matrix{}, &KeyError{Message: "matrix must be 2x2"}
	}
	return mathutil.Matrix{
		{rows[0][0], rows[0][1]},
		{rows[1][0], rows[1][1]},
	}, nil
}

// ValidateHillMatrix reports whether key can serve as a Hill cipher
// key: its determinant mod 26 must be coprime with 26.
func ValidateHillMatrix(key mathutil.Matrix) MatrixValidation {
	det := key.Determinant()
	detMod := mathutil.Mod(det, 26)
	g := mathutil.GCD(detMod, 26)

	v := MatrixValidation{
		Valid:            g == 1,
		Determinant:      det,
		DeterminantMod26: detMod,
		GCDWith26:        g,
	}
	if !v.Valid {
		v.Error = fmt.Sprintf("matrix not invertible: gcd(%d, 26) = %d != 1", detMod, g)
	}
	return v
}

// prepareHillText uppercases text, strips non-letters and pads a
// trailing single letter with 'X' to reach even length.
func prepareHillText(text string) string {
	prepared := upperLetters(text)
	if len(prepared)%2 != 0 {
		prepared += "X"
	}
	return prepared
}

// textToVectors splits prepared (even-length) text into column vectors.
func textToVectors(text string) []mathutil.Vector {
	vectors := make([]mathutil.Vector, 0, len(text)/2)
	for i := 0; i+1 < len(text); i += 2 {
		vectors = append(vectors, mathutil.Vector{
			int(text[i] - 'A'),
			int(text[i+1] - 'A'),
		})
	}
	return vectors
}

func vectorToPair(v mathutil.Vector) string {
	return string(rune('A'+v[0])) + string(rune('A'+v[1]))
}

// HillEncrypt encrypts plaintext with C = K*P mod 26. Returns a
// *KeyError carrying the offending gcd when key is not invertible
// modulo 26.
func HillEncrypt(plaintext string, key mathutil.Matrix) (*HillResult, error) {
	validation := ValidateHillMatrix(key)
	if !validation.Valid {
		return nil, &KeyError{Message: validation.Error, GCDWith26: validation.GCDWith26}
	}

	prepared := prepareHillText(plaintext)
	vectors := textToVectors(prepared)

	var result strings.Builder
	steps := make([]HillStep, 0, len(vectors))

	for i, vec := range vectors {
		out := key.Apply(vec)
		pair := prepared[i*2 : i*2+2]
		outPair := vectorToPair(out)

		result.WriteString(outPair)
		steps = append(steps, HillStep{
			Pair:   pair,
			Vector: vec,
			Calculation: fmt.Sprintf("[%d*%d+%d*%d, %d*%d+%d*%d] mod 26",
				key[0][0], vec[0], key[0][1], vec[1],
				key[1][0], vec[0], key[1][1], vec[1]),
			ResultVector: out,
			Encrypted:    outPair,
		})
	}

	// Invertibility was already validated.
	inverse, _ := key.Inverse()

	return &HillResult{
		Result:           result.String(),
		Steps:            steps,
		KeyMatrix:        key,
		InverseMatrix:    inverse,
		Determinant:      validation.Determinant,
		DeterminantMod26: validation.DeterminantMod26,
		PreparedText:     prepared,
		Operation:        "encrypt",
	}, nil
}

// HillDecrypt decrypts ciphertext with P = K^-1*C mod 26, recomputing
// the inverse from the key. Returns a *KeyError when key is not
// invertible modulo 26.
func HillDecrypt(ciphertext string, key mathutil.Matrix) (*HillResult, error) {
	validation := ValidateHillMatrix(key)
	if !validation.Valid {
		return nil, &KeyError{Message: validation.Error, GCDWith26: validation.GCDWith26}
	}

	inverse, ok := key.Inverse()
	if !ok {
		// Unreachable given the validation above.
		return nil, &KeyError{Message: "could not compute matrix inverse"}
	}

	prepared := prepareHillText(ciphertext)
	vectors := textToVectors(prepared)

	var result strings.Builder
	steps := make([]HillStep, 0, len(vectors))

	for i, vec := range vectors {
		out := inverse.Apply(vec)
		pair := prepared[i*2 : i*2+2]
		outPair := vectorToPair(out)

		result.WriteString(outPair)
		steps = append(steps, HillStep{
			Pair:         pair,
			Vector:       vec,
			Calculation:  fmt.Sprintf("K^-1 * [%d, %d] mod 26", vec[0], vec[1]),
			ResultVector: out,
			Decrypted:    outPair,
		})
	}

	return &HillResult{
		Result:           result.String(),
		Steps:            steps,
		KeyMatrix:        key,
		InverseMatrix:    inverse,
		Determinant:      validation.Determinant,
		DeterminantMod26: validation.DeterminantMod26,
		PreparedText:     prepared,
		Operation:        "decrypt",
	}, nil
}
