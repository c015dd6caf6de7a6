package ciphers

import (
	"fmt"
	"strings"

	"cryptolab-backend/mathutil"
)

// playfairAlphabet is the 25-letter alphabet with J folded into I.
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// PlayfairMatrix is the 5x5 key square. Every letter A-Z except J
// appears exactly once.
type PlayfairMatrix [5][5]string

// PlayfairStep records how one digraph was transformed.
type PlayfairStep struct {
	Digraph     string `json:"digraph"`
	Pos1        string `json:"pos1"`
	Pos2        string `json:"pos2"`
	Rule        string `json:"rule"`
	Encrypted   string `json:"encrypted,omitempty"`
	Decrypted   string `json:"decrypted,omitempty"`
}

// PlayfairResult is the outcome of a Playfair encryption or decryption.
type PlayfairResult struct {
	Result       string         `json:"result"`
	Steps        []PlayfairStep `json:"steps"`
	Matrix       PlayfairMatrix `json:"matrix"`
	Keyword      string         `json:"keyword"`
	PreparedText string         `json:"prepared_text,omitempty"`
	Digraphs     []string       `json:"digraphs"`
	Operation    string         `json:"operation"`
}

// GeneratePlayfairMatrix builds the 5x5 key square from a keyword:
// keyword letters first (J folded into I, duplicates dropped), then the
// remaining alphabet in order. Deterministic for a given keyword.
func GeneratePlayfairMatrix(keyword string) PlayfairMatrix {
	keyword = strings.ReplaceAll(upperLetters(keyword), "J", "I")

	seen := make(map[byte]bool, 25)
	cells := make([]byte, 0, 25)

	for i := 0; i < len(keyword); i++ {
		ch := keyword[i]
		if !seen[ch] {
			seen[ch] = true
			cells = append(cells, ch)
		}
	}
	for i := 0; i < len(playfairAlphabet); i++ {
		ch := playfairAlphabet[i]
		if !seen[ch] {
			seen[ch] = true
			cells = append(cells, ch)
		}
	}

	var matrix PlayfairMatrix
	for i, ch := range cells {
		matrix[i/5][i%5] = string(ch)
	}
	return matrix
}

// FindPosition returns the row and column of ch in the key square,
// folding J into I's cell.
func (m PlayfairMatrix) FindPosition(ch byte) (row, col int) {
	if ch == 'J' {
		ch = 'I'
	}
	target := string(ch)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if m[r][c] == target {
				return r, c
			}
		}
	}
	return -1, -1
}

// PrepareDigraphs splits text into 2-letter units using the canonical
// Playfair scan: J folds into I, a repeated letter gets an 'X' filler
// as its partner (re-consuming the second occurrence on the next pair),
// and a trailing single letter is padded with 'X'.
func PrepareDigraphs(text string) []string {
	text = strings.ReplaceAll(upperLetters(text), "J", "I")

	digraphs := make([]string, 0, (len(text)+1)/2)
	i := 0
	for i < len(text) {
		first := text[i]

		var second byte
		switch {
		case i+1 >= len(text):
			second = 'X'
			i++
		case text[i] == text[i+1]:
			second = 'X'
			i++
		default:
			second = text[i+1]
			i += 2
		}

		digraphs = append(digraphs, string(first)+string(second))
	}
	return digraphs
}

// transformDigraph applies the Playfair rules to one digraph.
// shift is +1 for encryption and -1 for decryption; the rectangle rule
// is its own inverse.
func (m PlayfairMatrix) transformDigraph(a, b byte, shift int) (out, rule string) {
	r1, c1 := m.FindPosition(a)
	r2, c2 := m.FindPosition(b)

	direction := "right"
	if shift < 0 {
		direction = "left"
	}

	switch {
	case r1 == r2:
		out = m[r1][mathutil.Mod(c1+shift, 5)] + m[r2][mathutil.Mod(c2+shift, 5)]
		rule = fmt.Sprintf("same row (shift %s)", direction)
	case c1 == c2:
		if shift > 0 {
			direction = "down"
		} else {
			direction = "up"
		}
		out = m[mathutil.Mod(r1+shift, 5)][c1] + m[mathutil.Mod(r2+shift, 5)][c2]
		rule = fmt.Sprintf("same column (shift %s)", direction)
	default:
		out = m[r1][c2] + m[r2][c1]
		rule = "rectangle (swap columns)"
	}
	return out, rule
}

// PlayfairEncrypt encrypts plaintext with the key square derived from
// keyword, one digraph at a time.
func PlayfairEncrypt(plaintext, keyword string) *PlayfairResult {
	matrix := GeneratePlayfairMatrix(keyword)
	digraphs := PrepareDigraphs(plaintext)

	var result strings.Builder
	steps := make([]PlayfairStep, 0, len(digraphs))

	for _, d := range digraphs {
		r1, c1 := matrix.FindPosition(d[0])
		r2, c2 := matrix.FindPosition(d[1])

		encrypted, rule := matrix.transformDigraph(d[0], d[1], 1)
		result.WriteString(encrypted)
		steps = append(steps, PlayfairStep{
			Digraph:   d,
			Pos1:      fmt.Sprintf("(%d,%d)", r1, c1),
			Pos2:      fmt.Sprintf("(%d,%d)", r2, c2),
			Rule:      rule,
			Encrypted: encrypted,
		})
	}

	return &PlayfairResult{
		Result:       result.String(),
		Steps:        steps,
		Matrix:       matrix,
		Keyword:      strings.ToUpper(keyword),
		PreparedText: strings.Join(digraphs, ""),
		Digraphs:     digraphs,
		Operation:    "encrypt",
	}
}

// PlayfairDecrypt decrypts ciphertext with the same key square and the
// inverse shift directions. Ciphertext is consumed two letters at a
// time as-is, with no filler handling; a trailing odd letter is
// dropped.
func PlayfairDecrypt(ciphertext, keyword string) *PlayfairResult {
	matrix := GeneratePlayfairMatrix(keyword)

	cleaned := strings.ReplaceAll(upperLetters(ciphertext), "J", "I")
	digraphs := make([]string, 0, len(cleaned)/2)
	for i := 0; i+1 < len(cleaned); i += 2 {
		digraphs = append(digraphs, cleaned[i:i+2])
	}

	var result strings.Builder
	steps := make([]PlayfairStep, 0, len(digraphs))

	for _, d := range digraphs {
		r1, c1 := matrix.FindPosition(d[0])
		r2, c2 := matrix.FindPosition(d[1])

		decrypted, rule := matrix.transformDigraph(d[0], d[1], -1)
		result.WriteString(decrypted)
		steps = append(steps, PlayfairStep{
			Digraph:   d,
			Pos1:      fmt.Sprintf("(%d,%d)", r1, c1),
			Pos2:      fmt.Sprintf("(%d,%d)", r2, c2),
			Rule:      rule,
			Decrypted: decrypted,
		})
	}

	return &PlayfairResult{
		Result:    result.String(),
		Steps:     steps,
		Matrix:    matrix,
		Keyword:   strings.ToUpper(keyword),
		Digraphs:  digraphs,
		Operation: "decrypt",
	}
}
