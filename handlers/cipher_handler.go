// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cryptolab-backend/ciphers"
	"cryptolab-backend/models"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "CryptoLab API is running",
		"version": "1.0.0",
	})
}

// respondCipherError maps the core's typed failures to client errors.
// Anything untyped is treated as a server fault.
func respondCipherError(c *gin.Context, err error) {
	var keyErr *ciphers.KeyError
	if errors.As(err, &keyErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:        keyErr.Message,
			ValidAValues: keyErr.ValidA,
			GCDWith26:    keyErr.GCDWith26,
		})
		return
	}

	var crackErr *ciphers.CrackError
	if errors.As(err, &crackErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:      crackErr.Message,
			Attempts:   crackErr.Attempts,
			Suggestion: crackErr.Suggestion,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
}

// ============== Caesar Cipher ==============

func (h *CipherHandler) CaesarEncrypt(c *gin.Context) {
	var req models.CaesarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, ciphers.CaesarEncrypt(req.Text, req.Shift))
}

func (h *CipherHandler) CaesarDecrypt(c *gin.Context) {
	var req models.CaesarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, ciphers.CaesarDecrypt(req.Text, req.Shift))
}

func (h *CipherHandler) CaesarMapping(c *gin.Context) {
	shift, err := strconv.Atoi(c.Param("shift"))
	if err != nil || shift < 0 || shift > 25 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "shift must be an integer between 0 and 25",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shift":   shift,
		"mapping": ciphers.CaesarMapping(shift),
	})
}

// ============== Affine Cipher ==============

func (h *CipherHandler) AffineEncrypt(c *gin.Context) {
	var req models.AffineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	result, err := ciphers.AffineEncrypt(req.Text, req.A, req.B)
	if err != nil {
		respondCipherError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CipherHandler) AffineDecrypt(c *gin.Context) {
	var req models.AffineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	result, err := ciphers.AffineDecrypt(req.Text, req.A, req.B)
	if err != nil {
		respondCipherError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CipherHandler) AffineValidKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid_a_values": ciphers.ValidAValues,
		"description":    "These values are coprime with 26",
	})
}

func (h *CipherHandler) AffineMapping(c *gin.Context) {
	a, errA := strconv.Atoi(c.Param("a"))
	b, errB := strconv.Atoi(c.Param("b"))
	if errA != nil || errB != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "keys 'a' and 'b' must be integers",
		})
		return
	}

	mapping, err := ciphers.AffineMapping(a, b)
	if err != nil {
		respondCipherError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     ciphers.AffineKey{A: a, B: b},
		"mapping": mapping,
	})
}

// ============== Playfair Cipher ==============

func (h *CipherHandler) PlayfairEncrypt(c *gin.Context) {
	var req models.PlayfairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, ciphers.PlayfairEncrypt(req.Text, req.Keyword))
}

func (h *CipherHandler) PlayfairDecrypt(c *gin.Context) {
	var req models.PlayfairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, ciphers.PlayfairDecrypt(req.Text, req.Keyword))
}

func (h *CipherHandler) PlayfairMatrix(c *gin.Context) {
	keyword := c.Param("keyword")

	c.JSON(http.StatusOK, gin.H{
		"keyword": strings.ToUpper(keyword),
		"matrix":  ciphers.GeneratePlayfairMatrix(keyword),
	})
}

// ============== Hill Cipher ==============

func (h *CipherHandler) HillEncrypt(c *gin.Context) {
	var req models.HillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	key, err := ciphers.MatrixFromRows(req.Matrix)
	if err != nil {
		respondCipherError(c, err)
		return
	}

	result, err := ciphers.HillEncrypt(req.Text, key)
	if err != nil {
		respondCipherError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CipherHandler) HillDecrypt(c *gin.Context) {
	var req models.HillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	key, err := ciphers.MatrixFromRows(req.Matrix)
	if err != nil {
		respondCipherError(c, err)
		return
	}

	result, err := ciphers.HillDecrypt(req.Text, key)
	if err != nil {
		respondCipherError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CipherHandler) HillValidate(c *gin.Context) {
	var req models.HillValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	key, err := ciphers.MatrixFromRows(req.Matrix)
	if err != nil {
		respondCipherError(c, err)
		return
	}

	c.JSON(http.StatusOK, ciphers.ValidateHillMatrix(key))
}

func (h *CipherHandler) HillCrack(c *gin.Context) {
	var req models.HillCrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	result, err := ciphers.HillCrack(req.KnownPlaintext, req.KnownCiphertext)
	if err != nil {
		respondCipherError(c, err)
		return
	}

	// A recovered key that fails verification is still a 200: the caller
	// gets the candidate plus the mismatch detail.
	c.JSON(http.StatusOK, result)
}
