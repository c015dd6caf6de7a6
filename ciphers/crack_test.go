package ciphers

import (
	"errors"
	"testing"

	"cryptolab-backend/mathutil"
)

func TestHillCrackRecoversKey(t *testing.T) {
	key := mathutil.Matrix{{3, 3}, {2, 5}}
	enc, err := HillEncrypt("HELP", key)
	if err != nil {
		t.Fatalf("encrypt error: %v", err)
	}

	got, err := HillCrack("HELP", enc.Result)
	if err != nil {
		t.Fatalf("HillCrack error: %v", err)
	}

	if !got.Success {
		t.Errorf("Success = false, verification: %+v", got.Verification)
	}
	if got.KeyMatrix != key {
		t.Errorf("KeyMatrix = %v, want %v", got.KeyMatrix, key)
	}
	if got.UsedWindow.Position != 0 {
		t.Errorf("UsedWindow.Position = %d, want 0", got.UsedWindow.Position)
	}
	if !got.Verification.Match {
		t.Errorf("Verification.Match = false: %+v", got.Verification)
	}
}

func TestHillCrackSkipsSingularWindow(t *testing.T) {
	key := mathutil.Matrix{{3, 3}, {2, 5}}
	plaintext := "AAAAHELP"
	enc, err := HillEncrypt(plaintext, key)
	if err != nil {
		t.Fatalf("encrypt error: %v", err)
	}

	got, err := HillCrack(plaintext, enc.Result)
	if err != nil {
		t.Fatalf("HillCrack error: %v", err)
	}

	if !got.Success {
		t.Fatalf("Success = false, verification: %+v", got.Verification)
	}
	if got.KeyMatrix != key {
		t.Errorf("KeyMatrix = %v, want %v", got.KeyMatrix, key)
	}
	if got.UsedWindow.Position != 4 {
		t.Errorf("UsedWindow.Position = %d, want 4", got.UsedWindow.Position)
	}

	if len(got.Attempts) != 3 {
		t.Fatalf("len(Attempts) = %d, want 3", len(got.Attempts))
	}
	for _, attempt := range got.Attempts[:2] {
		if attempt.Invertible {
			t.Errorf("window at %d should be rejected", attempt.Position)
		}
		if attempt.Reason == "" {
			t.Errorf("rejected window at %d carries no reason", attempt.Position)
		}
	}
	if !got.Attempts[2].Invertible {
		t.Error("window at 4 should be invertible")
	}
}

func TestHillCrackExhaustion(t *testing.T) {
	// Every window of AAAAAA is singular (det 0, gcd 26).
	_, err := HillCrack("AAAAAA", "BBBBBB")
	if err == nil {
		t.Fatal("expected exhaustion error")
	}

	var crackErr *CrackError
	if !errors.As(err, &crackErr) {
		t.Fatalf("error is %T, want *CrackError", err)
	}
	if len(crackErr.Attempts) != 2 {
		t.Errorf("len(Attempts) = %d, want 2", len(crackErr.Attempts))
	}
	for _, attempt := range crackErr.Attempts {
		if attempt.Invertible {
			t.Errorf("window at %d should be rejected", attempt.Position)
		}
	}
	if crackErr.Suggestion == "" {
		t.Error("exhaustion should carry a suggestion")
	}
}

func TestHillCrackTooShort(t *testing.T) {
	// AB stays 2 letters after preparation; ABC would pad to ABCX.
	_, err := HillCrack("AB", "ABCD")
	if err == nil {
		t.Fatal("expected error for short plaintext")
	}
	var crackErr *CrackError
	if !errors.As(err, &crackErr) {
		t.Fatalf("error is %T, want *CrackError", err)
	}
	if len(crackErr.Attempts) != 0 {
		t.Errorf("short-input error should carry no attempts, got %d", len(crackErr.Attempts))
	}
}

func TestHillCrackTruncatesToShorter(t *testing.T) {
	key := mathutil.Matrix{{3, 3}, {2, 5}}
	enc, err := HillEncrypt("HELPMEOBIWAN", key)
	if err != nil {
		t.Fatalf("encrypt error: %v", err)
	}

	// Ciphertext cut to 6 letters: both sides align at length 6.
	got, err := HillCrack("HELPMEOBIWAN", enc.Result[:6])
	if err != nil {
		t.Fatalf("HillCrack error: %v", err)
	}

	if len(got.KnownPlaintext) != 6 || len(got.KnownCiphertext) != 6 {
		t.Errorf("truncated lengths = %d/%d, want 6/6",
			len(got.KnownPlaintext), len(got.KnownCiphertext))
	}
	if !got.Success {
		t.Errorf("Success = false, verification: %+v", got.Verification)
	}
	if got.KeyMatrix != key {
		t.Errorf("KeyMatrix = %v, want %v", got.KeyMatrix, key)
	}
}

func TestHillCrackAgainstRandomRoundTrips(t *testing.T) {
	keys := []mathutil.Matrix{
		{{3, 3}, {2, 5}},
		{{5, 8}, {17, 3}},
		{{1, 2}, {3, 5}},
	}

	for _, key := range keys {
		enc, err := HillEncrypt("ATTACKATDAWN", key)
		if err != nil {
			t.Fatalf("key %v: encrypt error: %v", key, err)
		}
		got, err := HillCrack("ATTACKATDAWN", enc.Result)
		if err != nil {
			t.Fatalf("key %v: crack error: %v", key, err)
		}
		if !got.Success || got.KeyMatrix != key {
			t.Errorf("key %v: recovered %v success=%v", key, got.KeyMatrix, got.Success)
		}
	}
}
