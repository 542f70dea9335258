// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := "+79604566768:123456"

	got := HashString(data, testHashKey)

	// Эталонный хеш считаем напрямую через crypto/hmac
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("abc", testHashKey) != HashString("abc", testHashKey) {
		t.Error("same input must produce same hash")
	}
}

// TestHashString_DifferentKeys проверяет что разные ключи дают разные хеши
func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("abc", "key-one") == HashString("abc", "key-two") {
		t.Error("different keys must produce different hashes for the same data")
	}
}

func TestHashString_DifferentData(t *testing.T) {
	if HashString("+79604566768:123456", testHashKey) == HashString("+79604566768:654321", testHashKey) {
		t.Error("different data must produce different hashes")
	}
}

func TestEqualHashes(t *testing.T) {
	h := HashString("abc", testHashKey)

	if !EqualHashes(h, HashString("abc", testHashKey)) {
		t.Error("expected equal hashes")
	}
	if EqualHashes(h, HashString("abd", testHashKey)) {
		t.Error("expected different hashes")
	}
	if EqualHashes(h, "") {
		t.Error("empty hash must not match")
	}
}
