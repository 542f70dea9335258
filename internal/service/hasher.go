package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const djangoPBKDF2Prefix = "pbkdf2_sha256$"

// passwordHasher hashes new passwords with argon2id. Hashes imported from
// earlier deployments (bcrypt, Django pbkdf2_sha256) are still accepted by
// Verify.
type passwordHasher struct {
	argon argon2.Config
}

func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{argon: argon2.DefaultConfig()}
}

func (h *passwordHasher) Hash(password string) (string, error) {
	encoded, err := h.argon.HashEncoded([]byte(password))
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(encoded), nil
}

func (h *passwordHasher) Verify(password, encoded string) (bool, error) {
	switch {
	case encoded == "":
		// accounts created by social sign-in have no password
		return false, nil
	case strings.HasPrefix(encoded, "$argon2"):
		return argon2.VerifyEncoded([]byte(password), []byte(encoded))
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	case strings.HasPrefix(encoded, djangoPBKDF2Prefix):
		return verifyDjangoPBKDF2(password, encoded)
	default:
		return false, ErrUnknownPasswordHash
	}
}

// verifyDjangoPBKDF2 checks "pbkdf2_sha256$<iterations>$<salt>$<base64 key>".
func verifyDjangoPBKDF2(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return false, ErrUnknownPasswordHash
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, ErrUnknownPasswordHash
	}

	want, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, ErrUnknownPasswordHash
	}

	got := pbkdf2.Key([]byte(password), []byte(parts[2]), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
