// Copyright (c) 2026 Craftboard. All rights reserved.
// Author: team@craftboard.app

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// GenerateSecureToken returns a URL-safe random token of the given byte length.
//
// Used for opaque session tokens issued by the identity provider.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}

// HashToken returns the hex-encoded BLAKE2b-256 digest of a token.
//
// Deterministic hashing (unlike bcrypt) is required so the digest can be used
// as a lookup key. Raw tokens are never persisted.
func HashToken(token string) string {
	digest := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
