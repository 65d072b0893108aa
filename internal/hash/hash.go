// Package hash fingerprints plans so identical inputs can be recognized.
//
// A digest is the SHA-256 of a value's canonical JSON encoding. Two plans
// built from the same stock and target always share a digest, which lets a
// caller tell at a glance whether a recalculation changed anything.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hasher computes digests of plan data.
type Hasher interface {
	// Digest returns a hex digest of v's JSON encoding.
	Digest(v any) (string, error)
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Digest returns the SHA-256 of v's JSON encoding.
func (h *SHA256Hasher) Digest(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode value: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Short returns the first 12 characters of a digest for display.
func Short(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12]
}

// FakeHasher implements Hasher with a fixed digest for testing.
type FakeHasher struct {
	Value string
}

// NewFakeHasher creates a FakeHasher returning "fakehash".
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{Value: "fakehash"}
}

// Digest returns the configured value.
func (h *FakeHasher) Digest(v any) (string, error) {
	return h.Value, nil
}
