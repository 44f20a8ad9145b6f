package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the session sealing key from the
// account password
const (
	// Argon2Time is the iteration count (time cost)
	Argon2Time = 1
	// Argon2Memory is the memory cost in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads is the parallelism degree
	Argon2Threads = 4
	// SaltSize is the salt length in bytes
	SaltSize = 32
)

// GenerateSalt returns a cryptographically random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveSealingKey derives the key the persisted session record is sealed
// under. The password never touches disk; without it the record cannot be
// opened again.
func DeriveSealingKey(password, identifier string, salt []byte) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if identifier == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	input := []byte(password + identifier)
	return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize), nil
}
