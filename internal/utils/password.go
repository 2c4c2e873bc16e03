package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Password hashes are stored as self-describing strings: the algorithm tag,
// its parameters, the salt, and the digest all travel inside the value.
// Verification dispatches on the tag, so hashes produced under an older
// scheme keep verifying after the default scheme changes — no migration or
// global rehash is required.
//
// The default scheme is argon2id in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 digest>
//
// bcrypt values ("$2a$...", "$2b$...") are accepted for verification only.

// Argon2id parameters for newly produced hashes.
const (
	argon2Memory  = 64 * 1024
	argon2Time    = 1
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

var (
	// ErrPasswordMismatch is returned when the supplied password does not
	// verify against the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrUnknownHashScheme is returned when the stored hash carries an
	// algorithm tag no verifier is registered for.
	ErrUnknownHashScheme = errors.New("unknown password hash scheme")
)

// HashPassword derives a one-way, salted argon2id digest of the plaintext
// password and returns it in the self-describing PHC format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// VerifyPassword checks the plaintext password against a stored
// self-describing hash, dispatching on the algorithm tag.
//
// Returns nil on success, [ErrPasswordMismatch] when the password is wrong,
// or [ErrUnknownHashScheme] when the hash format is not recognized. The
// comparison is constant-time for every supported scheme.
func VerifyPassword(encodedHash, password string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(encodedHash, password)
	case strings.HasPrefix(encodedHash, "$2"):
		return verifyBcrypt(encodedHash, password)
	default:
		return ErrUnknownHashScheme
	}
}

func verifyArgon2id(encodedHash, password string) error {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return ErrUnknownHashScheme
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrUnknownHashScheme
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return ErrUnknownHashScheme
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrUnknownHashScheme
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return ErrUnknownHashScheme
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(digest)))

	if subtle.ConstantTimeCompare(digest, computed) != 1 {
		return ErrPasswordMismatch
	}

	return nil
}

func verifyBcrypt(encodedHash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return ErrUnknownHashScheme
	}

	return nil
}
