// Package crypto provides small cryptographic utilities for the QAI SDK.
package crypto

import (
	"crypto/rand"
	"fmt"
)

// Character sets for key generation
const (
	// accessKeyChars contains characters used in access key IDs.
	accessKeyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// secretKeyChars contains characters used in secret keys.
	secretKeyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

const (
	// AccessKeyIDLength is the length of QAI access key IDs.
	AccessKeyIDLength = 20

	// SecretKeyLength is the length of QAI secret keys.
	SecretKeyLength = 40
)

// GenerateAccessKeyPair generates a throwaway access key pair in the QAI
// format. Intended for tools and tests; real credentials come from the
// platform console.
func GenerateAccessKeyPair() (accessKeyID, secretKey string, err error) {
	accessKeyID, err = generateRandomString(AccessKeyIDLength, accessKeyChars)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access key ID: %w", err)
	}

	secretKey, err = generateRandomString(SecretKeyLength, secretKeyChars)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	return accessKeyID, secretKey, nil
}

// generateRandomString generates a random string of the specified length
// using characters from the provided character set.
func generateRandomString(length int, charset string) (string, error) {
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = charset[int(randomBytes[i])%len(charset)]
	}

	return string(result), nil
}
