// Package signature implements request canonicalization and HMAC-SHA256
// signing for the QAI API.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
)

// =============================================================================
// Signature Generation
// =============================================================================

// Generate computes the signed query fragment for a request.
//
// The returned string is the canonical parameter string followed by
// "&signature=<sig>", ready to be appended after "?" in a URL. The server
// recomputes the same HMAC from the fragment and rejects the call on any
// byte difference.
//
// Generate is a pure function of its inputs: no I/O, no clock, no shared
// state. It is safe for concurrent use and never mutates params.
func Generate(method, path, accessKeyID, secretKey string, params Params) (string, error) {
	if method == "" || path == "" {
		return "", ErrEmptyMethodOrPath
	}

	canonicalPath := NormalizePath(path)

	pairs, err := Canonicalize(InjectIdentity(params, accessKeyID))
	if err != nil {
		return "", err
	}
	canonicalParams := CanonicalString(pairs)

	stringToSign := buildStringToSign(method, canonicalPath, canonicalParams)

	mac := hmacSHA256([]byte(secretKey), []byte(stringToSign))
	encoded := base64.StdEncoding.EncodeToString(mac)

	// Form-urlencoded escaping: space becomes "+", the base64 alphabet's
	// "+", "/", and "=" are percent-escaped. Matches the server's decoder.
	escaped := url.QueryEscape(encoded)

	return canonicalParams + "&" + ParamSignature + "=" + escaped, nil
}

// buildStringToSign assembles the exact byte string the HMAC covers.
func buildStringToSign(method, canonicalPath, canonicalParams string) string {
	return method + "\n" +
		canonicalPath + "\n" +
		canonicalParams + "\n" +
		EmptyBodyMD5
}

// hmacSHA256 computes HMAC-SHA256.
func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// =============================================================================
// Signer
// =============================================================================

// Signer binds a credential pair for repeated signing calls.
type Signer struct {
	credentials Credentials
}

// NewSigner creates a Signer for the given credentials.
func NewSigner(credentials Credentials) *Signer {
	return &Signer{credentials: credentials}
}

// Sign computes the signed query fragment for a request using the bound
// credentials. See Generate.
func (s *Signer) Sign(method, path string, params Params) (string, error) {
	return Generate(method, path, s.credentials.AccessKeyID, s.credentials.SecretKey, params)
}
