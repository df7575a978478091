// Package signature implements request canonicalization and HMAC-SHA256
// signing for the QAI API. The output must match the server verifier
// byte-for-byte, so sort orders, serialization, and encoding rules here
// are pinned to the legacy wire format.
package signature

// =============================================================================
// Constants
// =============================================================================

const (
	// ParamAccessKeyID is the parameter name under which the access key ID
	// is injected into every signed request.
	ParamAccessKeyID = "access_key_id"

	// ParamSignature is the parameter name carrying the computed signature.
	ParamSignature = "signature"

	// EmptyBodyMD5 is the hex MD5 digest of the empty byte string.
	// Every string-to-sign ends with this constant; the legacy protocol
	// never signs request bodies.
	EmptyBodyMD5 = "d41d8cd98f00b204e9800998ecf8427e"
)

// =============================================================================
// Pinned Boolean Rendering
// =============================================================================

const (
	// boolTrue and boolFalse are the wire renderings of boolean parameter
	// values. The legacy server expects capitalized forms; lowercase
	// "true"/"false" produces a signature mismatch.
	boolTrue  = "True"
	boolFalse = "False"
)
