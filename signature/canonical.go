// Package signature implements request canonicalization and HMAC-SHA256
// signing for the QAI API.
package signature

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// Path Normalization
// =============================================================================

// NormalizePath returns the path with a trailing slash appended if absent.
// Idempotent: an already-normalized path is returned unchanged.
func NormalizePath(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

// =============================================================================
// Identity Injection
// =============================================================================

// InjectIdentity returns a new parameter set equal to params with the
// "access_key_id" key set to accessKeyID. A caller-supplied value under
// that key is overwritten, never merged. The input map is left untouched.
func InjectIdentity(params Params, accessKeyID string) Params {
	out := params.clone()
	out[ParamAccessKeyID] = String(accessKeyID)
	return out
}

// =============================================================================
// Canonicalization
// =============================================================================

// Canonicalize flattens a parameter set into the ordered pair sequence the
// server signs over: keys sorted ascending by byte order; list values
// sorted ascending and emitted as one pair per element with the key
// repeated; scalar and boolean values emitted as a single pair. An empty
// list contributes zero pairs for its key.
//
// Values are deliberately NOT percent-encoded here. The legacy server
// concatenates raw values when recomputing the signature, so `&` or `=`
// inside a value must pass through verbatim.
func Canonicalize(params Params) ([]Pair, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]Pair, 0, len(params))
	for _, key := range keys {
		value := params[key]
		switch value.kind {
		case KindScalar:
			pairs = append(pairs, Pair{Key: key, Value: value.scalar})

		case KindBool:
			rendered := boolFalse
			if value.boolean {
				rendered = boolTrue
			}
			pairs = append(pairs, Pair{Key: key, Value: rendered})

		case KindList:
			// Sort a copy; the Value's backing slice stays as built.
			members := make([]string, len(value.list))
			copy(members, value.list)
			sort.Strings(members)
			for _, member := range members {
				pairs = append(pairs, Pair{Key: key, Value: member})
			}

		default:
			return nil, fmt.Errorf("%w: parameter %q", ErrInvalidParameterKind, key)
		}
	}

	return pairs, nil
}

// CanonicalString serializes canonical pairs as "key=value" elements
// joined by "&", in the established order.
func CanonicalString(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, pair := range pairs {
		parts[i] = pair.Key + "=" + pair.Value
	}
	return strings.Join(parts, "&")
}
