// Package signature implements request canonicalization and HMAC-SHA256
// signing for the QAI API.
package signature

import "strconv"

// =============================================================================
// Credential Types
// =============================================================================

// Credentials is an access key pair identifying the caller.
// The secret key is used as the raw HMAC key and is never hashed,
// truncated, or persisted by this package.
type Credentials struct {
	// AccessKeyID is the public identifier.
	AccessKeyID string

	// SecretKey is the private signing key.
	SecretKey string
}

// =============================================================================
// Parameter Value Types
// =============================================================================

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindInvalid is the zero Kind. A Value of this kind is rejected by
	// Canonicalize; it is never silently stringified.
	KindInvalid Kind = iota

	// KindScalar is a plain string-rendered value (strings and numbers).
	KindScalar

	// KindBool is a boolean value with pinned wire rendering.
	KindBool

	// KindList is an ordered sequence of strings, flattened into repeated
	// key=value pairs after sorting.
	KindList
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindBool:
		return "Bool"
	case KindList:
		return "List"
	default:
		return "Invalid"
	}
}

// Value is a closed variant over the parameter types the legacy protocol
// accepts: scalar, boolean, or list of strings. The zero Value is invalid.
// Construct values with String, Int, Int64, Bool, or Strings.
type Value struct {
	kind    Kind
	scalar  string
	boolean bool
	list    []string
}

// String returns a scalar Value holding s.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Int returns a scalar Value holding the decimal rendering of i.
func Int(i int) Value {
	return Value{kind: KindScalar, scalar: strconv.Itoa(i)}
}

// Int64 returns a scalar Value holding the decimal rendering of i.
func Int64(i int64) Value {
	return Value{kind: KindScalar, scalar: strconv.FormatInt(i, 10)}
}

// Bool returns a boolean Value holding b.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Strings returns a list Value holding the given items.
// The items are copied; the caller's slice is never retained or mutated.
func Strings(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// =============================================================================
// Parameter Set
// =============================================================================

// Params maps parameter names to values for a single request.
// A Params is owned by the call that built it; this package never mutates
// one in place.
type Params map[string]Value

// clone returns a shallow copy of the parameter set.
// Value list contents are immutable once constructed, so a shallow copy
// is sufficient to isolate the caller's map.
func (p Params) clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// =============================================================================
// Canonical Pairs
// =============================================================================

// Pair is a single flattened key=value element of the canonical query.
type Pair struct {
	// Key is the parameter name.
	Key string

	// Value is the wire rendering of the parameter value.
	Value string
}
