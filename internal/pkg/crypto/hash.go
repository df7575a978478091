// Package crypto provides small cryptographic utilities for the QAI SDK.
package crypto

import (
	"crypto/md5"
	"encoding/hex"
)

// HexMD5 computes the hex-encoded MD5 digest of data.
// The legacy wire format uses this for the (always empty) request body
// digest; HexMD5(nil) equals the pinned empty-body constant.
func HexMD5(data []byte) string {
	digest := md5.Sum(data)
	return hex.EncodeToString(digest[:])
}
