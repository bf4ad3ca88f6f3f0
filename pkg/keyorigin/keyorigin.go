// Package keyorigin extracts the origin information of a single key from a
// wallet policy key-info entry:
//
//	'[' fingerprint '/' path ']' xpub [ '/' legacy derivation steps ]
//
// Only this fragment is understood; the rest of the descriptor language is
// out of reach on purpose.
package keyorigin

import (
	"encoding/hex"
	"strings"
)

// FingerprintLen is the length of a hex encoded key fingerprint.
const FingerprintLen = 8

// KeyInfo is the origin of a policy key.
type KeyInfo struct {
	Fingerprint string
	Path        string
	XPub        string
}

// Parse returns the origin of fragment. The second return value is false
// when fragment carries no origin or does not follow the expected
// structure; such a key can never be attributed to a seed.
//
// Hex digits and path segments are not validated here. A malformed
// fingerprint simply never matches and a malformed path fails derivation.
func Parse(fragment string) (KeyInfo, bool) {
	if !strings.HasPrefix(fragment, "[") {
		return KeyInfo{}, false
	}

	end := strings.IndexByte(fragment, ']')
	if end < 0 {
		return KeyInfo{}, false
	}
	origin := fragment[1:end]

	// fingerprint followed by '/'
	if len(origin) < FingerprintLen+1 || origin[FingerprintLen] != '/' {
		return KeyInfo{}, false
	}

	xpub := fragment[end+1:]
	// Version 1 policies append the derivation steps to the key itself.
	if i := strings.IndexByte(xpub, '/'); i >= 0 {
		xpub = xpub[:i]
	}

	return KeyInfo{
		Fingerprint: origin[:FingerprintLen],
		Path:        origin[FingerprintLen+1:],
		XPub:        xpub,
	}, true
}

// FingerprintMatches reports whether the parsed fingerprint equals fpr,
// ignoring hex case.
func (k KeyInfo) FingerprintMatches(fpr []byte) bool {
	return strings.EqualFold(k.Fingerprint, hex.EncodeToString(fpr))
}

// String renders the key info in its canonical (version 2) form.
func (k KeyInfo) String() string {
	return "[" + k.Fingerprint + "/" + k.Path + "]" + k.XPub
}
