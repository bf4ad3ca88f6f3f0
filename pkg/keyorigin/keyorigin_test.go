package keyorigin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testXPub = "tpubDCwYjpDhUdPGP5rS3wgNg13mTrrjBuG8V9VpWbyptX6TRPbNoZVXsoVUSkCjmQ8jJycjuDKBb9eataSymXakTTaGifxR6kmVsfFehH1ZgJT"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		ok       bool
		expected KeyInfo
	}{
		{
			name:     "v2 key info",
			fragment: "[f5acc2fd/48'/1'/0'/2']" + testXPub,
			ok:       true,
			expected: KeyInfo{
				Fingerprint: "f5acc2fd",
				Path:        "48'/1'/0'/2'",
				XPub:        testXPub,
			},
		},
		{
			name:     "v1 key info with trailing steps",
			fragment: "[aabbccdd/0']" + testXPub + "/0/*",
			ok:       true,
			expected: KeyInfo{
				Fingerprint: "aabbccdd",
				Path:        "0'",
				XPub:        testXPub,
			},
		},
		{
			name:     "v1 key info with multipath steps",
			fragment: "[aabbccdd/84'/1'/0']" + testXPub + "/**",
			ok:       true,
			expected: KeyInfo{
				Fingerprint: "aabbccdd",
				Path:        "84'/1'/0'",
				XPub:        testXPub,
			},
		},
		{
			name:     "upper case fingerprint is kept verbatim",
			fragment: "[AABBCCDD/44h/1h/0h]" + testXPub,
			ok:       true,
			expected: KeyInfo{
				Fingerprint: "AABBCCDD",
				Path:        "44h/1h/0h",
				XPub:        testXPub,
			},
		},
		{
			name:     "no origin",
			fragment: testXPub,
		},
		{
			name:     "empty",
			fragment: "",
		},
		{
			name:     "unterminated origin",
			fragment: "[aabbccdd/0'" + testXPub,
		},
		{
			name:     "short fingerprint",
			fragment: "[abcd/0']" + testXPub,
		},
		{
			name:     "fingerprint without path",
			fragment: "[aabbccdd]" + testXPub,
		},
		{
			name:     "closing bracket before opening",
			fragment: "]aabbccdd/0'[" + testXPub,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info, ok := Parse(tc.fragment)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, info)
		})
	}
}

func TestFingerprintMatches(t *testing.T) {
	t.Parallel()

	info := KeyInfo{Fingerprint: "F5ACC2FD"}
	assert.True(t, info.FingerprintMatches([]byte{0xf5, 0xac, 0xc2, 0xfd}))
	assert.False(t, info.FingerprintMatches([]byte{0xf5, 0xac, 0xc2, 0xfe}))
	assert.False(t, info.FingerprintMatches(nil))
}

func TestKeyInfoString(t *testing.T) {
	t.Parallel()

	fragment := "[f5acc2fd/48'/1'/0'/2']" + testXPub
	info, ok := Parse(fragment)
	require.True(t, ok)
	assert.Equal(t, fragment, info.String())

	// legacy steps are not part of the key identity
	info, ok = Parse(fragment + "/0/*")
	require.True(t, ok)
	assert.Equal(t, fragment, info.String())
}

// TestParseNeverPanics feeds arbitrary strings to the parser; every
// successful parse must be structurally consistent with its input.
func TestParseNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fragment := rapid.OneOf(
			rapid.String(),
			rapid.StringMatching(`\[[0-9a-fA-F]{0,10}(/[0-9h']{0,6}){0,3}\]?[a-zA-Z0-9]{0,20}(/[0-9*]{0,3}){0,2}`),
		).Draw(t, "fragment")

		info, ok := Parse(fragment)
		if !ok {
			return
		}
		if len(info.Fingerprint) != FingerprintLen {
			t.Fatalf("fingerprint %q has wrong length", info.Fingerprint)
		}
		if strings.Contains(info.XPub, "/") {
			t.Fatalf("xpub %q still carries derivation steps", info.XPub)
		}
		if !strings.HasPrefix(fragment, info.String()) {
			t.Fatalf("%q is not a prefix of %q", info.String(), fragment)
		}
	})
}
