package cryptoform

import (
	"strings"
	"unicode"
)

// NormalizeFingerprint strips all whitespace and lowercases a fingerprint,
// so the user-facing spaced hex form ("AAAA BBBB") and the engine-reported
// compact form ("aaaabbbb") compare equal.
func NormalizeFingerprint(fingerprint string) string {
	var b strings.Builder
	b.Grow(len(fingerprint))
	for _, r := range fingerprint {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Verdict is the outcome of cross-checking the directory-reported
// fingerprint against the one the engine computed from the recipient's
// public key. It is tagged with the recipient fingerprint it was computed
// for; a verdict whose tag no longer matches the current selection is stale
// and must not be shown as authoritative.
type Verdict struct {
	// RecipientFingerprint tags the selection this verdict belongs to.
	RecipientFingerprint string
	// RemoteReported is the fingerprint as computed by the engine from the
	// recipient's public key.
	RemoteReported string
	// LocalComputed is the fingerprint the directory listed for the
	// recipient.
	LocalComputed string
	// Valid reports whether the two fingerprints match under
	// normalization. A false verdict is a warning, not a hard stop.
	Valid bool
}

// VerifyFingerprint compares remote and local under normalization and tags
// the verdict with recipientFingerprint.
func VerifyFingerprint(remote, local, recipientFingerprint string) Verdict {
	return Verdict{
		RecipientFingerprint: recipientFingerprint,
		RemoteReported:       remote,
		LocalComputed:        local,
		Valid:                NormalizeFingerprint(remote) == NormalizeFingerprint(local),
	}
}

// StaleFor reports whether the verdict was computed for a different
// recipient than current.
func (v Verdict) StaleFor(current string) bool {
	return NormalizeFingerprint(v.RecipientFingerprint) != NormalizeFingerprint(current)
}
