package engine

import "context"

// Op identifies an engine operation.
type Op string

const (
	// OpFingerprint computes the fingerprint of a public key.
	OpFingerprint Op = "fingerprint"
	// OpEncrypt encrypts plaintext to a set of public keys.
	OpEncrypt Op = "encrypt"
)

// Request is an outbound message to the engine.
type Request struct {
	// ID correlates the eventual Response with this Request.
	ID string
	Op Op
	// PublicKeys holds armored recipient keys. For OpFingerprint exactly
	// one key is expected.
	PublicKeys []string
	// Data is the plaintext for OpEncrypt.
	Data []byte
	// Armor requests text-safe ciphertext output.
	Armor bool
}

// Response is an inbound message from the engine.
type Response struct {
	ID          string
	Op          Op
	Fingerprint string
	Ciphertext  []byte
	Err         error
}

// Engine executes crypto requests asynchronously. Submit returns as soon as
// the request is dispatched; the response is delivered through respond, from
// a goroutine owned by the engine. Responses are never dropped by the
// engine; stale ones are discarded by the caller.
type Engine interface {
	Submit(ctx context.Context, req Request, respond func(Response))
}
