// Package engine defines the message-passing boundary to the encryption
// engine: typed requests go out, typed responses come back, correlated by
// request ID. The PGP implementation is backed by gopenpgp and is
// encryption-only; no signing keys are ever supplied.
package engine
