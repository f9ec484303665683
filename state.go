package cryptoform

// State is the explicit workflow state. Illegal sequences (sending before
// staging completes, staging twice concurrently) fail loudly instead of
// being inferred from which fields happen to be populated.
type State int

const (
	// StateDraft is the initial state: the user is entering data.
	StateDraft State = iota
	// StateAwaitingFingerprint means a fingerprint lookup is in flight for
	// the selected recipient.
	StateAwaitingFingerprint
	// StateVerified means a fingerprint verdict has been recorded for the
	// current selection. The verdict may still be a mismatch; that is a
	// warning, not a hard stop.
	StateVerified
	// StateAwaitingCiphertext means the serialized message has been handed
	// to the encryption engine.
	StateAwaitingCiphertext
	// StateReadyToSend means ciphertext is stored and the message can be
	// submitted to the relay.
	StateReadyToSend
	// StateAwaitingRelayAck means the relay submission is in flight.
	StateAwaitingRelayAck
	// StateSent is terminal until Reset.
	StateSent
	// StateFailed records an async failure. Draft data is retained so the
	// same action can be re-invoked without re-entering data.
	StateFailed
)

var stateNames = map[State]string{
	StateDraft:               "draft",
	StateAwaitingFingerprint: "awaiting-fingerprint",
	StateVerified:            "verified",
	StateAwaitingCiphertext:  "awaiting-ciphertext",
	StateReadyToSend:         "ready-to-send",
	StateAwaitingRelayAck:    "awaiting-relay-ack",
	StateSent:                "sent",
	StateFailed:              "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// awaiting reports whether s is one of the in-flight states that disables
// re-triggering the corresponding request.
func (s State) awaiting() bool {
	switch s {
	case StateAwaitingFingerprint, StateAwaitingCiphertext, StateAwaitingRelayAck:
		return true
	}
	return false
}
