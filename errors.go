package cryptoform

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrDirectoryUnavailable is returned when the identity directory
	// fetch fails. The directory stays unloaded until an explicit reload.
	ErrDirectoryUnavailable = errors.New("identity directory unavailable")

	// ErrDirectoryNotReady is returned when a recipient is selected
	// before the directory has been loaded.
	ErrDirectoryNotReady = errors.New("identity directory not loaded")

	// ErrUnknownRecipient is returned when the requested fingerprint does
	// not match any directory entry.
	ErrUnknownRecipient = errors.New("recipient not found in directory")

	// ErrNoRecipient is returned when staging without a selected recipient.
	ErrNoRecipient = errors.New("no recipient selected")

	// ErrDraftIncomplete is returned when staging with empty required
	// fields. Sender name, sender email, subject and body are required;
	// attachments are optional.
	ErrDraftIncomplete = errors.New("draft is missing required fields")

	// ErrInvalidState is returned when an operation is not valid in the
	// current workflow state.
	ErrInvalidState = errors.New("operation not valid in current workflow state")

	// ErrFingerprintLookupFailed is recorded when the engine fails to
	// compute a fingerprint for the selected recipient's public key.
	ErrFingerprintLookupFailed = errors.New("fingerprint lookup failed")

	// ErrEncryptionFailed is recorded when the engine returns an error or
	// malformed ciphertext.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrRelayRejected is recorded when the relay returns a non-success
	// response.
	ErrRelayRejected = errors.New("relay rejected the message")
)
