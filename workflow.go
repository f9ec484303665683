package cryptoform

import (
	"context"
	"fmt"
	"sync"

	"github.com/hapee/cryptoform-go/internal/api"
	"github.com/hapee/cryptoform-go/internal/engine"
)

// Draft holds the user-entered message fields. Sender name, sender email,
// subject and body are all required before staging; attachments are not.
type Draft struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Body        string
}

// Workflow is the state machine for composing and sending one encrypted
// message. All state is owned by the workflow and mutated one event at a
// time; async responses re-enter through handlers correlated by request ID,
// and anything that no longer matches the in-flight request is dropped
// silently.
type Workflow struct {
	client *Client

	mu          sync.Mutex
	state       State
	failure     error
	draft       Draft
	attachments AttachmentStore
	directory   Directory
	verdict     *Verdict
	composed    *ComposedMessage
	ciphertext  []byte
	deliveryID  string
	pendingID   string
}

// LoadDirectory fetches the recipient identities. On failure the directory
// stays unloaded; there is no automatic retry, the caller reloads
// explicitly. Calling it again replaces the entries wholesale.
func (w *Workflow) LoadDirectory(ctx context.Context) error {
	records, err := w.client.apiClient.GetIdentities(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	entries := make([]Identity, 0, len(records))
	for _, r := range records {
		entries = append(entries, Identity{
			Description: r.Description,
			Fingerprint: r.Fingerprint,
			PublicKey:   r.PublicKey,
		})
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.directory.Load(entries)
	return nil
}

// SelectRecipient sets the selection to the directory entry with the given
// fingerprint and requests a fingerprint lookup from the engine for its
// public key. Any prior verdict, and any ciphertext encrypted to the
// previous recipient, is invalidated.
func (w *Workflow) SelectRecipient(ctx context.Context, fingerprint string) error {
	w.mu.Lock()
	if !w.directory.Ready() {
		w.mu.Unlock()
		return ErrDirectoryNotReady
	}
	id, err := w.directory.Select(fingerprint)
	if err != nil {
		w.mu.Unlock()
		return err
	}

	w.verdict = nil
	w.composed = nil
	w.ciphertext = nil
	w.deliveryID = ""
	w.failure = nil
	w.pendingID = w.client.newRequestID()
	reqID := w.pendingID
	w.state = StateAwaitingFingerprint
	w.mu.Unlock()

	w.client.engine.Submit(ctx, engine.Request{
		ID:         reqID,
		Op:         engine.OpFingerprint,
		PublicKeys: []string{id.PublicKey},
	}, w.handleEngineResponse)
	return nil
}

// SetSender sets the sender name and email.
func (w *Workflow) SetSender(name, email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.SenderName = name
	w.draft.SenderEmail = email
}

// SetSubject sets the message subject.
func (w *Workflow) SetSubject(subject string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Subject = subject
}

// SetBody sets the message body.
func (w *Workflow) SetBody(body string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Body = body
}

// AddAttachment appends an attachment to the draft.
func (w *Workflow) AddAttachment(a *Attachment) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attachments.Add(a)
}

// RemoveAttachment removes a previously added attachment.
func (w *Workflow) RemoveAttachment(a *Attachment) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attachments.Remove(a)
}

// Attachments returns the draft attachments in insertion order.
func (w *Workflow) Attachments() []*Attachment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attachments.List()
}

// Ready reports whether the draft can be staged: a recipient is selected
// and all required fields are non-empty. The attachment count is
// irrelevant.
func (w *Workflow) Ready() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.readyLocked()
}

func (w *Workflow) readyLocked() bool {
	if _, ok := w.directory.Selected(); !ok {
		return false
	}
	return w.draft.SenderName != "" &&
		w.draft.SenderEmail != "" &&
		w.draft.Subject != "" &&
		w.draft.Body != ""
}

// Stage composes and serializes the draft and hands the bytes to the
// encryption engine. It is rejected while any request is in flight, so two
// encryptions can never race each other.
func (w *Workflow) Stage(ctx context.Context) error {
	w.mu.Lock()
	if w.state.awaiting() || w.state == StateSent {
		state := w.state
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	id, ok := w.directory.Selected()
	if !ok {
		w.mu.Unlock()
		return ErrNoRecipient
	}
	if !w.readyLocked() {
		w.mu.Unlock()
		return ErrDraftIncomplete
	}

	from := FormatAddress(w.draft.SenderName, w.draft.SenderEmail)
	to := FormatAddress(id.Description, w.client.recipientAddress(id))
	msg := w.client.composer.Compose(from, to, w.draft.Subject, w.draft.Body, w.attachments.List())
	data, err := msg.Serialize()
	if err != nil {
		w.mu.Unlock()
		return fmt.Errorf("serialize message: %w", err)
	}

	w.composed = msg
	w.ciphertext = nil
	w.failure = nil
	w.pendingID = w.client.newRequestID()
	reqID := w.pendingID
	w.state = StateAwaitingCiphertext
	w.mu.Unlock()

	w.client.engine.Submit(ctx, engine.Request{
		ID:         reqID,
		Op:         engine.OpEncrypt,
		PublicKeys: []string{id.PublicKey},
		Data:       data,
		Armor:      true,
	}, w.handleEngineResponse)
	return nil
}

// handleEngineResponse applies an engine response to the workflow. Stale
// responses, from a request that was superseded by a recipient switch or a
// reset, are dropped without surfacing an error: they are expected under
// normal recipient-switching use.
func (w *Workflow) handleEngineResponse(resp engine.Response) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if resp.ID != w.pendingID {
		return
	}

	switch resp.Op {
	case engine.OpFingerprint:
		if w.state != StateAwaitingFingerprint {
			return
		}
		w.pendingID = ""
		id, ok := w.directory.Selected()
		if !ok {
			return
		}
		if resp.Err != nil {
			w.failLocked(fmt.Errorf("%w: %w", ErrFingerprintLookupFailed, resp.Err))
			return
		}
		// A mismatch still transitions to Verified: the verdict is shown
		// to the user, it does not block sending.
		v := VerifyFingerprint(resp.Fingerprint, id.Fingerprint, id.Fingerprint)
		w.verdict = &v
		w.state = StateVerified

	case engine.OpEncrypt:
		if w.state != StateAwaitingCiphertext {
			return
		}
		w.pendingID = ""
		if resp.Err != nil {
			w.failLocked(fmt.Errorf("%w: %w", ErrEncryptionFailed, resp.Err))
			return
		}
		if len(resp.Ciphertext) == 0 {
			w.failLocked(fmt.Errorf("%w: engine returned empty ciphertext", ErrEncryptionFailed))
			return
		}
		w.ciphertext = resp.Ciphertext
		w.state = StateReadyToSend
	}
}

func (w *Workflow) failLocked(reason error) {
	w.failure = reason
	w.state = StateFailed
}

// Send submits the ciphertext to the identity-addressed relay endpoint.
// It is valid from ReadyToSend, or from Failed when ciphertext is already
// stored (a rejected submission can be retried without re-staging).
func (w *Workflow) Send(ctx context.Context) error {
	w.mu.Lock()
	retryable := w.state == StateFailed && len(w.ciphertext) > 0
	if w.state != StateReadyToSend && !retryable {
		state := w.state
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	id, ok := w.directory.Selected()
	if !ok {
		w.mu.Unlock()
		return ErrNoRecipient
	}

	req := api.SubmitRequest{
		From:    w.draft.SenderEmail,
		Subject: w.draft.Subject,
		Text:    string(w.ciphertext),
	}
	target := NormalizeFingerprint(id.Fingerprint)
	w.failure = nil
	w.state = StateAwaitingRelayAck
	w.mu.Unlock()

	result, err := w.client.apiClient.SubmitMessage(ctx, target, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateAwaitingRelayAck {
		// A reset raced the in-flight submission; drop the outcome.
		return nil
	}
	if err != nil {
		w.failLocked(fmt.Errorf("%w: %w", ErrRelayRejected, err))
		return w.failure
	}
	w.deliveryID = result.ID
	w.state = StateSent
	return nil
}

// Reset clears all draft data and returns to Draft. Directory entries are
// kept; the selection, verdict, ciphertext and any in-flight request tags
// are dropped, so late responses from before the reset are discarded.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = Draft{}
	w.attachments.Clear()
	w.directory.ClearSelection()
	w.verdict = nil
	w.composed = nil
	w.ciphertext = nil
	w.deliveryID = ""
	w.pendingID = ""
	w.failure = nil
	w.state = StateDraft
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Err returns the failure reason recorded by the last async failure, or nil.
func (w *Workflow) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// Verdict returns the fingerprint verdict for the current selection, or nil
// if there is none or the recorded verdict belongs to a different
// recipient.
func (w *Workflow) Verdict() *Verdict {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.verdict == nil {
		return nil
	}
	id, ok := w.directory.Selected()
	if !ok || w.verdict.StaleFor(id.Fingerprint) {
		return nil
	}
	v := *w.verdict
	return &v
}

// Draft returns a snapshot of the user-entered fields, so a rendering layer
// can repopulate its form after a failure.
func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Composed returns the message produced by the last successful Stage, or
// nil. It is recomputed on every staging, never reused.
func (w *Workflow) Composed() *ComposedMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.composed
}

// DeliveryID returns the relay's acknowledgement ID after a successful
// send.
func (w *Workflow) DeliveryID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.deliveryID
}

// DirectoryReady reports whether identities are loaded and non-empty.
func (w *Workflow) DirectoryReady() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.directory.Ready()
}

// Identities returns the loaded directory entries in directory order.
func (w *Workflow) Identities() []Identity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.directory.Entries()
}

// SelectedRecipient returns the current selection, if any.
func (w *Workflow) SelectedRecipient() (Identity, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.directory.Selected()
}
