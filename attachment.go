package cryptoform

// Attachment is an in-memory file blob to be carried inside the composed
// message. Two attachments may share a filename; stores distinguish them by
// pointer identity.
type Attachment struct {
	Filename string
	MIMEType string
	Payload  []byte
}

// AttachmentStore is an ordered collection of attachments. Insertion order
// is preserved and significant: List returns attachments in the order they
// were added.
type AttachmentStore struct {
	items []*Attachment
}

// Add appends an attachment. No size or type validation is applied here;
// policy belongs to the surrounding application.
func (s *AttachmentStore) Add(a *Attachment) {
	if a == nil {
		return
	}
	s.items = append(s.items, a)
}

// Remove removes the first entry that is the same attachment (pointer
// identity, not content equality). It reports whether anything was removed.
func (s *AttachmentStore) Remove(a *Attachment) bool {
	for i, item := range s.items {
		if item == a {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the attachments in insertion order.
func (s *AttachmentStore) List() []*Attachment {
	out := make([]*Attachment, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored attachments.
func (s *AttachmentStore) Len() int {
	return len(s.items)
}

// Clear removes all attachments.
func (s *AttachmentStore) Clear() {
	s.items = nil
}
