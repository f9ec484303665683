package cryptoform

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// Header is a single message header. Header order is fixed and significant:
// From, To, Message-ID, Subject.
type Header struct {
	Key   string
	Value string
}

// ComposedMessage is the ephemeral result of composing a draft. It is never
// persisted; staging recomputes it from the draft every time.
type ComposedMessage struct {
	Headers     []Header
	Body        string
	Attachments []*Attachment

	boundary string
}

// Header returns the value of the named header, or "" if absent.
func (m *ComposedMessage) Header(key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return h.Value
		}
	}
	return ""
}

// Composer builds and serializes messages. The zero Message-ID generator is
// replaced with a UUID-based one; tests pin the generator to get
// byte-identical serializations.
type Composer struct {
	newMessageID func() string
}

// NewComposer creates a composer. newMessageID may be nil to use the
// default generator.
func NewComposer(newMessageID func() string) *Composer {
	if newMessageID == nil {
		newMessageID = defaultMessageID
	}
	return &Composer{newMessageID: newMessageID}
}

func defaultMessageID() string {
	return "<" + uuid.NewString() + "@cryptoform>"
}

// FormatAddress renders a display-name mailbox, e.g. "Bob <bob@x.com>".
func FormatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

// Compose builds a message with the fixed header order From, To,
// Message-ID, Subject. Each attachment becomes one additional part.
func (c *Composer) Compose(from, to, subject, body string, attachments []*Attachment) *ComposedMessage {
	id := c.newMessageID()
	return &ComposedMessage{
		Headers: []Header{
			{"From", from},
			{"To", to},
			{"Message-ID", id},
			{"Subject", subject},
		},
		Body:        body,
		Attachments: append([]*Attachment(nil), attachments...),
		boundary:    boundaryFromToken(id),
	}
}

// boundaryFromToken derives the multipart boundary from the Message-ID
// token, so a fixed generator yields a fixed boundary and byte-identical
// serialization.
func boundaryFromToken(token string) string {
	var b strings.Builder
	b.WriteString("cf-")
	for _, r := range token {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	// RFC 2046 caps boundaries at 70 characters.
	if len(s) > 70 {
		s = s[:70]
	}
	return s
}

// Serialize renders the message as a single multipart/mixed byte sequence.
// The output is the exact payload handed to the encryption engine, so it is
// deterministic: identical input (including the Message-ID) serializes to
// identical bytes.
func (m *ComposedMessage) Serialize() ([]byte, error) {
	var buf bytes.Buffer

	for _, h := range m.Headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.Key, h.Value)
	}
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", m.boundary)

	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(m.boundary); err != nil {
		return nil, fmt.Errorf("set boundary: %w", err)
	}

	body, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("create body part: %w", err)
	}
	if _, err := body.Write([]byte(m.Body)); err != nil {
		return nil, fmt.Errorf("write body part: %w", err)
	}

	for _, a := range m.Attachments {
		mimeType := a.MIMEType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {mimeType},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", a.Filename)},
			"Content-Transfer-Encoding": {"base64"},
		})
		if err != nil {
			return nil, fmt.Errorf("create attachment part: %w", err)
		}
		if _, err := part.Write([]byte(base64.StdEncoding.EncodeToString(a.Payload))); err != nil {
			return nil, fmt.Errorf("write attachment part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), nil
}
