package cryptoform

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL         = "https://api.451labs.org"
	defaultRecipientDomain = "451labs.org"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL         string
	httpClient      *http.Client
	timeout         time.Duration
	engine          EncryptionEngine
	newMessageID    func() string
	recipientDomain string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the base URL for the directory and relay endpoints.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP timeout for directory and relay calls.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithEngine substitutes the encryption engine. The default is the
// PGP-backed engine.
func WithEngine(engine EncryptionEngine) Option {
	return func(c *clientConfig) {
		c.engine = engine
	}
}

// WithMessageIDGenerator sets the Message-ID token generator. Message-IDs
// must be unique per message; a fixed generator also fixes the multipart
// boundary, which makes serialization reproducible in tests.
func WithMessageIDGenerator(generator func() string) Option {
	return func(c *clientConfig) {
		c.newMessageID = generator
	}
}

// WithRecipientDomain sets the domain used for identity-addressed recipient
// mailboxes (fingerprint@domain).
func WithRecipientDomain(domain string) Option {
	return func(c *clientConfig) {
		c.recipientDomain = domain
	}
}
