package cryptoform

import (
	"github.com/google/uuid"

	"github.com/hapee/cryptoform-go/internal/api"
	"github.com/hapee/cryptoform-go/internal/engine"
)

// EncryptionEngine is the message-passing boundary to the encryption
// engine. The default implementation is PGP-backed; tests substitute their
// own through WithEngine.
type EncryptionEngine = engine.Engine

// EngineRequest is an outbound engine message.
type EngineRequest = engine.Request

// EngineResponse is an inbound engine message.
type EngineResponse = engine.Response

// Client wires the identity directory, the relay API and the encryption
// engine together. Workflows created from the same client share them.
type Client struct {
	apiClient       *api.Client
	engine          EncryptionEngine
	composer        *Composer
	newRequestID    func() string
	recipientDomain string
}

// New creates a new CryptoForm client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:         defaultBaseURL,
		recipientDomain: defaultRecipientDomain,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var apiOpts []api.Option
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	apiClient, err := api.New(cfg.baseURL, apiOpts...)
	if err != nil {
		return nil, err
	}
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	eng := cfg.engine
	if eng == nil {
		eng = engine.NewPGP()
	}

	return &Client{
		apiClient:       apiClient,
		engine:          eng,
		composer:        NewComposer(cfg.newMessageID),
		newRequestID:    uuid.NewString,
		recipientDomain: cfg.recipientDomain,
	}, nil
}

// NewWorkflow creates a fresh compose workflow in the Draft state.
func (c *Client) NewWorkflow() *Workflow {
	return &Workflow{client: c, state: StateDraft}
}

// recipientAddress builds the identity-addressed mailbox for a recipient:
// the normalized fingerprint at the configured recipient domain.
func (c *Client) recipientAddress(id Identity) string {
	return NormalizeFingerprint(id.Fingerprint) + "@" + c.recipientDomain
}
