package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetIdentities lists the known recipient identities.
func (c *Client) GetIdentities(ctx context.Context) ([]IdentityRecord, error) {
	var result []IdentityRecord
	if err := c.do(ctx, "GET", "/identities", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitMessage submits an encrypted message to the identity-addressed
// relay endpoint.
func (c *Client) SubmitMessage(ctx context.Context, fingerprint string, req SubmitRequest) (*SubmitResult, error) {
	path := fmt.Sprintf("/%s", url.PathEscape(fingerprint))
	var result SubmitResult
	if err := c.do(ctx, "POST", path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
