package api

// IdentityRecord represents one entry of the GET /identities response.
type IdentityRecord struct {
	Description string `json:"description"`
	Fingerprint string `json:"fingerprint"`
	PublicKey   string `json:"publicKey"`
}

// SubmitRequest represents the POST /{fingerprint} relay request.
type SubmitRequest struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SubmitResult represents the relay's delivery acknowledgement.
type SubmitResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
