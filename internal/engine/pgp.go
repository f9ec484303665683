package engine

import (
	"context"
	"fmt"

	"github.com/ProtonMail/gopenpgp/v3/crypto"
)

// PGP is the gopenpgp-backed engine implementation.
type PGP struct {
	pgp *crypto.PGPHandle
}

// NewPGP creates a PGP engine.
func NewPGP() *PGP {
	return &PGP{pgp: crypto.PGP()}
}

// Submit dispatches the request on its own goroutine and delivers the
// result through respond.
func (p *PGP) Submit(ctx context.Context, req Request, respond func(Response)) {
	go func() {
		respond(p.execute(ctx, req))
	}()
}

func (p *PGP) execute(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID, Op: req.Op}

	if err := ctx.Err(); err != nil {
		resp.Err = err
		return resp
	}

	switch req.Op {
	case OpFingerprint:
		resp.Fingerprint, resp.Err = p.fingerprint(req)
	case OpEncrypt:
		resp.Ciphertext, resp.Err = p.encrypt(req)
	default:
		resp.Err = fmt.Errorf("unknown engine operation %q", req.Op)
	}
	return resp
}

func (p *PGP) fingerprint(req Request) (string, error) {
	if len(req.PublicKeys) != 1 {
		return "", fmt.Errorf("fingerprint expects exactly one public key, got %d", len(req.PublicKeys))
	}

	key, err := crypto.NewKeyFromArmored(req.PublicKeys[0])
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}
	return key.GetFingerprint(), nil
}

func (p *PGP) encrypt(req Request) ([]byte, error) {
	if len(req.PublicKeys) == 0 {
		return nil, fmt.Errorf("encrypt expects at least one public key")
	}

	builder := p.pgp.Encryption()
	for _, armored := range req.PublicKeys {
		key, err := crypto.NewKeyFromArmored(armored)
		if err != nil {
			return nil, fmt.Errorf("parse public key: %w", err)
		}
		builder = builder.Recipient(key)
	}

	handle, err := builder.New()
	if err != nil {
		return nil, fmt.Errorf("build encryption handle: %w", err)
	}
	defer handle.ClearPrivateParams()

	message, err := handle.Encrypt(req.Data)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	if req.Armor {
		armored, err := message.ArmorBytes()
		if err != nil {
			return nil, fmt.Errorf("armor ciphertext: %w", err)
		}
		return armored, nil
	}
	return message.Bytes(), nil
}
