// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// SoftwareKeyProvider is a vault held in memory as its encrypted state.
//
// The zero value is not usable; construct it with [NewEmptyWallet] or
// [NewSoftwareKeyProvider]. A SoftwareKeyProvider is safe for concurrent use.
type SoftwareKeyProvider struct {
	// mu guards state and id. Mutations hold it for the whole
	// open-mutate-seal cycle.
	mu    sync.RWMutex
	state string
	id    string

	wallet models.WalletUtils
	logger *logger.Logger
}

// NewEmptyWallet creates a vault with no records, bound to id and sealed
// with pass. Failures match [models.ErrInitialization].
func NewEmptyWallet(ctx context.Context, wallet models.WalletUtils, id, pass string, opts ...Option) (*SoftwareKeyProvider, error) {
	o := applyOptions(opts)

	state, err := wallet.NewWallet(ctx, id, pass)
	if err != nil {
		o.logger.Warn().Err(err).Str("wallet_id", id).Msg("cannot create wallet")
		if !errors.Is(err, models.ErrInitialization) {
			err = fmt.Errorf("%w: %w", models.ErrInitialization, err)
		}
		return nil, opError("newEmptyWallet", err)
	}

	return &SoftwareKeyProvider{state: state, id: id, wallet: wallet, logger: o.logger}, nil
}

// NewSoftwareKeyProvider wraps an existing encrypted state. Nothing is
// checked here: a corrupt state or a wrong id is reported by the first
// operation as [models.ErrDecryption].
func NewSoftwareKeyProvider(wallet models.WalletUtils, encryptedWallet, id string, opts ...Option) *SoftwareKeyProvider {
	o := applyOptions(opts)
	return &SoftwareKeyProvider{state: encryptedWallet, id: id, wallet: wallet, logger: o.logger}
}

// EncryptedWallet returns the current transport-encoded state.
func (p *SoftwareKeyProvider) EncryptedWallet() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// ID returns the id the current state is bound to.
func (p *SoftwareKeyProvider) ID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.id
}

// Snapshot returns the id and the state as one consistent pair, ready to be
// persisted.
func (p *SoftwareKeyProvider) Snapshot() models.EncryptedWallet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return models.EncryptedWallet{ID: p.id, State: p.state}
}

// ChangePass re-seals the vault under newPass. On failure the vault keeps
// its previous state.
func (p *SoftwareKeyProvider) ChangePass(ctx context.Context, oldPass, newPass string) error {
	return p.mutate("changePass", func(state, id string) (string, string, error) {
		next, err := p.wallet.ChangePass(ctx, state, id, oldPass, newPass)
		return next, id, err
	})
}

// ChangeID re-binds the vault to newID. The id and the state change together.
func (p *SoftwareKeyProvider) ChangeID(ctx context.Context, pass, newID string) error {
	return p.mutate("changeId", func(state, id string) (string, string, error) {
		next, err := p.wallet.ChangeID(ctx, state, id, newID, pass)
		return next, newID, err
	})
}

// NewKeyPair generates a key of keyType, stores it with the given
// controllers and returns its public view.
func (p *SoftwareKeyProvider) NewKeyPair(ctx context.Context, pass string, keyType models.KeyType, controller ...string) (models.PublicKeyInfo, error) {
	var info models.PublicKeyInfo

	err := p.mutate("newKeyPair", func(state, id string) (string, string, error) {
		raw, err := p.wallet.NewKey(ctx, state, id, pass, string(keyType), controller...)
		if err != nil {
			return "", "", err
		}

		var res models.AddKeyResult
		if err := decodeResult(raw, &res); err != nil {
			return "", "", err
		}
		info = res.NewKey
		return res.NewEncryptedState, id, nil
	})
	if err != nil {
		return models.PublicKeyInfo{}, err
	}
	return info, nil
}

// AddContent stores content as a new record. json.RawMessage and []byte are
// taken as an already encoded JSON document; any other value is marshalled.
// A JSON object carrying privateKeyHex is imported as a key pair.
func (p *SoftwareKeyProvider) AddContent(ctx context.Context, pass string, content any) error {
	doc, err := encodeContent(content)
	if err != nil {
		return opError("addContent", err)
	}

	return p.mutate("addContent", func(state, id string) (string, string, error) {
		next, err := p.wallet.AddContent(ctx, state, id, pass, doc)
		return next, id, err
	})
}

// SetKeyController replaces the controller list of the key at args.KeyRef.
func (p *SoftwareKeyProvider) SetKeyController(ctx context.Context, args models.KeyRefArgs, controller ...string) error {
	return p.mutate("setKeyController", func(state, id string) (string, string, error) {
		next, err := p.wallet.SetKeyController(ctx, state, id, args.EncryptionPass, args.KeyRef, controller...)
		return next, id, err
	})
}

// GetPubKey returns the key whose reference is exactly args.KeyRef.
func (p *SoftwareKeyProvider) GetPubKey(ctx context.Context, args models.KeyRefArgs) (models.PublicKeyInfo, error) {
	state, id := p.snapshot()

	raw, err := p.wallet.GetKey(ctx, state, id, args.EncryptionPass, args.KeyRef)
	if err != nil {
		return models.PublicKeyInfo{}, p.fail("getPubKey", err)
	}

	var info models.PublicKeyInfo
	if err := decodeResult(raw, &info); err != nil {
		return models.PublicKeyInfo{}, p.fail("getPubKey", err)
	}
	return info, nil
}

// GetPubKeyByController returns the first key, in insertion order, listing
// controller.
func (p *SoftwareKeyProvider) GetPubKeyByController(ctx context.Context, pass, controller string) (models.PublicKeyInfo, error) {
	state, id := p.snapshot()

	raw, err := p.wallet.GetKeyByController(ctx, state, id, pass, controller)
	if err != nil {
		return models.PublicKeyInfo{}, p.fail("getPubKeyByController", err)
	}

	var info models.PublicKeyInfo
	if err := decodeResult(raw, &info); err != nil {
		return models.PublicKeyInfo{}, p.fail("getPubKeyByController", err)
	}
	return info, nil
}

// GetPubKeys returns every key in insertion order. An empty vault yields an
// empty, non-nil slice.
func (p *SoftwareKeyProvider) GetPubKeys(ctx context.Context, pass string) ([]models.PublicKeyInfo, error) {
	state, id := p.snapshot()

	raw, err := p.wallet.GetKeys(ctx, state, id, pass)
	if err != nil {
		return nil, p.fail("getPubKeys", err)
	}

	keys := make([]models.PublicKeyInfo, 0)
	if err := decodeResult(raw, &keys); err != nil {
		return nil, p.fail("getPubKeys", err)
	}
	return keys, nil
}

// Sign signs data with the key at args.KeyRef.
func (p *SoftwareKeyProvider) Sign(ctx context.Context, args models.KeyRefArgs, data []byte) ([]byte, error) {
	state, id := p.snapshot()

	sig, err := p.wallet.Sign(ctx, state, id, args.EncryptionPass, args.KeyRef, crypto.EncodeTransport(data))
	if err != nil {
		return nil, p.fail("sign", err)
	}
	return p.decodeBinary("sign", sig)
}

// Decrypt opens a ciphertext addressed to the key-agreement key at
// args.KeyRef. aad may be nil.
func (p *SoftwareKeyProvider) Decrypt(ctx context.Context, args models.KeyRefArgs, data, aad []byte) ([]byte, error) {
	state, id := p.snapshot()

	pt, err := p.wallet.Decrypt(ctx, state, id, args.EncryptionPass, args.KeyRef,
		crypto.EncodeTransport(data), crypto.EncodeTransport(aad))
	if err != nil {
		return nil, p.fail("decrypt", err)
	}
	return p.decodeBinary("decrypt", pt)
}

// ECDHKeyAgreement returns the raw X25519 shared secret between the key at
// args.KeyRef and peerPublicKey. No KDF is applied.
func (p *SoftwareKeyProvider) ECDHKeyAgreement(ctx context.Context, args models.KeyRefArgs, peerPublicKey []byte) ([]byte, error) {
	state, id := p.snapshot()

	secret, err := p.wallet.ECDHKeyAgreement(ctx, state, id, args.EncryptionPass, args.KeyRef, crypto.EncodeTransport(peerPublicKey))
	if err != nil {
		return nil, p.fail("ecdhKeyAgreement", err)
	}
	return p.decodeBinary("ecdhKeyAgreement", secret)
}

// mutate runs fn with the current state and id under the write lock and
// installs the pair it returns. Nothing is installed when fn fails.
func (p *SoftwareKeyProvider) mutate(op string, fn func(state, id string) (string, string, error)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, id, err := fn(p.state, p.id)
	if err != nil {
		return p.fail(op, err)
	}
	if state == "" || id == "" {
		return p.fail(op, fmt.Errorf("%w: empty state", ErrMalformedResult))
	}

	p.state, p.id = state, id
	p.logger.Debug().Str("op", op).Str("wallet_id", id).Msg("wallet state replaced")
	return nil
}

func (p *SoftwareKeyProvider) snapshot() (string, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.id
}

func (p *SoftwareKeyProvider) fail(op string, err error) error {
	p.logger.Debug().Err(err).Str("op", op).Msg("operation failed")
	return opError(op, err)
}

func (p *SoftwareKeyProvider) decodeBinary(op, s string) ([]byte, error) {
	b, err := crypto.DecodeTransport(s)
	if err != nil {
		return nil, p.fail(op, fmt.Errorf("%w: %w", ErrMalformedResult, err))
	}
	return b, nil
}

func decodeResult(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}
	return nil
}

func encodeContent(content any) (string, error) {
	switch c := content.(type) {
	case json.RawMessage:
		return string(c), nil
	case []byte:
		return string(c), nil
	}

	b, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("%w: content is not serialisable: %w", models.ErrInvalidArgument, err)
	}
	return string(b), nil
}
