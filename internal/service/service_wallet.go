// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/wallet"
	"github.com/MKhiriev/go-key-vault/models"
)

// walletService is the native implementation of [models.WalletUtils].
//
// Every operation decodes the transport state, opens it with the wallet
// cipher and parses the record store. Read operations answer from the store;
// mutating operations apply their change and seal a new state. The plaintext
// store is wiped before the call returns, on success and on failure.
type walletService struct {
	cipher crypto.WalletCipher
	suites *crypto.Suites
	ids    IDGenerator
	logger *logger.Logger
}

// NewWalletService constructs a [models.WalletUtils] from its collaborators.
func NewWalletService(cipher crypto.WalletCipher, suites *crypto.Suites, ids IDGenerator, log *logger.Logger) models.WalletUtils {
	return &walletService{
		cipher: cipher,
		suites: suites,
		ids:    ids,
		logger: log,
	}
}

// NewWallet implements [models.WalletUtils]. Rejections surface as
// [models.ErrInitialization].
func (s *walletService) NewWallet(ctx context.Context, id, pass string) (string, error) {
	log := s.opLogger("newWallet", id)

	state, err := s.seal(wallet.New(), id, pass)
	if err != nil {
		log.Warn().Err(err).Msg("wallet creation rejected")
		return "", fmt.Errorf("%w: %w", models.ErrInitialization, mapError(err))
	}

	log.Debug().Msg("empty wallet created")
	return state, nil
}

// ChangePass implements [models.WalletUtils].
func (s *walletService) ChangePass(ctx context.Context, encryptedWallet, id, oldPass, newPass string) (string, error) {
	if newPass == "" {
		return "", mapError(ErrEmptyNewPassword)
	}
	return s.mutate("changePass", encryptedWallet, id, oldPass, id, newPass, func(*wallet.Store) error {
		return nil
	})
}

// ChangeID implements [models.WalletUtils].
func (s *walletService) ChangeID(ctx context.Context, encryptedWallet, id, newID, pass string) (string, error) {
	if newID == "" {
		return "", mapError(ErrEmptyNewID)
	}
	return s.mutate("changeId", encryptedWallet, id, pass, newID, pass, func(*wallet.Store) error {
		return nil
	})
}

// NewKey implements [models.WalletUtils].
func (s *walletService) NewKey(ctx context.Context, encryptedWallet, id, pass, keyType string, controller ...string) (string, error) {
	kt, err := models.ParseKeyType(keyType)
	if err != nil {
		return "", err
	}
	suite, err := s.suites.Lookup(kt)
	if err != nil {
		return "", mapError(err)
	}

	var info models.PublicKeyInfo
	state, err := s.mutate("newKey", encryptedWallet, id, pass, id, pass, func(store *wallet.Store) error {
		pub, priv, err := suite.Generate()
		if err != nil {
			return err
		}
		kp := wallet.KeyPair{
			ID:         s.ids.Generate(),
			Type:       kt,
			Controller: normalizeController(controller),
			PublicKey:  pub,
			PrivateKey: priv,
		}
		if err := store.AddKeyPair(kp); err != nil {
			memguard.WipeBytes(priv)
			return err
		}
		info = kp.PublicInfo()
		return nil
	})
	if err != nil {
		return "", err
	}

	return marshalResult(models.AddKeyResult{NewEncryptedState: state, NewKey: info})
}

// AddContent implements [models.WalletUtils].
func (s *walletService) AddContent(ctx context.Context, encryptedWallet, id, pass, content string) (string, error) {
	entry, err := s.classifyContent([]byte(content))
	if err != nil {
		return "", mapError(err)
	}

	return s.mutate("addContent", encryptedWallet, id, pass, id, pass, func(store *wallet.Store) error {
		if entry.KeyPair != nil {
			return store.AddKeyPair(*entry.KeyPair)
		}
		return store.AddContent(*entry.Content)
	})
}

// GetKey implements [models.WalletUtils]. Only exact reference matches count.
func (s *walletService) GetKey(ctx context.Context, encryptedWallet, id, pass, keyRef string) (string, error) {
	var info models.PublicKeyInfo
	err := s.read("getKey", encryptedWallet, id, pass, func(store *wallet.Store) error {
		kp, err := store.KeyByRef(keyRef)
		if err != nil {
			return err
		}
		info = kp.PublicInfo()
		return nil
	})
	if err != nil {
		return "", err
	}
	return marshalResult(info)
}

// GetKeyByController implements [models.WalletUtils].
func (s *walletService) GetKeyByController(ctx context.Context, encryptedWallet, id, pass, controller string) (string, error) {
	var info models.PublicKeyInfo
	err := s.read("getKeyByController", encryptedWallet, id, pass, func(store *wallet.Store) error {
		kp, err := store.KeyByController(controller)
		if err != nil {
			return err
		}
		info = kp.PublicInfo()
		return nil
	})
	if err != nil {
		return "", err
	}
	return marshalResult(info)
}

// SetKeyController implements [models.WalletUtils].
func (s *walletService) SetKeyController(ctx context.Context, encryptedWallet, id, pass, keyRef string, controller ...string) (string, error) {
	return s.mutate("setKeyController", encryptedWallet, id, pass, id, pass, func(store *wallet.Store) error {
		_, err := store.SetController(keyRef, normalizeController(controller))
		return err
	})
}

// GetKeys implements [models.WalletUtils].
func (s *walletService) GetKeys(ctx context.Context, encryptedWallet, id, pass string) (string, error) {
	infos := make([]models.PublicKeyInfo, 0)
	err := s.read("getKeys", encryptedWallet, id, pass, func(store *wallet.Store) error {
		for _, kp := range store.Keys() {
			infos = append(infos, kp.PublicInfo())
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return marshalResult(infos)
}

// Sign implements [models.WalletUtils]. A key that cannot sign is reported
// as both [models.ErrNotFound] and [models.ErrInvalidArgument].
func (s *walletService) Sign(ctx context.Context, encryptedWallet, id, pass, keyRef, data string) (string, error) {
	msg, err := crypto.DecodeTransport(data)
	if err != nil {
		return "", mapError(err)
	}

	var sig []byte
	err = s.read("sign", encryptedWallet, id, pass, func(store *wallet.Store) error {
		kp, err := store.ResolveKey(keyRef)
		if err != nil {
			return err
		}
		signer, err := s.suites.Signer(kp.Type)
		if err != nil {
			return fmt.Errorf("%w: %w: %w", models.ErrNotFound, models.ErrInvalidArgument, err)
		}
		sig, err = signer.Sign(kp.PrivateKey, msg)
		return err
	})
	if err != nil {
		return "", err
	}
	return crypto.EncodeTransport(sig), nil
}

// Decrypt implements [models.WalletUtils]. A key that cannot decrypt is
// reported as both [models.ErrDecryption] and [models.ErrInvalidArgument].
func (s *walletService) Decrypt(ctx context.Context, encryptedWallet, id, pass, keyRef, data, aad string) (string, error) {
	ct, err := crypto.DecodeTransport(data)
	if err != nil {
		return "", mapError(err)
	}
	ad, err := decodeOptional(aad)
	if err != nil {
		return "", mapError(err)
	}

	var pt []byte
	err = s.read("decrypt", encryptedWallet, id, pass, func(store *wallet.Store) error {
		kp, err := store.ResolveKey(keyRef)
		if err != nil {
			return err
		}
		agreement, err := s.suites.Agreement(kp.Type)
		if err != nil {
			return fmt.Errorf("%w: %w: %w", models.ErrDecryption, models.ErrInvalidArgument, err)
		}
		pt, err = agreement.Open(kp.PrivateKey, ct, ad)
		return err
	})
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(pt)
	return crypto.EncodeTransport(pt), nil
}

// ECDHKeyAgreement implements [models.WalletUtils].
func (s *walletService) ECDHKeyAgreement(ctx context.Context, encryptedWallet, id, pass, keyRef, pubKey string) (string, error) {
	peer, err := crypto.DecodeTransport(pubKey)
	if err != nil {
		return "", mapError(err)
	}

	var secret []byte
	err = s.read("ecdhKeyAgreement", encryptedWallet, id, pass, func(store *wallet.Store) error {
		kp, err := store.ResolveKey(keyRef)
		if err != nil {
			return err
		}
		agreement, err := s.suites.Agreement(kp.Type)
		if err != nil {
			return err
		}
		secret, err = agreement.SharedSecret(kp.PrivateKey, peer)
		return err
	})
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(secret)
	return crypto.EncodeTransport(secret), nil
}

// read opens the vault and runs fn over its records.
func (s *walletService) read(op, encryptedWallet, id, pass string, fn func(*wallet.Store) error) error {
	log := s.opLogger(op, id)

	store, err := s.open(encryptedWallet, id, pass)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open wallet")
		return mapError(err)
	}
	defer store.Wipe()

	if err := fn(store); err != nil {
		log.Debug().Err(err).Msg("operation failed")
		return mapError(err)
	}

	log.Debug().Msg("operation completed")
	return nil
}

// mutate opens the vault under (id, pass), applies fn and seals the result
// under (sealID, sealPass). Nothing is returned unless every step succeeds.
func (s *walletService) mutate(op, encryptedWallet, id, pass, sealID, sealPass string, fn func(*wallet.Store) error) (string, error) {
	log := s.opLogger(op, id)

	store, err := s.open(encryptedWallet, id, pass)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open wallet")
		return "", mapError(err)
	}
	defer store.Wipe()

	if err := fn(store); err != nil {
		log.Debug().Err(err).Msg("mutation rejected")
		return "", mapError(err)
	}

	state, err := s.seal(store, sealID, sealPass)
	if err != nil {
		log.Error().Err(err).Msg("cannot seal wallet")
		return "", mapError(err)
	}

	log.Debug().Int("entries", store.Len()).Msg("wallet updated")
	return state, nil
}

func (s *walletService) open(encryptedWallet, id, pass string) (*wallet.Store, error) {
	blob, err := crypto.DecodeTransport(encryptedWallet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDecryption, err)
	}

	plaintext, err := s.cipher.Open(id, pass, blob)
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(plaintext)

	return wallet.Unmarshal(plaintext)
}

func (s *walletService) seal(store *wallet.Store, id, pass string) (string, error) {
	plaintext, err := store.Marshal()
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	blob, err := s.cipher.Seal(id, pass, plaintext)
	if err != nil {
		return "", err
	}
	return crypto.EncodeTransport(blob), nil
}

func (s *walletService) opLogger(op, id string) *logger.Logger {
	l := s.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("op", op).Str("wallet_id", id)
	})
	return l
}

func marshalResult(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(b), nil
}

func decodeOptional(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return crypto.DecodeTransport(s)
}

func normalizeController(controller []string) []string {
	out := make([]string, 0, len(controller))
	for _, c := range controller {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
