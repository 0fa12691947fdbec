// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/cloudflare/circl/hpke"
	"golang.org/x/crypto/curve25519"

	"github.com/MKhiriev/go-key-vault/models"
)

// anonCryptInfo is the HPKE info string binding ciphertexts to this format.
const anonCryptInfo = "go-key-vault/anoncrypt"

// x25519Suite performs raw X25519 and anonymous encryption with HPKE base
// mode: DHKEM(X25519, HKDF-SHA256), HKDF-SHA256, ChaCha20-Poly1305.
// Ciphertexts are enc(32) ‖ sealed.
type x25519Suite struct {
	hpke hpke.Suite
}

func newX25519Suite() *x25519Suite {
	return &x25519Suite{
		hpke: hpke.NewSuite(hpke.KEM_X25519_HKDF_SHA256, hpke.KDF_HKDF_SHA256, hpke.AEAD_ChaCha20Poly1305),
	}
}

func (s *x25519Suite) Type() models.KeyType {
	return models.X25519KeyAgreementKey2019
}

func (s *x25519Suite) Generate() ([]byte, []byte, error) {
	priv, err := RandomBytes(curve25519.ScalarSize)
	if err != nil {
		return nil, nil, err
	}
	clamp(priv)

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("derive x25519 public key: %w", err)
	}
	return pub, priv, nil
}

func (s *x25519Suite) PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != curve25519.ScalarSize {
		return nil, fmt.Errorf("%w: x25519 private key must be %d bytes", ErrInvalidKey, curve25519.ScalarSize)
	}
	pub, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pub, nil
}

func (s *x25519Suite) SharedSecret(privateKey, peerPublicKey []byte) ([]byte, error) {
	if len(privateKey) != curve25519.ScalarSize {
		return nil, fmt.Errorf("%w: x25519 private key must be %d bytes", ErrInvalidKey, curve25519.ScalarSize)
	}
	if len(peerPublicKey) != curve25519.PointSize {
		return nil, fmt.Errorf("%w: x25519 public key must be %d bytes", ErrInvalidKey, curve25519.PointSize)
	}
	// X25519 rejects low-order peer points (all-zero output).
	secret, err := curve25519.X25519(privateKey, peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return secret, nil
}

func (s *x25519Suite) Seal(publicKey, plaintext, aad []byte) ([]byte, error) {
	scheme := hpke.KEM_X25519_HKDF_SHA256.Scheme()
	pub, err := scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	sender, err := s.hpke.NewSender(pub, []byte(anonCryptInfo))
	if err != nil {
		return nil, fmt.Errorf("hpke sender: %w", err)
	}
	enc, sealer, err := sender.Setup(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("hpke setup: %w", err)
	}
	ct, err := sealer.Seal(plaintext, aad)
	if err != nil {
		return nil, fmt.Errorf("hpke seal: %w", err)
	}

	out := make([]byte, 0, len(enc)+len(ct))
	out = append(out, enc...)
	return append(out, ct...), nil
}

func (s *x25519Suite) Open(privateKey, ciphertext, aad []byte) ([]byte, error) {
	scheme := hpke.KEM_X25519_HKDF_SHA256.Scheme()
	encSize := scheme.CiphertextSize()
	if len(ciphertext) < encSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedCiphertext, len(ciphertext))
	}

	priv, err := scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	receiver, err := s.hpke.NewReceiver(priv, []byte(anonCryptInfo))
	if err != nil {
		return nil, fmt.Errorf("hpke receiver: %w", err)
	}
	opener, err := receiver.Setup(ciphertext[:encSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	pt, err := opener.Open(ciphertext[encSize:], aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return pt, nil
}

// clamp applies the RFC 7748 scalar clamping.
func clamp(k []byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
