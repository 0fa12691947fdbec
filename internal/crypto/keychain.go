// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

const (
	blobMagic   = "KV"
	blobVersion = byte(1)

	saltSize  = 16
	checkSize = sha256.Size
	kekSize   = 32 // AES-256

	// magic(2) | version(1) | time(4) | memory(4) | threads(1) | salt | check
	headerSize = len(blobMagic) + 1 + 4 + 4 + 1 + saltSize + checkSize

	gcmNonceSize = 12
	gcmTagSize   = 16

	passwordCheckDomain = "go-key-vault/password-check"
)

// Upper bounds for Argon2id parameters. They apply when sealing and to the
// unauthenticated header of a blob being opened.
const (
	MaxArgonTime      = 16
	MaxArgonMemoryKiB = 1024 * 1024 // 1 GiB
	MaxArgonThreads   = 16
)

// KDFParams are the Argon2id tuning parameters used when sealing. They are
// written into every blob so that Open does not depend on configuration.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultKDFParams returns the OWASP (2024) Argon2id recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      1,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

// Validate reports [ErrInvalidKDFParams] for zero values or values above the
// Max* bounds.
func (p KDFParams) Validate() error {
	if p.Time == 0 || p.Time > MaxArgonTime ||
		p.MemoryKiB == 0 || p.MemoryKiB > MaxArgonMemoryKiB ||
		p.Threads == 0 || p.Threads > MaxArgonThreads {
		return fmt.Errorf("%w: t=%d m=%d p=%d", ErrInvalidKDFParams, p.Time, p.MemoryKiB, p.Threads)
	}
	return nil
}

// walletCipher is the private implementation of [WalletCipher].
type walletCipher struct {
	params KDFParams
}

// NewWalletCipher constructs a [WalletCipher] sealing with params. Zero
// fields are replaced by [DefaultKDFParams].
func NewWalletCipher(params KDFParams) WalletCipher {
	def := DefaultKDFParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = def.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	return &walletCipher{params: params}
}

// Seal implements [WalletCipher].
func (c *walletCipher) Seal(id, password string, plaintext []byte) ([]byte, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if err := c.params.Validate(); err != nil {
		return nil, err
	}

	salt, err := RandomBytes(saltSize)
	if err != nil {
		return nil, err
	}

	kek := deriveKEK(password, salt, c.params)
	defer memguard.WipeBytes(kek)

	header := make([]byte, 0, headerSize)
	header = append(header, blobMagic...)
	header = append(header, blobVersion)
	header = binary.BigEndian.AppendUint32(header, c.params.Time)
	header = binary.BigEndian.AppendUint32(header, c.params.MemoryKiB)
	header = append(header, c.params.Threads)
	header = append(header, salt...)
	header = append(header, passwordCheck(kek)...)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce, err := RandomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, headerSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, header...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, associatedData(header, id)), nil
}

// Open implements [WalletCipher].
func (c *walletCipher) Open(id, password string, blob []byte) ([]byte, error) {
	if len(blob) < headerSize+gcmNonceSize+gcmTagSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedBlob, len(blob))
	}
	if string(blob[:len(blobMagic)]) != blobMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedBlob)
	}

	off := len(blobMagic)
	if blob[off] != blobVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlobVersion, blob[off])
	}
	off++

	params := KDFParams{
		Time:      binary.BigEndian.Uint32(blob[off : off+4]),
		MemoryKiB: binary.BigEndian.Uint32(blob[off+4 : off+8]),
		Threads:   blob[off+8],
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}
	off += 9

	salt := blob[off : off+saltSize]
	check := blob[off+saltSize : headerSize]
	header := blob[:headerSize]

	kek := deriveKEK(password, salt, params)
	defer memguard.WipeBytes(kek)

	if subtle.ConstantTimeCompare(passwordCheck(kek), check) != 1 {
		return nil, ErrWrongPassword
	}

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	nonce := blob[headerSize : headerSize+gcmNonceSize]
	ciphertext := blob[headerSize+gcmNonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, associatedData(header, id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// deriveKEK derives the 256-bit key-encryption key with Argon2id.
func deriveKEK(password string, salt []byte, p KDFParams) []byte {
	return argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, kekSize)
}

// passwordCheck computes SHA-256(KEK ‖ domain). The domain string separates
// the stored check value from the KEK itself.
func passwordCheck(kek []byte) []byte {
	h := sha256.New()
	h.Write(kek)
	h.Write([]byte(passwordCheckDomain))
	return h.Sum(nil)
}

func associatedData(header []byte, id string) []byte {
	aad := make([]byte, 0, len(header)+len(id))
	aad = append(aad, header...)
	return append(aad, id...)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
