// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-key-vault/models"
)

// StoreVersion is the plaintext format version written by [Store.Marshal].
const StoreVersion = 1

// EntryKind tags the variant held by an [Entry].
type EntryKind string

const (
	KindKeyPair EntryKind = "KeyPair"
	KindContent EntryKind = "Content"
)

// KeyPair is a key record. PrivateKey never leaves the package that opened
// the vault.
type KeyPair struct {
	ID         string         `json:"id"`
	Type       models.KeyType `json:"type"`
	Controller []string       `json:"controller"`
	PublicKey  []byte         `json:"publicKey"`
	PrivateKey []byte         `json:"privateKey"`
}

// PublicInfo projects the record to its public view. Controller is never nil.
func (kp *KeyPair) PublicInfo() models.PublicKeyInfo {
	controller := make([]string, len(kp.Controller))
	copy(controller, kp.Controller)

	return models.PublicKeyInfo{
		ID:           kp.ID,
		Type:         kp.Type,
		PublicKeyHex: fmt.Sprintf("%x", kp.PublicKey),
		Controller:   controller,
	}
}

// HasController reports whether c is one of the record's controllers.
func (kp *KeyPair) HasController(c string) bool {
	return slices.Contains(kp.Controller, c)
}

// Content is an opaque secret document.
type Content struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Entry is a tagged variant: exactly one of KeyPair or Content is set,
// matching Kind.
type Entry struct {
	Kind    EntryKind `json:"kind"`
	KeyPair *KeyPair  `json:"keyPair,omitempty"`
	Content *Content  `json:"content,omitempty"`
}

// Ref returns the entry's reference.
func (e Entry) Ref() string {
	switch e.Kind {
	case KindKeyPair:
		return e.KeyPair.ID
	case KindContent:
		return e.Content.ID
	}
	return ""
}

// Store is the plaintext content of a vault. Entries keep insertion order.
type Store struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// New returns an empty store.
func New() *Store {
	return &Store{Version: StoreVersion, Entries: []Entry{}}
}

// Unmarshal parses decrypted plaintext and checks the store invariants:
// known version, well-formed variants and unique references.
func Unmarshal(plaintext []byte) (*Store, error) {
	var s Store
	if err := json.Unmarshal(plaintext, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	if s.Version != StoreVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStoreVersion, s.Version)
	}
	if s.Entries == nil {
		s.Entries = []Entry{}
	}

	seen := make(map[string]struct{}, len(s.Entries))
	for i, e := range s.Entries {
		switch {
		case e.Kind == KindKeyPair && e.KeyPair != nil && e.Content == nil:
		case e.Kind == KindContent && e.Content != nil && e.KeyPair == nil:
		default:
			return nil, fmt.Errorf("%w: entry %d has kind %q with mismatched payload", ErrCorruptStore, i, e.Kind)
		}

		ref := e.Ref()
		if ref == "" {
			return nil, fmt.Errorf("%w: entry %d has no reference", ErrCorruptStore, i)
		}
		if _, dup := seen[ref]; dup {
			return nil, fmt.Errorf("%w: duplicate reference %q", ErrCorruptStore, ref)
		}
		seen[ref] = struct{}{}
	}

	return &s, nil
}

// Marshal serialises the store to plaintext.
func (s *Store) Marshal() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal record store: %w", err)
	}
	return b, nil
}

// Len returns the number of entries of any kind.
func (s *Store) Len() int {
	return len(s.Entries)
}

// Has reports whether ref is used by any entry.
func (s *Store) Has(ref string) bool {
	for _, e := range s.Entries {
		if e.Ref() == ref {
			return true
		}
	}
	return false
}

// AddKeyPair appends a key record.
func (s *Store) AddKeyPair(kp KeyPair) error {
	if err := s.checkRef(kp.ID); err != nil {
		return err
	}
	if kp.Controller == nil {
		kp.Controller = []string{}
	}
	s.Entries = append(s.Entries, Entry{Kind: KindKeyPair, KeyPair: &kp})
	return nil
}

// AddContent appends an opaque content record.
func (s *Store) AddContent(c Content) error {
	if err := s.checkRef(c.ID); err != nil {
		return err
	}
	s.Entries = append(s.Entries, Entry{Kind: KindContent, Content: &c})
	return nil
}

func (s *Store) checkRef(ref string) error {
	if ref == "" {
		return ErrEmptyRef
	}
	if s.Has(ref) {
		return fmt.Errorf("%w: %q", ErrDuplicateRef, ref)
	}
	return nil
}

// Keys returns the key records in insertion order. Content entries are
// skipped.
func (s *Store) Keys() []*KeyPair {
	keys := make([]*KeyPair, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.Kind == KindKeyPair {
			keys = append(keys, e.KeyPair)
		}
	}
	return keys
}

// KeyByRef returns the key record whose reference equals ref.
func (s *Store) KeyByRef(ref string) (*KeyPair, error) {
	for _, kp := range s.Keys() {
		if kp.ID == ref {
			return kp, nil
		}
	}
	return nil, fmt.Errorf("%w: reference %q", ErrKeyNotFound, ref)
}

// KeyByController returns the first key record, in insertion order, whose
// controller list contains controller. Controllers are not unique.
func (s *Store) KeyByController(controller string) (*KeyPair, error) {
	for _, kp := range s.Keys() {
		if kp.HasController(controller) {
			return kp, nil
		}
	}
	return nil, fmt.Errorf("%w: controller %q", ErrKeyNotFound, controller)
}

// ResolveKey looks ref up as a reference first and as a controller second.
func (s *Store) ResolveKey(ref string) (*KeyPair, error) {
	if kp, err := s.KeyByRef(ref); err == nil {
		return kp, nil
	}
	kp, err := s.KeyByController(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, ref)
	}
	return kp, nil
}

// SetController replaces the controller list of the key resolved from ref.
func (s *Store) SetController(ref string, controller []string) (*KeyPair, error) {
	kp, err := s.ResolveKey(ref)
	if err != nil {
		return nil, err
	}
	kp.Controller = append([]string{}, controller...)
	return kp, nil
}

// Wipe zeroes every private key and content payload held by the store.
func (s *Store) Wipe() {
	for _, e := range s.Entries {
		switch e.Kind {
		case KindKeyPair:
			memguard.WipeBytes(e.KeyPair.PrivateKey)
		case KindContent:
			memguard.WipeBytes(e.Content.Data)
		}
	}
}
