// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-key-vault/internal/wallet"
	"github.com/MKhiriev/go-key-vault/models"
)

// keyImport is the document shape that addContent treats as raw key
// material rather than opaque content.
type keyImport struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	PublicKeyHex  string         `json:"publicKeyHex"`
	PrivateKeyHex *string        `json:"privateKeyHex"`
	Controller    controllerList `json:"controller"`
}

// controllerList accepts a single controller string or an array of them.
type controllerList []string

func isJSONNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func (c *controllerList) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		*c = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*c = controllerList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("controller must be a string or an array of strings")
	}
	*c = many
	return nil
}

// classifyContent turns an addContent document into the entry it will be
// stored as. Documents carrying privateKeyHex must be valid key imports.
func (s *walletService) classifyContent(doc []byte) (wallet.Entry, error) {
	if !json.Valid(doc) {
		return wallet.Entry{}, fmt.Errorf("%w: not a JSON document", ErrInvalidContent)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		// arrays, strings and numbers are opaque content
		return s.opaqueContent(doc, ""), nil
	}

	if _, ok := fields["privateKeyHex"]; ok {
		kp, err := s.importKey(doc)
		if err != nil {
			return wallet.Entry{}, err
		}
		return wallet.Entry{Kind: wallet.KindKeyPair, KeyPair: kp}, nil
	}

	var id string
	if raw, ok := fields["id"]; ok && !isJSONNull(raw) {
		if err := json.Unmarshal(raw, &id); err != nil {
			return wallet.Entry{}, fmt.Errorf("%w: id must be a string", ErrInvalidContent)
		}
	}
	return s.opaqueContent(doc, id), nil
}

func (s *walletService) opaqueContent(doc []byte, id string) wallet.Entry {
	if id == "" {
		id = s.ids.Generate()
	}
	data := make(json.RawMessage, len(doc))
	copy(data, doc)
	return wallet.Entry{Kind: wallet.KindContent, Content: &wallet.Content{ID: id, Data: data}}
}

func (s *walletService) importKey(doc []byte) (*wallet.KeyPair, error) {
	var in keyImport
	if err := json.Unmarshal(doc, &in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if in.PrivateKeyHex == nil {
		return nil, fmt.Errorf("%w: privateKeyHex must be a string", ErrInvalidContent)
	}

	kt, err := models.ParseKeyType(in.Type)
	if err != nil {
		return nil, err
	}
	suite, err := s.suites.Lookup(kt)
	if err != nil {
		return nil, err
	}

	priv, err := hex.DecodeString(*in.PrivateKeyHex)
	if err != nil || len(priv) == 0 {
		return nil, fmt.Errorf("%w: privateKeyHex is not hex encoded", ErrInvalidContent)
	}

	pub, err := suite.PublicKey(priv)
	if err != nil {
		memguard.WipeBytes(priv)
		return nil, err
	}

	if in.PublicKeyHex != "" {
		supplied, err := hex.DecodeString(in.PublicKeyHex)
		if err != nil {
			memguard.WipeBytes(priv)
			return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKeyHex, err)
		}
		if subtle.ConstantTimeCompare(supplied, pub) != 1 {
			memguard.WipeBytes(priv)
			return nil, ErrPublicKeyMismatch
		}
	}

	id := in.ID
	if id == "" {
		id = s.ids.Generate()
	}

	return &wallet.KeyPair{
		ID:         id,
		Type:       kt,
		Controller: normalizeController(in.Controller),
		PublicKey:  pub,
		PrivateKey: priv,
	}, nil
}
