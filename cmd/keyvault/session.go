package main

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/MKhiriev/go-key-vault/provider"
)

// session is a stored wallet opened for one command.
type session struct {
	record   models.EncryptedWallet
	provider *provider.SoftwareKeyProvider
}

// load reads the wallet stored under id.
func (c *cli) load(ctx context.Context, id string) (*session, error) {
	if err := c.validator.Validate(ctx, models.EncryptedWallet{ID: id}, validators.FieldID); err != nil {
		return nil, err
	}

	repo, err := c.repository(ctx)
	if err != nil {
		return nil, err
	}

	sctx, cancel := c.storeContext(ctx)
	defer cancel()

	record, err := repo.Get(sctx, id)
	if err != nil {
		return nil, fmt.Errorf("load wallet %q: %w", id, err)
	}

	return &session{
		record:   record,
		provider: provider.NewDefaultSoftwareKeyProvider(record.State, record.ID, c.providerOptions()...),
	}, nil
}

// save writes the provider's current state back under the version it was
// loaded with. A changed id renames the record.
func (c *cli) save(ctx context.Context, s *session) error {
	next := s.provider.Snapshot()
	next.Version = s.record.Version
	next.CreatedAt = s.record.CreatedAt

	if err := c.validator.Validate(ctx, next, validators.FieldID, validators.FieldState, validators.FieldVersion); err != nil {
		return err
	}

	repo, err := c.repository(ctx)
	if err != nil {
		return err
	}

	sctx, cancel := c.storeContext(ctx)
	defer cancel()

	var saved models.EncryptedWallet
	if next.ID != s.record.ID {
		saved, err = repo.Rename(sctx, s.record.ID, next)
	} else {
		saved, err = repo.Update(sctx, next)
	}
	if err != nil {
		return fmt.Errorf("save wallet %q: %w", next.ID, err)
	}

	c.log.Debug().Str("wallet_id", saved.ID).Int64("version", saved.Version).Msg("wallet saved")
	s.record = saved
	return nil
}

// password prompts for the password of wallet id.
func (c *cli) password(id string) (*memguard.LockedBuffer, error) {
	return c.passwords.ReadPassword(fmt.Sprintf("Password for %s: ", id))
}

// keyRef prompts for the password and pairs it with ref.
func (c *cli) keyRef(ctx context.Context, id, ref string) (models.KeyRefArgs, func(), error) {
	pass, err := c.password(id)
	if err != nil {
		return models.KeyRefArgs{}, nil, err
	}

	args := models.KeyRefArgs{EncryptionPass: pass.String(), KeyRef: ref}
	if err := c.validator.Validate(ctx, args); err != nil {
		pass.Destroy()
		return models.KeyRefArgs{}, nil, err
	}
	return args, pass.Destroy, nil
}
