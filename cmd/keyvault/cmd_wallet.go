package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/MKhiriev/go-key-vault/provider"
)

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init <wallet-id>",
		Short: "Create an empty wallet",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()
			id := a[0]

			if err := c.validator.Validate(ctx, models.EncryptedWallet{ID: id}, validators.FieldID); err != nil {
				return err
			}

			pass, err := c.readNewPassword(fmt.Sprintf("New password for %s: ", id))
			if err != nil {
				return err
			}
			defer pass.Destroy()

			p, err := provider.NewDefaultEmptyWallet(ctx, id, pass.String(), c.providerOptions()...)
			if err != nil {
				return err
			}

			repo, err := c.repository(ctx)
			if err != nil {
				return err
			}
			sctx, cancel := c.storeContext(ctx)
			defer cancel()

			saved, err := repo.Save(sctx, p.Snapshot())
			if err != nil {
				return fmt.Errorf("save wallet %q: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wallet %s created\n", saved.ID)
			return nil
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored wallet ids",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := c.repository(cmd.Context())
			if err != nil {
				return err
			}
			sctx, cancel := c.storeContext(cmd.Context())
			defer cancel()

			ids, err := repo.List(sctx)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wallet-id>",
		Short: "Delete a wallet after checking its password",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			pass, err := c.password(s.record.ID)
			if err != nil {
				return err
			}
			defer pass.Destroy()

			// opening the vault proves knowledge of the password
			if _, err := s.provider.GetPubKeys(ctx, pass.String()); err != nil {
				return err
			}

			sctx, cancel := c.storeContext(ctx)
			defer cancel()
			if err := c.repo.Delete(sctx, s.record.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wallet %s deleted\n", s.record.ID)
			return nil
		},
	}
}

func newChangePassCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "change-pass <wallet-id>",
		Short: "Re-encrypt a wallet under a new password",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			oldPass, err := c.passwords.ReadPassword(fmt.Sprintf("Current password for %s: ", s.record.ID))
			if err != nil {
				return err
			}
			defer oldPass.Destroy()

			newPass, err := c.readNewPassword("New password: ")
			if err != nil {
				return err
			}
			defer newPass.Destroy()

			if err := s.provider.ChangePass(ctx, oldPass.String(), newPass.String()); err != nil {
				return err
			}
			if err := c.save(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "password of %s changed\n", s.record.ID)
			return nil
		},
	}
}

func newChangeIDCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "change-id <wallet-id> <new-wallet-id>",
		Short: "Re-bind a wallet to a new id",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()
			newID := a[1]

			if err := c.validator.Validate(ctx, models.EncryptedWallet{ID: newID}, validators.FieldID); err != nil {
				return err
			}

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			pass, err := c.password(s.record.ID)
			if err != nil {
				return err
			}
			defer pass.Destroy()

			oldID := s.record.ID
			if err := s.provider.ChangeID(ctx, pass.String(), newID); err != nil {
				return err
			}
			if err := c.save(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wallet %s is now %s\n", oldID, s.record.ID)
			return nil
		},
	}
}
