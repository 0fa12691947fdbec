package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/models"
)

func newKeysCmd(c *cli) *cobra.Command {
	var controller string

	cmd := &cobra.Command{
		Use:   "keys <wallet-id> [key-ref]",
		Short: "Show the public keys of a wallet",
		Long: "Without a key reference every key is listed in insertion order. " +
			"With --controller the first key listing that controller is shown.",
		Args: args(cobra.RangeArgs(1, 2)),
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

			switch {
			case len(a) == 2:
				info, err := s.provider.GetPubKey(ctx, models.KeyRefArgs{EncryptionPass: pass.String(), KeyRef: a[1]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)

			case controller != "":
				info, err := s.provider.GetPubKeyByController(ctx, pass.String(), controller)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)
			}

			keys, err := s.provider.GetPubKeys(ctx, pass.String())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), keys)
		},
	}

	cmd.Flags().StringVar(&controller, "controller", "", "Show the first key listing this controller")
	return cmd
}

func newNewKeyCmd(c *cli) *cobra.Command {
	var (
		keyType     string
		controllers []string
	)

	cmd := &cobra.Command{
		Use:   "new-key <wallet-id>",
		Short: "Generate a key pair inside a wallet",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			kt, err := parseKeyTypeArg(keyType)
			if err != nil {
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

			info, err := s.provider.NewKeyPair(ctx, pass.String(), kt, controllers...)
			if err != nil {
				return err
			}
			if err := c.save(ctx, s); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}

	cmd.Flags().StringVarP(&keyType, "type", "t", "", "Key type, e.g. Ed25519VerificationKey2018")
	cmd.Flags().StringArrayVar(&controllers, "controller", nil, "Controller label (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newImportCmd(c *cli) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import <wallet-id>",
		Short: "Add a JSON document or a raw key to a wallet",
		Long: "Reads one JSON document. An object carrying privateKeyHex is imported " +
			"as a key pair (type, optional id, publicKeyHex and controller); anything " +
			"else is stored as opaque content.",
		Args: args(cobra.ExactArgs(1)),
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

			doc, err := c.readInput(in)
			if err != nil {
				return err
			}

			if err := s.provider.AddContent(ctx, pass.String(), json.RawMessage(doc)); err != nil {
				return err
			}
			if err := c.save(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "content added to %s\n", s.record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Document file, - for stdin")
	return cmd
}

func newControllerCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "controller <wallet-id> <key-ref> [controller...]",
		Short: "Replace the controller list of a key",
		Args:  args(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			ref, release, err := c.keyRef(ctx, s.record.ID, a[1])
			if err != nil {
				return err
			}
			defer release()

			if err := s.provider.SetKeyController(ctx, ref, a[2:]...); err != nil {
				return err
			}
			if err := c.save(ctx, s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "controller of %s updated\n", a[1])
			return nil
		},
	}
}
