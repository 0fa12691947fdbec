package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/crypto"
)

func newSignCmd(c *cli) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "sign <wallet-id> <key-ref>",
		Short: "Sign data with a wallet key",
		Long: "Signs the raw bytes read from --in and prints the signature as " +
			"base64url. key-ref is a key id or a controller label.",
		Args: args(cobra.ExactArgs(2)),
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

			data, err := c.readInput(in)
			if err != nil {
				return err
			}

			sig, err := s.provider.Sign(ctx, ref, data)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeTransport(sig))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Data file, - for stdin")
	return cmd
}

func newDecryptCmd(c *cli) *cobra.Command {
	var in, aad string

	cmd := &cobra.Command{
		Use:   "decrypt <wallet-id> <key-ref>",
		Short: "Decrypt a base64url ciphertext addressed to a wallet key",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			ad, err := decodeTransportArg("aad", aad)
			if err != nil {
				return err
			}

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			ref, release, err := c.keyRef(ctx, s.record.ID, a[1])
			if err != nil {
				return err
			}
			defer release()

			raw, err := c.readInput(in)
			if err != nil {
				return err
			}
			ct, err := decodeTransportArg("in", string(bytes.TrimSpace(raw)))
			if err != nil {
				return err
			}

			pt, err := s.provider.Decrypt(ctx, ref, ct, ad)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(pt)
			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "Ciphertext file, - for stdin")
	cmd.Flags().StringVar(&aad, "aad", "", "Additional authenticated data, base64url")
	return cmd
}

func newECDHCmd(c *cli) *cobra.Command {
	var peer string

	cmd := &cobra.Command{
		Use:   "ecdh <wallet-id> <key-ref>",
		Short: "Compute the raw X25519 shared secret with a peer public key",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			ctx := cmd.Context()

			peerKey, err := decodeHexArg("peer", peer)
			if err != nil {
				return err
			}

			s, err := c.load(ctx, a[0])
			if err != nil {
				return err
			}

			ref, release, err := c.keyRef(ctx, s.record.ID, a[1])
			if err != nil {
				return err
			}
			defer release()

			secret, err := s.provider.ECDHKeyAgreement(ctx, ref, peerKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeTransport(secret))
			return nil
		},
	}

	cmd.Flags().StringVar(&peer, "peer", "", "Peer public key, hex")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}
