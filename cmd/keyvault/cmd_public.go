package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/provider"
)

func newVerifyCmd(c *cli) *cobra.Command {
	var keyType, publicKey, signature, in string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			kt, err := parseKeyTypeArg(keyType)
			if err != nil {
				return err
			}
			if !kt.IsSigning() {
				return fmt.Errorf("%w: --type %s: %w", errUsage, kt, errNotSigningType)
			}
			pub, err := decodeHexArg("public-key", publicKey)
			if err != nil {
				return err
			}
			sig, err := decodeTransportArg("signature", signature)
			if err != nil {
				return err
			}
			data, err := c.readInput(in)
			if err != nil {
				return err
			}

			cp := provider.NewDefaultCryptoProvider(c.providerOptions()...)
			if !cp.Verify(cmd.Context(), pub, kt, data, sig) {
				return app.ErrInvalidSignature
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyType, "type", "t", "", "Key type of the public key")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Public key, hex")
	cmd.Flags().StringVar(&signature, "signature", "", "Signature, base64url")
	cmd.Flags().StringVar(&in, "in", "-", "Signed data file, - for stdin")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

func newEncryptCmd(c *cli) *cobra.Command {
	var keyType, publicKey, aad, in string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt data to a key-agreement public key",
		Long:  "Anonymous encryption: no sender key is involved. Prints base64url ciphertext.",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			kt, err := parseKeyTypeArg(keyType)
			if err != nil {
				return err
			}
			if !kt.IsKeyAgreement() {
				return fmt.Errorf("%w: --type %s: %w", errUsage, kt, errNotAgreementType)
			}
			pub, err := decodeHexArg("public-key", publicKey)
			if err != nil {
				return err
			}
			ad, err := decodeTransportArg("aad", aad)
			if err != nil {
				return err
			}
			data, err := c.readInput(in)
			if err != nil {
				return err
			}

			cp := provider.NewDefaultCryptoProvider(c.providerOptions()...)
			ct, err := cp.Encrypt(cmd.Context(), pub, kt, data, ad)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeTransport(ct))
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyType, "type", "t", "X25519KeyAgreementKey2019", "Key type of the public key")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Recipient public key, hex")
	cmd.Flags().StringVar(&aad, "aad", "", "Additional authenticated data, base64url")
	cmd.Flags().StringVar(&in, "in", "-", "Plaintext file, - for stdin")
	_ = cmd.MarkFlagRequired("public-key")
	return cmd
}

func newRandomCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "random <n>",
		Short: "Print n cryptographically secure random bytes as base64url",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			n, err := strconv.Atoi(a[0])
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, errInvalidLength)
			}

			cp := provider.NewDefaultCryptoProvider(c.providerOptions()...)
			b, err := cp.GetRandom(cmd.Context(), n)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeTransport(b))
			return nil
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  args(cobra.NoArgs),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.build.String())
		},
	}
}
