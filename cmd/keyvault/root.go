package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/models"
)

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "keyvault",
		Short:         "Password-protected multi-key crypto vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newInitCmd(c),
		newListCmd(c),
		newDeleteCmd(c),
		newKeysCmd(c),
		newNewKeyCmd(c),
		newImportCmd(c),
		newControllerCmd(c),
		newSignCmd(c),
		newVerifyCmd(c),
		newEncryptCmd(c),
		newDecryptCmd(c),
		newECDHCmd(c),
		newChangePassCmd(c),
		newChangeIDCmd(c),
		newRandomCmd(c),
		newVersionCmd(c),
	)
	return root
}

// args wraps a cobra positional argument check so violations share the
// usage exit code.
func args(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := check(cmd, a); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func decodeHexArg(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil || len(b) == 0 {
		return nil, fmt.Errorf("%w: --%s must be a non-empty hex string", errUsage, name)
	}
	return b, nil
}

// decodeTransportArg decodes an optional base64url argument.
func decodeTransportArg(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	b, err := crypto.DecodeTransport(value)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %w", errUsage, name, err)
	}
	return b, nil
}

func parseKeyTypeArg(value string) (models.KeyType, error) {
	kt, err := models.ParseKeyType(value)
	if err != nil {
		return "", fmt.Errorf("--type: %w", err)
	}
	return kt, nil
}
