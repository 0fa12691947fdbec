package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/MKhiriev/go-key-vault/provider"
)

// RepositoryOpener connects to the configured wallet storage. The returned
// function releases it.
type RepositoryOpener func(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.WalletRepository, func() error, error)

func openStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.WalletRepository, func() error, error) {
	s, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return s.WalletRepository, s.Close, nil
}

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	build     models.AppBuildInfo
	stdin     *bufio.Reader
	passwords PasswordReader
	openRepo  RepositoryOpener

	cfg       *config.StructuredConfig
	log       *logger.Logger
	validator validators.Validator

	repo      store.WalletRepository
	closeRepo func() error
}

func newCLI(build models.AppBuildInfo, stdin *bufio.Reader, passwords PasswordReader, openRepo RepositoryOpener) *cli {
	return &cli{
		build:     build,
		stdin:     stdin,
		passwords: passwords,
		openRepo:  openRepo,
		validator: validators.NewWalletValidator(),
	}
}

// setup loads the configuration from the parsed flags of cmd.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	c.cfg = cfg
	c.log = logger.NewCLILogger(cmd.ErrOrStderr(), "keyvault", cfg.Log.Level)
	cmd.SetContext(c.log.WithContext(cmd.Context()))
	c.log.Debug().
		Str("command", cmd.Name()).
		Str("storage_driver", cfg.Storage.Driver).
		Msg("configuration loaded")
	return nil
}

func (c *cli) logger() *logger.Logger {
	if c.log == nil {
		return logger.Nop()
	}
	return c.log
}

// repository opens the storage on first use.
func (c *cli) repository(ctx context.Context) (store.WalletRepository, error) {
	if c.repo != nil {
		return c.repo, nil
	}

	repo, closeFn, err := c.openRepo(ctx, c.cfg.Storage, c.log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	c.repo, c.closeRepo = repo, closeFn
	return repo, nil
}

func (c *cli) close() error {
	if c.closeRepo == nil {
		return nil
	}
	err := c.closeRepo()
	c.repo, c.closeRepo = nil, nil
	return err
}

// storeContext bounds a single repository call.
func (c *cli) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Storage.DB.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Storage.DB.Timeout)
}

func (c *cli) providerOptions() []provider.Option {
	return []provider.Option{
		provider.WithZerolog(c.logger().Logger),
		provider.WithKDF(c.cfg.Crypto.ArgonTime, c.cfg.Crypto.ArgonMemoryKiB, c.cfg.Crypto.ArgonThreads),
		provider.WithMaxRandom(c.cfg.Crypto.MaxRandomBytes),
	}
}

// readInput returns the content of path, or of stdin for "" and "-".
func (c *cli) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

