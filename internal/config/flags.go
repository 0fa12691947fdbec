package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagConfig       = "config"
	flagArgonTime    = "argon-time"
	flagArgonMemory  = "argon-memory"
	flagArgonThreads = "argon-threads"
	flagMaxRandom    = "max-random-bytes"
	flagDriver       = "storage-driver"
	flagDSN          = "dsn"
	flagDBTimeout    = "db-timeout"
	flagWalletDir    = "wallet-dir"
	flagLogLevel     = "log-level"
)

// RegisterFlags adds the configuration flags to fs. Defaults are left empty
// so that only flags set on the command line override other sources.
//
// Flags:
//
//	-c/--config       json file path with configs
//	--argon-time      Argon2id iterations
//	--argon-memory    Argon2id memory in KiB
//	--argon-threads   Argon2id parallelism
//	--max-random-bytes  limit of a single random request
//	--storage-driver  sqlite, postgres or file
//	-d/--dsn          database DSN
//	--db-timeout      repository call timeout (e.g., "5s")
//	--wallet-dir      directory of the file driver
//	--log-level       debug, info, warn or error
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.Uint32(flagArgonTime, 0, "Argon2id iterations for newly sealed vaults")
	fs.Uint32(flagArgonMemory, 0, "Argon2id memory in KiB for newly sealed vaults")
	fs.Uint8(flagArgonThreads, 0, "Argon2id parallelism for newly sealed vaults")
	fs.Int(flagMaxRandom, 0, "Largest accepted random-bytes request")
	fs.String(flagDriver, "", "Storage driver: sqlite, postgres or file")
	fs.StringP(flagDSN, "d", "", "Database DSN")
	fs.Duration(flagDBTimeout, 0, "Repository call timeout (e.g., 5s)")
	fs.String(flagWalletDir, "", "Wallet directory for the file driver")
	fs.String(flagLogLevel, "", "Log level: debug, info, warn or error")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Flags not registered on fs are left empty.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	str := func(name string, dst *string) {
		if err == nil && fs.Lookup(name) != nil {
			*dst, err = fs.GetString(name)
		}
	}
	u32 := func(name string, dst *uint32) {
		if err == nil && fs.Lookup(name) != nil {
			*dst, err = fs.GetUint32(name)
		}
	}

	str(flagConfig, &cfg.JSONFilePath)
	u32(flagArgonTime, &cfg.Crypto.ArgonTime)
	u32(flagArgonMemory, &cfg.Crypto.ArgonMemoryKiB)
	if err == nil && fs.Lookup(flagArgonThreads) != nil {
		cfg.Crypto.ArgonThreads, err = fs.GetUint8(flagArgonThreads)
	}
	if err == nil && fs.Lookup(flagMaxRandom) != nil {
		cfg.Crypto.MaxRandomBytes, err = fs.GetInt(flagMaxRandom)
	}
	str(flagDriver, &cfg.Storage.Driver)
	str(flagDSN, &cfg.Storage.DB.DSN)
	if err == nil && fs.Lookup(flagDBTimeout) != nil {
		cfg.Storage.DB.Timeout, err = fs.GetDuration(flagDBTimeout)
	}
	str(flagWalletDir, &cfg.Storage.Files.Dir)
	str(flagLogLevel, &cfg.Log.Level)

	if err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}
