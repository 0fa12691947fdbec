// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command keyvault manages password-protected key vaults from the shell.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-key-vault/internal/app"
	"github.com/MKhiriev/go-key-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()

	code := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	memguard.Purge()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	in := bufio.NewReader(stdin)
	c := newCLI(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		in,
		newTerminalPasswordReader(int(stdin.Fd()), in, stderr),
		openStorages,
	)

	return execute(ctx, c, args, stdout, stderr)
}

func execute(ctx context.Context, c *cli, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		return app.ExitOK
	}

	msg, code := app.Describe(err)
	c.logger().Debug().Err(err).Int("exit_code", code).Msg("command failed")

	if errors.Is(err, app.ErrInvalidSignature) {
		fmt.Fprintln(stderr, "Error:", msg)
	} else {
		fmt.Fprintf(stderr, "Error: %s\n  %v\n", msg, err)
	}
	return code
}
