package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// PasswordReader obtains a password from the user. The caller destroys the
// returned buffer.
type PasswordReader interface {
	ReadPassword(prompt string) (*memguard.LockedBuffer, error)
}

// terminalPasswordReader prompts with echo disabled when fd is a terminal
// and otherwise reads one line from in, which allows piping passwords in
// scripts.
type terminalPasswordReader struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPasswordReader(fd int, in *bufio.Reader, out io.Writer) *terminalPasswordReader {
	return &terminalPasswordReader{fd: fd, in: in, out: out}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (*memguard.LockedBuffer, error) {
	if !term.IsTerminal(r.fd) {
		line, err := r.in.ReadBytes('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return lockPassword(bytes.TrimRight(line, "\r\n"))
	}

	fmt.Fprint(r.out, prompt)
	b, err := term.ReadPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return lockPassword(b)
}

// lockPassword moves b into locked memory and wipes b.
func lockPassword(b []byte) (*memguard.LockedBuffer, error) {
	if len(b) == 0 {
		return nil, errEmptyPassword
	}
	return memguard.NewBufferFromBytes(b), nil
}

// readNewPassword asks for a password twice.
func (c *cli) readNewPassword(prompt string) (*memguard.LockedBuffer, error) {
	first, err := c.passwords.ReadPassword(prompt)
	if err != nil {
		return nil, err
	}
	second, err := c.passwords.ReadPassword("Repeat password: ")
	if err != nil {
		first.Destroy()
		return nil, err
	}
	defer second.Destroy()

	if !first.EqualTo(second.Bytes()) {
		first.Destroy()
		return nil, errPasswordMismatch
	}
	return first, nil
}
