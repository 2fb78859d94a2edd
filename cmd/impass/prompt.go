package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/impass/pkg/impass"
	"golang.org/x/term"
)

var _ impass.PasswordSource = (*prompter)(nil)

// prompter asks the user for input.
// Hidden input is only possible when fd refers to a terminal, otherwise it falls back to reading a line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

func newPrompter() *prompter {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fd = -1
	}
	return &prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		fd:  fd,
	}
}

// Line prompts with message and returns the trimmed line that was entered.
func (p *prompter) Line(message string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Hidden prompts with message and reads input without echoing it when possible.
func (p *prompter) Hidden(message string) (string, error) {
	if p.fd < 0 {
		return p.Line(message)
	}
	_, _ = fmt.Fprintf(p.out, "%s: ", message)
	input, err := term.ReadPassword(p.fd)
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(input)), nil
}

// Password asks for the password of a protected image.
func (p *prompter) Password() (string, error) {
	return p.Hidden("Please, enter your password")
}

// Confirm asks a yes/no question, and reports whether the answer was affirmative according to accept.
func (p *prompter) Confirm(message string, accept func(string) bool) (bool, error) {
	answer, err := p.Line(message + " [y/N]")
	if err != nil {
		return false, err
	}
	return accept(answer), nil
}
