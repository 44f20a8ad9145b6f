package dialog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio resolves dialogs on the terminal. An empty submission counts as a
// cancel, mirroring a dismissed dialog.
type Stdio struct{}

var _ Dialogs = (*Stdio)(nil)

// NewStdio creates a terminal-backed dialog implementation
func NewStdio() *Stdio {
	return &Stdio{}
}

// Alert shows a notice and waits for acknowledgement
func (s *Stdio) Alert(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Printf("[%s] %s\n", title, message)
	return nil
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no.
func (s *Stdio) Confirm(ctx context.Context, title, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	input, err := readLine(fmt.Sprintf("[%s] %s [y/N]: ", title, message))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Prompt asks for a line of input
func (s *Stdio) Prompt(ctx context.Context, title, message string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	input, err := readLine(fmt.Sprintf("[%s] %s: ", title, message))
	if err != nil {
		return "", false, err
	}
	if input == "" {
		return "", false, nil
	}
	return input, true, nil
}

// PromptSecret asks for input without echoing it
func (s *Stdio) PromptSecret(ctx context.Context, title, message string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	fmt.Printf("[%s] %s: ", title, message)
	fd := int(os.Stdin.Fd())
	secretBytes, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", false, err
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", false, nil
	}
	return secret, true, nil
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
