package dialog

import "context"

//go:generate moq -out dialog_mock.go . Dialogs

// Dialogs is the prompt abstraction every interactive flow goes through.
// Implementations return once the user resolved the dialog; the gate's
// state machine never talks to a concrete UI. A false ok means the user
// cancelled, which is not an error.
type Dialogs interface {
	// Alert shows a notice and waits for acknowledgement
	Alert(ctx context.Context, title, message string) error

	// Confirm asks a yes/no question
	Confirm(ctx context.Context, title, message string) (bool, error)

	// Prompt asks for a line of input. ok is false on cancel.
	Prompt(ctx context.Context, title, message string) (value string, ok bool, err error)

	// PromptSecret asks for input that must not be echoed. ok is false on
	// cancel.
	PromptSecret(ctx context.Context, title, message string) (secret string, ok bool, err error)
}
