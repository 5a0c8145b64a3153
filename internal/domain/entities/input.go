package entities

import (
	"context"
	"fmt"
	"strings"
)

// InputValidationType is the severity of an InputValidation.
type InputValidationType int

const (
	InputValidationError InputValidationType = iota
	InputValidationWarning
	InputValidationInformation
)

// String returns the lower-case severity name.
func (t InputValidationType) String() string {
	switch t {
	case InputValidationError:
		return "error"
	case InputValidationWarning:
		return "warning"
	case InputValidationInformation:
		return "information"
	default:
		return fmt.Sprintf("InputValidationType(%d)", int(t))
	}
}

// MarshalText encodes the severity by name.
func (t InputValidationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// InputValidation is the message a validator reports for the current input.
type InputValidation struct {
	Message string              `json:"message"`
	Type    InputValidationType `json:"type"`
}

// InputValidator checks an input value with the cursor at cursorPosition.
// A nil validation means the value has no issue. Validators may block; run
// them on a separate goroutine when the caller must not wait.
type InputValidator func(ctx context.Context, value string, cursorPosition int) (*InputValidation, error)

// AcceptAllValidator reports no issue for any value.
func AcceptAllValidator(_ context.Context, _ string, _ int) (*InputValidation, error) {
	return nil, nil //nolint:nilnil // no issue is not an error
}

// NewSubjectLengthValidator warns when the first line of the input is longer
// than maxLength characters. A non-positive maxLength accepts everything.
func NewSubjectLengthValidator(maxLength int) InputValidator {
	if maxLength <= 0 {
		return AcceptAllValidator
	}

	return func(ctx context.Context, value string, _ int) (*InputValidation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subject, _, _ := strings.Cut(value, "\n")
		if length := len([]rune(subject)); length > maxLength {
			return &InputValidation{
				Message: fmt.Sprintf("%d characters over %d in the first line", length-maxLength, maxLength),
				Type:    InputValidationWarning,
			}, nil
		}
		return nil, nil //nolint:nilnil // no issue is not an error
	}
}

// Input is the text-entry model behind a repository's commit box. Every
// setter notifies its listeners, even when the new value equals the old one.
type Input struct {
	value         string
	placeholder   string
	visible       bool
	validateInput InputValidator

	onDidChange              *Emitter[string]
	onDidChangePlaceholder   *Emitter[string]
	onDidChangeVisibility    *Emitter[bool]
	onDidChangeValidateInput *Emitter[struct{}]
}

// NewInput creates an empty, visible input that accepts every value.
func NewInput() *Input {
	return &Input{
		visible:                  true,
		validateInput:            AcceptAllValidator,
		onDidChange:              NewEmitter[string](),
		onDidChangePlaceholder:   NewEmitter[string](),
		onDidChangeVisibility:    NewEmitter[bool](),
		onDidChangeValidateInput: NewEmitter[struct{}](),
	}
}

func (it *Input) Value() string { return it.value }

func (it *Input) SetValue(value string) {
	it.value = value
	it.onDidChange.Fire(value)
}

func (it *Input) OnDidChange() Event[string] { return it.onDidChange.Event() }

func (it *Input) Placeholder() string { return it.placeholder }

func (it *Input) SetPlaceholder(placeholder string) {
	it.placeholder = placeholder
	it.onDidChangePlaceholder.Fire(placeholder)
}

func (it *Input) OnDidChangePlaceholder() Event[string] { return it.onDidChangePlaceholder.Event() }

func (it *Input) Visible() bool { return it.visible }

func (it *Input) SetVisible(visible bool) {
	it.visible = visible
	it.onDidChangeVisibility.Fire(visible)
}

func (it *Input) OnDidChangeVisibility() Event[bool] { return it.onDidChangeVisibility.Event() }

func (it *Input) ValidateInput() InputValidator { return it.validateInput }

// SetValidateInput replaces the validator. A nil validator is stored as
// AcceptAllValidator so ValidateInput never returns nil.
func (it *Input) SetValidateInput(validator InputValidator) {
	if validator == nil {
		validator = AcceptAllValidator
	}
	it.validateInput = validator
	it.onDidChangeValidateInput.Fire(struct{}{})
}

func (it *Input) OnDidChangeValidateInput() Event[struct{}] {
	return it.onDidChangeValidateInput.Event()
}
