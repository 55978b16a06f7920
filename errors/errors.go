package errors

import (
	stderrs "errors"
	"fmt"
)

// Sentinels for errors.Is checks. Each typed error below matches its sentinel.
var (
	ErrParse             = stderrs.New("parse error")
	ErrMissingArg        = stderrs.New("missing required argument")
	ErrUnknownSubcommand = stderrs.New("unknown subcommand")
	ErrUnsupportedField  = stderrs.New("unsupported field type")
	ErrUnknownFlag       = stderrs.New("unknown flag")
	ErrInvalidValue      = stderrs.New("invalid value")
	ErrValidation        = stderrs.New("validation failed")
)

// ParseError represents a generic parsing error produced by the CLI parser.
// It is intended for user-facing messages.
type ParseError struct{ Msg string }

func (e ParseError) Error() string        { return e.Msg }
func (e ParseError) Is(target error) bool { return target == ErrParse }

// MissingArgError indicates a required positional or flag was not provided.
type MissingArgError struct{ Field string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Field)
}

func (e MissingArgError) Is(target error) bool { return target == ErrMissingArg }

// UnknownSubcommandError indicates the user invoked a subcommand that does not exist.
// Suggestion, if present, is a close match the user may have intended.
type UnknownSubcommandError struct{ Name, Suggestion string }

func (e UnknownSubcommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

func (e UnknownSubcommandError) Is(target error) bool { return target == ErrUnknownSubcommand }

// UnsupportedFieldTypeError indicates the CLI contains an unsupported field type.
type UnsupportedFieldTypeError struct{ Field, Type string }

func (e UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("unsupported type for field %s: %s", e.Field, e.Type)
}

func (e UnsupportedFieldTypeError) Is(target error) bool { return target == ErrUnsupportedField }

// UnknownFlagError indicates a flag token that no option declares.
type UnknownFlagError struct{ Flag string }

func (e UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %s", e.Flag)
}

func (e UnknownFlagError) Is(target error) bool { return target == ErrUnknownFlag }

// InvalidValueError indicates a token could not be converted to the field's type.
type InvalidValueError struct {
	Field string
	Value string
	Type  string
	Err   error
}

func (e InvalidValueError) Error() string {
	msg := fmt.Sprintf("invalid value %q for %s (%s)", e.Value, e.Field, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e InvalidValueError) Unwrap() error        { return e.Err }
func (e InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// ValidationError indicates a bound value failed its `validate` tag.
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %v", e.Field, e.Err)
}

func (e ValidationError) Unwrap() error        { return e.Err }
func (e ValidationError) Is(target error) bool { return target == ErrValidation }

// Helper constructors
func NewParseError(msg string) error   { return ParseError{Msg: msg} }
func NewMissingArg(field string) error { return MissingArgError{Field: field} }
func NewUnknownSubcommand(name, suggestion string) error {
	return UnknownSubcommandError{Name: name, Suggestion: suggestion}
}
func NewUnsupportedField(field, typ string) error {
	return UnsupportedFieldTypeError{Field: field, Type: typ}
}
func NewUnknownFlag(flag string) error { return UnknownFlagError{Flag: flag} }
func NewInvalidValue(field, value, typ string, err error) error {
	return InvalidValueError{Field: field, Value: value, Type: typ, Err: err}
}
func NewValidation(field string, err error) error {
	return ValidationError{Field: field, Err: err}
}
