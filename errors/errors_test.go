package errors

import (
	stderrs "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/chriso345/gore/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, NewParseError("bad input").Error(), "bad input")
	assert.Equal(t, NewMissingArg("File").Error(), "missing required argument: File")
	assert.Equal(t, NewUnknownSubcommand("srve", "serve").Error(), `unknown subcommand: srve (did you mean "serve"?)`)
	assert.Equal(t, NewUnknownSubcommand("zzz", "").Error(), "unknown subcommand: zzz")
	assert.Equal(t, NewUnsupportedField("Opt", "chan").Error(), "unsupported type for field Opt: chan")
	assert.Equal(t, NewUnknownFlag("--nope").Error(), "unknown flag: --nope")
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{NewParseError("x"), ErrParse},
		{NewMissingArg("x"), ErrMissingArg},
		{NewUnknownSubcommand("x", ""), ErrUnknownSubcommand},
		{NewUnsupportedField("x", "y"), ErrUnsupportedField},
		{NewUnknownFlag("x"), ErrUnknownFlag},
		{NewInvalidValue("x", "y", "int", nil), ErrInvalidValue},
		{NewValidation("x", stderrs.New("y")), ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("parsing: %w", tt.err)
			assert.True(t, stderrs.Is(wrapped, tt.sentinel))
			assert.Equal(t, stderrs.Is(wrapped, ErrParse), tt.sentinel == ErrParse)
		})
	}
}

func TestInvalidValueUnwraps(t *testing.T) {
	_, cause := strconv.Atoi("eighty")
	err := NewInvalidValue("Port", "eighty", "int", cause)

	assert.StringContains(t, err.Error(), `invalid value "eighty" for Port (int)`)
	var numErr *strconv.NumError
	assert.True(t, stderrs.As(err, &numErr))
}

func TestValidationUnwraps(t *testing.T) {
	cause := stderrs.New("must be at least 1")
	err := NewValidation("Port", cause)

	assert.Equal(t, err.Error(), "validation failed for Port: must be at least 1")
	assert.True(t, stderrs.Is(err, cause))
}
