package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// FieldErrors maps a JSON field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	return ErrInvalidPayload.Error() + ": " + e.Message()
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidPayload
}

// Message joins all messages into one text, fields in alphabetical order.
func (e FieldErrors) Message() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(e))
	for _, f := range fields {
		messages = append(messages, e[f]...)
	}

	return strings.Join(messages, " ")
}
