package args

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaViolation = errors.New("schema violation") // ErrSchemaViolation matches every [SchemaError].

	ErrMissingOptionValue      = errors.New("missing option value")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrTooManyArguments        = errors.New("too many arguments")
	ErrInvalidValue            = errors.New("invalid value")
	ErrNoSuchOption            = errors.New("no such option")
	ErrNoSuchArgument          = errors.New("no such argument")
)

// SchemaReason identifies why a [Format] or one of its elements could not be built.
type SchemaReason string

const (
	ReasonExistsAlready         SchemaReason = "exists-already"
	ReasonMultiValuedExists     SchemaReason = "multi-valued-exists"
	ReasonRequiredAfterOptional SchemaReason = "required-after-optional"
	ReasonInvalidName           SchemaReason = "invalid-name"
	ReasonInvalidFlags          SchemaReason = "invalid-flags"
	ReasonInvalidDefault        SchemaReason = "invalid-default"
)

// SchemaError is returned when an argument format is configured incorrectly.
// This is always a programming error, so it's reported as soon as the offending element is declared.
type SchemaError struct {
	Reason  SchemaReason
	Subject string // Subject is the name of the argument, option, or command that was rejected.
	Message string
}

func newSchemaError(reason SchemaReason, subject, format string, args ...any) *SchemaError {
	return &SchemaError{
		Reason:  reason,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Reason)
}

func (e *SchemaError) Is(err error) bool {
	if err == ErrSchemaViolation {
		return true
	}
	other, ok := err.(*SchemaError)
	if !ok {
		return false
	}
	return len(other.Reason) == 0 || other.Reason == e.Reason
}

// ParseError is returned when raw tokens could not be bound to a [Format].
// Kind is one of the binding sentinel errors, like [ErrInvalidValue], and may be checked with [errors.Is].
type ParseError struct {
	Kind    error
	Name    string // Name is the offending option, argument, or token.
	Message string
}

func newParseError(kind error, name, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Name:    name,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
