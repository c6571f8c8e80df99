package errors

import (
	stderrors "errors"
	"fmt"
)

// Error types for different categories of failures
const (
	// Tokenizer errors
	ErrUnmatchedCharacter = "UNMATCHED_CHARACTER"
	ErrNoRuleMatched      = "NO_RULE_MATCHED"
	ErrMalformedLiteral   = "MALFORMED_LITERAL"

	// Input/output errors
	ErrInputRead        = "INPUT_READ_ERROR"
	ErrEncode           = "ENCODE_ERROR"
	ErrSchemaValidation = "SCHEMA_VALIDATION_ERROR"
)

// LexError represents a structured error with type and context
type LexError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *LexError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *LexError) Unwrap() error {
	return e.Cause
}

// New creates a new LexError
func New(errorType, message string) *LexError {
	return &LexError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates a new LexError wrapping an existing error
func Wrap(errorType, message string, cause error) *LexError {
	return &LexError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *LexError) WithContext(key string, value interface{}) *LexError {
	e.Context[key] = value
	return e
}

// GetType returns the error type
func (e *LexError) GetType() string {
	return e.Type
}

// GetContext returns context value by key
func (e *LexError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Offset returns the source offset recorded on the error, if any
func (e *LexError) Offset() (int, bool) {
	v, ok := e.Context["offset"]
	if !ok {
		return 0, false
	}
	offset, ok := v.(int)
	return offset, ok
}

// Helper functions for common error scenarios

// NewUnmatchedCharacterError reports a character that no rule can start with
func NewUnmatchedCharacterError(offset int, ch rune, line, column int) *LexError {
	return New(ErrUnmatchedCharacter, fmt.Sprintf("unexpected character %q at %d:%d", ch, line, column)).
		WithContext("offset", offset).
		WithContext("char", ch)
}

// NewNoRuleMatchedError reports a position where every candidate rule failed
func NewNoRuleMatchedError(offset int, ch rune, line, column int) *LexError {
	return New(ErrNoRuleMatched, fmt.Sprintf("no token matches input starting with %q at %d:%d", ch, line, column)).
		WithContext("offset", offset).
		WithContext("char", ch)
}

// NewMalformedLiteralError reports a numeric literal that could not be evaluated
func NewMalformedLiteralError(offset int, text string, cause error) *LexError {
	return Wrap(ErrMalformedLiteral, fmt.Sprintf("malformed numeric literal %q", text), cause).
		WithContext("offset", offset).
		WithContext("text", text)
}

// NewInputError creates an input-related error
func NewInputError(message string, cause error) *LexError {
	return Wrap(ErrInputRead, message, cause)
}

// NewEncodeError creates an encoding error for the named output format
func NewEncodeError(format string, cause error) *LexError {
	return Wrap(ErrEncode, fmt.Sprintf("failed to encode tokens as %s", format), cause).
		WithContext("format", format)
}

// NewSchemaError creates a token dump validation error
func NewSchemaError(message string, cause error) *LexError {
	return Wrap(ErrSchemaValidation, message, cause)
}

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errorType string) bool {
	var lexErr *LexError
	if stderrors.As(err, &lexErr) {
		return lexErr.Type == errorType
	}
	return false
}
