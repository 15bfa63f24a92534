package argsbar

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeRejectedCharacter indicates an encoding refused a character
	// because the buffer would no longer be a valid prefix of its type
	ErrTypeRejectedCharacter ErrorType = iota
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeRejectedCharacter:
		return "Rejected Character"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ErrUnknownEncoding is returned (wrapped) by ParseEncoding for names that
// match no encoding.
var ErrUnknownEncoding = errors.New("unknown encoding")

// RejectedCharacterError is produced by Encoding.Accepts when a character
// cannot be appended to a buffer.
type RejectedCharacterError struct {
	Type     ErrorType // Always ErrTypeRejectedCharacter
	Encoding Encoding  // Encoding that refused the character
	Buffer   string    // Buffer contents before the attempted push
	Char     rune      // Offending character
	Reason   string    // Human-readable expected-vs-received message
}

// Error implements the error interface
func (e *RejectedCharacterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

func newRejection(enc Encoding, buffer string, ch rune, reason string) *RejectedCharacterError {
	return &RejectedCharacterError{
		Type:     ErrTypeRejectedCharacter,
		Encoding: enc,
		Buffer:   buffer,
		Char:     ch,
		Reason:   reason,
	}
}

// IsRejectedCharacter checks if an error is a rejected character error
func IsRejectedCharacter(err error) bool {
	var rejErr *RejectedCharacterError
	return errors.As(err, &rejErr)
}
