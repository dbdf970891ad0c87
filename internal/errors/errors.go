// Package errors provides sentinel errors and error types for gamehall.
// It defines the caller-misuse conditions the game cores report and
// structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not in the current legal-move
	// set. The caller should re-query the legal moves rather than retry.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoMovesAvailable indicates move selection was requested for a side
	// with no legal moves. The caller must check for termination first.
	ErrNoMovesAvailable = errors.New("no moves available")

	// ErrGameOver indicates a move was submitted to a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game session ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidDifficulty indicates an unrecognised difficulty name.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrInvalidSquare indicates a malformed square or move coordinate.
	ErrInvalidSquare = errors.New("invalid square")
)

// MoveError wraps errors with move context: the game the move was
// submitted to, the move text, and whose turn it was. It implements
// the error interface and supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Session ID (empty for local games)
	Move   string // The move text that caused the error
	Turn   string // Side to move when the error occurred
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.Turn != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Turn))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
