package chain

import (
	"errors"
	"fmt"
)

// ErrNoContextFactory indicates a custom context type was used without
// providing a factory via WithContextFactory.
var ErrNoContextFactory = errors.New("chain: custom context type requires a context factory")

// panicError wraps a recovered panic value with its stack trace.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Stack returns the stack trace captured at recovery time.
func (e *panicError) Stack() []byte {
	return e.stack
}
