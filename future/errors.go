package future

import "fmt"

// Error domains. These are kinds, not types (spec section 7): every error
// surfaced by this package is an *ErrorInfo distinguished by Domain.
const (
	DomainCancelled = "cancelled"
	DomainTimeout   = "timeout"
	DomainUser      = "user"
	DomainResponder = "responder"
)

// ErrorInfo is the opaque structured error carried by a Failed Future: a
// domain string, an integer code, and a key/value payload.
type ErrorInfo struct {
	Domain  string
	Code    int
	Payload map[string]string
}

func (e *ErrorInfo) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("%s(%d)", e.Domain, e.Code)
	}
	return fmt.Sprintf("%s(%d): %v", e.Domain, e.Code, e.Payload)
}

// CancelledError is returned by Await when the Future resolved Cancelled.
// Cancellation itself is never carried as a Failed Future's error; it is
// only synthesized here for Await's synchronous (value, error) surface.
var CancelledError = &ErrorInfo{Domain: DomainCancelled}

// NewTimeoutError builds the error Timeout/Await fail with on deadline.
func NewTimeoutError(description string) *ErrorInfo {
	return &ErrorInfo{Domain: DomainTimeout, Payload: map[string]string{"description": description}}
}
