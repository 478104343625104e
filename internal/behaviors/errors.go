package behaviors

import "fmt"

// BindingError reports that a configured event name does not resolve to
// an event declared by the host control. It is raised on the
// attach/detach/rename path and signals a wiring mistake, not a runtime
// condition to retry.
type BindingError struct {
	EventName string
	Host      string
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("cannot bind %q: no such event on %s", e.EventName, e.Host)
}

func newBindingError(eventName string, host any) *BindingError {
	return &BindingError{
		EventName: eventName,
		Host:      fmt.Sprintf("%T", host),
	}
}
