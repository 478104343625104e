// Package binding provides the change-notification and command primitives
// that view models are built from: an embeddable observable base, an
// invocable command with an optional execution guard, and a one-way value
// converter used when bridging event payloads to command parameters.
package binding

// PropertyChangedHandler receives the name of the property that changed.
type PropertyChangedHandler func(property string)

// ObservableObject is an embeddable change-notification base for stateful
// objects. Listeners are notified synchronously, in registration order,
// after a property's value has been assigned.
type ObservableObject struct {
	handlers []PropertyChangedHandler
}

// OnChange registers fn to run after every successful property change.
func (o *ObservableObject) OnChange(fn PropertyChangedHandler) {
	if fn == nil {
		return
	}
	o.handlers = append(o.handlers, fn)
}

// RaisePropertyChanged notifies all listeners that property changed.
// Delivery completes before the call returns.
func (o *ObservableObject) RaisePropertyChanged(property string) {
	for _, fn := range o.handlers {
		fn(property)
	}
}

// SetProperty assigns value to the field backing property and notifies
// listeners. When value equals the current field under value equality the
// call is a no-op and returns false. Otherwise the field is assigned, any
// onChanged callbacks run, then exactly one change notification fires for
// property, and SetProperty returns true.
func SetProperty[T comparable](o *ObservableObject, field *T, value T, property string, onChanged ...func()) bool {
	if *field == value {
		return false
	}

	*field = value

	for _, fn := range onChanged {
		if fn != nil {
			fn()
		}
	}

	o.RaisePropertyChanged(property)
	return true
}
