package binding

// ValueConverter transforms a raw event payload into a command parameter.
// Conversion is one-way; converters must not mutate the input.
type ValueConverter interface {
	Convert(value any) any
}

// ConverterFunc adapts a plain function to the ValueConverter interface.
type ConverterFunc func(value any) any

// Convert implements ValueConverter.
func (f ConverterFunc) Convert(value any) any {
	return f(value)
}
