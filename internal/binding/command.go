package binding

// Command is an invocable unit of application logic with an optional
// execution guard. Callers are expected to consult CanExecute before
// calling Execute; RelayCommand enforces the guard either way.
type Command interface {
	// Execute runs the command's action with the given parameter.
	Execute(parameter any)

	// CanExecute reports whether the command may run with the given
	// parameter. Commands without a guard always return true.
	CanExecute(parameter any) bool
}

// RelayCommand is a Command backed by plain functions.
type RelayCommand struct {
	execute    func(parameter any)
	canExecute func(parameter any) bool
}

// Compile-time verification that *RelayCommand implements Command
var _ Command = (*RelayCommand)(nil)

// NewRelayCommand creates an always-executable command.
func NewRelayCommand(execute func(parameter any)) *RelayCommand {
	return &RelayCommand{execute: execute}
}

// NewGuardedCommand creates a command gated by canExecute.
// A nil canExecute behaves like NewRelayCommand.
func NewGuardedCommand(execute func(parameter any), canExecute func(parameter any) bool) *RelayCommand {
	return &RelayCommand{execute: execute, canExecute: canExecute}
}

// Execute runs the action unless the guard rejects the parameter.
func (c *RelayCommand) Execute(parameter any) {
	if c.execute == nil || !c.CanExecute(parameter) {
		return
	}
	c.execute(parameter)
}

// CanExecute reports whether the guard (if any) accepts the parameter.
func (c *RelayCommand) CanExecute(parameter any) bool {
	if c.canExecute == nil {
		return true
	}
	return c.canExecute(parameter)
}
