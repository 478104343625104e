package binding

import (
	"testing"
)

func TestRelayCommandAlwaysExecutable(t *testing.T) {
	var got any
	cmd := NewRelayCommand(func(parameter any) { got = parameter })

	if !cmd.CanExecute(nil) {
		t.Error("CanExecute(nil) = false, want true for unguarded command")
	}

	cmd.Execute("payload")

	if got != "payload" {
		t.Errorf("action received %v, want %q", got, "payload")
	}
}

func TestGuardedCommand(t *testing.T) {
	tests := []struct {
		name      string
		parameter any
		wantRun   bool
	}{
		{"guard accepts", "ok", true},
		{"guard rejects", "blocked", false},
		{"guard rejects nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			cmd := NewGuardedCommand(
				func(any) { ran = true },
				func(parameter any) bool { return parameter == "ok" },
			)

			cmd.Execute(tt.parameter)

			if ran != tt.wantRun {
				t.Errorf("action ran = %v, want %v", ran, tt.wantRun)
			}
			if cmd.CanExecute(tt.parameter) != tt.wantRun {
				t.Errorf("CanExecute(%v) = %v, want %v", tt.parameter, !tt.wantRun, tt.wantRun)
			}
		})
	}
}

func TestConverterFunc(t *testing.T) {
	length := ConverterFunc(func(value any) any {
		s, _ := value.(string)
		return len(s)
	})

	if got := length.Convert("four"); got != 4 {
		t.Errorf("Convert(\"four\") = %v, want 4", got)
	}
}
