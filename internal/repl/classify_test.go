package repl

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{line: "exit", want: CommandExit},
		{line: "quit", want: CommandExit},
		{line: "EXIT", want: CommandExit},
		{line: "Quit", want: CommandExit},
		{line: "  exit  ", want: CommandExit},
		{line: "history", want: CommandShowHistory},
		{line: "h", want: CommandShowHistory},
		{line: "HISTORY", want: CommandShowHistory},
		{line: "H", want: CommandShowHistory},
		{line: "", want: CommandEmpty},
		{line: "   ", want: CommandEmpty},
		{line: "\t", want: CommandEmpty},
		{line: "hello", want: CommandTurn},
		{line: "what is exit code 1?", want: CommandTurn},
		{line: "exit?", want: CommandTurn},
		{line: "hh", want: CommandTurn},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.line, got, tt.want)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CommandTurn, "turn"},
		{CommandExit, "exit"},
		{CommandShowHistory, "show-history"},
		{CommandEmpty, "empty"},
		{Command(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}
