// Package repl implements the line-oriented interactive command surface.
package repl

import "strings"

// Command is the closed set of actions a line of input can trigger.
type Command int

const (
	// CommandTurn forwards the line to the agent as a user turn.
	CommandTurn Command = iota
	// CommandExit terminates the loop.
	CommandExit
	// CommandShowHistory prints the conversation without consuming a turn.
	CommandShowHistory
	// CommandEmpty ignores the line: no remote call, no history mutation.
	CommandEmpty
)

// Classify maps one line of input to a Command. Control words are matched
// case-insensitively after trimming surrounding whitespace.
func Classify(line string) Command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return CommandEmpty
	}

	switch strings.ToLower(trimmed) {
	case "exit", "quit":
		return CommandExit
	case "history", "h":
		return CommandShowHistory
	}

	return CommandTurn
}

// String returns the command name, for logging and test failure messages.
func (c Command) String() string {
	switch c {
	case CommandTurn:
		return "turn"
	case CommandExit:
		return "exit"
	case CommandShowHistory:
		return "show-history"
	case CommandEmpty:
		return "empty"
	}
	return "unknown"
}
