package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/diogo/textagent/internal/agent"
)

// Generator is the slice of the agent the loop drives. *agent.Agent
// satisfies it; tests inject a fake to count calls.
type Generator interface {
	GenerateResponse(userMessage string, opts *agent.GenerateOptions) (string, error)
	RenderHistory(w io.Writer, modelName string)
}

// LineReader supplies one line of input at a time. The production reader
// wraps a readline library; tests use a scripted reader.
type LineReader interface {
	// Prompt displays prompt and returns the next line without the
	// trailing newline. Returns io.EOF when input is exhausted.
	Prompt(prompt string) (string, error)
	Close() error
}

// Loop reads commands and user turns until exit. One remote call is in
// flight at a time; the loop suspends on terminal input between turns.
type Loop struct {
	Agent     Generator
	Reader    LineReader
	Out       io.Writer
	ModelName string

	// DisplayReply renders a successful assistant reply. When nil the
	// reply is printed verbatim.
	DisplayReply func(reply string)
	// DisplayError renders a failed turn. When nil the error is printed
	// as a plain line. A failed turn never terminates the loop.
	DisplayError func(err error)
}

// Run drives the loop until an exit command or end of input. On exit the
// user is offered a final history print.
func (l *Loop) Run() error {
	for {
		line, err := l.Reader.Prompt("You: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.Out, "\nChat ended.")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch Classify(line) {
		case CommandEmpty:
			continue

		case CommandShowHistory:
			l.Agent.RenderHistory(l.Out, l.ModelName)

		case CommandExit:
			fmt.Fprintln(l.Out, "Chat ended.")
			l.offerHistory()
			return nil

		case CommandTurn:
			reply, err := l.Agent.GenerateResponse(strings.TrimSpace(line), nil)
			if err != nil {
				l.displayError(err)
				continue
			}
			l.displayReply(reply)
		}
	}
}

// offerHistory asks whether to print the final history before returning.
func (l *Loop) offerHistory() {
	answer, err := l.Reader.Prompt("Show conversation history? (y/n): ")
	if err != nil {
		return
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		l.Agent.RenderHistory(l.Out, l.ModelName)
	}
}

func (l *Loop) displayReply(reply string) {
	if l.DisplayReply != nil {
		l.DisplayReply(reply)
		return
	}
	fmt.Fprintf(l.Out, "%s: %s\n", l.ModelName, reply)
}

func (l *Loop) displayError(err error) {
	if l.DisplayError != nil {
		l.DisplayError(err)
		return
	}
	fmt.Fprintf(l.Out, "Error: %v\n", err)
}
