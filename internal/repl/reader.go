package repl

import (
	"io"

	"github.com/peterh/liner"
)

// linerReader wraps peterh/liner to provide line editing and in-session
// recall of previous inputs.
type linerReader struct {
	state *liner.State
}

// NewTerminalReader returns a LineReader backed by the terminal with line
// editing enabled. Ctrl-C and Ctrl-D both read as end of input.
func NewTerminalReader() LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerReader{state: state}
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", io.EOF
		}
		return "", err
	}

	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	return r.state.Close()
}
