package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/textagent/internal/agent"
	"github.com/diogo/textagent/internal/config"
	"github.com/diogo/textagent/internal/models"
	"github.com/diogo/textagent/internal/repl"
)

var (
	chatSystemFlag string
	chatExportFlag string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session.

The chat maintains conversation context across messages. Type 'history'
or 'h' to print the conversation so far, 'exit' or 'quit' to end the
session. Empty lines are ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatSystemFlag, "system", "", "System prompt seeding the conversation")
	chatCmd.Flags().StringVar(&chatExportFlag, "export", "", "Write the transcript to this file on exit (.md or .json)")
}

func runChat() error {
	cfg, _ := config.LoadConfig()

	reader := repl.NewTerminalReader()
	defer reader.Close()

	preset, err := resolveChatModel(reader)
	if err != nil {
		return err
	}

	a, err := newAgentFromConfig(cfg, preset.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to create agent"))
		return err
	}

	a.StartChat(chatSystemFlag)

	fmt.Printf("Chatting with %s. Type 'exit' or 'quit' to end, 'history' to review.\n", preset.DisplayName)
	fmt.Println(strings.Repeat("=", 50))

	loop := &repl.Loop{
		Agent:     &spinnerAgent{agent: a, opts: generateOptions(cfg)},
		Reader:    reader,
		Out:       os.Stdout,
		ModelName: preset.DisplayName,
		DisplayReply: func(reply string) {
			displayAssistantReply(reply, preset.DisplayName)
		},
		DisplayError: func(err error) {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Turn failed"))
		},
	}

	if err := loop.Run(); err != nil {
		return err
	}

	if chatExportFlag != "" {
		if err := exportTranscript(a, chatExportFlag); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Transcript saved to %s\n", chatExportFlag)
	}

	return nil
}

// resolveChatModel returns the preset from the --model flag, or asks the
// user to pick one when no flag was given.
func resolveChatModel(reader repl.LineReader) (models.Preset, error) {
	if modelFlag != "" {
		preset, ok := models.PresetFromName(modelFlag)
		if !ok {
			return models.Preset{}, fmt.Errorf("unknown model %q, run 'textagent models' to list presets", modelFlag)
		}
		return preset, nil
	}

	// No flag and no TTY: fall back to the configured default
	if !isStdoutTTY() {
		preset, ok := models.PresetFromName(getModelName())
		if !ok {
			preset = models.DefaultPreset
		}
		return preset, nil
	}

	return selectModel(reader)
}

// selectModel prompts the user to choose between the two presets.
func selectModel(reader repl.LineReader) (models.Preset, error) {
	presets := models.AllPresets()

	fmt.Println("Select a model for the conversation:")
	for i, p := range presets {
		fmt.Printf("%d. %s (%s)\n", i+1, p.DisplayName, p.Name)
	}
	fmt.Println()

	for {
		answer, err := reader.Prompt(fmt.Sprintf("Model number (1-%d): ", len(presets)))
		if err != nil {
			return models.Preset{}, fmt.Errorf("failed to read model choice: %w", err)
		}

		choice := strings.TrimSpace(answer)
		switch choice {
		case "1":
			return presets[0], nil
		case "2":
			return presets[1], nil
		}

		// Preset names are accepted too
		if preset, ok := models.PresetFromName(choice); ok {
			return preset, nil
		}

		fmt.Printf("Please enter a number between 1 and %d.\n", len(presets))
	}
}

// exportTranscript writes the conversation to path; the extension selects
// markdown or JSON.
func exportTranscript(a *agent.Agent, path string) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var err error
		data, err = a.TranscriptJSON()
		if err != nil {
			return fmt.Errorf("failed to build transcript: %w", err)
		}
	default:
		data = []byte(a.TranscriptMarkdown())
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// spinnerAgent wraps the agent so each turn shows a spinner while the
// request is in flight, and applies the configured generation defaults.
type spinnerAgent struct {
	agent *agent.Agent
	opts  *agent.GenerateOptions
}

func (s *spinnerAgent) GenerateResponse(userMessage string, opts *agent.GenerateOptions) (string, error) {
	if opts == nil {
		opts = s.opts
	}

	spin := newSpinner("Thinking")
	spin.start()

	reply, err := s.agent.GenerateResponse(userMessage, opts)
	if err != nil {
		spin.stopWithError()
		return "", err
	}

	spin.stopQuiet()
	return reply, nil
}

func (s *spinnerAgent) RenderHistory(w io.Writer, modelName string) {
	s.agent.RenderHistory(w, modelName)
}
