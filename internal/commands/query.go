package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/textagent/internal/agent"
	"github.com/diogo/textagent/internal/config"
	"github.com/diogo/textagent/internal/models"
)

// runQuery executes a single query and outputs the response.
// If rawOutput is true, only the raw response text is printed without decoration.
func runQuery(prompt string, rawOutput bool) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	cfg, _ := config.LoadConfig()

	modelName := getModelName()
	preset, ok := models.PresetFromName(modelName)
	if !ok {
		return fmt.Errorf("unknown model %q, run 'textagent models' to list presets", modelName)
	}

	if cfg.Verbose && !rawOutput {
		fmt.Fprintf(os.Stderr, "[verbose] Model: %s (%s)\n", preset.Name, preset.ID)
	}

	a, err := newAgentFromConfig(cfg, preset.Name)
	if err != nil {
		if !rawOutput {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to create agent"))
		}
		return err
	}

	if systemFlag != "" {
		a.StartChat(systemFlag)
	}

	var spin *spinner
	if !rawOutput {
		spin = newSpinner("Generating response")
		spin.start()
	}

	startTime := time.Now()
	reply, err := a.GenerateResponse(prompt, generateOptions(cfg))
	requestDuration := time.Since(startTime)

	if err != nil {
		if !rawOutput {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Generation failed"))
		}
		return fmt.Errorf("generation failed: %w", err)
	}
	if !rawOutput {
		if cfg.Verbose {
			spin.stopWithSuccess(fmt.Sprintf("Response generated in %s", requestDuration.Round(time.Millisecond)))
		} else {
			spin.stopQuiet()
		}
	}

	// Raw output mode: only the reply text
	if rawOutput {
		if outputFlag != "" {
			if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		fmt.Print(reply)
		return nil
	}

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(os.Stderr, warnMsg)
		} else {
			clipMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, clipMsg)
		}
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		successMsg := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Response saved to %s", outputFlag),
		)
		fmt.Fprintln(os.Stderr, successMsg)
		return nil
	}

	displayAssistantReply(reply, preset.DisplayName)
	return nil
}

// newAgentFromConfig builds an agent with the configured base URL, timeout,
// and the given model preset. The API key comes from the environment.
func newAgentFromConfig(cfg config.Config, modelName string) (*agent.Agent, error) {
	opts := []agent.Option{agent.WithModel(modelName)}
	if cfg.BaseURL != "" {
		opts = append(opts, agent.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeoutSeconds > 0 {
		opts = append(opts, agent.WithTimeoutSeconds(cfg.RequestTimeoutSeconds))
	}
	return agent.New(opts...)
}

// generateOptions merges per-call flags with config defaults. The
// temperature flag defaults to -1 meaning unset, so an explicit 0 on the
// command line or in the config reaches the wire.
func generateOptions(cfg config.Config) *agent.GenerateOptions {
	temperature := cfg.Temperature
	if temperatureFlag >= 0 {
		temperature = temperatureFlag
	}

	opts := &agent.GenerateOptions{
		MaxTokens:   cfg.MaxTokens,
		Temperature: &temperature,
	}
	if maxTokensFlag > 0 {
		opts.MaxTokens = maxTokensFlag
	}
	return opts
}
