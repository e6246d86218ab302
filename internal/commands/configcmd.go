package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diogo/textagent/internal/config"
	"github.com/diogo/textagent/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value and persist it.

Keys:
  model           default model preset (fast, quality)
  base_url        proxy endpoint override (empty resets to default)
  max_tokens      default response token budget
  temperature     default sampling temperature
  timeout         request timeout in seconds
  verbose         detailed logging (true/false)
  clipboard       copy replies to clipboard (true/false)
  markdown_style  render theme (dark, light, or a JSON theme path)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()
	fmt.Printf("Config file: %s\n\n", path)
	fmt.Printf("model:           %s\n", cfg.DefaultModel)
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = models.DefaultBaseURL + " (default)"
	}
	fmt.Printf("base_url:        %s\n", baseURL)
	fmt.Printf("max_tokens:      %d\n", cfg.MaxTokens)
	fmt.Printf("temperature:     %g\n", cfg.Temperature)
	fmt.Printf("timeout:         %ds\n", cfg.RequestTimeoutSeconds)
	fmt.Printf("verbose:         %t\n", cfg.Verbose)
	fmt.Printf("clipboard:       %t\n", cfg.CopyToClipboard)
	fmt.Printf("markdown_style:  %s\n", cfg.Markdown.Style)

	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "model":
		preset, ok := models.PresetFromName(value)
		if !ok {
			return fmt.Errorf("unknown model %q, run 'textagent models' to list presets", value)
		}
		cfg.DefaultModel = preset.Name

	case "base_url":
		cfg.BaseURL = value

	case "max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("max_tokens must be a positive integer")
		}
		cfg.MaxTokens = n

	case "temperature":
		t, err := strconv.ParseFloat(value, 64)
		if err != nil || t < 0 || t > 1 {
			return fmt.Errorf("temperature must be a number between 0.0 and 1.0")
		}
		cfg.Temperature = t

	case "timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout must be a positive number of seconds")
		}
		cfg.RequestTimeoutSeconds = n

	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false")
		}
		cfg.Verbose = b

	case "clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false")
		}
		cfg.CopyToClipboard = b

	case "markdown_style":
		cfg.Markdown.Style = value

	default:
		return fmt.Errorf("unknown key %q, see 'textagent config set --help'", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("✓ %s = %s\n", key, value)
	return nil
}
