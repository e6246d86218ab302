// Package commands provides CLI commands for textagent.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/textagent/internal/config"
)

var (
	// Global flags
	modelFlag       string
	outputFlag      string
	fileFlag        string
	systemFlag      string
	maxTokensFlag   int
	temperatureFlag float64

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textagent [prompt]",
	Short: "CLI for conversational text generation",
	Long: `textagent is a command-line client for a hosted chat completion API.
It keeps multi-turn conversation context and can target either a fast
low-cost model or a quality-optimized one.

Examples:
  textagent chat                       Start an interactive chat
  textagent "What is Go?"              Send a single query
  textagent -m fast "Summarize this"   Pick the low-latency model
  textagent -f prompt.md               Read prompt from file
  cat prompt.md | textagent            Read prompt from stdin
  textagent "Hello" -o response.md     Save response to file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("textagent %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for stdin
		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), !isStdoutTTY())
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0], !isStdoutTTY())
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model preset to use (fast, quality)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().StringVar(&systemFlag, "system", "", "System prompt for this query")
	rootCmd.Flags().IntVar(&maxTokensFlag, "max-tokens", 0, "Response token budget (default from config)")
	rootCmd.Flags().Float64Var(&temperatureFlag, "temperature", -1, "Sampling temperature, 0.0 to 1.0 (default from config)")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(configCmd)
}

// getModelName returns the preset name to use (from flag or config)
func getModelName() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DefaultConfig().DefaultModel
	}

	return cfg.DefaultModel
}
