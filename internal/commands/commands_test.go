package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/textagent/internal/agent"
	"github.com/diogo/textagent/internal/api"
	"github.com/diogo/textagent/internal/config"
)

// stubCompleter satisfies agent.Completer without network access.
type stubCompleter struct {
	reply string
}

func (s *stubCompleter) Complete(req *api.CompleteRequest) (string, error) {
	return s.reply, nil
}

func TestGenerateOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxTokens = 500
	cfg.Temperature = 0.3

	tests := []struct {
		name            string
		maxTokensFlag   int
		temperatureFlag float64
		wantMaxTokens   int
		wantTemperature float64
	}{
		{name: "config defaults", temperatureFlag: -1, wantMaxTokens: 500, wantTemperature: 0.3},
		{name: "max tokens flag wins", maxTokensFlag: 2000, temperatureFlag: -1, wantMaxTokens: 2000, wantTemperature: 0.3},
		{name: "temperature flag wins", temperatureFlag: 0.9, wantMaxTokens: 500, wantTemperature: 0.9},
		{name: "explicit zero temperature kept", temperatureFlag: 0, wantMaxTokens: 500, wantTemperature: 0},
		{name: "both flags win", maxTokensFlag: 64, temperatureFlag: 0.1, wantMaxTokens: 64, wantTemperature: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxTokensFlag = tt.maxTokensFlag
			temperatureFlag = tt.temperatureFlag
			t.Cleanup(func() {
				maxTokensFlag = 0
				temperatureFlag = -1
			})

			opts := generateOptions(cfg)
			if opts.MaxTokens != tt.wantMaxTokens {
				t.Errorf("MaxTokens = %d, want %d", opts.MaxTokens, tt.wantMaxTokens)
			}
			if opts.Temperature == nil {
				t.Fatal("Temperature = nil, want a resolved value")
			}
			if *opts.Temperature != tt.wantTemperature {
				t.Errorf("Temperature = %v, want %v", *opts.Temperature, tt.wantTemperature)
			}
		})
	}
}

func TestGenerateOptions_ZeroTemperatureFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Temperature = 0

	temperatureFlag = -1
	t.Cleanup(func() { temperatureFlag = -1 })

	opts := generateOptions(cfg)
	if opts.Temperature == nil || *opts.Temperature != 0 {
		t.Errorf("Temperature = %v, want configured 0", opts.Temperature)
	}
}

func TestGetModelName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	modelFlag = "fast"
	t.Cleanup(func() { modelFlag = "" })
	if got := getModelName(); got != "fast" {
		t.Errorf("getModelName() = %q, want flag value", got)
	}

	modelFlag = ""
	if got := getModelName(); got != config.DefaultConfig().DefaultModel {
		t.Errorf("getModelName() = %q, want config default", got)
	}
}

func TestExportTranscript(t *testing.T) {
	a, err := agent.New(
		agent.WithModel("quality"),
		agent.WithCompleter(&stubCompleter{reply: "hello back"}),
	)
	if err != nil {
		t.Fatalf("agent.New() error = %v", err)
	}
	if _, err := a.GenerateResponse("hello", nil); err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	dir := t.TempDir()

	mdPath := filepath.Join(dir, "chat.md")
	if err := exportTranscript(a, mdPath); err != nil {
		t.Fatalf("exportTranscript(md) error = %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "# Conversation") {
		t.Errorf("markdown export missing header:\n%s", md)
	}

	jsonPath := filepath.Join(dir, "chat.JSON")
	if err := exportTranscript(a, jsonPath); err != nil {
		t.Fatalf("exportTranscript(json) error = %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("json export is not valid JSON: %v", err)
	}
	if _, ok := parsed["messages"]; !ok {
		t.Error("json export missing messages field")
	}
}

func TestRunQuery_EmptyPrompt(t *testing.T) {
	if err := runQuery("   \n\t", true); err == nil {
		t.Fatal("runQuery() should reject an empty prompt")
	}
}

func TestRunQuery_UnknownModel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	modelFlag = "gpt-7"
	t.Cleanup(func() { modelFlag = "" })

	err := runQuery("hello", true)
	if err == nil {
		t.Fatal("runQuery() should reject an unknown model")
	}
	if !strings.Contains(err.Error(), "gpt-7") {
		t.Errorf("error should name the model: %v", err)
	}
}
