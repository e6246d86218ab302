// Package models contains data types and constants for the chat completion API.
package models

// DefaultBaseURL is the proxy endpoint used when no base URL is configured.
const DefaultBaseURL = "https://api.proxyapi.ru/anthropic"

// MessagesPath is the chat completion endpoint path, appended to the base URL.
const MessagesPath = "/v1/messages"

// APIVersion is sent in the anthropic-version header on every request.
const APIVersion = "2023-06-01"

// Generation defaults applied when the caller does not override them.
const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
)

// Preset represents one of the supported remote models.
type Preset struct {
	// Name is the short preset name used in flags and config ("fast", "quality").
	Name string
	// ID is the model identifier sent on the wire.
	ID string
	// DisplayName is the human-readable label used in rendered output.
	DisplayName string
}

// The two supported presets: a low-latency model and a higher-quality model.
var (
	PresetFast = Preset{
		Name:        "fast",
		ID:          "gpt-4.1-mini-2025-04-1",
		DisplayName: "GPT-4.1 Mini",
	}

	PresetQuality = Preset{
		Name:        "quality",
		ID:          "claude-sonnet-4-5-20250929",
		DisplayName: "Claude Sonnet 4.5",
	}

	// DefaultPreset is used when nothing is configured.
	DefaultPreset = PresetQuality
)

// AllPresets returns the supported presets in display order.
func AllPresets() []Preset {
	return []Preset{PresetFast, PresetQuality}
}

// PresetFromName resolves a preset by short name or full model ID.
// Returns the zero Preset and false when the name is not recognized.
func PresetFromName(name string) (Preset, bool) {
	switch name {
	case PresetFast.Name, PresetFast.ID:
		return PresetFast, true
	case PresetQuality.Name, PresetQuality.ID:
		return PresetQuality, true
	}
	return Preset{}, false
}

// DefaultHeaders returns the fixed headers for chat completion requests.
// The x-api-key header is added per-request by the client.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":      "application/json",
		"Accept":            "application/json",
		"anthropic-version": APIVersion,
	}
}
