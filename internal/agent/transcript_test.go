package agent

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/diogo/textagent/internal/models"
)

func TestTranscriptMarkdown(t *testing.T) {
	fake := &fakeCompleter{replies: []string{"4"}}
	a := newTestAgent(t, fake, WithModel("quality"))
	a.StartChat("You are concise.")
	if _, err := a.GenerateResponse("2+2?", nil); err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	md := a.TranscriptMarkdown()

	for _, want := range []string{
		"# Conversation",
		"**Model:** " + models.PresetQuality.DisplayName,
		"## System",
		"## User",
		"## " + models.PresetQuality.DisplayName,
		"2+2?",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown transcript missing %q", want)
		}
	}
}

func TestTranscriptJSON(t *testing.T) {
	fake := &fakeCompleter{replies: []string{"4"}}
	a := newTestAgent(t, fake, WithModel("quality"))
	if _, err := a.GenerateResponse("2+2?", nil); err != nil {
		t.Fatalf("turn failed: %v", err)
	}

	data, err := a.TranscriptJSON()
	if err != nil {
		t.Fatalf("TranscriptJSON() error = %v", err)
	}

	var parsed struct {
		SessionID string           `json:"session_id"`
		Model     string           `json:"model"`
		Messages  []models.Message `json:"messages"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("transcript is not valid JSON: %v", err)
	}

	if parsed.SessionID != a.SessionID() {
		t.Errorf("session_id = %q, want %q", parsed.SessionID, a.SessionID())
	}
	if parsed.Model != models.PresetQuality.ID {
		t.Errorf("model = %q, want %q", parsed.Model, models.PresetQuality.ID)
	}
	if len(parsed.Messages) != 2 {
		t.Errorf("messages length = %d, want 2", len(parsed.Messages))
	}
}

func TestTranscriptJSON_EmptyHistory(t *testing.T) {
	a := newTestAgent(t, &fakeCompleter{})

	data, err := a.TranscriptJSON()
	if err != nil {
		t.Fatalf("TranscriptJSON() error = %v", err)
	}

	var parsed struct {
		Messages []models.Message `json:"messages"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("transcript is not valid JSON: %v", err)
	}
	if parsed.Messages == nil || len(parsed.Messages) != 0 {
		t.Errorf("messages = %v, want empty array", parsed.Messages)
	}
}
