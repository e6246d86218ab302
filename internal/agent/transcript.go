package agent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diogo/textagent/internal/models"
)

// Transcript export turns the in-memory conversation into a document on
// demand. Nothing is reloaded on a later run.

// TranscriptMarkdown renders the conversation as a Markdown document.
func (a *Agent) TranscriptMarkdown() string {
	a.mu.RLock()
	history := copyHistory(a.history)
	model := a.model
	a.mu.RUnlock()

	var sb strings.Builder

	sb.WriteString("# Conversation\n\n")
	sb.WriteString("**Model:** ")
	sb.WriteString(model.DisplayName)
	sb.WriteString("\n**Session:** ")
	sb.WriteString(a.sessionID)
	sb.WriteString("\n**Exported:** ")
	sb.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	sb.WriteString("\n**Messages:** ")
	sb.WriteString(fmt.Sprintf("%d", len(history)))
	sb.WriteString("\n\n---\n\n")

	for i, msg := range history {
		switch msg.Role {
		case models.RoleSystem:
			sb.WriteString("## System\n\n")
		case models.RoleUser:
			sb.WriteString("## User\n\n")
		case models.RoleAssistant:
			sb.WriteString("## ")
			sb.WriteString(model.DisplayName)
			sb.WriteString("\n\n")
		}

		sb.WriteString(msg.Content)
		sb.WriteString("\n")

		if i < len(history)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

// TranscriptJSON renders the conversation as indented JSON.
func (a *Agent) TranscriptJSON() ([]byte, error) {
	a.mu.RLock()
	history := copyHistory(a.history)
	model := a.model
	a.mu.RUnlock()

	type exportTranscript struct {
		SessionID  string           `json:"session_id"`
		Model      string           `json:"model"`
		ExportedAt time.Time        `json:"exported_at"`
		Messages   []models.Message `json:"messages"`
	}

	export := exportTranscript{
		SessionID:  a.sessionID,
		Model:      model.ID,
		ExportedAt: time.Now(),
		Messages:   history,
	}
	if export.Messages == nil {
		export.Messages = []models.Message{}
	}

	return json.MarshalIndent(export, "", "  ")
}
