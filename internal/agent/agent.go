// Package agent implements the conversational agent: an ordered message
// history, model preset selection, and one remote completion call per turn.
package agent

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diogo/textagent/internal/api"
	"github.com/diogo/textagent/internal/config"
	apierrors "github.com/diogo/textagent/internal/errors"
	"github.com/diogo/textagent/internal/models"
)

// Completer abstracts the remote chat completion call. The production
// implementation is *api.Client; tests inject a fake.
type Completer interface {
	Complete(req *api.CompleteRequest) (string, error)
}

// Agent owns one conversation. Each independent session gets its own Agent;
// there is no shared state between instances. A single Agent performs one
// blocking remote call at a time.
type Agent struct {
	completer Completer
	model     models.Preset
	history   []models.Message
	sessionID string
	mu        sync.RWMutex
}

// GenerateOptions overrides per-call generation parameters. A zero
// MaxTokens and a nil Temperature fall back to the configured defaults
// (1000 tokens, temperature 0.7); an explicit zero temperature is honored.
type GenerateOptions struct {
	MaxTokens   int
	Temperature *float64
}

// Option is a function that configures the agent
type Option func(*settings)

type settings struct {
	apiKey    string
	baseURL   string
	modelName string
	timeout   int // seconds; 0 means default
	completer Completer
}

// WithAPIKey sets an explicit API key, taking precedence over the
// PROXY_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(s *settings) {
		s.apiKey = apiKey
	}
}

// WithBaseURL overrides the default proxy endpoint
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithModel selects the model preset by name ("fast" or "quality", or a
// full model ID).
func WithModel(name string) Option {
	return func(s *settings) {
		s.modelName = name
	}
}

// WithTimeoutSeconds overrides the per-request deadline
func WithTimeoutSeconds(seconds int) Option {
	return func(s *settings) {
		s.timeout = seconds
	}
}

// WithCompleter injects a custom completion backend. Used by tests.
func WithCompleter(c Completer) Option {
	return func(s *settings) {
		s.completer = c
	}
}

// New creates an Agent. It fails with a ConfigError when no API key is
// resolvable or the model preset is not recognized.
func New(opts ...Option) (*Agent, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	model := models.DefaultPreset
	if s.modelName != "" {
		preset, ok := models.PresetFromName(s.modelName)
		if !ok {
			return nil, apierrors.NewConfigErrorWithCause(
				fmt.Sprintf("unknown model %q, available: %s", s.modelName, presetNames()),
				apierrors.ErrUnknownModel,
			)
		}
		model = preset
	}

	completer := s.completer
	if completer == nil {
		apiKey, err := config.ResolveAPIKey(s.apiKey)
		if err != nil {
			return nil, err
		}

		clientOpts := []api.ClientOption{api.WithModel(model)}
		if s.baseURL != "" {
			clientOpts = append(clientOpts, api.WithBaseURL(s.baseURL))
		}
		if s.timeout > 0 {
			clientOpts = append(clientOpts, api.WithTimeout(time.Duration(s.timeout)*time.Second))
		}

		client, err := api.NewClient(apiKey, clientOpts...)
		if err != nil {
			return nil, err
		}
		completer = client
	}

	return &Agent{
		completer: completer,
		model:     model,
		sessionID: uuid.NewString(),
	}, nil
}

// SessionID returns the unique identifier of this conversation session.
func (a *Agent) SessionID() string {
	return a.sessionID
}

// Model returns the current model preset.
func (a *Agent) Model() models.Preset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.model
}

// SetModel switches the model preset. Existing history is untouched; the
// new model receives the same accumulated context on the next call.
func (a *Agent) SetModel(name string) error {
	preset, ok := models.PresetFromName(name)
	if !ok {
		return apierrors.NewConfigErrorWithCause(
			fmt.Sprintf("unknown model %q, available: %s", name, presetNames()),
			apierrors.ErrUnknownModel,
		)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.model = preset
	return nil
}

// AddSystemMessage inserts or replaces the leading system message. It fails
// with a StateError once any user or assistant turn exists, because the
// remote API requires the system message first and stable.
func (a *Agent) AddSystemMessage(content string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, msg := range a.history {
		if msg.Role != models.RoleSystem {
			return apierrors.NewStateError("cannot set system message after turns exist")
		}
	}

	msg := models.Message{Role: models.RoleSystem, Content: content}
	if len(a.history) > 0 && a.history[0].Role == models.RoleSystem {
		a.history[0] = msg
		return nil
	}
	a.history = append([]models.Message{msg}, a.history...)
	return nil
}

// AddUserMessage appends a user message without making a remote call.
// Useful for building few-shot context before the first real turn.
func (a *Agent) AddUserMessage(content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, models.Message{Role: models.RoleUser, Content: content})
}

// StartChat clears the history and optionally seeds a system prompt.
// Always safe to call; it is the idempotent reset point.
func (a *Agent) StartChat(systemPrompt string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = nil
	if systemPrompt != "" {
		a.history = append(a.history, models.Message{Role: models.RoleSystem, Content: systemPrompt})
	}
}

// GenerateResponse appends userMessage (when non-empty) as a user message,
// sends the full ordered history to the remote endpoint, and on success
// appends and returns the assistant reply.
//
// On failure the speculative user message is retained (this turn's input is
// real regardless of reply success) but no assistant entry is added, so the
// caller may retry the same turn safely. No retry is performed here.
//
// History is always sent in full; if it outgrows the model's context window
// the remote service rejects the call and that surfaces as a RequestError.
func (a *Agent) GenerateResponse(userMessage string, opts *GenerateOptions) (string, error) {
	a.mu.Lock()
	if userMessage != "" {
		a.history = append(a.history, models.Message{Role: models.RoleUser, Content: userMessage})
	}

	req := &api.CompleteRequest{
		Model:    a.model,
		Messages: copyHistory(a.history),
	}
	if opts != nil {
		req.MaxTokens = opts.MaxTokens
		if opts.Temperature != nil {
			temperature := *opts.Temperature
			req.Temperature = &temperature
		}
	}
	a.mu.Unlock()

	// The remote call blocks without holding the lock
	reply, err := a.completer.Complete(req)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.history = append(a.history, models.Message{Role: models.RoleAssistant, Content: reply})
	a.mu.Unlock()

	return reply, nil
}

// ClearHistory resets the conversation to empty. Configuration is untouched.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// History returns a copy of the ordered message history. Mutating the
// returned slice does not affect the agent.
func (a *Agent) History() []models.Message {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyHistory(a.history)
}

// RenderHistory writes a human-readable rendering of the full history,
// labelling assistant entries with modelName. No state change.
func (a *Agent) RenderHistory(w io.Writer, modelName string) {
	history := a.History()

	if len(history) == 0 {
		fmt.Fprintln(w, "Conversation history is empty.")
		return
	}

	fmt.Fprintln(w, "\nConversation history:")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	turn := 0
	for _, msg := range history {
		switch msg.Role {
		case models.RoleSystem:
			fmt.Fprintln(w, "System:")
			fmt.Fprintf(w, "   %s\n", msg.Content)
		case models.RoleUser:
			turn++
			fmt.Fprintf(w, "You #%d:\n", turn)
			fmt.Fprintf(w, "   %s\n", msg.Content)
		case models.RoleAssistant:
			fmt.Fprintf(w, "%s #%d:\n", modelName, turn)
			fmt.Fprintf(w, "   %s\n", msg.Content)
		}
		fmt.Fprintln(w, strings.Repeat("-", 30))
	}

	fmt.Fprintf(w, "Total messages: %d\n", len(history))
}

func copyHistory(history []models.Message) []models.Message {
	if history == nil {
		return nil
	}
	out := make([]models.Message, len(history))
	copy(out, history)
	return out
}

func presetNames() string {
	names := make([]string, 0, 2)
	for _, p := range models.AllPresets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
