package models

// Role identifies the author of a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a conversation. Messages are immutable once
// appended; ordering is chronological and defines the prompt context sent
// to the remote model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// IsValidRole reports whether r is one of the three recognized roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}
