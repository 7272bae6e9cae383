package domain

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatReply struct {
	Content string `json:"content"`
	// Fallback is set when the reply came from the canned advisor
	// instead of the hosted model.
	Fallback bool `json:"fallback"`
}
