package types

import "time"

// Conversation is a parsed agent session handed to the redaction core by an
// upstream log parser. The core treats every string-valued field below as
// independently redactable and never touches structural fields (IDs,
// counters, timestamps).
type Conversation struct {
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"` // originating tool, e.g. "claude-code"
	StartedAt time.Time `json:"started_at"`
	Turns     []Turn    `json:"turns"`
}

// Turn is a single exchange in a conversation.
type Turn struct {
	Role      string     `json:"role"` // "user" | "assistant"
	Content   string     `json:"content"`
	Thinking  string     `json:"thinking,omitempty"` // optional extended reasoning text
	Timestamp time.Time  `json:"timestamp"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is one tool invocation made during a turn.
type ToolCall struct {
	Name         string `json:"name"`
	InputSummary string `json:"input_summary"`
	Result       string `json:"result,omitempty"`
}
