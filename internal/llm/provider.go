package llm

// Message is one role-tagged turn in a conversation, in the wire format the
// completion provider expects.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider defines the interface for completion providers
type Provider interface {
	// Complete sends the full ordered conversation and returns the generated text
	Complete(messages []Message) (string, error)
}
