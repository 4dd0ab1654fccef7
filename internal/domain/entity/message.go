package entity

// Message is what the upstream gateway sends to a single token.
type Message struct {
	Title     string
	Body      string
	Data      map[string]string
	Priority  Priority
	ChannelID string
}
