package domain

// Message is a single queue record to be republished as a post.
type Message struct {
	// ID identifies the message for logging, correlation and de-duplication.
	// It carries no meaning for the post itself.
	ID string `json:"id"`
	// Body is the raw message text. It is treated as opaque UTF-8.
	Body string `json:"body"`
}

// UnknownMessageID is used in logs when a queue record carries no identifier.
const UnknownMessageID = "unknown"

// MessageID returns m.ID or UnknownMessageID when it is empty.
func (m Message) MessageID() string {
	if m.ID == "" {
		return UnknownMessageID
	}

	return m.ID
}
