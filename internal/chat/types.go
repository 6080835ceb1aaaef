package chat

import (
	"soroia/internal/catalog"
	"soroia/internal/model"
)

// SessionOutput is a snapshot of a conversation.
type SessionOutput struct {
	ID     string
	Turns  []model.Turn
	Detail *model.Detail
}

// SendMessageInput carries one user utterance.
type SendMessageInput struct {
	SessionID string
	Message   string
	// CreateIfMissing opens the session on first contact. Channels that own
	// the conversation key, such as a Telegram chat id, set it.
	CreateIfMissing bool
}

// SendMessageOutput holds the reply and every turn the message produced,
// the user turn and any debug turns included.
type SendMessageOutput struct {
	Reply    model.Turn
	NewTurns []model.Turn
}

// OpenDetailInput selects an artifact shown earlier in the session.
type OpenDetailInput struct {
	SessionID string
	Path      string
}

// DetailOutput is the opened detail view.
type DetailOutput struct {
	Detail model.Detail
	Record catalog.Record
}
