package model

import "time"

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem marks diagnostic turns appended in debug mode.
	RoleSystem Role = "system"
)

// Turn is one immutable entry of a conversation.
type Turn struct {
	Role          Role
	Content       string
	Artifacts     []Artifact
	CorrelationID string
	CreatedAt     time.Time
}

// Intent is the routing decision for a user utterance.
type Intent string

const (
	IntentDataLookup        Intent = "DATA_LOOKUP"
	IntentDocumentRetrieval Intent = "DOCUMENT_RETRIEVAL"
	IntentSocial            Intent = "SOCIAL"
	IntentRejected          Intent = "REJECTED"
	// IntentUnknown is any classifier output outside the vocabulary.
	IntentUnknown Intent = "UNKNOWN"
)
