package store

import "hackmatch/internal/model"

// DirectorySource supplies the browsable People/Teams collections. The
// current implementation is synchronous/pre-resolved; a real backend
// integration would satisfy the same interface asynchronously upstream.
type DirectorySource interface {
	LoadPeople() ([]model.Person, error)
	LoadTeams() ([]model.Team, error)
}

// ConversationSource seeds the conversation store at session start.
type ConversationSource interface {
	LoadConversations(userID string) ([]model.Conversation, error)
}

// ProfileSource supplies the current user's own profile record.
type ProfileSource interface {
	LoadProfile(userID string) (model.ProfileData, error)
}

// PersistenceSink receives committed profile data and appended messages.
// There is no durable backend yet; NopSink absorbs everything.
type PersistenceSink interface {
	SaveProfile(p model.ProfileData) error
	SaveMessage(conversationID string, msg model.Message) error
}

type NopSink struct{}

func (NopSink) SaveProfile(model.ProfileData) error     { return nil }
func (NopSink) SaveMessage(string, model.Message) error { return nil }

var _ PersistenceSink = NopSink{}
