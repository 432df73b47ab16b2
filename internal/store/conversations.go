package store

import (
	"sort"
	"strings"
	"time"

	"hackmatch/internal/model"
)

// ConversationStore owns the session's conversations: the inbox ordering,
// unread counts, and message appends. One conversation may be "active"
// (open on screen) at a time; opening marks it read.
type ConversationStore struct {
	convs  []model.Conversation
	active string
	sink   PersistenceSink

	now func() time.Time
}

func NewConversationStore(convs []model.Conversation, sink PersistenceSink) *ConversationStore {
	if sink == nil {
		sink = NopSink{}
	}
	return &ConversationStore{
		convs: convs,
		sink:  sink,
		now:   time.Now,
	}
}

// List returns conversations ordered by most recent activity first. Ties
// keep their seeded order.
func (cs *ConversationStore) List() []model.Conversation {
	out := make([]model.Conversation, len(cs.convs))
	copy(out, cs.convs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActivity.After(out[j].LastActivity)
	})
	return out
}

// TotalUnread sums unread counts across all conversations.
func (cs *ConversationStore) TotalUnread() int {
	total := 0
	for i := range cs.convs {
		total += cs.convs[i].Unread
	}
	return total
}

// Find returns the conversation with the given id without side effects.
func (cs *ConversationStore) Find(id string) (*model.Conversation, bool) {
	for i := range cs.convs {
		if cs.convs[i].ID == id {
			return &cs.convs[i], true
		}
	}
	return nil, false
}

// Open makes the conversation active and clears its unread count. Unknown
// ids return a NotFoundError.
func (cs *ConversationStore) Open(id string) (*model.Conversation, error) {
	c, ok := cs.Find(id)
	if !ok {
		return nil, errNotFound("conversation", id)
	}
	c.Unread = 0
	cs.active = id
	return c, nil
}

// Active returns the currently open conversation, if any.
func (cs *ConversationStore) Active() (*model.Conversation, bool) {
	if cs.active == "" {
		return nil, false
	}
	return cs.Find(cs.active)
}

// CloseActive leaves the open conversation without touching its state.
func (cs *ConversationStore) CloseActive() {
	cs.active = ""
}

// Append adds a message authored by the current user. Input is trimmed;
// empty or whitespace-only input is ignored and no message is created.
// The conversation's activity timestamp moves to now, which reorders it to
// the top of List.
func (cs *ConversationStore) Append(id, text string) (*model.Message, error) {
	c, ok := cs.Find(id)
	if !ok {
		return nil, errNotFound("conversation", id)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	msg := model.Message{
		ID:       newID("msg"),
		SenderID: CurrentUserID,
		Sender:   "You",
		Content:  text,
		SentAt:   cs.now(),
		Mine:     true,
	}
	c.Messages = append(c.Messages, msg)
	c.LastActivity = msg.SentAt
	if err := cs.sink.SaveMessage(c.ID, msg); err != nil {
		return nil, err
	}
	return &c.Messages[len(c.Messages)-1], nil
}
