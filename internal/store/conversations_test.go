package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"hackmatch/internal/model"
)

type recordingSink struct {
	NopSink
	messages []model.Message
	profiles []model.ProfileData
}

func (r *recordingSink) SaveMessage(conversationID string, msg model.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingSink) SaveProfile(p model.ProfileData) error {
	r.profiles = append(r.profiles, p)
	return nil
}

func testConversations(base time.Time) []model.Conversation {
	return []model.Conversation{
		{ID: "conv-a", Kind: model.ConversationTeam, CounterpartID: "team-1", Name: "Alpha", Unread: 2, LastActivity: base.Add(-time.Hour)},
		{ID: "conv-b", Kind: model.ConversationDirect, CounterpartID: "usr-2", Name: "Bea", Unread: 0, LastActivity: base.Add(-time.Minute)},
		{ID: "conv-c", Kind: model.ConversationDirect, CounterpartID: "usr-3", Name: "Cal", Unread: 1, LastActivity: base.Add(-24 * time.Hour)},
	}
}

func TestConversationStore_ListOrdersByActivity(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cs := NewConversationStore(testConversations(base), nil)

	got := cs.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(got))
	}
	if got[0].ID != "conv-b" || got[1].ID != "conv-a" || got[2].ID != "conv-c" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if cs.TotalUnread() != 3 {
		t.Fatalf("TotalUnread = %d, want 3", cs.TotalUnread())
	}
}

func TestConversationStore_OpenClearsUnread(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cs := NewConversationStore(testConversations(base), nil)

	c, err := cs.Open("conv-a")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Unread != 0 {
		t.Fatalf("Unread after Open = %d, want 0", c.Unread)
	}
	if active, ok := cs.Active(); !ok || active.ID != "conv-a" {
		t.Fatalf("Active = %v %v", active, ok)
	}

	// Other conversations keep their unread counts.
	if other, _ := cs.Find("conv-c"); other.Unread != 1 {
		t.Fatalf("Open touched another conversation's unread: %d", other.Unread)
	}

	// Opening again is a no-op on an already-read conversation.
	if c2, err := cs.Open("conv-a"); err != nil || c2.Unread != 0 {
		t.Fatalf("reopen: %v %v", c2, err)
	}

	cs.CloseActive()
	if _, ok := cs.Active(); ok {
		t.Fatalf("expected no active conversation after CloseActive")
	}
}

func TestConversationStore_OpenUnknownID(t *testing.T) {
	t.Parallel()

	cs := NewConversationStore(nil, nil)
	_, err := cs.Open("conv-nope")
	if err == nil {
		t.Fatalf("expected error for unknown id")
	}
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T: %v", err, err)
	}
	if nf.Kind != "conversation" || nf.ID != "conv-nope" {
		t.Fatalf("unexpected NotFoundError: %#v", nf)
	}
}

func TestConversationStore_AppendTrimsAndReorders(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sink := &recordingSink{}
	cs := NewConversationStore(testConversations(base), sink)
	sent := base.Add(time.Minute)
	cs.now = func() time.Time { return sent }

	msg, err := cs.Append("conv-c", "  hello there  ")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if msg == nil {
		t.Fatalf("expected a message")
	}
	if msg.Content != "hello there" {
		t.Fatalf("Content = %q, want trimmed", msg.Content)
	}
	if !msg.Mine || msg.SenderID != CurrentUserID {
		t.Fatalf("message not attributed to current user: %#v", msg)
	}
	if !msg.SentAt.Equal(sent) {
		t.Fatalf("SentAt = %v, want %v", msg.SentAt, sent)
	}
	if !strings.HasPrefix(msg.ID, "msg-") {
		t.Fatalf("ID = %q, want msg- prefix", msg.ID)
	}

	// The conversation moved to the top of the inbox.
	if got := cs.List(); got[0].ID != "conv-c" {
		t.Fatalf("expected conv-c first after append, got %s", got[0].ID)
	}

	// The sink saw the message.
	if len(sink.messages) != 1 || sink.messages[0].Content != "hello there" {
		t.Fatalf("sink messages: %#v", sink.messages)
	}
}

func TestConversationStore_AppendRejectsBlank(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sink := &recordingSink{}
	cs := NewConversationStore(testConversations(base), sink)

	for _, input := range []string{"", "   ", "\n\t "} {
		msg, err := cs.Append("conv-a", input)
		if err != nil {
			t.Fatalf("Append(%q): %v", input, err)
		}
		if msg != nil {
			t.Fatalf("Append(%q) created a message: %#v", input, msg)
		}
	}
	c, _ := cs.Find("conv-a")
	if len(c.Messages) != 0 {
		t.Fatalf("blank appends should not add messages: %#v", c.Messages)
	}
	if len(sink.messages) != 0 {
		t.Fatalf("blank appends should not hit the sink: %#v", sink.messages)
	}

	if _, err := cs.Append("conv-nope", "hi"); err == nil {
		t.Fatalf("expected NotFoundError for unknown conversation")
	}
}
