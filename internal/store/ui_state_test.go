package store

import (
	"context"
	"reflect"
	"testing"
)

func TestUIState_SaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	// Missing database => default state.
	st0, err := s.LoadUIState(ctx)
	if err != nil {
		t.Fatalf("LoadUIState: %v", err)
	}
	if st0 == nil || st0.Version != 1 {
		t.Fatalf("expected default Version=1; got %#v", st0)
	}

	want := &UIState{
		Version:            1,
		Screen:             "teams",
		OpenConversationID: "conv-1",
		OpenTeamID:         "team-1",
		DiscoverCategory:   "frontend",
	}

	if err := s.SaveUIState(ctx, want); err != nil {
		t.Fatalf("SaveUIState: %v", err)
	}

	got, err := s.LoadUIState(ctx)
	if err != nil {
		t.Fatalf("LoadUIState (after save): %v", err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestUIState_BlankDirIsNoOp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{}

	if err := s.SaveUIState(ctx, &UIState{Screen: "chats"}); err != nil {
		t.Fatalf("SaveUIState with blank dir: %v", err)
	}
	st, err := s.LoadUIState(ctx)
	if err != nil {
		t.Fatalf("LoadUIState with blank dir: %v", err)
	}
	if st.Version != 1 || st.Screen != "" {
		t.Fatalf("expected fresh default state, got %#v", st)
	}
}
