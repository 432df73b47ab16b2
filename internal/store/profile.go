package store

import (
	"strings"

	"hackmatch/internal/model"
)

// ProfileEditor manages profile edits as a draft over an immutable
// committed copy. Mutations only touch the draft; Commit replaces the
// committed copy atomically and Discard throws the draft away.
type ProfileEditor struct {
	committed model.ProfileData
	draft     *model.ProfileData
	sink      PersistenceSink
}

func NewProfileEditor(p model.ProfileData, sink PersistenceSink) *ProfileEditor {
	if sink == nil {
		sink = NopSink{}
	}
	return &ProfileEditor{committed: p, sink: sink}
}

// Current returns a deep copy of the committed profile, so callers can
// never reach committed state through shared slices. Edits in progress are
// not visible here until Commit.
func (pe *ProfileEditor) Current() model.ProfileData {
	return pe.committed.Clone()
}

// Editing reports whether a draft session is open.
func (pe *ProfileEditor) Editing() bool {
	return pe.draft != nil
}

// BeginEdit opens a draft seeded from the committed profile. Calling it
// while a draft is open restarts the draft from committed state.
func (pe *ProfileEditor) BeginEdit() *model.ProfileData {
	d := pe.committed.Clone()
	pe.draft = &d
	return pe.draft
}

// Draft returns the open draft, or false when not editing.
func (pe *ProfileEditor) Draft() (*model.ProfileData, bool) {
	if pe.draft == nil {
		return nil, false
	}
	return pe.draft, true
}

// SetName, SetBio and SetLocation update scalar draft fields. Outside an
// edit session they do nothing.
func (pe *ProfileEditor) SetName(v string) {
	if pe.draft != nil {
		pe.draft.Name = v
	}
}

func (pe *ProfileEditor) SetBio(v string) {
	if pe.draft != nil {
		pe.draft.Bio = v
	}
}

func (pe *ProfileEditor) SetLocation(v string) {
	if pe.draft != nil {
		pe.draft.Location = v
	}
}

// AddSkill appends a skill to the draft. Empty input and duplicates
// (case-insensitive) are silently ignored.
func (pe *ProfileEditor) AddSkill(skill string) {
	if pe.draft == nil {
		return
	}
	pe.draft.Skills = appendUnique(pe.draft.Skills, skill)
}

// RemoveSkill deletes the skill matching the tag (case-insensitive).
// Absent tags are ignored.
func (pe *ProfileEditor) RemoveSkill(skill string) {
	if pe.draft == nil {
		return
	}
	pe.draft.Skills = removeTag(pe.draft.Skills, skill)
}

// AddInterest appends an interest to the draft with the same rules as
// AddSkill.
func (pe *ProfileEditor) AddInterest(interest string) {
	if pe.draft == nil {
		return
	}
	pe.draft.Interests = appendUnique(pe.draft.Interests, interest)
}

// RemoveInterest deletes the interest matching the tag.
func (pe *ProfileEditor) RemoveInterest(interest string) {
	if pe.draft == nil {
		return
	}
	pe.draft.Interests = removeTag(pe.draft.Interests, interest)
}

// Commit replaces the committed profile with the draft and closes the
// session. Without an open draft it is a no-op.
func (pe *ProfileEditor) Commit() (model.ProfileData, error) {
	if pe.draft == nil {
		return pe.committed.Clone(), nil
	}
	pe.committed = pe.draft.Clone()
	pe.draft = nil
	if err := pe.sink.SaveProfile(pe.committed); err != nil {
		return pe.committed.Clone(), err
	}
	return pe.committed.Clone(), nil
}

// Discard drops the draft, leaving the committed profile untouched.
func (pe *ProfileEditor) Discard() {
	pe.draft = nil
}

func removeTag(list []string, v string) []string {
	v = strings.TrimSpace(v)
	for i, existing := range list {
		if strings.EqualFold(existing, v) {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func appendUnique(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, v) {
			return list
		}
	}
	return append(list, v)
}
