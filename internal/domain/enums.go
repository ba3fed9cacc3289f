package domain

// MentorStyle is the named tone preset controlling generated feedback voice.
type MentorStyle string

const (
	MentorStyleStrict    MentorStyle = "strict"
	MentorStyleGentle    MentorStyle = "gentle"
	MentorStyleBalanced  MentorStyle = "balanced"
	MentorStyleHilarious MentorStyle = "hilarious"
)

func (s MentorStyle) String() string { return string(s) }

func (s MentorStyle) IsValid() bool {
	switch s {
	case MentorStyleStrict, MentorStyleGentle, MentorStyleBalanced, MentorStyleHilarious:
		return true
	}
	return false
}

// EntryStatus is the completion status of a routine entry.
type EntryStatus string

const (
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusPartial   EntryStatus = "partial"
	EntryStatusSkipped   EntryStatus = "skipped"
	EntryStatusNotDone   EntryStatus = "not_done"
)

func (s EntryStatus) String() string { return string(s) }

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusCompleted, EntryStatusPartial, EntryStatusSkipped, EntryStatusNotDone:
		return true
	}
	return false
}

// IsMissed reports whether the entry counts as a miss (skipped or never started).
// Partial completions are neither a hit nor a miss.
func (s EntryStatus) IsMissed() bool {
	return s == EntryStatusSkipped || s == EntryStatusNotDone
}
