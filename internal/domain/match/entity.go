package match

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusProposed Status = "proposed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProposed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

// CanTransition reports whether a persisted match may move from s to target.
// Proposed forks into Accepted or Rejected; both of those are terminal.
func (s Status) CanTransition(target Status) bool {
	if s != StatusProposed {
		return false
	}
	return target == StatusAccepted || target == StatusRejected
}

// Match is a persisted pairing between one request and one candidate. Score
// is a snapshot taken at generation time and never recomputed afterwards.
// At most one match exists per (request, candidate) pair.
type Match struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	CandidateID uuid.UUID
	Status      Status
	Score       int
	AdminNotes  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
