package candidate

import (
	"github.com/google/uuid"

	"stujob/internal/domain/skill"
)

type Candidate struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	City      string
	Skills    []skill.CandidateSkill
}

func (c Candidate) DisplayName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
