package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Status      string    `json:"status"`
	Score       int       `json:"score"`
	AdminNotes  string    `json:"admin_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GenerationResponse struct {
	RequestID uuid.UUID       `json:"request_id"`
	Created   int             `json:"created"`
	Matches   []MatchResponse `json:"matches"`
}

type BatchGenerationItem struct {
	RequestID uuid.UUID `json:"request_id"`
	Created   int       `json:"created"`
	Error     string    `json:"error,omitempty"`
}

type BatchGenerationResponse struct {
	Items []BatchGenerationItem `json:"items"`
}
