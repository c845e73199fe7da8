package dto

import "github.com/google/uuid"

type RankedCandidateResponse struct {
	CandidateID    uuid.UUID `json:"candidate_id"`
	Name           string    `json:"name"`
	City           string    `json:"city,omitempty"`
	Score          int       `json:"score"`
	Band           string    `json:"band"`
	AlreadyMatched bool      `json:"already_matched"`
	MatchID        uuid.UUID `json:"match_id,omitempty"`
	MatchStatus    string    `json:"match_status,omitempty"`
}

type RankingResponse struct {
	RequestID  uuid.UUID                 `json:"request_id"`
	Mode       string                    `json:"mode"`
	Candidates []RankedCandidateResponse `json:"candidates"`
}
