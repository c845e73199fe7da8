package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"stujob/internal/database"
	"stujob/internal/domain/candidate"
	"stujob/internal/domain/skill"
)

type CandidateRepository interface {
	FetchPool(ctx context.Context) ([]candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FetchPool(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, city, COALESCE(skills, '[]'::jsonb)
		 FROM candidates
		 ORDER BY last_name ASC, first_name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		var c candidate.Candidate
		var rawSkills []byte
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.City, &rawSkills); err != nil {
			return nil, err
		}
		// The skills document mixes bare names and structured records;
		// CandidateSkill decodes both shapes. A row whose document does not
		// parse keeps an empty list rather than failing the whole pool.
		if len(rawSkills) > 0 {
			var skills []skill.CandidateSkill
			if err := json.Unmarshal(rawSkills, &skills); err == nil {
				c.Skills = skills
			}
		}
		if c.ID == uuid.Nil {
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
