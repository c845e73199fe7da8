package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"stujob/internal/database"
	"stujob/internal/domain/match"
)

var (
	ErrMatchNotFound = errors.New("match not found")

	// ErrDuplicatePairing surfaces the UNIQUE(request_id, candidate_id)
	// constraint. Generation treats it as "already paired", not a failure.
	ErrDuplicatePairing = errors.New("duplicate pairing")
)

const uniqueViolationCode = "23505"

type MatchCreate struct {
	RequestID   uuid.UUID
	CandidateID uuid.UUID
	Status      match.Status
	Score       int
	AdminNotes  string
}

type MatchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (match.Match, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]match.Match, error)
	Create(ctx context.Context, mc MatchCreate) (match.Match, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) (match.Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, request_id, candidate_id, status, score, admin_notes, created_at, updated_at`

func (r *PostgresMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`,
		id,
	)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE request_id = $1 ORDER BY score DESC, created_at ASC`,
		requestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		var m match.Match
		var status string
		if err := rows.Scan(&m.ID, &m.RequestID, &m.CandidateID, &status, &m.Score, &m.AdminNotes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Status = match.Status(status)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMatchRepository) Create(ctx context.Context, mc MatchCreate) (match.Match, error) {
	id := uuid.New()
	now := time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (id, request_id, candidate_id, status, score, admin_notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, mc.RequestID, mc.CandidateID, string(mc.Status), mc.Score, mc.AdminNotes, now, now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return match.Match{}, ErrDuplicatePairing
		}
		return match.Match{}, err
	}

	return match.Match{
		ID:          id,
		RequestID:   mc.RequestID,
		CandidateID: mc.CandidateID,
		Status:      mc.Status,
		Score:       mc.Score,
		AdminNotes:  mc.AdminNotes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *PostgresMatchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status match.Status) (match.Match, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE matches SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return match.Match{}, err
	}
	if rowsAffected == 0 {
		return match.Match{}, ErrMatchNotFound
	}

	return r.FindByID(ctx, id)
}

func scanMatch(row database.Row) (match.Match, error) {
	var m match.Match
	var status string
	if err := row.Scan(&m.ID, &m.RequestID, &m.CandidateID, &status, &m.Score, &m.AdminNotes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, err
	}
	m.Status = match.Status(status)
	return m, nil
}
