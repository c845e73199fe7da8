package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"stujob/internal/database"
	"stujob/internal/domain/request"
	"stujob/internal/domain/skill"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (request.Request, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FetchRequiredSkills(ctx context.Context, requestID uuid.UUID) ([]skill.RequiredSkill, error)
}

type PostgresRequestRepository struct {
	db database.DB
}

func NewPostgresRequestRepository(db database.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{db: db}
}

func (r *PostgresRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (request.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(location, ''), COALESCE(description, ''), created_at
		 FROM requests
		 WHERE id = $1`,
		id,
	)

	var req request.Request
	if err := row.Scan(&req.ID, &req.Title, &req.Location, &req.Description, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, ErrRequestNotFound
		}
		return request.Request{}, err
	}
	return req, nil
}

func (r *PostgresRequestRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRequestRepository) FetchRequiredSkills(ctx context.Context, requestID uuid.UUID) ([]skill.RequiredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, priority
		 FROM request_skills
		 WHERE request_id = $1
		 ORDER BY position ASC, name ASC`,
		requestID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.RequiredSkill, 0)
	for rows.Next() {
		var name, priority string
		if err := rows.Scan(&name, &priority); err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, skill.RequiredSkill{Name: name, Priority: skill.ParsePriority(priority)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
