package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"stujob/internal/domain/candidate"
	"stujob/internal/domain/match"
	"stujob/internal/domain/request"
	"stujob/internal/domain/skill"
	"stujob/internal/repository"
)

type fakeRequestRepo struct {
	known    map[uuid.UUID][]skill.RequiredSkill
	existErr error
	skillErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{known: make(map[uuid.UUID][]skill.RequiredSkill)}
}

func (r *fakeRequestRepo) add(id uuid.UUID, required ...skill.RequiredSkill) {
	r.known[id] = required
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (request.Request, error) {
	if r.existErr != nil {
		return request.Request{}, r.existErr
	}
	if _, ok := r.known[id]; !ok {
		return request.Request{}, repository.ErrRequestNotFound
	}
	return request.Request{ID: id, Title: "Test request"}, nil
}

func (r *fakeRequestRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if r.existErr != nil {
		return false, r.existErr
	}
	_, ok := r.known[id]
	return ok, nil
}

func (r *fakeRequestRepo) FetchRequiredSkills(_ context.Context, id uuid.UUID) ([]skill.RequiredSkill, error) {
	if r.skillErr != nil {
		return nil, r.skillErr
	}
	return r.known[id], nil
}

type fakeCandidateRepo struct {
	pool []candidate.Candidate
	err  error
}

func (r *fakeCandidateRepo) FetchPool(context.Context) ([]candidate.Candidate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.pool, nil
}

// fakeMatchRepo mirrors the store contract, including the unique pairing
// constraint. failOn makes Create fail for chosen candidates to exercise
// per-candidate isolation.
type fakeMatchRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]match.Match
	failOn  map[uuid.UUID]error
	updated int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		byID:   make(map[uuid.UUID]match.Match),
		failOn: make(map[uuid.UUID]error),
	}
}

func (r *fakeMatchRepo) FindByID(_ context.Context, id uuid.UUID) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return match.Match{}, repository.ErrMatchNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []match.Match
	for _, m := range r.byID {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Create(_ context.Context, mc repository.MatchCreate) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failOn[mc.CandidateID]; ok {
		return match.Match{}, err
	}
	for _, m := range r.byID {
		if m.RequestID == mc.RequestID && m.CandidateID == mc.CandidateID {
			return match.Match{}, repository.ErrDuplicatePairing
		}
	}
	now := time.Now()
	m := match.Match{
		ID:          uuid.New(),
		RequestID:   mc.RequestID,
		CandidateID: mc.CandidateID,
		Status:      mc.Status,
		Score:       mc.Score,
		AdminNotes:  mc.AdminNotes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.byID[m.ID] = m
	return m, nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, id uuid.UUID, status match.Status) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return match.Match{}, repository.ErrMatchNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now()
	r.byID[id] = m
	r.updated++
	return m, nil
}

func (r *fakeMatchRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// fakeCache records operations so tests can assert on invalidation.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
	sets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deleted = append(c.deleted, key)
	return nil
}
