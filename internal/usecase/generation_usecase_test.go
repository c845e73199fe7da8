package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"stujob/internal/domain/candidate"
	"stujob/internal/domain/match"
	"stujob/internal/domain/skill"
)

func poolCandidate(firstName string, skillNames ...string) candidate.Candidate {
	skills := make([]skill.CandidateSkill, 0, len(skillNames))
	for _, n := range skillNames {
		skills = append(skills, skill.NameSkill(n))
	}
	return candidate.Candidate{ID: uuid.New(), FirstName: firstName, Skills: skills}
}

func TestGenerateMatches_CreatesProposedWithSnapshotScore(t *testing.T) {
	requestID := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(requestID,
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityFlexible},
	)
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{
		poolCandidate("Alice", "excel", "sql"),
		poolCandidate("Bruno", "Excel"),
	}}
	matches := newFakeMatchRepo()

	u := NewMatchGeneration(requests, candidates, matches, GenerationPolicy{MinScore: 1}, nil, nil)

	created, err := u.GenerateMatches(context.Background(), requestID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(created))
	}

	scores := make(map[int]bool)
	for _, m := range created {
		if m.Status != match.StatusProposed {
			t.Fatalf("expected proposed status, got %q", m.Status)
		}
		if m.RequestID != requestID {
			t.Fatalf("wrong request id on match: %s", m.RequestID)
		}
		scores[m.Score] = true
	}
	if !scores[100] || !scores[60] {
		t.Fatalf("expected snapshot scores {100, 60}, got %v", scores)
	}
}

func TestGenerateMatches_Idempotent(t *testing.T) {
	requestID := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(requestID, skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory})
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{
		poolCandidate("A", "Excel"),
		poolCandidate("B", "Excel"),
		poolCandidate("C", "Excel"),
	}}
	matches := newFakeMatchRepo()

	u := NewMatchGeneration(requests, candidates, matches, GenerationPolicy{MinScore: 1}, nil, nil)

	ctx := context.Background()
	if _, err := u.GenerateMatches(ctx, requestID); err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := u.GenerateMatches(ctx, requestID)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run should create nothing, created %d", len(second))
	}
	if got := matches.count(); got != 3 {
		t.Fatalf("expected 3 persisted matches after both runs, got %d", got)
	}
}

func TestGenerateMatches_RespectsMinScore(t *testing.T) {
	requestID := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(requestID,
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityMandatory},
	)
	low := poolCandidate("Low", "Powerpoint") // scores 0
	mid := poolCandidate("Mid", "Excel")      // scores 50
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{low, mid}}
	matches := newFakeMatchRepo()

	u := NewMatchGeneration(requests, candidates, matches, GenerationPolicy{MinScore: 40}, nil, nil)

	created, err := u.GenerateMatches(context.Background(), requestID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(created) != 1 || created[0].CandidateID != mid.ID {
		t.Fatalf("expected only the mid candidate persisted, got %+v", created)
	}
}

func TestGenerateMatches_FailureIsolatedPerCandidate(t *testing.T) {
	requestID := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(requestID, skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory})
	broken := poolCandidate("Broken", "Excel")
	fine := poolCandidate("Fine", "Excel")
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{broken, fine}}
	matches := newFakeMatchRepo()
	matches.failOn[broken.ID] = errors.New("insert blew up")

	u := NewMatchGeneration(requests, candidates, matches, GenerationPolicy{MinScore: 1}, nil, nil)

	created, err := u.GenerateMatches(context.Background(), requestID)
	if err != nil {
		t.Fatalf("generate should not fail as a whole: %v", err)
	}
	if len(created) != 1 || created[0].CandidateID != fine.ID {
		t.Fatalf("expected the healthy candidate persisted, got %+v", created)
	}
}

func TestGenerateMatches_UnknownRequest(t *testing.T) {
	u := NewMatchGeneration(newFakeRequestRepo(), &fakeCandidateRepo{}, newFakeMatchRepo(), GenerationPolicy{}, nil, nil)

	if _, err := u.GenerateMatches(context.Background(), uuid.New()); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if _, err := u.GenerateMatches(context.Background(), uuid.Nil); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound for nil id, got %v", err)
	}
}

func TestGenerateMatches_InvalidatesRankCache(t *testing.T) {
	requestID := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(requestID, skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory})
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{poolCandidate("A", "Excel")}}
	cache := newFakeCache()

	u := NewMatchGeneration(requests, candidates, newFakeMatchRepo(), GenerationPolicy{MinScore: 1}, cache, nil)

	if _, err := u.GenerateMatches(context.Background(), requestID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(cache.deleted) != 2 {
		t.Fatalf("expected both mode keys invalidated, got %v", cache.deleted)
	}
}

func TestGenerateForRequests_IsolatesFailures(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()
	requests := newFakeRequestRepo()
	requests.add(known, skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory})
	candidates := &fakeCandidateRepo{pool: []candidate.Candidate{poolCandidate("A", "Excel")}}

	u := NewMatchGeneration(requests, candidates, newFakeMatchRepo(), GenerationPolicy{MinScore: 1}, nil, nil)

	res, err := u.GenerateForRequests(context.Background(), []uuid.UUID{known, unknown})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(res.Created[known]) != 1 {
		t.Fatalf("expected 1 match for known request, got %d", len(res.Created[known]))
	}
	if !errors.Is(res.Failed[unknown], ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound for unknown request, got %v", res.Failed[unknown])
	}
	if _, ok := res.Failed[known]; ok {
		t.Fatalf("known request should not be in the failed set")
	}
}

func TestGenerateForRequests_Empty(t *testing.T) {
	u := NewMatchGeneration(newFakeRequestRepo(), &fakeCandidateRepo{}, newFakeMatchRepo(), GenerationPolicy{}, nil, nil)

	res, err := u.GenerateForRequests(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if len(res.Created) != 0 || len(res.Failed) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
