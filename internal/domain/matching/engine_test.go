package matching

import (
	"testing"

	"stujob/internal/domain/skill"
)

func requiredList(entries ...skill.RequiredSkill) []skill.RequiredSkill {
	return entries
}

func names(values ...string) []skill.CandidateSkill {
	out := make([]skill.CandidateSkill, 0, len(values))
	for _, v := range values {
		out = append(out, skill.NameSkill(v))
	}
	return out
}

func TestCalculate_WeightedCoverage(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityFlexible},
	)

	// Matches only the mandatory entry: 3 of 5 weight -> 60.
	if got := Calculate(names("Excel", "Powerpoint"), required); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestCalculate_CaseAndAccentInsensitive(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityFlexible},
	)
	if got := Calculate(names("excel", "sql"), required); got != 100 {
		t.Fatalf("expected 100 for case-mismatched full coverage, got %d", got)
	}

	accented := requiredList(
		skill.RequiredSkill{Name: "Gestion de équipe", Priority: skill.PriorityMandatory},
	)
	if got := Calculate(names("gestion de equipe"), accented); got != 100 {
		t.Fatalf("expected 100 for accent-mismatched coverage, got %d", got)
	}
}

func TestCalculate_EmptyInputs(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
	)
	if got := Calculate(nil, required); got != 0 {
		t.Fatalf("expected 0 for empty candidate skills, got %d", got)
	}
	if got := Calculate(names("Excel"), nil); got != 0 {
		t.Fatalf("expected 0 for empty required list, got %d", got)
	}
	if got := Calculate(nil, nil); got != 0 {
		t.Fatalf("expected 0 for both lists empty, got %d", got)
	}
}

func TestCalculate_DuplicatesCountPerEntry(t *testing.T) {
	// Communication appears twice; both entries contribute independently.
	required := requiredList(
		skill.RequiredSkill{Name: "Communication", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "Communication", Priority: skill.PriorityOptional},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityMandatory},
	)
	// Owns Communication only: (3+1)/(3+1+3) = 4/7 -> 57.
	if got := Calculate(names("communication"), required); got != 57 {
		t.Fatalf("expected 57, got %d", got)
	}
}

func TestCalculate_MalformedSkillsAreUnmatched(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityMandatory},
	)
	candidateSkills := []skill.CandidateSkill{
		{Kind: skill.KindDetailed, Level: 3}, // no label, unresolvable
		skill.NameSkill("Excel"),
	}
	if got := Calculate(candidateSkills, required); got != 50 {
		t.Fatalf("expected 50 with malformed record ignored, got %d", got)
	}
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	// 1 of 8 weight: 12.5 rounds up to 13.
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityOptional},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityOptional},
		skill.RequiredSkill{Name: "Redaction", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "Anglais", Priority: skill.PriorityMandatory},
	)
	if got := Calculate(names("Excel"), required); got != 13 {
		t.Fatalf("expected 13 for 12.5%%, got %d", got)
	}
}

func TestCalculate_MonotoneInCoverage(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityFlexible},
		skill.RequiredSkill{Name: "Anglais", Priority: skill.PriorityOptional},
	)
	prev := 0
	owned := []string{}
	for _, add := range []string{"Anglais", "SQL", "Excel"} {
		owned = append(owned, add)
		got := Calculate(names(owned...), required)
		if got < prev {
			t.Fatalf("score dropped from %d to %d after adding %q", prev, got, add)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("expected full coverage to score 100, got %d", prev)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	required := requiredList(
		skill.RequiredSkill{Name: "Excel", Priority: skill.PriorityMandatory},
		skill.RequiredSkill{Name: "SQL", Priority: skill.PriorityFlexible},
		skill.RequiredSkill{Name: "Communication", Priority: skill.PriorityOptional},
	)
	candidateSkills := names("sql", "Communication ")
	first := Calculate(candidateSkills, required)
	for i := 0; i < 10; i++ {
		if got := Calculate(candidateSkills, required); got != first {
			t.Fatalf("nondeterministic score: %d vs %d", got, first)
		}
	}
}
