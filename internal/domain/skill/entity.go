package skill

import (
	"encoding/json"
	"strings"
)

// Priority expresses how strongly a request needs a skill. The weights feed
// the compatibility score denominator, so a missing mandatory skill costs
// three times as much as a missing optional one.
type Priority string

const (
	PriorityMandatory Priority = "mandatory"
	PriorityFlexible  Priority = "flexible"
	PriorityOptional  Priority = "optional"
)

func (p Priority) Weight() int {
	switch p {
	case PriorityMandatory:
		return 3
	case PriorityFlexible:
		return 2
	default:
		return 1
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityMandatory, PriorityFlexible, PriorityOptional:
		return true
	}
	return false
}

// ParsePriority maps stored priority labels to the enum. Unknown labels fall
// back to optional; historical rows carry a few free-typed values.
func ParsePriority(raw string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityMandatory:
		return PriorityMandatory
	case PriorityFlexible:
		return PriorityFlexible
	default:
		return PriorityOptional
	}
}

// RequiredSkill is one entry of a request's declared needs. Requests may list
// the same name more than once; each entry keeps its own weight.
type RequiredSkill struct {
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
}

// Kind discriminates the two shapes a candidate skill arrives in. Older
// profiles store a bare name, newer ones a structured record with a level.
type Kind string

const (
	KindName     Kind = "name"
	KindDetailed Kind = "detailed"
)

// CandidateSkill is a tagged union over the two stored shapes. Name is set
// for KindName, Label/Level/Description for KindDetailed. Use RawName to get
// the comparable name regardless of shape.
type CandidateSkill struct {
	Kind Kind

	Name string

	Label       string
	Level       int
	Description string
}

func NameSkill(name string) CandidateSkill {
	return CandidateSkill{Kind: KindName, Name: name}
}

func DetailedSkill(label string, level int, description string) CandidateSkill {
	return CandidateSkill{Kind: KindDetailed, Label: label, Level: level, Description: description}
}

// RawName returns the display name backing the skill. The second return is
// false for records that carry no resolvable name; those never match
// anything but are not an error.
func (s CandidateSkill) RawName() (string, bool) {
	var name string
	switch s.Kind {
	case KindName:
		name = s.Name
	case KindDetailed:
		name = s.Label
	default:
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

type detailedSkillJSON struct {
	Label       string `json:"label"`
	Level       int    `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts both stored shapes: a bare JSON string or an object
// with label/level/description.
func (s *CandidateSkill) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = NameSkill(name)
		return nil
	}

	var d detailedSkillJSON
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	*s = DetailedSkill(d.Label, d.Level, d.Description)
	return nil
}

func (s CandidateSkill) MarshalJSON() ([]byte, error) {
	if s.Kind == KindDetailed {
		return json.Marshal(detailedSkillJSON{Label: s.Label, Level: s.Level, Description: s.Description})
	}
	return json.Marshal(s.Name)
}
