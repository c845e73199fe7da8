package matching

// Band is the display label derived from a score. It never feeds back into
// scoring or persistence.
type Band string

const (
	BandHigh   Band = "highly compatible"
	BandMedium Band = "compatible"
	BandLow    Band = "low compatibility"
)

// Thresholds holds the lower bounds for the high and medium bands.
type Thresholds struct {
	High   int
	Medium int
}

// The two views carry different threshold sets on purpose: the stricter pair
// annotates persisted matches awaiting admin acceptance, the looser pair the
// exploratory compare-all view. Do not unify them without a product decision.
var (
	MatchedThresholds = Thresholds{High: 80, Medium: 60}
	CompareThresholds = Thresholds{High: 70, Medium: 50}
)

func (t Thresholds) For(score int) Band {
	switch {
	case score >= t.High:
		return BandHigh
	case score >= t.Medium:
		return BandMedium
	default:
		return BandLow
	}
}
