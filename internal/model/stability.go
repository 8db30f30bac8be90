package model

// Stability is a human-friendly phase label for a point on the voltage grid.
// Keep these values stable; they are intended for CSV output.
type Stability string

const (
	// StabilityStable marks a grid point sitting on a hull vertex: a
	// single-phase ground state at that composition.
	StabilityStable Stability = "STABLE"
	// StabilityTwoPhase marks a grid point strictly between two hull
	// vertices: a two-phase region, which shows up as a voltage plateau.
	StabilityTwoPhase Stability = "TWO_PHASE"
)

func StabilityFromVertex(onVertex bool) Stability {
	if onVertex {
		return StabilityStable
	}
	return StabilityTwoPhase
}
