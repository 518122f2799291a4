package review

// Label is the qualitative verdict on one played move.
type Label string

const (
	LabelBest       Label = "Best"
	LabelExcellent  Label = "Excellent"
	LabelGood       Label = "Good"
	LabelInaccuracy Label = "Inaccuracy"
	LabelMistake    Label = "Mistake"
	LabelBlunder    Label = "Blunder"
	LabelUnknown    Label = "Unknown"
)

// Verdict pairs the classification with the centipawn loss, when one is
// computable. Mate comparisons never produce a loss figure.
type Verdict struct {
	Loss    int
	HasLoss bool
	Label   Label
}

// Classify compares the engine's best line against the played move, both
// from the mover's point of view. The mate regime is handled entirely
// separately from the centipawn regime: a centipawn delta is meaningless
// once either side of the comparison is a forced mate.
func Classify(best, played Score) Verdict {
	bestMate := best.Kind == Mate
	playedMate := played.Kind == Mate

	if bestMate || playedMate {
		if !bestMate || !playedMate {
			// A forced mate exists on only one side of the comparison:
			// the mover either threw a mate away or walked into one.
			return Verdict{Label: LabelBlunder}
		}
		switch {
		case best.Value > 0 && played.Value > 0:
			// Mover keeps a winning mate; only a slower one is penalized.
			if abs(played.Value) > abs(best.Value) {
				return Verdict{Label: LabelInaccuracy}
			}
			return Verdict{Label: LabelBest}
		case best.Value < 0 && played.Value < 0:
			// Mover is getting mated; compare how long it holds out.
			switch {
			case abs(played.Value) == abs(best.Value):
				return Verdict{Label: LabelBest}
			case abs(played.Value) < abs(best.Value):
				return Verdict{Label: LabelBlunder}
			default:
				return Verdict{Label: LabelGood}
			}
		default:
			// The forced result flips between the two moves.
			return Verdict{Label: LabelBlunder}
		}
	}

	if best.Kind == Centipawns && played.Kind == Centipawns {
		loss := best.Value - played.Value
		if loss < 0 {
			// Re-querying the engine per move is a known noise source; a
			// played move out-scoring the best line is floored, not fixed.
			loss = 0
		}
		return Verdict{Loss: loss, HasLoss: true, Label: labelForLoss(loss)}
	}

	return Verdict{Label: LabelUnknown}
}

func labelForLoss(loss int) Label {
	switch {
	case loss <= 10:
		return LabelBest
	case loss <= 20:
		return LabelExcellent
	case loss <= 50:
		return LabelGood
	case loss <= 99:
		return LabelInaccuracy
	case loss <= 299:
		return LabelMistake
	default:
		return LabelBlunder
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
