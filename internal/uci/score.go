package uci

// ScoreKind discriminates the engine's two evaluation regimes.
type ScoreKind uint8

const (
	// ScoreNone means the engine reported no evaluation.
	ScoreNone ScoreKind = iota
	// ScoreCentipawns is a positional evaluation in 1/100 pawn units.
	ScoreCentipawns
	// ScoreMate is a forced mate in N moves, signed by who delivers it.
	ScoreMate
)

// Score is an engine evaluation as found on an info line. It is relative
// to the side to move of the searched position. Exactly one regime applies:
// Kind selects it and Value holds the figure.
type Score struct {
	Kind  ScoreKind
	Value int
}

// Cp returns a centipawn score.
func Cp(v int) Score { return Score{Kind: ScoreCentipawns, Value: v} }

// MateIn returns a mate score.
func MateIn(n int) Score { return Score{Kind: ScoreMate, Value: n} }

// NoScore returns the absent evaluation.
func NoScore() Score { return Score{} }

// Negate flips the score to the opposite point of view.
func (s Score) Negate() Score {
	switch s.Kind {
	case ScoreCentipawns, ScoreMate:
		return Score{Kind: s.Kind, Value: -s.Value}
	default:
		return s
	}
}
