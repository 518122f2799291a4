// Package review evaluates played moves against the engine's best
// alternative and classifies the difference.
package review

import (
	"fmt"

	"github.com/park285/chess-review/internal/uci"
)

// Kind discriminates a normalized score.
type Kind uint8

const (
	// Unknown means the engine reported no evaluation. Distinct from a
	// zero centipawn score.
	Unknown Kind = iota
	// Centipawns is a positional evaluation from the mover's view.
	Centipawns
	// Mate is a forced mate count; positive means the mover mates.
	Mate
)

// Score is a point-of-view evaluation: exactly one regime applies, selected
// by Kind. Centipawn and mate values are never blended.
type Score struct {
	Kind  Kind
	Value int
}

// Normalize reorients a raw engine score to the mover's point of view.
// Engine scores are relative to the side to move of the searched position
// (whiteToMove); the mover of the ply under review may be the other side.
func Normalize(raw uci.Score, whiteToMove, moverWhite bool) Score {
	if raw.Kind == uci.ScoreNone {
		return Score{}
	}
	if whiteToMove != moverWhite {
		raw = raw.Negate()
	}
	switch raw.Kind {
	case uci.ScoreMate:
		return Score{Kind: Mate, Value: raw.Value}
	default:
		return Score{Kind: Centipawns, Value: raw.Value}
	}
}

// String renders the score for the report: "M+3" for mate, signed pawns
// with two decimals for centipawns, "?" when absent.
func (s Score) String() string {
	switch s.Kind {
	case Mate:
		return fmt.Sprintf("M%+d", s.Value)
	case Centipawns:
		return fmt.Sprintf("%+.2f", float64(s.Value)/100.0)
	default:
		return "?"
	}
}
