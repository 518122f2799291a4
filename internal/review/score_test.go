package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/park285/chess-review/internal/uci"
)

func TestNormalizeSameSide(t *testing.T) {
	got := Normalize(uci.Cp(42), true, true)
	assert.Equal(t, Score{Kind: Centipawns, Value: 42}, got)

	got = Normalize(uci.MateIn(3), false, false)
	assert.Equal(t, Score{Kind: Mate, Value: 3}, got)
}

func TestNormalizeOppositeSide(t *testing.T) {
	// The searched position has black to move but the mover under review
	// is white: the sign flips.
	got := Normalize(uci.Cp(42), false, true)
	assert.Equal(t, Score{Kind: Centipawns, Value: -42}, got)

	got = Normalize(uci.MateIn(3), false, true)
	assert.Equal(t, Score{Kind: Mate, Value: -3}, got)

	got = Normalize(uci.MateIn(-5), true, false)
	assert.Equal(t, Score{Kind: Mate, Value: 5}, got)
}

func TestNormalizeAbsentScoreStaysUnknown(t *testing.T) {
	got := Normalize(uci.NoScore(), true, false)
	assert.Equal(t, Unknown, got.Kind)
	assert.Zero(t, got.Value)
}

func TestNormalizeNeverBlendsRegimes(t *testing.T) {
	cp := Normalize(uci.Cp(0), true, true)
	assert.Equal(t, Centipawns, cp.Kind)

	mate := Normalize(uci.MateIn(1), true, true)
	assert.Equal(t, Mate, mate.Kind)
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "M+3", Score{Kind: Mate, Value: 3}.String())
	assert.Equal(t, "M-2", Score{Kind: Mate, Value: -2}.String())
	assert.Equal(t, "+0.34", Score{Kind: Centipawns, Value: 34}.String())
	assert.Equal(t, "-2.50", Score{Kind: Centipawns, Value: -250}.String())
	assert.Equal(t, "+0.00", Score{Kind: Centipawns, Value: 0}.String())
	assert.Equal(t, "?", Score{}.String())
}
