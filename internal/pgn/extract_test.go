package pgn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movetext = "1. e4 e5 2. Nf3 Nc6 *"

const tagged = `[White "Karpov"]
[Black "Kasparov"]
[Result "1/2-1/2"]

1. e4 e5 *`

func TestExtractMarkerStrategy(t *testing.T) {
	raw := "2024-01-02 12:00:01 game finished\nPGN:\n" + movetext
	block, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, movetext, block)
}

func TestExtractTagStrategy(t *testing.T) {
	raw := "log line one\nanother log line\n" + tagged
	block, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, tagged, block)
}

func TestExtractMoveNumberStrategy(t *testing.T) {
	raw := "noise without tags\nmore noise\n" + movetext
	block, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, movetext, block)
}

func TestExtractSameBlockRegardlessOfStrategy(t *testing.T) {
	variants := []string{
		"PGN:\n" + movetext,
		"noise\n" + movetext,
	}
	for _, raw := range variants {
		block, err := Extract(raw)
		require.NoError(t, err)
		assert.Equal(t, movetext, block)
	}
}

func TestExtractEmptyMarkerBlockFallsThrough(t *testing.T) {
	// The marker exists but nothing follows it; the tag strategy takes
	// over and the record still parses.
	raw := tagged + "\nPGN:\n"
	block, err := Extract(raw)
	require.NoError(t, err)
	assert.Contains(t, block, `[White "Karpov"]`)
	assert.Contains(t, block, "1. e4 e5")
}

func TestExtractNotFound(t *testing.T) {
	_, err := Extract("just a log file\nwith nothing useful\n")
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestParseHeadersAndPlies(t *testing.T) {
	rec, err := Parse(tagged)
	require.NoError(t, err)

	assert.Equal(t, "Karpov", rec.White)
	assert.Equal(t, "Kasparov", rec.Black)
	assert.Equal(t, "1/2-1/2", rec.Result)

	require.Len(t, rec.Plies, 2)
	assert.Equal(t, 1, rec.Plies[0].Index)
	assert.True(t, rec.Plies[0].White)
	assert.Equal(t, "e4", rec.Plies[0].SAN)
	assert.Equal(t, "e2e4", rec.Plies[0].UCI)
	assert.Equal(t, 2, rec.Plies[1].Index)
	assert.False(t, rec.Plies[1].White)
	assert.Equal(t, "e5", rec.Plies[1].SAN)
}

func TestParseDefaultsMissingHeaders(t *testing.T) {
	rec, err := Parse(movetext)
	require.NoError(t, err)
	assert.Equal(t, "White", rec.White)
	assert.Equal(t, "Black", rec.Black)
	assert.Equal(t, "*", rec.Result)
}

func TestParsePliesAreContiguous(t *testing.T) {
	rec, err := Parse(movetext)
	require.NoError(t, err)
	require.Len(t, rec.Plies, 4)
	for i, ply := range rec.Plies {
		assert.Equal(t, i+1, ply.Index)
		assert.Equal(t, i%2 == 0, ply.White)
		assert.NotEmpty(t, ply.FEN)
	}
}

func TestSANForUCI(t *testing.T) {
	rec, err := Parse(movetext)
	require.NoError(t, err)

	san, ok := SANForUCI(rec.Plies[0].FEN, "g1f3")
	require.True(t, ok)
	assert.Equal(t, "Nf3", san)

	_, ok = SANForUCI(rec.Plies[0].FEN, "zz99")
	assert.False(t, ok)
}
