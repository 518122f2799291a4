package pgn

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

// Ply is one half-move of the main line. FEN is the position before the
// move is made; plies are contiguous from the starting position.
type Ply struct {
	Index int // 1-based
	White bool
	SAN   string
	UCI   string
	FEN   string
}

// Record is a parsed game: main-line plies plus the header tags the report
// cares about.
type Record struct {
	White  string
	Black  string
	Result string
	Plies  []Ply
}

// Parse builds a Record from a movetext block. Variations off the main
// line are retained by the underlying game but never surface as plies.
func Parse(movetext string) (*Record, error) {
	pgnFunc, err := nchess.PGN(strings.NewReader(movetext))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	game := nchess.NewGame(pgnFunc)

	moves := game.Moves()
	positions := game.Positions()
	if len(positions) < len(moves)+1 {
		return nil, fmt.Errorf("%w: inconsistent main line", ErrUnparsable)
	}

	plies := make([]Ply, 0, len(moves))
	for i, mv := range moves {
		pos := positions[i]
		plies = append(plies, Ply{
			Index: i + 1,
			White: pos.Turn() == nchess.White,
			SAN:   nchess.AlgebraicNotation{}.Encode(pos, mv),
			UCI:   nchess.UCINotation{}.Encode(pos, mv),
			FEN:   pos.String(),
		})
	}

	return &Record{
		White:  tagOr(game, "White", "White"),
		Black:  tagOr(game, "Black", "Black"),
		Result: tagOr(game, "Result", "*"),
		Plies:  plies,
	}, nil
}

// ExtractRecord runs Extract then Parse.
func ExtractRecord(raw string) (*Record, error) {
	block, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	return Parse(block)
}

// SANForUCI renders a UCI move in standard algebraic notation against the
// position given by fen. Reports false when the FEN or the move does not
// decode.
func SANForUCI(fen, uciMove string) (string, bool) {
	fenFunc, err := nchess.FEN(fen)
	if err != nil {
		return "", false
	}
	pos := nchess.NewGame(fenFunc).Position()
	mv, err := nchess.UCINotation{}.Decode(pos, uciMove)
	if err != nil {
		return "", false
	}
	return nchess.AlgebraicNotation{}.Encode(pos, mv), true
}

func tagOr(game *nchess.Game, key, fallback string) string {
	if v := strings.TrimSpace(game.GetTagPair(key)); v != "" {
		return v
	}
	return fallback
}
