package review

import (
	"context"

	"go.uber.org/zap"

	"github.com/park285/chess-review/internal/pgn"
	"github.com/park285/chess-review/internal/uci"
)

// Searcher is the slice of the engine session the evaluator needs.
type Searcher interface {
	Search(ctx context.Context, req uci.SearchRequest) (uci.SearchResponse, error)
}

// Evaluation is the outcome of reviewing one ply: the engine's suggested
// move and the mover-POV scores after the suggestion and after the move
// actually played.
type Evaluation struct {
	BestMoveUCI string
	Best        Score
	Played      Score
}

// Evaluator asks the engine for a suggestion and two follow-up scores per
// ply, all with the same search budget so the scores stay comparable.
type Evaluator struct {
	sess   Searcher
	limits uci.Limits
	log    *zap.Logger
}

func NewEvaluator(sess Searcher, limits uci.Limits, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{sess: sess, limits: limits, log: logger}
}

// EvaluatePly issues three serialized requests: the pre-move position for
// the suggestion, the position after the played move, and the position
// after the suggested move. Missing scores and a missing suggestion
// degrade to Unknown/empty for this ply only; they never abort the run.
func (e *Evaluator) EvaluatePly(ctx context.Context, ply pgn.Ply) Evaluation {
	var out Evaluation

	resp, err := e.sess.Search(ctx, uci.SearchRequest{FEN: ply.FEN, Limits: e.limits})
	if err != nil {
		e.log.Warn("suggestion search failed", zap.Int("ply", ply.Index), zap.Error(err))
	} else {
		out.BestMoveUCI = suggestedMove(resp)
	}

	out.Played = e.scoreAfter(ctx, ply, ply.UCI, "played")
	if out.BestMoveUCI != "" {
		out.Best = e.scoreAfter(ctx, ply, out.BestMoveUCI, "best")
	}
	return out
}

// scoreAfter evaluates the position reached from the ply's position by one
// move, normalized to the mover's point of view. After the move the other
// side is to move, which Normalize accounts for.
func (e *Evaluator) scoreAfter(ctx context.Context, ply pgn.Ply, move, which string) Score {
	resp, err := e.sess.Search(ctx, uci.SearchRequest{
		FEN:    ply.FEN,
		Moves:  []string{move},
		Limits: e.limits,
	})
	if err != nil {
		e.log.Warn("score search failed",
			zap.Int("ply", ply.Index), zap.String("which", which), zap.Error(err))
		return Score{}
	}
	if len(resp.Candidates) == 0 {
		return Score{}
	}
	return Normalize(resp.Candidates[0].Score, !ply.White, ply.White)
}

// suggestedMove prefers the head of the top engine line and falls back to
// the protocol-level bestmove when no line was reported.
func suggestedMove(resp uci.SearchResponse) string {
	if len(resp.Candidates) > 0 && resp.Candidates[0].Move != "" {
		return resp.Candidates[0].Move
	}
	if resp.BestMove == "(none)" {
		return ""
	}
	return resp.BestMove
}
