package review

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/park285/chess-review/internal/engine"
	"github.com/park285/chess-review/internal/pgn"
)

const lossPlaceholder = "—"

// PlyEvaluator is the driver's seam to the engine-backed evaluator.
type PlyEvaluator interface {
	EvaluatePly(ctx context.Context, ply pgn.Ply) Evaluation
}

// Driver walks the game record ply by ply, evaluates each move and writes
// the report.
type Driver struct {
	rec      *pgn.Record
	eval     PlyEvaluator
	applied  engine.Applied
	out      io.Writer
	lastOnly bool
	log      *zap.Logger
}

func NewDriver(rec *pgn.Record, eval PlyEvaluator, applied engine.Applied, out io.Writer, lastOnly bool, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{rec: rec, eval: eval, applied: applied, out: out, lastOnly: lastOnly, log: logger}
}

// Run prints the header block, the column legend, the effective engine
// configuration, then one row per evaluated ply. In last-move-only mode
// plies before the final one are walked without any evaluation request.
func (d *Driver) Run(ctx context.Context) error {
	fmt.Fprintln(d.out, "Game:")
	fmt.Fprintf(d.out, "  %s vs %s  Result: %s\n", d.rec.White, d.rec.Black, d.rec.Result)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Columns: ply  side  move  played_eval  best_eval  loss  class  best_suggestion")
	d.printApplied()

	if len(d.rec.Plies) == 0 {
		fmt.Fprintln(d.out, "No moves found in the game.")
		return nil
	}

	for _, ply := range d.rec.Plies {
		if d.lastOnly && ply.Index != len(d.rec.Plies) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		d.reviewPly(ctx, ply)
	}
	return nil
}

func (d *Driver) printApplied() {
	if d.applied.HasHash {
		fmt.Fprintf(d.out, "Using engine options: Threads=%d, Hash=%d MB, MultiPV=%d\n",
			d.applied.Threads, d.applied.HashMB, d.applied.MultiPV)
		return
	}
	fmt.Fprintf(d.out, "Using engine options: Threads=%d, MultiPV=%d\n",
		d.applied.Threads, d.applied.MultiPV)
}

func (d *Driver) reviewPly(ctx context.Context, ply pgn.Ply) {
	ev := d.eval.EvaluatePly(ctx, ply)
	verdict := Classify(ev.Best, ev.Played)

	bestSAN := "?"
	if ev.BestMoveUCI != "" {
		if san, ok := pgn.SANForUCI(ply.FEN, ev.BestMoveUCI); ok {
			bestSAN = san
		}
	}

	loss := lossPlaceholder
	if verdict.HasLoss {
		loss = strconv.Itoa(verdict.Loss)
	}

	side := "B"
	if ply.White {
		side = "W"
	}

	fmt.Fprintf(d.out, "%3d  %s   %-8s  %10s  %9s  %5s  %-12s  %s\n",
		ply.Index, side, ply.SAN, ev.Played, ev.Best, loss, verdict.Label, bestSAN)

	d.log.Debug("ply reviewed",
		zap.Int("ply", ply.Index),
		zap.String("move", ply.SAN),
		zap.String("label", string(verdict.Label)))
}
