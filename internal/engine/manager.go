// Package engine manages the analysis engine session: launch, capability
// discovery, clamped configuration and shutdown.
package engine

import (
	"context"
	"runtime"
	"strconv"

	"go.uber.org/zap"

	"github.com/park285/chess-review/internal/uci"
)

const (
	defaultMultiPV    = 2
	minExplicitHashMB = 16
	largeThreadCount  = 16
	largeThreadBonus  = 1024
)

// Config carries requested engine settings. Zero values mean auto.
type Config struct {
	BinaryPath string
	Threads    int
	HashMB     int
	MultiPV    int
	UseNNUE    bool
}

// Applied is the effective configuration after discovery and clamping,
// reported in the output header.
type Applied struct {
	EngineName string
	Threads    int
	HashMB     int
	HasHash    bool
	MultiPV    int
}

// Engine is an open, configured session.
type Engine struct {
	sess    *uci.Session
	applied Applied
	log     *zap.Logger
}

// Open launches the engine, discovers its option table and applies the
// requested configuration. Each spin value is clamped into the engine's
// declared range; options the engine does not advertise are skipped
// silently, since option vocabularies vary between engines.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sess, err := uci.NewSession(ctx, cfg.BinaryPath)
	if err != nil {
		return nil, err
	}

	e := &Engine{sess: sess, log: logger}
	if err := e.configure(ctx, cfg); err != nil {
		sess.Close()
		return nil, err
	}
	return e, nil
}

// Session exposes the underlying protocol handle.
func (e *Engine) Session() *uci.Session { return e.sess }

// Applied reports the effective configuration.
func (e *Engine) Applied() Applied { return e.applied }

// Close shuts the session down. Safe on every exit path.
func (e *Engine) Close() error { return e.sess.Close() }

func (e *Engine) configure(ctx context.Context, cfg Config) error {
	caps := e.sess.Capabilities()
	e.applied.EngineName = e.sess.Name()

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
		if threads < 1 {
			threads = 1
		}
	}
	if opt, ok := caps.Get("Threads"); ok {
		threads = opt.Clamp(threads)
		if err := e.sess.SetOption("Threads", strconv.Itoa(threads)); err != nil {
			return err
		}
	}
	e.applied.Threads = threads

	if opt, ok := caps.Get("Hash"); ok {
		target := cfg.HashMB
		if target <= 0 {
			target = autoHashMB(threads, caps)
		} else if target < minExplicitHashMB {
			target = minExplicitHashMB
		}
		target = opt.Clamp(target)
		if err := e.sess.SetOption("Hash", strconv.Itoa(target)); err != nil {
			return err
		}
		e.applied.HashMB = target
		e.applied.HasHash = true
	}

	multiPV := cfg.MultiPV
	if multiPV < 1 {
		multiPV = defaultMultiPV
	}
	if opt, ok := caps.Get("MultiPV"); ok {
		multiPV = opt.Clamp(multiPV)
		if err := e.sess.SetOption("MultiPV", strconv.Itoa(multiPV)); err != nil {
			return err
		}
	}
	e.applied.MultiPV = multiPV

	if cfg.UseNNUE {
		for _, key := range []string{"Use NNUE", "UseNNUE"} {
			if _, ok := caps.Get(key); ok {
				if err := e.sess.SetOption(key, "true"); err != nil {
					return err
				}
				break
			}
		}
	}

	if err := e.sess.EnsureReady(ctx); err != nil {
		return err
	}

	e.log.Info("engine configured",
		zap.String("engine", e.applied.EngineName),
		zap.Int("threads", e.applied.Threads),
		zap.Int("hash_mb", e.applied.HashMB),
		zap.Int("multipv", e.applied.MultiPV))
	return nil
}

// autoHashMB picks a hash budget: half of total memory floored at 64 MB,
// capped by the engine's declared Hash maximum, with a bonus for hosts
// running many threads capped at three quarters of total memory.
func autoHashMB(threads int, caps uci.Capabilities) int {
	return hashBudgetMB(detectTotalMemMB(), threads, caps)
}

func hashBudgetMB(total, threads int, caps uci.Capabilities) int {
	if total <= 0 {
		total = fallbackTotalMemMB
	}

	target := total / 2
	if target < 64 {
		target = 64
	}
	if opt, ok := caps.Get("Hash"); ok && opt.HasBounds && target > opt.Max {
		target = opt.Max
	}
	if threads >= largeThreadCount {
		raised := target + largeThreadBonus
		if ceil := total * 3 / 4; raised > ceil {
			raised = ceil
		}
		target = raised
	}
	if target < 64 {
		target = 64
	}
	return target
}
