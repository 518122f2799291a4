package uci

import (
	"testing"
	"time"
)

func TestParseInfoCentipawns(t *testing.T) {
	line := "info depth 20 seldepth 28 multipv 1 score cp 34 nodes 1500000 pv e2e4 e7e5 g1f3"
	mv, cand, ok := parseInfo(line)
	if !ok {
		t.Fatalf("expected info line to parse")
	}
	if mv != 1 {
		t.Fatalf("multipv = %d, want 1", mv)
	}
	if cand.Move != "e2e4" {
		t.Fatalf("move = %q, want e2e4", cand.Move)
	}
	if cand.Score.Kind != ScoreCentipawns || cand.Score.Value != 34 {
		t.Fatalf("score = %+v, want cp 34", cand.Score)
	}
	if len(cand.Principal) != 3 {
		t.Fatalf("principal length = %d, want 3", len(cand.Principal))
	}
}

func TestParseInfoMate(t *testing.T) {
	line := "info depth 12 multipv 2 score mate -3 pv d8h4 g2g3 h4g3"
	mv, cand, ok := parseInfo(line)
	if !ok {
		t.Fatalf("expected info line to parse")
	}
	if mv != 2 {
		t.Fatalf("multipv = %d, want 2", mv)
	}
	if cand.Score.Kind != ScoreMate || cand.Score.Value != -3 {
		t.Fatalf("score = %+v, want mate -3", cand.Score)
	}
}

func TestParseInfoWithoutPV(t *testing.T) {
	if _, _, ok := parseInfo("info depth 5 score cp 10 nodes 1000"); ok {
		t.Fatalf("info line without pv should not produce a candidate")
	}
}

func TestParseInfoWithoutScore(t *testing.T) {
	_, cand, ok := parseInfo("info depth 1 multipv 1 pv e2e4")
	if !ok {
		t.Fatalf("expected info line to parse")
	}
	if cand.Score.Kind != ScoreNone {
		t.Fatalf("score kind = %v, want ScoreNone", cand.Score.Kind)
	}
}

func TestParseOptionLineSpin(t *testing.T) {
	opt, ok := parseOptionLine("option name Hash type spin default 16 min 1 max 33554432")
	if !ok {
		t.Fatalf("expected option line to parse")
	}
	if opt.Name != "Hash" || opt.Type != "spin" || opt.Default != "16" {
		t.Fatalf("unexpected option: %+v", opt)
	}
	if !opt.HasBounds || opt.Min != 1 || opt.Max != 33554432 {
		t.Fatalf("unexpected bounds: %+v", opt)
	}
}

func TestParseOptionLineSpacedName(t *testing.T) {
	opt, ok := parseOptionLine("option name Skill Level type spin default 20 min 0 max 20")
	if !ok {
		t.Fatalf("expected option line to parse")
	}
	if opt.Name != "Skill Level" {
		t.Fatalf("name = %q, want %q", opt.Name, "Skill Level")
	}
}

func TestParseOptionLineCheck(t *testing.T) {
	opt, ok := parseOptionLine("option name Use NNUE type check default true")
	if !ok {
		t.Fatalf("expected option line to parse")
	}
	if opt.Name != "Use NNUE" || opt.Type != "check" || opt.Default != "true" {
		t.Fatalf("unexpected option: %+v", opt)
	}
	if opt.HasBounds {
		t.Fatalf("check option should not report bounds")
	}
}

func TestParseOptionLineRejectsGarbage(t *testing.T) {
	if _, ok := parseOptionLine("id name Stockfish 16"); ok {
		t.Fatalf("non-option line should not parse")
	}
}

func TestOptionClamp(t *testing.T) {
	opt := Option{Name: "Threads", HasBounds: true, Min: 1, Max: 512}
	if got := opt.Clamp(1024); got != 512 {
		t.Fatalf("clamp above max = %d, want 512", got)
	}
	if got := opt.Clamp(0); got != 1 {
		t.Fatalf("clamp below min = %d, want 1", got)
	}
	if got := opt.Clamp(8); got != 8 {
		t.Fatalf("clamp in range = %d, want 8", got)
	}
	unbounded := Option{Name: "Style"}
	if got := unbounded.Clamp(-5); got != -5 {
		t.Fatalf("unbounded clamp = %d, want passthrough", got)
	}
}

func TestCapabilitiesGetAbsent(t *testing.T) {
	caps := Capabilities{"Hash": {Name: "Hash"}}
	if _, ok := caps.Get("Ponder"); ok {
		t.Fatalf("absent option must report not present")
	}
}

func TestBuildPositionCommand(t *testing.T) {
	if got := buildPositionCommand("", nil); got != "position startpos\n" {
		t.Fatalf("empty fen: %q", got)
	}
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	got := buildPositionCommand(fen, []string{"e2e4", "e7e5"})
	want := "position fen " + fen + " moves e2e4 e7e5\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildGoTokens(t *testing.T) {
	tokens, err := buildGoTokens(Limits{MoveTimeMillis: 500})
	if err != nil {
		t.Fatalf("buildGoTokens: %v", err)
	}
	if len(tokens) != 3 || tokens[1] != "movetime" || tokens[2] != "500" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}

	// Depth wins over movetime.
	tokens, err = buildGoTokens(Limits{Depth: 20, MoveTimeMillis: 500})
	if err != nil {
		t.Fatalf("buildGoTokens: %v", err)
	}
	if len(tokens) != 3 || tokens[1] != "depth" || tokens[2] != "20" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}

	if _, err := buildGoTokens(Limits{}); err == nil {
		t.Fatalf("expected error for empty limits")
	}
}

func TestComputeSearchTimeoutBounds(t *testing.T) {
	if d := computeSearchTimeout(Limits{Depth: 2}); d != 6*time.Second {
		t.Fatalf("shallow depth timeout = %v, want 6s", d)
	}
	if d := computeSearchTimeout(Limits{Depth: 100}); d != 20*time.Second {
		t.Fatalf("deep depth timeout = %v, want 20s", d)
	}
	if d := computeSearchTimeout(Limits{MoveTimeMillis: 500}); d != 7500*time.Millisecond {
		t.Fatalf("movetime timeout = %v, want 7.5s", d)
	}
}

func TestScoreNegate(t *testing.T) {
	if got := Cp(30).Negate(); got.Value != -30 || got.Kind != ScoreCentipawns {
		t.Fatalf("negate cp: %+v", got)
	}
	if got := MateIn(-2).Negate(); got.Value != 2 || got.Kind != ScoreMate {
		t.Fatalf("negate mate: %+v", got)
	}
	if got := NoScore().Negate(); got.Kind != ScoreNone {
		t.Fatalf("negate none: %+v", got)
	}
}
