package eval

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/danielpatrickdp/wordle-solver/internal/solver"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region helpers

var (
	craWords = []word.Word{"crane", "crate", "crave", "craze"}
	vocab    = word.NewVocabulary([]word.Word{
		"crane", "crate", "crave", "craze", "ntvzx", "xzvtn", "tares",
	})
)

func entropy(t *testing.T) strategy.Strategy {
	t.Helper()
	s, err := strategy.New(strategy.Entropy, vocab, "tares")
	if err != nil {
		t.Fatalf("strategy.New: %v", err)
	}
	return s
}

type memRecorder struct {
	mu      sync.Mutex
	targets map[word.Word]solver.State
}

func (m *memRecorder) RecordResult(_ context.Context, _ strategy.ID, target word.Word, res solver.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.targets[target] = res.State
	return nil
}

// #endregion helpers

// #region run-tests

func TestRun_ZeroConfigUsesGameDefaults(t *testing.T) {
	h := NewEvalHarness(vocab, craWords, EvalConfig{})

	report, err := h.Run(context.Background(), entropy(t), craWords)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failures != 0 || report.SuccessRate != 100 {
		t.Fatalf("expected every game solved, got %d failures (%.2f%%)", report.Failures, report.SuccessRate)
	}
	for _, r := range report.Results {
		if r.Error != "" {
			t.Errorf("%s: unexpected error %q", r.Target, r.Error)
		}
	}
	if !report.Passed {
		t.Errorf("expected default thresholds to pass, got %q", report.Reason)
	}
}

func TestRun_AggregatesResults(t *testing.T) {
	cfg := DefaultEvalConfig()
	cfg.Concurrency = 2
	rec := &memRecorder{targets: map[word.Word]solver.State{}}
	h := NewEvalHarness(vocab, craWords, cfg, WithRecorder(rec))

	// tares isolates crate; the other three need ntvzx to split them.
	report, err := h.Run(context.Background(), entropy(t), craWords)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Total != 4 || report.Failures != 0 {
		t.Fatalf("expected 4 games, 0 failures, got %d/%d", report.Total, report.Failures)
	}
	if report.SuccessRate != 100 {
		t.Errorf("expected 100%% success, got %.2f", report.SuccessRate)
	}
	if report.AverageAttempts != 2.75 {
		t.Errorf("expected average 2.75, got %.2f", report.AverageAttempts)
	}
	if report.MedianAttempts != 3 {
		t.Errorf("expected median 3, got %g", report.MedianAttempts)
	}
	if report.Distribution[2] != 1 || report.Distribution[3] != 3 {
		t.Errorf("unexpected distribution %v", report.Distribution)
	}
	for i, r := range report.Results {
		if r.Target != craWords[i] {
			t.Errorf("result %d: expected target %s, got %s", i, craWords[i], r.Target)
		}
	}
	if got := report.Hardest[len(report.Hardest)-1].Target; got != "crate" {
		t.Errorf("expected crate to be easiest, got %s", got)
	}
	if !report.Passed {
		t.Errorf("expected pass, got %s", report.Reason)
	}
	if len(rec.targets) != 4 {
		t.Errorf("expected 4 recorded games, got %d", len(rec.targets))
	}
}

func TestRun_FailuresFailThresholds(t *testing.T) {
	cfg := DefaultEvalConfig()
	cfg.MaxAttempts = 1
	h := NewEvalHarness(vocab, craWords, cfg)

	report, err := h.Run(context.Background(), entropy(t), craWords)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failures != 4 || report.SuccessRate != 0 {
		t.Fatalf("expected every game to fail, got %d failures", report.Failures)
	}
	if report.Passed {
		t.Fatal("expected eval to fail")
	}
	if !strings.HasPrefix(report.Reason, "eval failed:") {
		t.Errorf("unexpected reason %q", report.Reason)
	}
	for _, m := range report.Metrics {
		if m.Name == "success_rate" && m.Pass {
			t.Error("success_rate metric should fail")
		}
	}
	for _, r := range report.Results {
		if r.State != solver.StateExhausted {
			t.Errorf("%s: expected exhausted, got %s", r.Target, r.State)
		}
	}
}

func TestRun_UnknownTargetAborts(t *testing.T) {
	h := NewEvalHarness(vocab, craWords, DefaultEvalConfig())
	if _, err := h.Run(context.Background(), entropy(t), []word.Word{"tares"}); err == nil {
		t.Fatal("expected error for target outside solutions")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewEvalHarness(vocab, craWords, DefaultEvalConfig())
	if _, err := h.Run(ctx, entropy(t), craWords); err == nil {
		t.Fatal("expected cancellation error")
	}
}

// #endregion run-tests

// #region summarize-tests

func TestSummarize(t *testing.T) {
	results := []GameResult{
		{Target: "aaaaa", Attempts: 3, Success: true},
		{Target: "bbbbb", Attempts: 6, Success: false},
		{Target: "ccccc", Attempts: 6, Success: true},
		{Target: "ddddd", Attempts: 4, Success: true},
	}
	r := Summarize(strategy.Minimax, results)

	if r.Failures != 1 || r.SuccessRate != 75 {
		t.Errorf("unexpected failures/success: %d %.2f", r.Failures, r.SuccessRate)
	}
	if r.AverageAttempts != 4.75 {
		t.Errorf("expected average 4.75, got %.2f", r.AverageAttempts)
	}
	if r.MedianAttempts != 5 {
		t.Errorf("expected median 5, got %g", r.MedianAttempts)
	}
	want := []word.Word{"bbbbb", "ccccc", "ddddd", "aaaaa"}
	for i, g := range r.Hardest {
		if g.Target != want[i] {
			t.Errorf("hardest[%d]: expected %s, got %s", i, want[i], g.Target)
		}
	}
	if r.Distribution[6] != 1 {
		t.Errorf("failed games must not enter the distribution: %v", r.Distribution)
	}
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(strategy.Entropy, nil)
	if r.Total != 0 || r.SuccessRate != 0 || r.Hardest != nil {
		t.Errorf("unexpected report %+v", r)
	}
}

func TestHardest_CapsAtTen(t *testing.T) {
	results := make([]GameResult, 15)
	for i := range results {
		results[i] = GameResult{Attempts: i % 6, Success: true}
	}
	if got := hardest(results, hardestCount); len(got) != 10 {
		t.Errorf("expected 10, got %d", len(got))
	}
}

// #endregion summarize-tests

// #region report-tests

func TestWriteMarkdown(t *testing.T) {
	r := Summarize(strategy.Entropy, []GameResult{
		{Target: "crane", Attempts: 2, Success: true},
		{Target: "craze", Attempts: 6, Success: false},
	})
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, r); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"**Success Rate**: 50.00%",
		"| 2 | 1 | 50.00% |",
		"| failed | 1 | 50.00% |",
		"| craze | 6 | false |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestWriteComparisonMarkdown(t *testing.T) {
	a := Summarize(strategy.Entropy, []GameResult{{Target: "crane", Attempts: 3, Success: true}})
	b := Summarize(strategy.Minimax, []GameResult{{Target: "crane", Attempts: 4, Success: true}})
	var buf bytes.Buffer
	if err := WriteComparisonMarkdown(&buf, []Report{a, b}, 6); err != nil {
		t.Fatalf("WriteComparisonMarkdown: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| entropy | 100.00% | 3.00 | 3 | 0 |") {
		t.Errorf("missing entropy summary row:\n%s", out)
	}
	if !strings.Contains(out, "### minimax") {
		t.Errorf("missing minimax hardest section:\n%s", out)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	r := Summarize(strategy.Hybrid, []GameResult{{Target: "crane", Attempts: 3, Success: true}})

	md, err := WriteFiles(dir, r)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if filepath.Base(md) != "performance_report.md" {
		t.Errorf("unexpected markdown path %s", md)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "hybrid", "strategy_results.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Strategy != strategy.Hybrid || decoded.Distribution[3] != 1 {
		t.Errorf("unexpected decoded report %+v", decoded)
	}
}

// #endregion report-tests
