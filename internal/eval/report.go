package eval

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// #region json

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// #endregion json

// #region markdown

// WriteMarkdown writes a human-readable report for one strategy.
func WriteMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wordle Solver Performance Report: %s\n\n", r.Strategy)
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- **Success Rate**: %.2f%%\n", r.SuccessRate)
	fmt.Fprintf(&b, "- **Average Attempts**: %.2f\n", r.AverageAttempts)
	fmt.Fprintf(&b, "- **Median Attempts**: %g\n", r.MedianAttempts)
	fmt.Fprintf(&b, "- **Total Words Tested**: %d\n", r.Total)
	fmt.Fprintf(&b, "- **Failures**: %d\n", r.Failures)
	fmt.Fprintf(&b, "- **Checks**: %s\n\n", r.Reason)

	b.WriteString("## Attempt Distribution\n")
	b.WriteString("| Attempts | Count | Percentage |\n")
	b.WriteString("|----------|-------|------------|\n")
	for _, n := range sortedKeys(r.Distribution) {
		fmt.Fprintf(&b, "| %d | %d | %.2f%% |\n", n, r.Distribution[n], percent(r.Distribution[n], r.Total))
	}
	if r.Failures > 0 {
		fmt.Fprintf(&b, "| failed | %d | %.2f%% |\n", r.Failures, percent(r.Failures, r.Total))
	}

	b.WriteString("\n## Hardest Words\n")
	writeHardest(&b, r.Hardest)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteComparisonMarkdown writes a side-by-side report for several strategies.
func WriteComparisonMarkdown(w io.Writer, reports []Report, maxAttempts int) error {
	var b strings.Builder

	b.WriteString("# Wordle Solver Comparative Performance Report\n\n")
	b.WriteString("## Summary\n")
	b.WriteString("| Strategy | Success Rate | Average Attempts | Median Attempts | Failures |\n")
	b.WriteString("|----------|--------------|------------------|-----------------|----------|\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "| %s | %.2f%% | %.2f | %g | %d |\n",
			r.Strategy, r.SuccessRate, r.AverageAttempts, r.MedianAttempts, r.Failures)
	}

	b.WriteString("\n## Attempt Distribution\n")
	b.WriteString("| Strategy |")
	for i := 1; i <= maxAttempts; i++ {
		fmt.Fprintf(&b, " %d |", i)
	}
	b.WriteString(" failed |\n|----------|")
	for i := 1; i <= maxAttempts+1; i++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "| %s |", r.Strategy)
		for i := 1; i <= maxAttempts; i++ {
			c := r.Distribution[i]
			fmt.Fprintf(&b, " %d (%.1f%%) |", c, percent(c, r.Total))
		}
		fmt.Fprintf(&b, " %d |\n", r.Failures)
	}

	b.WriteString("\n## Hardest Words by Strategy\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "\n### %s\n", r.Strategy)
		writeHardest(&b, r.Hardest)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// #endregion markdown

// #region files

// WriteFiles writes strategy_results.json and performance_report.md under dir/<strategy>.
// It returns the markdown path.
func WriteFiles(dir string, r Report) (string, error) {
	out := filepath.Join(dir, string(r.Strategy))
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := writeFile(filepath.Join(out, "strategy_results.json"), func(w io.Writer) error {
		return WriteJSON(w, r)
	}); err != nil {
		return "", err
	}
	mdPath := filepath.Join(out, "performance_report.md")
	if err := writeFile(mdPath, func(w io.Writer) error {
		return WriteMarkdown(w, r)
	}); err != nil {
		return "", err
	}
	return mdPath, nil
}

// WriteComparisonFiles writes all_strategies_results.json and comparative_performance_report.md under dir.
func WriteComparisonFiles(dir string, reports []Report, maxAttempts int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "all_strategies_results.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}); err != nil {
		return "", err
	}
	mdPath := filepath.Join(dir, "comparative_performance_report.md")
	if err := writeFile(mdPath, func(w io.Writer) error {
		return WriteComparisonMarkdown(w, reports, maxAttempts)
	}); err != nil {
		return "", err
	}
	return mdPath, nil
}

// #endregion files

// #region helpers

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeHardest(b *strings.Builder, hardest []GameResult) {
	b.WriteString("| Word | Attempts | Solved |\n")
	b.WriteString("|------|----------|--------|\n")
	for _, g := range hardest {
		fmt.Fprintf(b, "| %s | %d | %t |\n", g.Target, g.Attempts, g.Success)
	}
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// #endregion helpers
