package strategy

import (
	"math"

	"github.com/danielpatrickdp/wordle-solver/internal/pattern"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

const (
	entropyEpsilon   = 1e-10
	duplicatePenalty = 0.8
)

// partition counts how many candidates fall into each feedback pattern for guess.
func partition(guess word.Word, candidates []word.Word, groups *[pattern.Count]int) {
	*groups = [pattern.Count]int{}
	for _, c := range candidates {
		groups[pattern.Compute(guess, c).Code()]++
	}
}

// expectedInformation is the entropy, in bits, of the pattern distribution in groups.
func expectedInformation(groups *[pattern.Count]int, total int) float64 {
	n := float64(total)
	e := 0.0
	for _, size := range groups {
		if size == 0 {
			continue
		}
		p := float64(size) / n
		e -= p * math.Log2(p+entropyEpsilon)
	}
	return e
}

// largestGroup is the worst-case number of candidates left after the guess.
func largestGroup(groups *[pattern.Count]int) int {
	worst := 0
	for _, size := range groups {
		if size > worst {
			worst = size
		}
	}
	return worst
}

// #region letter-frequencies

// letterFrequencies counts, per position, how many candidates have each letter there.
type letterFrequencies [word.Length][word.Alphabet]int

func countFrequencies(candidates []word.Word) *letterFrequencies {
	var f letterFrequencies
	for _, c := range candidates {
		for i := 0; i < word.Length; i++ {
			f[i][c[i]-'a']++
		}
	}
	return &f
}

// score sums the positional frequencies of g's letters. Every repeat of a letter already
// seen in g multiplies the running total by duplicatePenalty.
func (f *letterFrequencies) score(g word.Word) float64 {
	total := 0.0
	var seen [word.Alphabet]bool
	for i := 0; i < word.Length; i++ {
		c := g[i] - 'a'
		total += float64(f[i][c])
		if seen[c] {
			total *= duplicatePenalty
		}
		seen[c] = true
	}
	return total
}

// #endregion

// #region normalization

// normalize rescales xs in place to [0, 1]. If every value is equal they all become 1.
func normalize(xs []float64) {
	if len(xs) == 0 {
		return
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if hi <= lo {
		for i := range xs {
			xs[i] = 1.0
		}
		return
	}
	span := hi - lo
	for i, x := range xs {
		xs[i] = (x - lo) / span
	}
}

// #endregion
