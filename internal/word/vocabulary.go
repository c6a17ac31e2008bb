package word

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// #region vocabulary

// Vocabulary is an ordered, de-duplicated, read-only set of words.
// It is built once and shared by every concurrent solve.
type Vocabulary struct {
	words []Word
	index map[Word]int
}

// NewVocabulary builds a vocabulary from words, keeping first-seen order.
func NewVocabulary(words []Word) *Vocabulary {
	v := &Vocabulary{
		words: make([]Word, 0, len(words)),
		index: make(map[Word]int, len(words)),
	}
	for _, w := range words {
		if _, ok := v.index[w]; ok {
			continue
		}
		v.index[w] = len(v.words)
		v.words = append(v.words, w)
	}
	return v
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// At returns the i-th word in vocabulary order.
func (v *Vocabulary) At(i int) Word { return v.words[i] }

// Contains reports whether w is in the vocabulary.
func (v *Vocabulary) Contains(w Word) bool {
	_, ok := v.index[w]
	return ok
}

// Words returns a copy of the words in vocabulary order.
func (v *Vocabulary) Words() []Word {
	out := make([]Word, len(v.words))
	copy(out, v.words)
	return out
}

// #endregion

// #region loading

// Load reads a newline-delimited word list. Blank lines are skipped.
func Load(r io.Reader) ([]Word, error) {
	scanner := bufio.NewScanner(r)
	var words []Word
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return words, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	words, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	return words, nil
}

// #endregion
