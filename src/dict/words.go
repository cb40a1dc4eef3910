package dict

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hack-pad/hackpadfs"
)

// WordSet is a set of surface forms.
type WordSet map[string]struct{}

// NewWordSet returns a set holding words, lower-cased.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(strings.ToLower(w))
	}
	return s
}

func (s WordSet) Add(word string) {
	s[word] = struct{}{}
}

func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s WordSet) Len() int {
	return len(s)
}

// Sorted returns the members of s in ascending order.
func (s WordSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for w := range s {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Clone returns a copy of s which can be grown independently.
func (s WordSet) Clone() WordSet {
	result := make(WordSet, len(s))
	for w := range s {
		result[w] = struct{}{}
	}
	return result
}

// LoadVocabulary reads a word list from path in fsys.
func LoadVocabulary(fsys hackpadfs.FS, path string) (WordSet, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary %s: %w", path, err)
	}
	defer f.Close()
	return ReadVocabulary(f)
}

// ReadVocabulary reads one word per line. Only the first field of each line
// is used and words are lower-cased.
func ReadVocabulary(r io.Reader) (WordSet, error) {
	result := make(WordSet)
	s := bufio.NewScanner(r)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		result.Add(strings.ToLower(fields[0]))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan vocabulary: %w", err)
	}
	return result, nil
}
