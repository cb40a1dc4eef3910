package dict

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hack-pad/hackpadfs"
)

// Bigram is an ordered pair of words seen next to each other in a corpus.
type Bigram struct {
	A, B string
}

// Len is the combined length of both words, without the separating space.
func (b Bigram) Len() int {
	return len(b.A) + len(b.B)
}

func (b Bigram) String() string {
	return b.A + " " + b.B
}

// BigramStats counts records read from a bigram corpus.
type BigramStats struct {
	Skipped   int // records dropped by the leading skip count
	Read      int
	Malformed int
}

// LoadBigrams reads a bigram corpus from path in fsys, see ReadBigrams.
func LoadBigrams(fsys hackpadfs.FS, path string, skip int) ([]Bigram, BigramStats, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, BigramStats{}, fmt.Errorf("open bigrams %s: %w", path, err)
	}
	defer f.Close()
	return ReadBigrams(f, skip)
}

// ReadBigrams reads "A B" records, one per line. The first skip records are
// discarded without being parsed. Records which do not hold exactly two
// fields are counted as malformed.
func ReadBigrams(r io.Reader, skip int) ([]Bigram, BigramStats, error) {
	var (
		result []Bigram
		stats  BigramStats
	)
	s := bufio.NewScanner(r)
	for s.Scan() {
		if stats.Skipped < skip {
			stats.Skipped++
			continue
		}
		fields := strings.Fields(s.Text())
		if len(fields) != 2 {
			stats.Malformed++
			continue
		}
		stats.Read++
		result = append(result, Bigram{A: fields[0], B: fields[1]})
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan bigrams: %w", err)
	}
	return result, stats, nil
}
