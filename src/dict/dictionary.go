// Package dict loads the raw inputs of the poesy engine: the CMU pronouncing
// dictionary, vocabulary word lists and bigram corpora.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hack-pad/hackpadfs"
)

// Entry is a single pronunciation from the dictionary. Words with several
// pronunciations appear once per pronunciation.
type Entry struct {
	Word   string
	Phones []string
}

// Stats counts what happened to each line of a dictionary file.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	Malformed    int
}

// LoadPronunciations reads a CMU formatted dictionary from path in fsys.
func LoadPronunciations(fsys hackpadfs.FS, path string) ([]Entry, Stats, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()
	return ReadPronunciations(f)
}

// ReadPronunciations parses CMU dictionary lines of the form
//
//	WORD  PH1 PH2 PH3
//
// Comment lines (starting with ";") and blank lines are ignored. Lines
// without any phones, or with a phone that is not an upper case symbol with
// an optional 0, 1 or 2 stress digit, are counted as malformed and skipped. Variant markers
// such as "WORD(2)" are stripped from the word.
func ReadPronunciations(r io.Reader) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for s.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";") {
			stats.CommentLines++
			continue
		}
		entry, ok := parseLine(line)
		if !ok {
			stats.Malformed++
			continue
		}
		stats.ParsedLines++
		entries = append(entries, entry)
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("scan dictionary: %w", err)
	}
	return entries, stats, nil
}

func parseLine(line string) (Entry, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return Entry{}, false
	}
	for _, phone := range tokens[1:] {
		if !validPhone(phone) {
			return Entry{}, false
		}
	}
	return Entry{
		Word:   stripVariant(tokens[0]),
		Phones: tokens[1:],
	}, true
}

// validPhone accepts an ARPABET symbol in upper case, optionally followed by
// a single stress digit 0, 1 or 2.
func validPhone(phone string) bool {
	letters := phone
	if last := phone[len(phone)-1]; '0' <= last && last <= '9' {
		if last > '2' {
			return false
		}
		letters = phone[:len(phone)-1]
	}
	if letters == "" {
		return false
	}
	for i := 0; i < len(letters); i++ {
		if letters[i] < 'A' || letters[i] > 'Z' {
			return false
		}
	}
	return true
}

// stripVariant removes the alternate pronunciation suffix, "READ(2)" -> "READ".
func stripVariant(word string) string {
	idx := strings.IndexByte(word, '(')
	if idx <= 0 || !strings.HasSuffix(word, ")") {
		return word
	}
	if _, err := strconv.Atoi(word[idx+1 : len(word)-1]); err != nil {
		return word
	}
	return word[:idx]
}
