package dict

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// WordCount is a word and the number of times it was seen in a corpus.
type WordCount struct {
	Word  string
	Count int
}

// LineParser extracts the text of interest from one corpus line. It returns
// "" for lines that hold none.
type LineParser func(line string) string

var requoter = strings.NewReplacer("’", "'", "‘", "'")

// CleanToken normalizes a token of running text to a lower-cased word made
// of letters and inner apostrophes. Links and markup yield "".
func CleanToken(s string) string {
	if strings.HasPrefix(s, "[") ||
		strings.HasPrefix(s, "<") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") {
		return ""
	}
	replaced := strings.ToLower(requoter.Replace(s))
	var result strings.Builder
	for i := 0; i < len(replaced); i++ {
		b := replaced[i]
		if ('a' <= b && b <= 'z') || b == '\'' {
			result.WriteByte(b)
		}
	}
	return strings.Trim(result.String(), "'")
}

// CountWords counts the words of a corpus read from r. Each line goes through
// parse, is split on whitespace and cleaned with CleanToken. Words outside
// known are not counted.
func CountWords(r io.Reader, parse LineParser, known WordSet) (map[string]int, error) {
	counts := make(map[string]int)
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	for s.Scan() {
		str := strings.TrimSpace(s.Text())
		if str == "" {
			continue
		}
		for _, t := range strings.Fields(parse(str)) {
			cleaned := CleanToken(t)
			if cleaned == "" || !known.Has(cleaned) {
				continue
			}
			counts[cleaned]++
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return counts, nil
}

// RankWords orders counts by descending count, ties broken alphabetically,
// dropping words seen fewer than minCount times.
func RankWords(counts map[string]int, minCount int) []WordCount {
	var result []WordCount
	for word, count := range counts {
		if count < minCount {
			continue
		}
		result = append(result, WordCount{word, count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Word < result[j].Word
	})
	return result
}

// DictionaryWords returns the lower-cased words of entries.
func DictionaryWords(entries []Entry) WordSet {
	result := make(WordSet, len(entries))
	for _, e := range entries {
		result.Add(strings.ToLower(e.Word))
	}
	return result
}
