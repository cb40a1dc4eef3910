package poesy

import (
	"fmt"

	"github.com/kalexmills/poesy/src/dict"
)

// Config holds the tunables of an Engine build.
type Config struct {
	DictPath   string
	VocabPath  string
	BigramPath string
	// BigramSkip drops this many leading records of the bigram corpus.
	BigramSkip int

	MeterCapacity int
	RhymeCapacity int

	Vowels            []string
	ExcludedWords     []string
	WeakWords         []string
	StrongWords       []string
	WeakFinalPatterns []string
}

func (c Config) String() string {
	return fmt.Sprintf("\tDictPath: %s\n\tVocabPath: %s\n\tBigramPath: %s\n\tBigramSkip: %d\n\tMeterCapacity: %d\n\tRhymeCapacity: %d\n",
		c.DictPath, c.VocabPath, c.BigramPath, c.BigramSkip, c.MeterCapacity, c.RhymeCapacity)
}

// Rules returns the closed word sets and patterns of c in lookup form.
func (c Config) Rules() (Rules, error) {
	r := Rules{
		Vowels:        dict.WordSet{},
		ExcludedWords: dict.NewWordSet(c.ExcludedWords...),
		WeakWords:     dict.NewWordSet(c.WeakWords...),
		StrongWords:   dict.NewWordSet(c.StrongWords...),
	}
	for _, v := range c.Vowels {
		r.Vowels.Add(v)
	}
	for _, s := range c.WeakFinalPatterns {
		p, err := ParseStressPattern(s)
		if err != nil {
			return Rules{}, fmt.Errorf("weak final pattern %q: %w", s, err)
		}
		r.WeakFinalPatterns = append(r.WeakFinalPatterns, p)
	}
	return r, nil
}

// Rules are the closed sets which steer classification and bigram synthesis.
type Rules struct {
	Vowels dict.WordSet
	// ExcludedWords never enter any index: single letters and a short stoplist.
	ExcludedWords dict.WordSet
	// WeakWords are sometimes unstressed and never lead a synthesized phrase.
	WeakWords dict.WordSet
	// StrongWords read as stressed after another word and never close a phrase.
	StrongWords dict.WordSet
	// WeakFinalPatterns never form rhyme classes.
	WeakFinalPatterns []StressPattern
}

func (r Rules) weakFinal(p StressPattern) bool {
	for _, w := range r.WeakFinalPatterns {
		if w.Equal(p) {
			return true
		}
	}
	return false
}

// DefaultRules returns the rules of DefaultConfig.
func DefaultRules() Rules {
	r, err := DefaultConfig().Rules()
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultConfig returns the stock tunables with no input paths set.
func DefaultConfig() Config {
	return Config{
		BigramSkip:        0,
		MeterCapacity:     DefaultMeterCapacity,
		RhymeCapacity:     DefaultRhymeCapacity,
		Vowels:            append([]string(nil), DefaultVowels...),
		ExcludedWords:     append([]string(nil), DefaultExcludedWords...),
		WeakWords:         append([]string(nil), DefaultWeakWords...),
		StrongWords:       append([]string(nil), DefaultStrongWords...),
		WeakFinalPatterns: append([]string(nil), DefaultWeakFinalPatterns...),
	}
}

const (
	DefaultMeterCapacity = 460_800
	DefaultRhymeCapacity = 115_200
)

// DefaultVowels is the ARPABET vowel inventory of the CMU dictionary plus
// the reduced vowels of extended ARPABET.
var DefaultVowels = []string{
	"AA", "AE", "AH", "AO", "AW", "AY",
	"EH", "ER", "EY", "IH", "IY", "OW", "OY", "UH", "UW",
	"AX", "IX", "UX",
}

var DefaultExcludedWords = append([]string{
	"an", "he", "she", "than", "too", "that", "re", "ca",
}, alphabet()...)

var DefaultWeakWords = []string{
	"i", "a", "an", "as", "and", "my", "up", "it", "be", "been",
	"but", "he", "her", "him", "his", "just", "me", "or", "she",
	"than", "that", "this", "with", "what", "well", "then", "no",
	"not", "one", "by", "the", "them", "us", "we", "who", "you",
	"your", "at", "for", "from", "of", "to", "some", "there",
	"am", "are", "can", "could", "do", "does", "had", "has", "have",
	"must", "shall", "should", "was", "where", "were", "whose",
	"will", "would", "these", "those", "all", "any",
	"while", "on", "its", "so", "also", "is", "own", "which",
	"nor", "our", "their",
}

var DefaultStrongWords = []string{"free", "made", "thy"}

var DefaultWeakFinalPatterns = []string{"01", "21", "001", "201", "021"}

func alphabet() []string {
	letters := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}
