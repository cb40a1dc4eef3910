package poesy

import (
	"errors"
	"sort"
	"strings"

	"github.com/kalexmills/poesy/src/dict"
)

// RhymeClassKey groups pronunciations sharing a rhyme key and syllable count.
type RhymeClassKey struct {
	Rhyme     string
	Syllables int
}

// Lexicon is the index built from a pronouncing dictionary. It is not
// modified after BuildLexicon returns.
type Lexicon struct {
	Singles  dict.WordSet
	Trochees dict.WordSet
	Dactyls  dict.WordSet

	// RhymeClasses maps a class key to the set of pronunciation keys in it.
	RhymeClasses map[RhymeClassKey]dict.WordSet
	// ByPronunciation maps a pronunciation key to the last word seen with it.
	ByPronunciation map[string]string

	// stresses holds the first stress pattern seen for each word.
	stresses map[string]StressPattern
}

// LexiconStats reports why dictionary entries were left out of a Lexicon.
type LexiconStats struct {
	Entries    int
	Excluded   int
	Unknown    int // not in the vocabulary
	Unstressed int // ErrNoStressedVowel
	NoPrimary  int
}

// BuildLexicon indexes the entries whose lower-cased word is in vocabulary
// and not excluded by rules.
func BuildLexicon(entries []dict.Entry, vocabulary dict.WordSet, rules Rules) (*Lexicon, LexiconStats) {
	lex := &Lexicon{
		Singles:         make(dict.WordSet),
		Trochees:        make(dict.WordSet),
		Dactyls:         make(dict.WordSet),
		RhymeClasses:    make(map[RhymeClassKey]dict.WordSet),
		ByPronunciation: make(map[string]string),
		stresses:        make(map[string]StressPattern),
	}
	var stats LexiconStats
	for _, entry := range entries {
		stats.Entries++
		word := strings.ToLower(entry.Word)
		if rules.ExcludedWords.Has(word) {
			stats.Excluded++
			continue
		}
		if !vocabulary.Has(word) {
			stats.Unknown++
			continue
		}
		stresses, rhyme, err := ParsePronunciation(entry.Phones, rules.Vowels)
		if errors.Is(err, ErrNoStressedVowel) {
			stats.Unstressed++
			continue
		}
		pron := PronunciationKey(entry.Phones)
		lex.ByPronunciation[pron] = word
		if _, ok := lex.stresses[word]; !ok {
			lex.stresses[word] = stresses
		}
		if !stresses.HasPrimary() {
			stats.NoPrimary++
			continue
		}

		if len(stresses) < 5 && len(word) < 10 && !rules.weakFinal(stresses) {
			key := RhymeClassKey{Rhyme: rhyme.String(), Syllables: len(stresses)}
			class, ok := lex.RhymeClasses[key]
			if !ok {
				class = make(dict.WordSet)
				lex.RhymeClasses[key] = class
			}
			class.Add(pron)
		}

		if !stresses.PrimaryFirst() {
			continue
		}
		switch len(stresses) {
		case 1:
			if len(entry.Phones) < 4 {
				lex.Singles.Add(word)
			}
		case 2:
			lex.Trochees.Add(word)
		case 3:
			lex.Dactyls.Add(word)
		}
	}
	return lex, stats
}

// RhymeWords resolves the pronunciations of a rhyme class to distinct words, sorted.
func (l *Lexicon) RhymeWords(key RhymeClassKey) []string {
	words := make(dict.WordSet)
	for pron := range l.RhymeClasses[key] {
		if word, ok := l.ByPronunciation[pron]; ok {
			words.Add(word)
		}
	}
	return words.Sorted()
}

// RhymeClassKeys returns every rhyme class key in a stable order.
func (l *Lexicon) RhymeClassKeys() []RhymeClassKey {
	keys := make([]RhymeClassKey, 0, len(l.RhymeClasses))
	for k := range l.RhymeClasses {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Rhyme != keys[j].Rhyme {
			return keys[i].Rhyme < keys[j].Rhyme
		}
		return keys[i].Syllables < keys[j].Syllables
	})
	return keys
}

// Stresses returns the stress pattern of the first pronunciation of word.
func (l *Lexicon) Stresses(word string) (StressPattern, bool) {
	p, ok := l.stresses[strings.ToLower(word)]
	return p, ok
}
