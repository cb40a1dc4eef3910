package poesy

import (
	"fmt"
	"log"

	"github.com/hack-pad/hackpadfs"
	"github.com/kalexmills/poesy/src/dict"
)

// Engine holds every derived set and answers queries. It is read-only once
// built and can be shared between goroutines, as long as each caller brings
// its own Picker.
type Engine struct {
	Lexicon *Lexicon

	singles    []string
	trochees   []string
	dactyls    []string
	rhymePairs []RhymePair

	Stats Stats
}

// Stats are the diagnostics of a build.
type Stats struct {
	Dictionary dict.Stats
	Lexicon    LexiconStats
	Bigrams    dict.BigramStats

	TrocheeCount int
	DactylCount  int
	RhymeCount   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d %d %d", s.TrocheeCount, s.DactylCount, s.RhymeCount)
}

// Load reads the dictionary, vocabulary and bigram corpus named by cfg from
// fsys and builds an Engine from them.
func Load(fsys hackpadfs.FS, cfg Config) (*Engine, error) {
	entries, dictStats, err := dict.LoadPronunciations(fsys, cfg.DictPath)
	if err != nil {
		return nil, err
	}
	log.Printf("read %d pronunciations, skipped %d malformed lines", dictStats.ParsedLines, dictStats.Malformed)

	vocab, err := dict.LoadVocabulary(fsys, cfg.VocabPath)
	if err != nil {
		return nil, err
	}
	log.Printf("read %d vocabulary words", vocab.Len())

	var (
		bigrams     []dict.Bigram
		bigramStats dict.BigramStats
	)
	if cfg.BigramPath != "" {
		bigrams, bigramStats, err = dict.LoadBigrams(fsys, cfg.BigramPath, cfg.BigramSkip)
		if err != nil {
			return nil, err
		}
		log.Printf("read %d bigrams, skipped %d, %d malformed", bigramStats.Read, bigramStats.Skipped, bigramStats.Malformed)
	} else {
		log.Println("no bigram corpus configured, meter will not be extended")
	}

	e, err := Build(entries, vocab, bigrams, cfg)
	if err != nil {
		return nil, err
	}
	e.Stats.Dictionary = dictStats
	e.Stats.Bigrams = bigramStats
	return e, nil
}

// Build runs every index pass over already loaded inputs.
func Build(entries []dict.Entry, vocab dict.WordSet, bigrams []dict.Bigram, cfg Config) (*Engine, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	lex, lexStats := BuildLexicon(entries, vocab, rules)
	log.Printf("indexed %d singles, %d trochees, %d dactyls, %d rhyme classes; %d entries had no stressed vowel",
		lex.Singles.Len(), lex.Trochees.Len(), lex.Dactyls.Len(), len(lex.RhymeClasses), lexStats.Unstressed)

	meter := ExtendMeter(bigrams, lex, rules, cfg.MeterCapacity)
	pairs, rhymeCount := BuildRhymePairs(lex, cfg.RhymeCapacity)

	return &Engine{
		Lexicon:    lex,
		singles:    lex.Singles.Sorted(),
		trochees:   meter.Trochees.Sorted(),
		dactyls:    meter.Dactyls.Sorted(),
		rhymePairs: pairs,
		Stats: Stats{
			Lexicon:      lexStats,
			TrocheeCount: meter.TrocheeCount,
			DactylCount:  meter.DactylCount,
			RhymeCount:   rhymeCount,
		},
	}, nil
}

// Singles returns a copy of the sorted single-syllable words.
func (e *Engine) Singles() []string { return append([]string(nil), e.singles...) }

// Trochees returns a copy of the sorted trochees, including synthesized phrases.
func (e *Engine) Trochees() []string { return append([]string(nil), e.trochees...) }

// Dactyls returns a copy of the sorted dactyls, including synthesized phrases.
func (e *Engine) Dactyls() []string { return append([]string(nil), e.dactyls...) }

// RhymePairs returns a copy of the rhyme pairs ordered by combined length.
func (e *Engine) RhymePairs() []RhymePair { return append([]RhymePair(nil), e.rhymePairs...) }
