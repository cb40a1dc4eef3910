package poesy

import (
	"sort"

	"github.com/kalexmills/poesy/src/dict"
)

// MeterResult holds the trochee and dactyl sets after bigram synthesis.
type MeterResult struct {
	Trochees dict.WordSet
	Dactyls  dict.WordSet
	// TrocheeCount and DactylCount count every qualifying candidate, including
	// those dropped once a set reached capacity.
	TrocheeCount int
	DactylCount  int
}

// ExtendMeter grows the trochee and dactyl sets of lex with two-word phrases
// taken from bigrams. Bigrams are visited shortest first; ties keep their
// corpus order. A phrase "A B" becomes a trochee when A and B are both
// singles, and a dactyl when A is a trochee and B a single. Sets grow up to
// capacity but never shrink. lex is left unchanged.
func ExtendMeter(bigrams []dict.Bigram, lex *Lexicon, rules Rules, capacity int) MeterResult {
	result := MeterResult{
		Trochees:     lex.Trochees.Clone(),
		Dactyls:      lex.Dactyls.Clone(),
		TrocheeCount: lex.Trochees.Len(),
		DactylCount:  lex.Dactyls.Len(),
	}

	ordered := make([]dict.Bigram, len(bigrams))
	copy(ordered, bigrams)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Len() < ordered[j].Len()
	})

	for _, b := range ordered {
		if rules.WeakWords.Has(b.A) || rules.ExcludedWords.Has(b.A) ||
			rules.ExcludedWords.Has(b.B) || rules.StrongWords.Has(b.B) {
			continue
		}
		switch {
		case lex.Singles.Has(b.A) && lex.Singles.Has(b.B) && b.Len() < 10:
			if result.Trochees.Len() < capacity {
				result.Trochees.Add(b.String())
			}
			result.TrocheeCount++
		case lex.Trochees.Has(b.A) && lex.Singles.Has(b.B) && b.Len() < 11:
			if result.Dactyls.Len() < capacity {
				result.Dactyls.Add(b.String())
			}
			result.DactylCount++
		}
	}
	return result
}
