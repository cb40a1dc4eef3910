package poesy

import (
	"sort"
)

// RhymePair is an ordered pair of distinct rhyming words.
type RhymePair struct {
	A, B string
}

func (p RhymePair) Len() int {
	return len(p.A) + len(p.B)
}

func (p RhymePair) String() string {
	return p.A + "/" + p.B
}

// BuildRhymePairs returns every ordered pair of words sharing a rhyme class,
// leaving out pairs where one word is spelled inside the other ("star" and
// "stare"). Pairs are ordered by combined length and cut to capacity; total
// is the number of pairs found before the cut.
func BuildRhymePairs(lex *Lexicon, capacity int) (pairs []RhymePair, total int) {
	for _, key := range lex.RhymeClassKeys() {
		words := lex.RhymeWords(key)
		if len(words) < 2 {
			continue
		}
		for i, a := range words {
			for j, b := range words {
				if i == j || IsSubsequence(a, b) || IsSubsequence(b, a) {
					continue
				}
				pairs = append(pairs, RhymePair{A: a, B: b})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Len() < pairs[j].Len()
	})
	total = len(pairs)
	if capacity >= 0 && len(pairs) > capacity {
		pairs = pairs[:capacity]
	}
	return pairs, total
}

// IsSubsequence reports whether the bytes of sub appear in main in order,
// possibly with gaps.
func IsSubsequence(sub, main string) bool {
	i := 0
	for j := 0; i < len(sub) && j < len(main); j++ {
		if sub[i] == main[j] {
			i++
		}
	}
	return i == len(sub)
}
