package poesy

import (
	"testing"

	"github.com/kalexmills/poesy/src/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLexicon(t *testing.T) {
	lex, stats := BuildLexicon(testEntries(t), testVocabulary(t), DefaultRules())

	assert.Equal(t, LexiconStats{Entries: 19, Excluded: 1, Unstressed: 1, NoPrimary: 1}, stats)

	assert.Equal(t, []string{"at", "bat", "big", "cat", "dog", "free", "go", "my", "read", "red", "slow", "through"}, lex.Singles.Sorted())
	assert.Equal(t, []string{"water"}, lex.Trochees.Sorted())
	assert.Equal(t, []string{"beautiful"}, lex.Dactyls.Sorted())

	assert.Equal(t, []string{"at", "bat", "cat"}, lex.RhymeWords(RhymeClassKey{"AE1 T", 1}))
	assert.Equal(t, []string{"go", "slow"}, lex.RhymeWords(RhymeClassKey{"OW1", 1}))
	assert.Equal(t, []string{"cats"}, lex.RhymeWords(RhymeClassKey{"AE1 T S", 1}))
	assert.Equal(t, []string{"beautiful"}, lex.RhymeWords(RhymeClassKey{"UW1 T AH0 F AH0 L", 3}))
}

func TestBuildLexicon_WeakFinalPatterns(t *testing.T) {
	lex, _ := BuildLexicon(testEntries(t), testVocabulary(t), DefaultRules())

	for key, class := range lex.RhymeClasses {
		assert.False(t, class.Has("HH AH0 L OW1"), "hello is 01 and should not rhyme, found in %v", key)
	}
	assert.False(t, lex.Trochees.Has("hello"))
	_, ok := lex.Stresses("hello")
	assert.True(t, ok, "weak final words can still be scanned")
}

func TestBuildLexicon_LastPronunciationWins(t *testing.T) {
	lex, _ := BuildLexicon(testEntries(t), testVocabulary(t), DefaultRules())

	assert.Equal(t, "red", lex.ByPronunciation["R EH1 D"])
	assert.Equal(t, []string{"red"}, lex.RhymeWords(RhymeClassKey{"EH1 D", 1}))
}

func TestBuildLexicon_Vocabulary(t *testing.T) {
	vocab := dict.NewWordSet("cat", "bat")
	lex, stats := BuildLexicon(testEntries(t), vocab, DefaultRules())

	assert.Equal(t, []string{"bat", "cat"}, lex.Singles.Sorted())
	assert.Equal(t, 16, stats.Unknown)
	assert.Equal(t, 1, stats.Excluded)
}

func TestBuildLexicon_LongWordsDoNotRhyme(t *testing.T) {
	entries := []dict.Entry{
		{Word: "STRENGTHENING", Phones: []string{"S", "T", "R", "EH1", "NG", "TH", "AH0", "N", "IH0", "NG"}},
	}
	lex, _ := BuildLexicon(entries, dict.NewWordSet("strengthening"), DefaultRules())
	assert.Empty(t, lex.RhymeClasses)
	assert.True(t, lex.Dactyls.Has("strengthening"))
}

func TestBuildLexicon_CatBatCats(t *testing.T) {
	entries := []dict.Entry{
		{Word: "cat", Phones: []string{"K", "AE1", "T"}},
		{Word: "bat", Phones: []string{"B", "AE1", "T"}},
		{Word: "cats", Phones: []string{"K", "AE1", "T", "S"}},
	}
	lex, _ := BuildLexicon(entries, dict.NewWordSet("cat", "bat", "cats"), DefaultRules())
	require.Contains(t, lex.RhymeClasses, RhymeClassKey{"AE1 T", 1})
	assert.Equal(t, []string{"bat", "cat"}, lex.RhymeWords(RhymeClassKey{"AE1 T", 1}))

	pairs, total := BuildRhymePairs(lex, DefaultRhymeCapacity)
	assert.Equal(t, 2, total)
	assert.Equal(t, []RhymePair{{"bat", "cat"}, {"cat", "bat"}}, pairs)
	assert.NotContains(t, pairs, RhymePair{"cat", "cats"})
}
