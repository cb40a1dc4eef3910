package poesy

import (
	"strings"
	"testing"

	"github.com/kalexmills/poesy/src/dict"
	"github.com/stretchr/testify/require"
)

const testDict = `;;; test dictionary
CAT  K AE1 T
BAT  B AE1 T
AT  AE1 T
CATS  K AE1 T S
GO  G OW1
SLOW  S L OW1
BIG  B IH1 G
DOG  D AO1 G
MY  M AY1
FREE  F R IY1
THROUGH  TH R UW1
WATER  W AO1 T ER0
BEAUTIFUL  B Y UW1 T AH0 F AH0 L
HELLO  HH AH0 L OW1
THE  DH AH0
HMM  HH M
A  AH0
READ  R EH1 D
RED  R EH1 D
`

const testBigrams = `go slow
big dog
my dog
big free
through dog
water dog
the dog
cat a
`

func testEntries(t *testing.T) []dict.Entry {
	t.Helper()
	entries, _, err := dict.ReadPronunciations(strings.NewReader(testDict))
	require.NoError(t, err)
	return entries
}

func testVocabulary(t *testing.T) dict.WordSet {
	t.Helper()
	vocab := make(dict.WordSet)
	for _, e := range testEntries(t) {
		vocab.Add(strings.ToLower(e.Word))
	}
	return vocab
}

func testBigramList(t *testing.T) []dict.Bigram {
	t.Helper()
	bigrams, _, err := dict.ReadBigrams(strings.NewReader(testBigrams), 0)
	require.NoError(t, err)
	return bigrams
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Build(testEntries(t), testVocabulary(t), testBigramList(t), DefaultConfig())
	require.NoError(t, err)
	return e
}

// seqPicker returns 0, 1, 2, ... modulo n.
type seqPicker struct {
	next int
}

func (p *seqPicker) Intn(n int) int {
	result := p.next % n
	p.next++
	return result
}
