package poesy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicon_Scan(t *testing.T) {
	lex, _ := BuildLexicon(testEntries(t), testVocabulary(t), DefaultRules())

	words, err := lex.Scan("Go slow, beautiful   WATER!")
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, "go(1)", words[0].String())
	assert.Equal(t, "beautiful(100)", words[2].String())
	assert.Equal(t, StressPattern{1, 1, 1, 0, 0, 1, 0}, Contour(words))

	words, err = lex.Scan("hello … the cat")
	require.NoError(t, err)
	assert.Equal(t, "0101", Contour(words).String())

	_, err = lex.Scan("the zyzzyva")
	assert.EqualError(t, err, "unknown word zyzzyva")
}

func TestDuplicateHash(t *testing.T) {
	equal := [][]string{
		{"go slow\ncat", "go slow\ncat"},
		{"go slow\ncat", "GO SLOW\nCAT"},
		{"go slow\ncat", "go, slow!\ncat."},
		{"Go slow\ncat", "\"gO slOw\"\ncat"},
	}
	notEqual := [][]string{
		{"go slow\ncat", "go slow\ncats"},
		{"go slow\ncat", "goslow\ncat"},
		{"go slow\ncat", "go slow cat"},
	}

	for _, tt := range equal {
		assert.Equal(t, DuplicateHash(tt[0]), DuplicateHash(tt[1]), "hash('%s') != hash('%s')", tt[0], tt[1])
	}
	for _, tt := range notEqual {
		assert.NotEqual(t, DuplicateHash(tt[0]), DuplicateHash(tt[1]), "hash('%s') == hash('%s')", tt[0], tt[1])
	}
}
