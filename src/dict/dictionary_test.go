package dict

import (
	"strings"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDict = `;;; # CMUdict  --  Major Version: 0.07
;;; comment line

CAT  K AE1 T
CATS  K AE1 T S
READ  R IY1 D
READ(2)  R EH1 D
BROKEN
`

func TestReadPronunciations(t *testing.T) {
	entries, stats, err := ReadPronunciations(strings.NewReader(sampleDict))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CommentLines)
	assert.Equal(t, 4, stats.ParsedLines)
	assert.Equal(t, 1, stats.Malformed)
	require.Len(t, entries, 4)

	assert.Equal(t, Entry{"CAT", []string{"K", "AE1", "T"}}, entries[0])
	assert.Equal(t, "READ", entries[2].Word)
	assert.Equal(t, "READ", entries[3].Word)
	assert.Equal(t, []string{"R", "EH1", "D"}, entries[3].Phones)
}

func TestReadPronunciations_Malformed(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
	}{
		{"TOY  T OY1", true},
		{"AXE  AE1 K S", true},
		{"TOY  T OY1 AH9", false},
		{"TOY  T OY1 ah0", false},
		{"TOY  T OY12", false},
		{"TOY  T OY-1", false},
		{"TOY  T 1", false},
		{"TOY", false},
	}
	for _, tt := range tests {
		entries, stats, err := ReadPronunciations(strings.NewReader(tt.line))
		require.NoError(t, err, tt.line)
		if tt.ok {
			assert.Len(t, entries, 1, tt.line)
			assert.Zero(t, stats.Malformed, tt.line)
		} else {
			assert.Empty(t, entries, tt.line)
			assert.Equal(t, 1, stats.Malformed, tt.line)
		}
	}
}

func TestStripVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"READ(2)", "READ"},
		{"READ", "READ"},
		{"(PAREN", "(PAREN"},
		{"A(B)", "A(B)"},
		{"LIVE(12)", "LIVE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, stripVariant(tt.input), tt.input)
	}
}

func TestLoadPronunciations(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.WriteFullFile(fs, "cmudict.txt", []byte(sampleDict), 0644))

	entries, _, err := LoadPronunciations(fs, "cmudict.txt")
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	_, _, err = LoadPronunciations(fs, "missing.txt")
	assert.Error(t, err)
}

func TestReadVocabulary(t *testing.T) {
	vocab, err := ReadVocabulary(strings.NewReader("Cat\n\nbat extra\n  dog  \n"))
	require.NoError(t, err)

	assert.Equal(t, 3, vocab.Len())
	assert.True(t, vocab.Has("cat"))
	assert.True(t, vocab.Has("bat"))
	assert.True(t, vocab.Has("dog"))
	assert.False(t, vocab.Has("extra"))
	assert.Equal(t, []string{"bat", "cat", "dog"}, vocab.Sorted())
}

func TestWordSetClone(t *testing.T) {
	s := NewWordSet("Go", "slow")
	c := s.Clone()
	c.Add("fast")

	assert.True(t, s.Has("go"))
	assert.False(t, s.Has("fast"))
	assert.Equal(t, 3, c.Len())
}

func TestReadBigrams(t *testing.T) {
	corpus := "skip me\nskip too\ngo slow\nbroken\nred fox\none two three\n"

	bigrams, stats, err := ReadBigrams(strings.NewReader(corpus), 2)
	require.NoError(t, err)

	assert.Equal(t, BigramStats{Skipped: 2, Read: 2, Malformed: 2}, stats)
	assert.Equal(t, []Bigram{{"go", "slow"}, {"red", "fox"}}, bigrams)
	assert.Equal(t, 6, bigrams[0].Len())
	assert.Equal(t, "go slow", bigrams[0].String())
}

func TestReadBigrams_SkipPastEnd(t *testing.T) {
	bigrams, stats, err := ReadBigrams(strings.NewReader("go slow\n"), 10)
	require.NoError(t, err)
	assert.Empty(t, bigrams)
	assert.Equal(t, 1, stats.Skipped)
}
