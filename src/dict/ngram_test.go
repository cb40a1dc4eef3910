package dict

import (
	"bytes"
	"context"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShard(t *testing.T, fs hackpadfs.FS, name string, rows string) {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(rows))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, hackpadfs.WriteFullFile(fs, name, buf.Bytes(), 0644))
}

func TestAggregateBigrams(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fs, "2grams", 0755))

	writeShard(t, fs, "2grams/a.gz",
		"go_VERB slow_ADV\t1960\t4\t3\n"+
			"go_VERB slow_ADV\t1940\t100\t100\n"+ // too old
			"red_ADJ fox_NOUN\t2000\t1\t1\n"+
			"red_ADJ zebra_NOUN\t2000\t9\t9\n"+ // zebra not in vocabulary
			"malformed row\n")
	writeShard(t, fs, "2grams/b.gz",
		"go slow\t1999\t2\t2\n"+
			"red fox\t2001\t1\t1\n"+
			"big dog\t1990\t1\tNaN\n")

	vocab := NewWordSet("go", "slow", "red", "fox", "big", "dog")
	counts, err := AggregateBigrams(context.Background(), fs, "2grams", vocab, NgramOptions{MinYear: 1950, Parallelism: 2})
	require.NoError(t, err)

	assert.Equal(t, []BigramCount{
		{Bigram{"go", "slow"}, 5},
		{Bigram{"red", "fox"}, 2},
	}, counts)

	require.NoError(t, WriteBigrams(fs, "all_bigrams.txt", counts))
	bigrams, _, err := LoadBigrams(fs, "all_bigrams.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, []Bigram{{"go", "slow"}, {"red", "fox"}}, bigrams)
}

func TestAggregateBigrams_BadShard(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)
	require.NoError(t, hackpadfs.MkdirAll(fs, "2grams", 0755))
	require.NoError(t, hackpadfs.WriteFullFile(fs, "2grams/plain.txt", []byte("not gzip"), 0644))

	_, err = AggregateBigrams(context.Background(), fs, "2grams", NewWordSet(), NgramOptions{})
	assert.Error(t, err)
}

func TestParseNgramRow(t *testing.T) {
	b, count, ok := parseNgramRow("the_DET cat_NOUN\t1999\t12\t7", 1950)
	assert.True(t, ok)
	assert.Equal(t, Bigram{"the", "cat"}, b)
	assert.EqualValues(t, 7, count)

	_, _, ok = parseNgramRow("_DET cat\t1999\t12\t7", 1950)
	assert.False(t, ok)

	_, _, ok = parseNgramRow("single\t1999\t12\t7", 1950)
	assert.False(t, ok)
}
