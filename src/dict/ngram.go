package dict

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hack-pad/hackpadfs"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

// NgramOptions controls AggregateBigrams.
type NgramOptions struct {
	// MinYear drops rows from before this year.
	MinYear int
	// Parallelism limits the number of shards read at once, <= 0 means no limit.
	Parallelism int
}

// BigramCount is a bigram and the number of volumes it was seen in.
type BigramCount struct {
	Bigram
	Count uint64
}

// AggregateBigrams reads every gzip'd Google Books 2-gram shard in dir and
// sums volume counts per bigram. Rows have the form
//
//	word1_POS word2_POS \t year \t match_count \t volume_count
//
// Part of speech tags are dropped. Rows older than MinYear or with a word
// outside vocab are ignored. The result is ordered by descending count, ties
// broken by text.
func AggregateBigrams(ctx context.Context, fsys hackpadfs.FS, dir string, vocab WordSet, opts NgramOptions) ([]BigramCount, error) {
	entries, err := hackpadfs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read shard dir %s: %w", dir, err)
	}
	var shards []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		shards = append(shards, path.Join(dir, e.Name()))
	}
	sort.Strings(shards)

	var (
		mu     sync.Mutex
		counts = make(map[Bigram]uint64)
	)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for _, shard := range shards {
		shard := shard
		g.Go(func() error {
			local, err := countShard(ctx, fsys, shard, vocab, opts.MinYear)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for b, c := range local {
				counts[b] += c
			}
			log.Printf("merged shard %s: %d bigrams", shard, len(local))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]BigramCount, 0, len(counts))
	for b, c := range counts {
		result = append(result, BigramCount{Bigram: b, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].String() < result[j].String()
	})
	return result, nil
}

func countShard(ctx context.Context, fsys hackpadfs.FS, shard string, vocab WordSet, minYear int) (map[Bigram]uint64, error) {
	f, err := fsys.Open(shard)
	if err != nil {
		return nil, fmt.Errorf("open shard %s: %w", shard, err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream %s: %w", shard, err)
	}
	defer gz.Close()

	counts := make(map[Bigram]uint64)
	s := bufio.NewScanner(gz)
	for lineNum := 0; s.Scan(); lineNum++ {
		if lineNum%1_000_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		b, count, ok := parseNgramRow(s.Text(), minYear)
		if !ok || !vocab.Has(b.A) || !vocab.Has(b.B) {
			continue
		}
		counts[b] += count
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan shard %s: %w", shard, err)
	}
	return counts, nil
}

func parseNgramRow(line string, minYear int) (Bigram, uint64, bool) {
	parts := strings.Split(strings.TrimSpace(line), "\t")
	if len(parts) < 4 {
		return Bigram{}, 0, false
	}
	words := strings.Fields(parts[0])
	if len(words) < 2 {
		return Bigram{}, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < minYear {
		return Bigram{}, 0, false
	}
	volumes, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return Bigram{}, 0, false
	}
	a := untag(words[0])
	if a == "" {
		return Bigram{}, 0, false
	}
	return Bigram{A: a, B: untag(words[1])}, volumes, true
}

// untag drops a part of speech suffix, "run_VERB" -> "run".
func untag(word string) string {
	if idx := strings.IndexByte(word, '_'); idx >= 0 {
		return word[:idx]
	}
	return word
}

// WriteBigrams writes counts as "A B" lines to path in fsys.
func WriteBigrams(fsys hackpadfs.FS, path string, counts []BigramCount) error {
	var buf bytes.Buffer
	for _, c := range counts {
		buf.WriteString(c.A)
		buf.WriteByte(' ')
		buf.WriteString(c.B)
		buf.WriteByte('\n')
	}
	if err := hackpadfs.WriteFullFile(fsys, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write bigrams %s: %w", path, err)
	}
	return nil
}
