// bigram-count aggregates Google Books 2-gram shards into the bigram corpus
// read by poesy: one "A B" line per bigram, most frequent first.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/kalexmills/poesy/src/config"
	"github.com/kalexmills/poesy/src/dict"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	osfs "github.com/hack-pad/hackpadfs/os"
)

func main() {
	pflag.String("shards", "./data/2grams", "directory holding the gzip'd 2-gram shards")
	pflag.String("vocabPath", "./vocab.txt", "vocabulary both words of a bigram must belong to")
	pflag.String("bigramPath", "./bigrams.txt", "output file")
	pflag.Int("minYear", 1950, "ignore rows older than this year")
	pflag.Int("parallelism", 0, "shards read at once, 0 for one per shard")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("POESY")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("could not bind flags: %v", err)
	}

	paths := make(map[string]string)
	for _, key := range []string{"shards", "vocabPath", "bigramPath"} {
		fsPath, err := config.FSPath(v.GetString(key))
		if err != nil {
			log.Fatalf("could not resolve %s: %v", key, err)
		}
		paths[key] = fsPath
	}
	fsys := osfs.NewFS()

	vocab, err := dict.LoadVocabulary(fsys, paths["vocabPath"])
	if err != nil {
		log.Fatalf("could not load vocabulary: %v", err)
	}
	log.Printf("read %d vocabulary words", vocab.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	counts, err := dict.AggregateBigrams(ctx, fsys, paths["shards"], vocab, dict.NgramOptions{
		MinYear:     v.GetInt("minYear"),
		Parallelism: v.GetInt("parallelism"),
	})
	if err != nil {
		log.Fatalf("could not aggregate bigrams: %v", err)
	}

	if err := dict.WriteBigrams(fsys, paths["bigramPath"], counts); err != nil {
		log.Fatalf("could not write bigrams: %v", err)
	}
	log.Printf("wrote %d bigrams to %s", len(counts), v.GetString("bigramPath"))
}
