// vocab-extract builds a vocabulary from a text corpus: every word of the
// corpus found in the pronouncing dictionary, most frequent first.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/kalexmills/poesy/src/config"
	"github.com/kalexmills/poesy/src/dict"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var unescaper = strings.NewReplacer("\\/", "/", "\\\"", "\"", "''''", "'", "''", "'")

var sources = map[string]dict.LineParser{
	"text": func(s string) string {
		return s
	},
	// word lists with a count or tag column, such as a previous vocabulary
	"wordlist": func(s string) string {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	},
	"wikipedia": func(s string) string {
		tokens := strings.Split(s, "+++$+++")
		if len(tokens) < 8 {
			return ""
		}
		return unescaper.Replace(strings.TrimSpace(tokens[7]))
	},
	"chat-csv": func(s string) string {
		r := csv.NewReader(strings.NewReader(s))
		tokens, err := r.Read()
		if err != nil || len(tokens) < 4 {
			return ""
		}
		return tokens[3]
	},
}

func main() {
	pflag.String("corpus", "./data/corpus.txt", "corpus to count words in")
	pflag.String("source", "text", "corpus line format: text, wordlist, wikipedia or chat-csv")
	pflag.String("dictPath", "./cmudict.dict", "pronouncing dictionary")
	pflag.String("vocabPath", "./vocab.txt", "output file")
	pflag.Int("minCount", 2, "drop words seen fewer times")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("POESY")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("could not bind flags: %v", err)
	}

	parse, ok := sources[v.GetString("source")]
	if !ok {
		log.Fatalf("unknown corpus source %q", v.GetString("source"))
	}

	fsys := osfs.NewFS()
	entries, _, err := dict.LoadPronunciations(fsys, mustFSPath(v.GetString("dictPath")))
	if err != nil {
		log.Fatalf("could not load dictionary: %v", err)
	}
	known := dict.DictionaryWords(entries)
	log.Printf("read %d dictionary words", known.Len())

	f, err := fsys.Open(mustFSPath(v.GetString("corpus")))
	if err != nil {
		log.Fatalf("could not open corpus: %v", err)
	}
	defer f.Close()

	counts, err := dict.CountWords(f, parse, known)
	if err != nil {
		log.Fatalf("could not count words: %v", err)
	}
	ranked := dict.RankWords(counts, v.GetInt("minCount"))

	var out strings.Builder
	for _, wc := range ranked {
		fmt.Fprintf(&out, "%s %d\n", wc.Word, wc.Count)
	}
	err = hackpadfs.WriteFullFile(fsys, mustFSPath(v.GetString("vocabPath")), []byte(out.String()), 0644)
	if err != nil {
		log.Fatalf("could not write vocabulary: %v", err)
	}
	log.Printf("wrote %d of %d distinct words", len(ranked), len(counts))
}

func mustFSPath(path string) string {
	fsPath, err := config.FSPath(path)
	if err != nil {
		log.Fatal(err)
	}
	return fsPath
}
