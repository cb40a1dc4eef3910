// Package config reads the settings shared by the poesy commands.
package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/kalexmills/poesy/src/bot"
	"github.com/kalexmills/poesy/src/poesy"
	"github.com/spf13/viper"
)

type Config struct {
	Engine poesy.Config
	// Seed seeds sampling. Zero means seed from the clock.
	Seed int64
	// JournalPath is the sqlite poem journal. Empty disables the journal.
	JournalPath string
	// ComposeAttempts bounds the search for a poem missing from the journal.
	ComposeAttempts int
	Bot             bot.Config
}

// Read fills in defaults on v, layers the environment and an optional config
// file on top, and returns the result.
func Read(v *viper.Viper) Config {
	defaults := poesy.DefaultConfig()
	v.SetDefault("dictPath", "./cmudict.dict")
	v.SetDefault("vocabPath", "./vocab.txt")
	v.SetDefault("bigramPath", "./bigrams.txt")
	v.SetDefault("bigramSkip", defaults.BigramSkip)
	v.SetDefault("meterCapacity", defaults.MeterCapacity)
	v.SetDefault("rhymeCapacity", defaults.RhymeCapacity)
	v.SetDefault("vowels", defaults.Vowels)
	v.SetDefault("excludedWords", defaults.ExcludedWords)
	v.SetDefault("weakWords", defaults.WeakWords)
	v.SetDefault("strongWords", defaults.StrongWords)
	v.SetDefault("weakFinalPatterns", defaults.WeakFinalPatterns)
	v.SetDefault("seed", 0)
	v.SetDefault("journalPath", "")
	v.SetDefault("prefix", "!poesy")
	v.SetDefault("maxCount", 20)
	v.SetDefault("serveRandomPoem", true)
	v.SetDefault("composeAttempts", 10)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("POESY")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.AddConfigPath("/etc/poesy")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}
	return Config{
		Engine: poesy.Config{
			DictPath:          v.GetString("dictPath"),
			VocabPath:         v.GetString("vocabPath"),
			BigramPath:        v.GetString("bigramPath"),
			BigramSkip:        v.GetInt("bigramSkip"),
			MeterCapacity:     v.GetInt("meterCapacity"),
			RhymeCapacity:     v.GetInt("rhymeCapacity"),
			Vowels:            v.GetStringSlice("vowels"),
			ExcludedWords:     v.GetStringSlice("excludedWords"),
			WeakWords:         v.GetStringSlice("weakWords"),
			StrongWords:       v.GetStringSlice("strongWords"),
			WeakFinalPatterns: v.GetStringSlice("weakFinalPatterns"),
		},
		Seed:            v.GetInt64("seed"),
		JournalPath:     v.GetString("journalPath"),
		ComposeAttempts: v.GetInt("composeAttempts"),
		Bot: bot.Config{
			Token:           v.GetString("token"),
			Prefix:          v.GetString("prefix"),
			MaxCount:        v.GetInt("maxCount"),
			ServeRandomPoem: v.GetBool("serveRandomPoem"),
			ComposeAttempts: v.GetInt("composeAttempts"),
			Debug:           v.GetBool("debug"),
		},
	}
}

// Filesystem returns the host filesystem and rewrites the input paths of
// conf.Engine to be relative to its root.
func Filesystem(conf *Config) (hackpadfs.FS, error) {
	for _, path := range []*string{&conf.Engine.DictPath, &conf.Engine.VocabPath, &conf.Engine.BigramPath} {
		if *path == "" {
			continue
		}
		fsPath, err := FSPath(*path)
		if err != nil {
			return nil, err
		}
		*path = fsPath
	}
	return osfs.NewFS(), nil
}

// FSPath converts an OS path into a path on the root of the host filesystem.
func FSPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("could not resolve %s: %w", path, err)
	}
	fsPath := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if fsPath == "" {
		fsPath = "."
	}
	return fsPath, nil
}
