package config

import (
	"strings"
	"testing"

	"github.com/kalexmills/poesy/src/poesy"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestRead_Defaults(t *testing.T) {
	conf := Read(viper.New())

	defaults := poesy.DefaultConfig()
	assert.Equal(t, defaults.MeterCapacity, conf.Engine.MeterCapacity)
	assert.Equal(t, defaults.RhymeCapacity, conf.Engine.RhymeCapacity)
	assert.Equal(t, defaults.Vowels, conf.Engine.Vowels)
	assert.Equal(t, defaults.WeakFinalPatterns, conf.Engine.WeakFinalPatterns)
	assert.Equal(t, "!poesy", conf.Bot.Prefix)
	assert.True(t, conf.Bot.ServeRandomPoem)
	assert.Equal(t, 10, conf.ComposeAttempts)
	assert.Equal(t, 10, conf.Bot.ComposeAttempts)
	assert.Empty(t, conf.JournalPath)
	assert.Zero(t, conf.Seed)
}

func TestRead_Environment(t *testing.T) {
	t.Setenv("POESY_METERCAPACITY", "1000")
	t.Setenv("POESY_SEED", "42")
	t.Setenv("POESY_JOURNALPATH", "/tmp/journal.db")
	t.Setenv("POESY_STRONGWORDS", "free thy")
	t.Setenv("POESY_TOKEN", "secret")

	conf := Read(viper.New())

	assert.Equal(t, 1000, conf.Engine.MeterCapacity)
	assert.EqualValues(t, 42, conf.Seed)
	assert.Equal(t, "/tmp/journal.db", conf.JournalPath)
	assert.Equal(t, []string{"free", "thy"}, conf.Engine.StrongWords)
	assert.Equal(t, "secret", conf.Bot.Token)
}

func TestFilesystem(t *testing.T) {
	conf := Config{Engine: poesy.Config{DictPath: "/usr/share/cmudict.dict", VocabPath: "vocab.txt"}}
	_, err := Filesystem(&conf)
	assert.NoError(t, err)

	assert.Equal(t, "usr/share/cmudict.dict", conf.Engine.DictPath)
	assert.False(t, strings.HasPrefix(conf.Engine.VocabPath, "/"))
	assert.True(t, strings.HasSuffix(conf.Engine.VocabPath, "src/config/vocab.txt"))
	assert.Empty(t, conf.Engine.BigramPath)
}
