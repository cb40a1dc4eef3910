package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kalexmills/poesy/src/config"
	"github.com/kalexmills/poesy/src/poesy"
	"github.com/kalexmills/poesy/src/poesy/db"
	"github.com/spf13/viper"
)

func main() {
	q, err := poesy.ParseQuery(os.Args[1:])
	if err != nil {
		if errors.Is(err, poesy.ErrUnknownCategory) {
			log.Printf("categories: %s", categoryList())
		}
		log.Fatalf("usage: poesy-cli [category] [count|all]: %v", err)
	}

	conf := config.Read(viper.GetViper())
	fsys, err := config.Filesystem(&conf)
	if err != nil {
		log.Fatalf("could not resolve input paths: %v", err)
	}

	engine, err := poesy.Load(fsys, conf.Engine)
	if err != nil {
		log.Fatalf("could not build engine: %v", err)
	}
	log.Println(engine.Stats)

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	picker := rand.New(rand.NewSource(seed))

	var result poesy.Result
	if q.Category == poesy.CategoryPoem && conf.JournalPath != "" {
		result, err = newPoems(engine, picker, q, conf.JournalPath, conf.ComposeAttempts)
	} else {
		result, err = engine.Query(picker, q)
	}
	if err != nil {
		log.Fatalf("could not answer query: %v", err)
	}

	for _, poem := range result.Poems {
		log.Printf("%.2f bits", poem.Bits)
	}
	for _, line := range result.Lines {
		fmt.Println(line)
	}
}

func newPoems(engine *poesy.Engine, picker poesy.Picker, q poesy.Query, journalPath string, attempts int) (poesy.Result, error) {
	journal, err := db.Open(journalPath)
	if err != nil {
		return poesy.Result{}, err
	}
	defer journal.Close()
	return engine.QueryNewPoems(context.Background(), picker, journal, q, attempts)
}

func categoryList() string {
	names := make([]string, len(poesy.Categories))
	for i, c := range poesy.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
