package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kalexmills/poesy/src/bot"
	"github.com/kalexmills/poesy/src/config"
	"github.com/kalexmills/poesy/src/poesy"
	"github.com/kalexmills/poesy/src/poesy/db"
	"github.com/spf13/viper"
)

func main() {
	conf := config.Read(viper.GetViper())
	fsys, err := config.Filesystem(&conf)
	if err != nil {
		log.Fatalf("could not resolve input paths: %v", err)
	}
	log.Printf("Engine Config:\n%v", conf.Engine)

	engine, err := poesy.Load(fsys, conf.Engine)
	if err != nil {
		log.Fatalf("could not build engine: %v", err)
	}
	log.Println(engine.Stats)

	var journal *sql.DB
	if conf.JournalPath != "" {
		journal, err = db.Open(conf.JournalPath)
		if err != nil {
			log.Fatalf("could not open journal: %v", err)
		}
		defer journal.Close()
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := bot.NewPoesy(conf.Bot, engine, journal, seed)

	err = p.Open()
	if err != nil {
		log.Fatalf("fail error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session.
	err = p.Close()
	if err != nil {
		log.Println("error closing session,", err)
	}
}
