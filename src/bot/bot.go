// Package bot answers poesy queries on Discord.
package bot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/poesy/src/poesy"
)

// maxMessageLength is the longest message Discord accepts.
const maxMessageLength = 2000

var errTooMany = errors.New("too many results")

type Config struct {
	Token  string
	Prefix string
	// MaxCount caps the number of lines a single command may produce.
	MaxCount        int
	ServeRandomPoem bool
	// ComposeAttempts bounds the search for a poem missing from the journal.
	ComposeAttempts int

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tPrefix: %s\n\tMaxCount: %d\n\tServeRandomPoem: %t\n\tComposeAttempts: %d\n\tDebug: %t\n",
		c.Prefix, c.MaxCount, c.ServeRandomPoem, c.ComposeAttempts, c.Debug)
}

type Poesy struct {
	session *discordgo.Session

	config  Config
	engine  *poesy.Engine
	journal *sql.DB
	picker  poesy.Picker

	mu           sync.Mutex
	channelCache map[string]*discordgo.Channel
}

// NewPoesy returns a bot answering from engine. With a journal, composed
// poems are recorded and never repeated. journal may be nil.
func NewPoesy(config Config, engine *poesy.Engine, journal *sql.DB, seed int64) *Poesy {
	log.Printf("Poesy Bot Config:\n%v", config)
	return &Poesy{
		config:       config,
		engine:       engine,
		journal:      journal,
		picker:       &lockedRand{r: rand.New(rand.NewSource(seed))},
		channelCache: make(map[string]*discordgo.Channel),
	}
}

func (p *Poesy) Open() error {
	var err error
	p.session, err = discordgo.New("Bot " + p.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if p.config.Debug {
		p.session.LogLevel = discordgo.LogDebug
	}

	p.session.AddHandler(p.ReceiveNewMessage)
	p.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	err = p.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (p *Poesy) Close() error {
	return p.session.Close()
}

func (p *Poesy) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic on content, %s, panicking on: %v\n%s", oneLine(m.Content), r, debug.Stack())
		}
	}()
	if m.Author.Bot {
		return
	}
	ctx := context.Background()

	if args, ok := parseCommand(p.config.Prefix, m.Content); ok {
		p.reply(s, m, p.answer(ctx, args))
		return
	}
	if isDM, err := p.isDM(s, m.ChannelID); err != nil {
		log.Println("could not lookup channel,", err)
	} else if isDM {
		p.reply(s, m, p.answer(ctx, strings.Fields(m.Content)))
		return
	}
	if p.config.ServeRandomPoem && mentions(s, m) {
		p.reply(s, m, p.randomPoem(ctx))
	}
}

// answer runs the command held in args and renders the reply.
func (p *Poesy) answer(ctx context.Context, args []string) string {
	if len(args) == 0 || args[0] == "help" {
		return p.help()
	}
	if args[0] == "scan" {
		return p.scan(strings.Join(args[1:], " "))
	}
	q, err := poesy.ParseQuery(args)
	if err != nil {
		return err.Error()
	}
	if err := p.checkSize(q); err != nil {
		return err.Error()
	}
	var result poesy.Result
	if q.Category == poesy.CategoryPoem && p.journal != nil {
		result, err = p.engine.QueryNewPoems(ctx, p.picker, p.journal, q, p.config.ComposeAttempts)
	} else {
		result, err = p.engine.Query(p.picker, q)
	}
	if err != nil {
		log.Printf("could not answer %v, %v", args, err)
		return err.Error()
	}
	for _, poem := range result.Poems {
		log.Printf("composed poem with %.2f bits: %s", poem.Bits, oneLine(poem.String()))
	}
	return codeBlock(strings.Join(result.Lines, "\n"))
}

// checkSize refuses queries whose answer would exceed MaxCount lines.
func (p *Poesy) checkSize(q poesy.Query) error {
	n, perItem := q.Count, 1
	switch {
	case q.Category == poesy.CategoryPoem:
		if q.All {
			n = 1
		}
		perItem = 2
	case q.All:
		n = p.categorySize(q.Category)
	}
	if n > p.config.MaxCount/perItem {
		return fmt.Errorf("%w: I only send %d lines at a time", errTooMany, p.config.MaxCount)
	}
	return nil
}

func (p *Poesy) categorySize(c poesy.Category) int {
	switch c {
	case poesy.CategorySingle:
		return len(p.engine.Singles())
	case poesy.CategoryTrochee, poesy.CategoryFoot:
		return len(p.engine.Trochees())
	case poesy.CategoryDactyl:
		return len(p.engine.Dactyls())
	}
	return len(p.engine.RhymePairs())
}

func (p *Poesy) scan(line string) string {
	words, err := p.engine.Lexicon.Scan(line)
	if err != nil {
		return err.Error()
	}
	if len(words) == 0 {
		return "nothing to scan"
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.String()
	}
	return codeBlock(strings.Join(parts, " ") + "\n" + poesy.Contour(words).String())
}

// randomPoem serves a journaled poem. With an empty journal it composes one
// the journal has not seen and records it.
func (p *Poesy) randomPoem(ctx context.Context) string {
	if p.journal == nil {
		poem, err := p.engine.ComposePoem(p.picker)
		if err != nil {
			log.Println("could not compose poem,", err)
			return err.Error()
		}
		return codeBlock(poem.String())
	}
	poem, ok, err := poesy.RandomPoem(ctx, p.journal)
	if err != nil {
		log.Println("could not serve journaled poem,", err)
	} else if ok {
		return codeBlock(poem.String())
	}
	poem, err = p.engine.ComposeNewPoem(ctx, p.picker, p.journal, p.config.ComposeAttempts)
	if err != nil {
		log.Println("could not compose new poem,", err)
		return err.Error()
	}
	return codeBlock(poem.String())
}

func (p *Poesy) help() string {
	categories := make([]string, len(poesy.Categories))
	for i, c := range poesy.Categories {
		categories[i] = string(c)
	}
	return fmt.Sprintf("usage: %s <%s> [count|all]\n       %s scan <line>",
		p.config.Prefix, strings.Join(categories, "|"), p.config.Prefix)
}

func (p *Poesy) reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if len(content) > maxMessageLength {
		log.Printf("reply of %d bytes is too long to send", len(content))
		content = "that answer is too long to send"
	}
	ref := &discordgo.MessageReference{MessageID: m.ID, ChannelID: m.ChannelID, GuildID: m.GuildID}
	_, err := s.ChannelMessageSendReply(m.ChannelID, content, ref)
	if err != nil {
		log.Println("could not send reply,", err)
	}
}

func (p *Poesy) isDM(s *discordgo.Session, channelID string) (bool, error) {
	c, err := p.lookupChannel(s, channelID)
	if err != nil {
		return false, err
	}
	return c.Type == discordgo.ChannelTypeDM && len(c.Recipients) == 1, nil
}

func (p *Poesy) lookupChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	p.mu.Lock()
	c, ok := p.channelCache[channelID]
	p.mu.Unlock()
	if ok {
		return c, nil
	}
	c, err := s.Channel(channelID)
	if err != nil {
		return nil, err
	}
	log.Println("looked up channel", channelID)
	p.mu.Lock()
	p.channelCache[channelID] = c
	p.mu.Unlock()
	return c, nil
}

// parseCommand splits content into arguments when it starts with prefix.
func parseCommand(prefix, content string) ([]string, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.EqualFold(fields[0], prefix) {
		return nil, false
	}
	args := fields[1:]
	if len(args) > 0 {
		args[0] = strings.ToLower(args[0])
	}
	return args, true
}

func mentions(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if s.State == nil || s.State.User == nil {
		return false
	}
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

// lockedRand lets concurrent handlers share one seeded source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func codeBlock(str string) string {
	return "```\n" + str + "\n```"
}

func oneLine(str string) string {
	return strings.ReplaceAll(str, "\n", "\\n")
}
