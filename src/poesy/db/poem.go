package db

import (
	"context"

	"github.com/jonbodner/proteus"
)

type Poem struct {
	ID        string  `prof:"id"`
	Line1     string  `prof:"line1"`
	Line2     string  `prof:"line2"`
	Bits      float64 `prof:"bits"`
	MD5Sum    []byte  `prof:"md5_sum"`
	CreatedAt int64   `prof:"created_at"`
}

var PoemDAO PoemDaoImpl

type PoemDaoImpl struct {
	// Insert leaves the journal untouched and reports 0 rows when a poem with the same hash exists.
	Insert    func(ctx context.Context, e proteus.ContextExecutor, p Poem) (int64, error)         `proq:"q:insert" prop:"p"`
	FindByMD5 func(ctx context.Context, e proteus.ContextQuerier, md5Sum []byte) (Poem, error) `proq:"q:findByMD5" prop:"md5Sum"`
	Random    func(ctx context.Context, e proteus.ContextQuerier) (Poem, error)                `proq:"q:random"`
	Count     func(ctx context.Context, e proteus.ContextQuerier) (int64, error)               `proq:"q:count"`
}

func init() {
	m := proteus.MapMapper{
		"insert": `INSERT INTO poem (id, line1, line2, bits, md5_sum, created_at)
				   VALUES (:p.ID:, :p.Line1:, :p.Line2:, :p.Bits:, :p.MD5Sum:, :p.CreatedAt:)
				   ON CONFLICT (md5_sum) DO NOTHING`,
		"findByMD5": `SELECT id, line1, line2, bits, md5_sum, created_at FROM poem WHERE md5_sum = :md5Sum:`,
		"random":    `SELECT id, line1, line2, bits, md5_sum, created_at FROM poem ORDER BY RANDOM() LIMIT 1`,
		"count":     `SELECT COUNT(*) FROM poem`,
	}
	err := proteus.ShouldBuild(context.Background(), &PoemDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
