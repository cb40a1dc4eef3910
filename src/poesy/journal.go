package poesy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonbodner/proteus"
	"github.com/kalexmills/poesy/src/poesy/db"
)

// ErrNoUnseenPoem is returned when every composed poem was already journaled.
var ErrNoUnseenPoem = errors.New("could not compose an unseen poem")

// RecordPoem stores p in the journal. It reports false when an identical
// poem, as judged by DuplicateHash, was recorded before.
func RecordPoem(ctx context.Context, e proteus.ContextExecutor, p Poem) (bool, error) {
	hash := DuplicateHash(p.String())
	rows, err := db.PoemDAO.Insert(ctx, e, db.Poem{
		ID:        uuid.NewString(),
		Line1:     p.Lines[0],
		Line2:     p.Lines[1],
		Bits:      p.Bits,
		MD5Sum:    hash[:],
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		return false, fmt.Errorf("error while storing poem: %w", err)
	}
	return rows != 0, nil
}

// ComposeNewPoem composes poems until one is found that is not in the
// journal yet, giving up after attempts tries. The poem it returns is
// recorded.
func (e *Engine) ComposeNewPoem(ctx context.Context, p Picker, ex proteus.ContextExecutor, attempts int) (Poem, error) {
	for i := 0; i < attempts; i++ {
		poem, err := e.ComposePoem(p)
		if err != nil {
			return Poem{}, err
		}
		fresh, err := RecordPoem(ctx, ex, poem)
		if err != nil {
			return Poem{}, err
		}
		if fresh {
			return poem, nil
		}
	}
	return Poem{}, fmt.Errorf("%w in %d attempts", ErrNoUnseenPoem, attempts)
}

// QueryNewPoems answers a poem query with poems composed by ComposeNewPoem.
func (e *Engine) QueryNewPoems(ctx context.Context, p Picker, ex proteus.ContextExecutor, q Query, attempts int) (Result, error) {
	if q.Category != CategoryPoem {
		return Result{}, fmt.Errorf("%w %q for a poem journal", ErrUnknownCategory, q.Category)
	}
	n := q.Count
	if q.All {
		n = 1
	}
	var result Result
	for i := 0; i < n; i++ {
		poem, err := e.ComposeNewPoem(ctx, p, ex, attempts)
		if err != nil {
			return Result{}, err
		}
		result.Poems = append(result.Poems, poem)
		result.Lines = append(result.Lines, poem.Lines[:]...)
	}
	return result, nil
}

// RandomPoem returns a previously recorded poem. ok is false when the
// journal is empty.
func RandomPoem(ctx context.Context, q proteus.ContextQuerier) (poem Poem, ok bool, err error) {
	row, err := db.PoemDAO.Random(ctx, q)
	if err != nil {
		return Poem{}, false, fmt.Errorf("could not read random poem: %w", err)
	}
	if row.ID == "" {
		return Poem{}, false, nil
	}
	return Poem{Lines: [2]string{row.Line1, row.Line2}, Bits: row.Bits}, true, nil
}
