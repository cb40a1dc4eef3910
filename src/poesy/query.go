package poesy

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrBadCount        = errors.New("count must be a positive integer or \"all\"")
)

type Category string

const (
	CategoryRhyme   Category = "rhyme"
	CategorySingle  Category = "single"
	CategoryTrochee Category = "trochee"
	CategoryDactyl  Category = "dactyl"
	CategoryFoot    Category = "foot"
	CategoryPoem    Category = "poem"
)

// Categories lists every query category in help order.
var Categories = []Category{CategoryRhyme, CategorySingle, CategoryTrochee, CategoryDactyl, CategoryFoot, CategoryPoem}

// Query selects a category and how many members of it to return.
type Query struct {
	Category Category
	// All lists every member instead of sampling Count of them.
	All   bool
	Count int
	// KeepDuplicates lists a rhyme pair once per rhyme class it was built
	// from instead of once.
	KeepDuplicates bool
}

// DefaultQuery lists every rhyme pair, repeats included.
var DefaultQuery = Query{Category: CategoryRhyme, All: true, KeepDuplicates: true}

// ParseQuery reads "[category] [count|all]". No arguments yields
// DefaultQuery and an omitted count means 1.
func ParseQuery(args []string) (Query, error) {
	if len(args) == 0 {
		return DefaultQuery, nil
	}
	q := Query{Category: Category(args[0]), Count: 1}
	if !q.Category.valid() {
		return Query{}, fmt.Errorf("%w %q", ErrUnknownCategory, args[0])
	}
	if len(args) > 1 {
		if args[1] == "all" {
			q.All = true
		} else {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return Query{}, fmt.Errorf("%w, got %q", ErrBadCount, args[1])
			}
			q.Count = n
		}
	}
	return q, nil
}

func (c Category) valid() bool {
	for _, other := range Categories {
		if c == other {
			return true
		}
	}
	return false
}

// Poem is a two line skeleton. Bits is the information content of the
// choices made to compose it.
type Poem struct {
	Lines [2]string
	Bits  float64
}

func (p Poem) String() string {
	return p.Lines[0] + "\n" + p.Lines[1]
}

// Result is the answer to a Query. Lines is the primary output, Poems is
// filled for poem queries only.
type Result struct {
	Lines []string
	Poems []Poem
}

// ComposePoem draws two dactyls, two trochees and a rhyme pair:
//
//	<dactyl> <trochee> <rhyme A>
//	<dactyl> <trochee> <rhyme B>
func (e *Engine) ComposePoem(p Picker) (Poem, error) {
	words, bits, err := Sample(p, e.dactyls, e.trochees, e.dactyls, e.trochees)
	if err != nil {
		return Poem{}, err
	}
	rhymes, rhymeBits, err := Sample(p, e.rhymePairs)
	if err != nil {
		return Poem{}, err
	}
	rhyme := rhymes[0]
	return Poem{
		Lines: [2]string{
			words[0] + " " + words[1] + " " + rhyme.A,
			words[2] + " " + words[3] + " " + rhyme.B,
		},
		Bits: bits + rhymeBits,
	}, nil
}

// Query answers q. Sampling uses p; listing every member does not.
func (e *Engine) Query(p Picker, q Query) (Result, error) {
	switch q.Category {
	case CategoryRhyme:
		return e.queryRhymes(p, q)
	case CategorySingle:
		return queryWords(p, e.singles, q)
	case CategoryTrochee, CategoryFoot:
		return queryWords(p, e.trochees, q)
	case CategoryDactyl:
		return queryWords(p, e.dactyls, q)
	case CategoryPoem:
		n := q.Count
		if q.All {
			n = 1
		}
		var result Result
		for i := 0; i < n; i++ {
			poem, err := e.ComposePoem(p)
			if err != nil {
				return Result{}, err
			}
			result.Poems = append(result.Poems, poem)
			result.Lines = append(result.Lines, poem.Lines[:]...)
		}
		return result, nil
	}
	return Result{}, fmt.Errorf("%w %q", ErrUnknownCategory, q.Category)
}

func (e *Engine) queryRhymes(p Picker, q Query) (Result, error) {
	if q.All {
		seen := make(map[RhymePair]struct{}, len(e.rhymePairs))
		listed := make([]RhymePair, 0, len(e.rhymePairs))
		for _, pair := range e.rhymePairs {
			if _, ok := seen[pair]; ok && !q.KeepDuplicates {
				continue
			}
			seen[pair] = struct{}{}
			listed = append(listed, pair)
		}
		sort.Slice(listed, func(i, j int) bool {
			if listed[i].A != listed[j].A {
				return listed[i].A < listed[j].A
			}
			return listed[i].B < listed[j].B
		})
		return Result{Lines: pairLines(listed)}, nil
	}
	pairs, err := SampleN(p, e.rhymePairs, q.Count)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: pairLines(pairs)}, nil
}

func pairLines(pairs []RhymePair) []string {
	lines := make([]string, len(pairs))
	for i, pair := range pairs {
		lines[i] = pair.String()
	}
	return lines
}

func queryWords(p Picker, words []string, q Query) (Result, error) {
	if q.All {
		return Result{Lines: append([]string(nil), words...)}, nil
	}
	lines, err := SampleN(p, words, q.Count)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: lines}, nil
}
