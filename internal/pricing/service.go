package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"PrecoMateriais/internal/catalog"
)

var (
	ErrEmptyInput    = errors.New("no materials given")
	ErrNoValidItems  = errors.New("no valid material given")
	ErrPriceOverflow = errors.New("price sum overflow")
)

// UnknownMaterialsError lists, in request order, the materials missing from
// the catalog.
type UnknownMaterialsError struct {
	Materials []string
}

func (e *UnknownMaterialsError) Error() string {
	return fmt.Sprintf("unknown materials: %s", strings.Join(e.Materials, ", "))
}

type Details struct {
	Sum   int64 `json:"soma_precos_unitarios"`
	Count int   `json:"quantidade_materiais"`
}

type Result struct {
	Materials []string `json:"materiais"`
	Price     int64    `json:"preco"`
	Category  Category `json:"categoria"`
	Details   Details  `json:"detalhes"`
}

// SnapshotSource is the read side of the catalog.
type SnapshotSource interface {
	Snapshot() *catalog.Snapshot
}

type Service struct {
	Catalog SnapshotSource
}

// Price averages the unit prices of a comma-separated material list. Either
// every material is known and a Result is returned, or the call fails with
// *UnknownMaterialsError naming the ones that are not; no partial average
// is ever computed. Repeated materials count once per occurrence.
func (s *Service) Price(raw string) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}

	items := SplitItems(raw)
	if len(items) == 0 {
		return Result{}, ErrNoValidItems
	}

	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = catalog.Normalize(it)
	}

	snap := s.Catalog.Snapshot()

	var unknown []string
	for i, k := range keys {
		if _, ok := snap.Get(k); !ok {
			unknown = append(unknown, items[i])
		}
	}
	if len(unknown) > 0 {
		return Result{}, &UnknownMaterialsError{Materials: unknown}
	}

	var sum int64
	for _, k := range keys {
		e, _ := snap.Get(k)
		if e.Price > 0 && sum > math.MaxInt64-e.Price {
			return Result{}, ErrPriceOverflow
		}
		sum += e.Price
	}

	return Result{
		Materials: items,
		Price:     average(sum, len(items)),
		Category:  Classify(keys),
		Details:   Details{Sum: sum, Count: len(items)},
	}, nil
}

// SplitItems splits on commas, trims each piece and drops empty ones.
func SplitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// average is sum/n rounded half away from zero.
func average(sum int64, n int) int64 {
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(n)), 0).IntPart()
}
