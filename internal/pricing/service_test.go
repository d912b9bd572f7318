package pricing

import (
	"errors"
	"reflect"
	"testing"

	"PrecoMateriais/internal/catalog"
)

type staticCatalog struct{ snap *catalog.Snapshot }

func (c staticCatalog) Snapshot() *catalog.Snapshot { return c.snap }

func newService(entries ...catalog.Entry) *Service {
	return &Service{Catalog: staticCatalog{snap: catalog.NewSnapshot("test", entries)}}
}

func baseEntries() []catalog.Entry {
	return []catalog.Entry{
		{Name: "Couro Bovino", Price: 100},
		{Name: "couro de tilapia", Price: 50},
		{Name: "Jeans", Price: 30},
		{Name: "Couro de Jacaré", Price: 900},
	}
}

func TestPriceAverage(t *testing.T) {
	svc := newService(baseEntries()...)

	res, err := svc.Price("Couro Bovino, Couro de Tilápia, Jeans")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if res.Details.Sum != 180 || res.Details.Count != 3 || res.Price != 60 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Category != CasualUrban {
		t.Fatalf("category=%q", res.Category)
	}
	want := []string{"Couro Bovino", "Couro de Tilápia", "Jeans"}
	if !reflect.DeepEqual(res.Materials, want) {
		t.Fatalf("materials=%q", res.Materials)
	}
}

func TestPricePremium(t *testing.T) {
	svc := newService(baseEntries()...)

	res, err := svc.Price("jeans,COURO-DE-JACARE")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if res.Category != PremiumLeather {
		t.Fatalf("category=%q", res.Category)
	}
	if res.Price != 465 {
		t.Fatalf("price=%d", res.Price)
	}
}

func TestPriceDuplicatesCountEachTime(t *testing.T) {
	svc := newService(baseEntries()...)

	res, err := svc.Price("Jeans, jeans, Couro Bovino")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if res.Details.Sum != 160 || res.Details.Count != 3 || res.Price != 53 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPriceRoundsHalfAwayFromZero(t *testing.T) {
	svc := newService(catalog.Entry{Name: "A", Price: 1}, catalog.Entry{Name: "B", Price: 2})

	res, err := svc.Price("A,B")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if res.Price != 2 {
		t.Fatalf("1.5 should round to 2, got %d", res.Price)
	}
}

func TestPriceUnknown(t *testing.T) {
	svc := newService(baseEntries()...)

	_, err := svc.Price("Jeans, Seda Pura, Couro Bovino, seda pura")
	var unknown *UnknownMaterialsError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v", err)
	}
	want := []string{"Seda Pura", "seda pura"}
	if !reflect.DeepEqual(unknown.Materials, want) {
		t.Fatalf("unknown=%q want %q", unknown.Materials, want)
	}
}

func TestPriceEmpty(t *testing.T) {
	svc := newService(baseEntries()...)

	if _, err := svc.Price("   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("blank: err=%v", err)
	}
	if _, err := svc.Price(" , ,, "); !errors.Is(err, ErrNoValidItems) {
		t.Fatalf("commas only: err=%v", err)
	}
}

func TestSplitItems(t *testing.T) {
	got := SplitItems("  A ,B,, C ")
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitItems=%q want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	for _, name := range PremiumMaterials {
		if got := Classify([]string{"jeans", catalog.Normalize(name)}); got != PremiumLeather {
			t.Fatalf("%s: category=%q", name, got)
		}
	}
	if got := Classify([]string{"jeans", "couro bovino"}); got != CasualUrban {
		t.Fatalf("category=%q", got)
	}
	if got := Classify(nil); got != CasualUrban {
		t.Fatalf("empty: category=%q", got)
	}
}
