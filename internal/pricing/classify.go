package pricing

import "PrecoMateriais/internal/catalog"

type Category string

const (
	PremiumLeather Category = "Couro Premium"
	CasualUrban    Category = "Casual Urbano"
)

// PremiumMaterials are the exotic leathers that put a piece in the premium
// tier.
var PremiumMaterials = []string{
	"Couro de Jacaré",
	"Couro de Python",
	"Couro de Avestruz",
	"Couro de Pirarucu",
	"Couro de Elefante",
}

var premiumKeys = normalizedSet(PremiumMaterials)

func normalizedSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[catalog.Normalize(n)] = struct{}{}
	}
	return out
}

// Classify returns PremiumLeather when any normalized key is a premium
// material.
func Classify(keys []string) Category {
	for _, k := range keys {
		if _, ok := premiumKeys[k]; ok {
			return PremiumLeather
		}
	}
	return CasualUrban
}
