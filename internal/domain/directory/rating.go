package directory

import (
	"math"
	"strings"
)

// ===============================
// Rating Aggregate
// ===============================

// RoundRating calcula a média das notas arredondada para uma casa
// decimal. Conjunto vazio devolve 0 (nunca NaN).
func RoundRating(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

// MatchesAny: alguma das entradas contém (case-insensitive) algum dos
// termos pedidos. Semântica any-of-any dos filtros services/amenities.
func MatchesAny(values []string, terms []string) bool {
	for _, term := range terms {
		t := strings.ToLower(term)
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), t) {
				return true
			}
		}
	}
	return false
}
