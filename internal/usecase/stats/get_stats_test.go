package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idenegocios/barbershop-directory/internal/models"
)

func shop(city, state string, pr models.PriceRange, verified bool, rating float64, reviews int, services, amenities []string) models.Barbershop {
	b := models.Barbershop{
		Verified:    verified,
		Rating:      rating,
		ReviewCount: reviews,
		PriceRange:  pr,
		Amenities:   amenities,
	}
	b.Address.City = city
	b.Address.State = state
	for _, name := range services {
		b.Services = append(b.Services, models.Service{Name: name})
	}
	return b
}

func TestCompute_Empty(t *testing.T) {
	ov := compute(nil)

	assert.Equal(t, 0, ov.TotalBarbershops)
	assert.Equal(t, 0.0, ov.AverageRating)
	assert.Equal(t, 0, ov.CitiesCount)
	// Slices vazios, não nil: o JSON precisa emitir [].
	assert.NotNil(t, ov.TopServices)
	assert.NotNil(t, ov.TopAmenities)
	assert.Empty(t, ov.TopServices)
}

func TestCompute_Overview(t *testing.T) {
	shops := []models.Barbershop{
		shop("São Paulo", "SP", models.PriceRangeMedium, true, 4.5, 10,
			[]string{"Corte Masculino", "Barba"}, []string{"Wi-Fi", "TV"}),
		shop("Campinas", "SP", models.PriceRangeHigh, false, 3.5, 4,
			[]string{"Corte Masculino"}, []string{"Wi-Fi"}),
		shop("Rio de Janeiro", "RJ", models.PriceRangeLow, true, 5.0, 2,
			[]string{"Barba"}, nil),
	}

	ov := compute(shops)

	assert.Equal(t, 3, ov.TotalBarbershops)
	assert.Equal(t, 2, ov.VerifiedBarbershops)
	assert.InDelta(t, (4.5+3.5+5.0)/3, ov.AverageRating, 1e-9)
	assert.Equal(t, 16, ov.TotalReviews)
	assert.Equal(t, 3, ov.CitiesCount)
	assert.Equal(t, 2, ov.StatesCount)

	assert.Equal(t, 1, ov.PriceRangeDistribution.Low)
	assert.Equal(t, 1, ov.PriceRangeDistribution.Medium)
	assert.Equal(t, 1, ov.PriceRangeDistribution.High)

	// Empate por contagem desempata por nome.
	assert.Equal(t, []NameCount{
		{Name: "Barba", Count: 2},
		{Name: "Corte Masculino", Count: 2},
	}, ov.TopServices)
	assert.Equal(t, []NameCount{
		{Name: "Wi-Fi", Count: 2},
		{Name: "TV", Count: 1},
	}, ov.TopAmenities)
}

func TestTopN_Truncates(t *testing.T) {
	counts := map[string]int{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		counts[name] = 1
	}
	counts["z"] = 9

	top := topN(counts, 3)

	assert.Len(t, top, 3)
	assert.Equal(t, NameCount{Name: "z", Count: 9}, top[0])
}
