package stats

import (
	"context"
	"sort"

	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	"github.com/idenegocios/barbershop-directory/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PriceRangeDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type Overview struct {
	TotalBarbershops       int                    `json:"totalBarbershops"`
	VerifiedBarbershops    int                    `json:"verifiedBarbershops"`
	AverageRating          float64                `json:"averageRating"`
	TotalReviews           int                    `json:"totalReviews"`
	CitiesCount            int                    `json:"citiesCount"`
	StatesCount            int                    `json:"statesCount"`
	PriceRangeDistribution PriceRangeDistribution `json:"priceRangeDistribution"`
	TopServices            []NameCount            `json:"topServices"`
	TopAmenities           []NameCount            `json:"topAmenities"`
}

// ======================================================
// USE CASE
// ======================================================

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

func (uc *GetStats) Execute(ctx context.Context) (*Overview, error) {
	shops, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ov := compute(shops)
	return &ov, nil
}

func compute(shops []models.Barbershop) Overview {
	ov := Overview{
		TotalBarbershops: len(shops),
		TopServices:      []NameCount{},
		TopAmenities:     []NameCount{},
	}

	cities := map[string]struct{}{}
	states := map[string]struct{}{}
	serviceCount := map[string]int{}
	amenityCount := map[string]int{}

	var ratingSum float64

	for _, shop := range shops {
		if shop.Verified {
			ov.VerifiedBarbershops++
		}
		ratingSum += shop.Rating
		ov.TotalReviews += shop.ReviewCount

		cities[shop.Address.City] = struct{}{}
		states[shop.Address.State] = struct{}{}

		switch shop.PriceRange {
		case models.PriceRangeLow:
			ov.PriceRangeDistribution.Low++
		case models.PriceRangeMedium:
			ov.PriceRangeDistribution.Medium++
		case models.PriceRangeHigh:
			ov.PriceRangeDistribution.High++
		}

		for _, s := range shop.Services {
			serviceCount[s.Name]++
		}
		for _, a := range shop.Amenities {
			amenityCount[a]++
		}
	}

	if len(shops) > 0 {
		ov.AverageRating = ratingSum / float64(len(shops))
	}

	ov.CitiesCount = len(cities)
	ov.StatesCount = len(states)
	ov.TopServices = topN(serviceCount, 10)
	ov.TopAmenities = topN(amenityCount, 10)

	return ov
}

func topN(counts map[string]int, n int) []NameCount {
	list := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		list = append(list, NameCount{Name: name, Count: count})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Name < list[j].Name
	})

	if len(list) > n {
		list = list[:n]
	}
	return list
}
