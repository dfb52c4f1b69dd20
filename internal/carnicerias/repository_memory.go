package carnicerias

import (
	"context"
	"sort"
	"strings"
)

type InMemoryRepository struct {
	shops []Carniceria
}

func NewInMemoryRepository(shops []Carniceria) *InMemoryRepository {
	return &InMemoryRepository{shops: shops}
}

func (r *InMemoryRepository) List(ctx context.Context, ciudad string) ([]Carniceria, error) {
	var out []Carniceria
	for _, c := range r.shops {
		if ciudad == "" || strings.EqualFold(c.Ciudad, ciudad) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
