package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"stayfinder/internal/domain/model"
)

// memoryPropertyRepository keeps listings in a mutex-guarded map. It backs
// tests and local runs without postgres. IDs are assigned as max existing
// key + 1.
type memoryPropertyRepository struct {
	mu         sync.Mutex
	properties map[int]model.Property
}

func NewMemoryPropertyRepository() PropertyRepository {
	return &memoryPropertyRepository{properties: make(map[int]model.Property)}
}

func (r *memoryPropertyRepository) Create(_ context.Context, p *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextID := 1
	for id := range r.properties {
		if id >= nextID {
			nextID = id + 1
		}
	}
	p.ID = nextID
	r.properties[nextID] = *p
	return p, nil
}

// List applies the same observable filter semantics as the postgres search.
// The memory store holds no reviews, so a minimum-rating criterion never
// excludes anything here.
func (r *memoryPropertyRepository) List(_ context.Context, filter *model.SearchFilter, limit int) ([]model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []model.Property{}
	for _, p := range r.properties {
		if matches(filter, p) {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CostPerNight < matched[j].CostPerNight
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func matches(filter *model.SearchFilter, p model.Property) bool {
	if filter == nil {
		return true
	}
	if filter.OwnerID != nil {
		return p.OwnerID == *filter.OwnerID
	}
	if filter.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
		return false
	}
	if filter.MinimumPricePerNight != nil && p.CostPerNight < *filter.MinimumPricePerNight*100 {
		return false
	}
	if filter.MaximumPricePerNight != nil && p.CostPerNight > *filter.MaximumPricePerNight*100 {
		return false
	}
	return true
}
