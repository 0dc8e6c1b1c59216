package service

import (
	"context"
	"fmt"

	"stayfinder/internal/common"
	"stayfinder/internal/domain/model"
	"stayfinder/internal/domain/repository"

	"github.com/gosimple/slug"
)

const DefaultSearchLimit = 10

type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// Search returns properties matching filter, at most limit rows. A nil filter
// matches everything. No match is an empty slice, not an error.
func (s *PropertyService) Search(ctx context.Context, filter *model.SearchFilter, limit int) ([]model.Property, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	properties, err := s.propertyRepo.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	return properties, nil
}

type CreatePropertyRequest struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int    `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

// Create stores a new listing for ownerID. The listing slug is derived from
// the title and the listing starts out active.
func (s *PropertyService) Create(ctx context.Context, ownerID int, req CreatePropertyRequest) (*model.Property, error) {
	if req.Title == "" || req.City == "" || req.CostPerNight <= 0 {
		return nil, fmt.Errorf("title, city and a positive cost_per_night are required: %w", common.ErrValidation)
	}

	property := &model.Property{
		OwnerID:           ownerID,
		Title:             req.Title,
		Slug:              slug.Make(req.Title),
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		Country:           req.Country,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
		Active:            true,
	}

	created, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return created, nil
}
