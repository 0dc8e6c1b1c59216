package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stayfinder/internal/domain/model"
)

// PropertyRepository is implemented by the postgres store and by an
// in-memory store. Both sides of the contract are identical: List runs a
// filtered search, Create persists a new listing and fills in its ID.
type PropertyRepository interface {
	List(ctx context.Context, filter *model.SearchFilter, limit int) ([]model.Property, error)
	Create(ctx context.Context, property *model.Property) (*model.Property, error)
}

type pgPropertyRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPgPropertyRepository(db *sql.DB, timeout time.Duration) PropertyRepository {
	return &pgPropertyRepository{db: db, timeout: timeout}
}

func (r *pgPropertyRepository) List(ctx context.Context, filter *model.SearchFilter, limit int) ([]model.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args := BuildPropertySearchQuery(filter, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgPropertyRepository.List query: %w", err)
	}
	defer rows.Close()

	// Only the general search joins property_reviews and carries the
	// average_rating column.
	withRating := filter != nil && filter.OwnerID == nil

	properties := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows, withRating)
		if err != nil {
			return nil, fmt.Errorf("pgPropertyRepository.List scan: %w", err)
		}
		properties = append(properties, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgPropertyRepository.List rows.Err: %w", err)
	}

	return properties, nil
}

func scanProperty(rows *sql.Rows, withRating bool) (*model.Property, error) {
	p := &model.Property{}
	targets := []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
	}
	if withRating {
		targets = append(targets, &p.AverageRating)
	}
	if err := rows.Scan(targets...); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgPropertyRepository) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO properties
	          (owner_id, title, slug, description, thumbnail_photo_url, cover_photo_url,
	           cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
	           country, street, city, province, post_code, active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		p.OwnerID, p.Title, p.Slug, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
		p.Country, p.Street, p.City, p.Province, p.PostCode, p.Active,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("pgPropertyRepository.Create: %w", err)
	}
	return p, nil
}
