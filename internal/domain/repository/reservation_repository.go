package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stayfinder/internal/domain/model"
)

type ReservationRepository interface {
	// ListForGuest returns a guest's reservations joined with the properties
	// they are for, capped at limit.
	ListForGuest(ctx context.Context, guestID, limit int) ([]model.GuestReservation, error)
}

type pgReservationRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPgReservationRepository(db *sql.DB, timeout time.Duration) ReservationRepository {
	return &pgReservationRepository{db: db, timeout: timeout}
}

func (r *pgReservationRepository) ListForGuest(ctx context.Context, guestID, limit int) ([]model.GuestReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT reservations.id, reservations.start_date, reservations.end_date,
	                 reservations.property_id, reservations.guest_id,
	                 properties.id, properties.owner_id, properties.title, properties.slug,
	                 properties.description, properties.thumbnail_photo_url, properties.cover_photo_url,
	                 properties.cost_per_night, properties.parking_spaces, properties.number_of_bathrooms,
	                 properties.number_of_bedrooms, properties.country, properties.street,
	                 properties.city, properties.province, properties.post_code, properties.active
	          FROM reservations
	          JOIN properties ON properties.id = reservations.property_id
	          WHERE reservations.guest_id = $1
	          LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgReservationRepository.ListForGuest query: %w", err)
	}
	defer rows.Close()

	reservations := []model.GuestReservation{}
	for rows.Next() {
		var gr model.GuestReservation
		res := &gr.Reservation
		p := &gr.Property
		err := rows.Scan(
			&res.ID, &res.StartDate, &res.EndDate, &res.PropertyID, &res.GuestID,
			&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Description,
			&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
			&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
			&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("pgReservationRepository.ListForGuest scan: %w", err)
		}
		reservations = append(reservations, gr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgReservationRepository.ListForGuest rows.Err: %w", err)
	}

	return reservations, nil
}
