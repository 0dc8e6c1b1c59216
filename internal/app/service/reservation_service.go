package service

import (
	"context"
	"fmt"

	"stayfinder/internal/domain/model"
	"stayfinder/internal/domain/repository"
)

type ReservationService struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationService(reservationRepo repository.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

// ListForGuest returns the guest's reservations with their properties, at
// most limit rows.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID, limit int) ([]model.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	reservations, err := s.reservationRepo.ListForGuest(ctx, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}
