package model

import "time"

type Reservation struct {
	ID         int       `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int       `json:"property_id"`
	GuestID    int       `json:"guest_id"`
}

// GuestReservation is one row of a guest's reservation listing: the
// reservation together with the property it is for.
type GuestReservation struct {
	Reservation Reservation `json:"reservation"`
	Property    Property    `json:"property"`
}
