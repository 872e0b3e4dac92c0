package models

import "fmt"

// Booking status lifecycle. Bookings are create-only through this API, so
// only the default is ever written today.
const (
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingRequest is the create-booking payload. user_id is optional because
// unauthenticated bookings are allowed.
type BookingRequest struct {
	UserID        string  `json:"user_id,omitempty"`
	VenueID       string  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	VenueType     string  `json:"venue_type"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Slots         int     `json:"slots"`
	TotalAmount   float64 `json:"total_amount"`
	ShareToSocial bool    `json:"share_to_social"`
}

// Validate checks field presence only. There is deliberately no check that
// the end time follows the start time, that slots is positive, or that the
// slot does not overlap an existing booking.
func (r *BookingRequest) Validate() error {
	if r.VenueID == "" {
		return fmt.Errorf("venue_id is required")
	}
	if r.VenueName == "" {
		return fmt.Errorf("venue_name is required")
	}
	if r.VenueType == "" {
		return fmt.Errorf("venue_type is required")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if r.StartTime == "" {
		return fmt.Errorf("start_time is required")
	}
	if r.EndTime == "" {
		return fmt.Errorf("end_time is required")
	}
	return nil
}

// Fields flattens the request into the persistence field map. The upcoming
// status is stamped here so stored documents match the declared booking shape.
func (r *BookingRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"user_id":         r.UserID,
		"venue_id":        r.VenueID,
		"venue_name":      r.VenueName,
		"venue_type":      r.VenueType,
		"date":            r.Date,
		"start_time":      r.StartTime,
		"end_time":        r.EndTime,
		"slots":           r.Slots,
		"total_amount":    r.TotalAmount,
		"status":          BookingStatusUpcoming,
		"share_to_social": r.ShareToSocial,
	}
}
