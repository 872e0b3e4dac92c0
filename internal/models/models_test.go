package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sportshub/internal/models"
)

func TestBookingRequestValidate(t *testing.T) {
	req := models.BookingRequest{
		VenueID:     "v1",
		VenueName:   "City Arena",
		VenueType:   "court",
		Date:        "2025-12-01",
		StartTime:   "18:00",
		EndTime:     "19:00",
		Slots:       1,
		TotalAmount: 15,
	}
	assert.NoError(t, req.Validate())

	// A reversed time range still validates; there is no ordering check.
	req.StartTime, req.EndTime = req.EndTime, req.StartTime
	assert.NoError(t, req.Validate())

	// Zero slots still validate; shape only.
	req.Slots = 0
	assert.NoError(t, req.Validate())

	req.VenueID = ""
	err := req.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "venue_id")
}

func TestBookingRequestFieldsStampsStatus(t *testing.T) {
	req := models.BookingRequest{VenueID: "v1"}
	fields := req.Fields()

	assert.Equal(t, models.BookingStatusUpcoming, fields["status"])
	assert.Equal(t, false, fields["share_to_social"])
}

func TestGameRequestDefaults(t *testing.T) {
	req := models.GameRequest{Title: "3v3 Pickup", Sport: "basketball"}
	req.ApplyDefaults()

	assert.Equal(t, models.VisibilityPublic, req.Visibility)
	assert.Equal(t, models.DefaultMaxPlayers, req.MaxPlayers)

	// Explicit values are kept.
	custom := models.GameRequest{Title: "t", Sport: "s", Visibility: models.VisibilityPrivate, MaxPlayers: 4}
	custom.ApplyDefaults()
	assert.Equal(t, models.VisibilityPrivate, custom.Visibility)
	assert.Equal(t, 4, custom.MaxPlayers)
}

func TestGameRequestValidate(t *testing.T) {
	assert.Error(t, (&models.GameRequest{Sport: "basketball"}).Validate())
	assert.Error(t, (&models.GameRequest{Title: "3v3 Pickup"}).Validate())
	assert.NoError(t, (&models.GameRequest{Title: "3v3 Pickup", Sport: "basketball"}).Validate())
}

func TestPostRequestValidate(t *testing.T) {
	assert.Error(t, (&models.PostRequest{UserID: "u1"}).Validate())
	assert.NoError(t, (&models.PostRequest{Content: "hello"}).Validate())
}
