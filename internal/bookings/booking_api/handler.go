package booking_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sportshub/internal/bookings"
	"sportshub/internal/logger"
	"sportshub/internal/models"
	"sportshub/internal/utils"
)

type Handler struct {
	BookingService *bookings.Service
	Logger         *logger.Logger
}

func NewHandler(bookingService *bookings.Service, log *logger.Logger) *Handler {
	return &Handler{
		BookingService: bookingService,
		Logger:         log,
	}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: failed to decode request body: %v", err))
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		h.Logger.Warn("API", fmt.Sprintf("CreateBooking: validation failed: %v", err))
		http.Error(w, "Invalid booking: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.BookingService.Create(r.Context(), req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateBooking: %v", err))
		http.Error(w, "Failed to create booking: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateBooking: booking %v created for venue %s", record["id"], req.VenueID))
	utils.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	docs, err := h.BookingService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListBookings: %v", err))
		http.Error(w, "Failed to fetch bookings: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, docs)
}
