package catalog_api

import (
	"fmt"
	"net/http"

	"sportshub/internal/catalog"
	"sportshub/internal/logger"
	"sportshub/internal/utils"
)

type Handler struct {
	Catalog *catalog.Service
	Logger  *logger.Logger
}

func NewHandler(cat *catalog.Service, log *logger.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Logger:  log,
	}
}

func (h *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Catalog.Offers())
}

func (h *Handler) GetVenues(w http.ResponseWriter, r *http.Request) {
	vtype := r.URL.Query().Get("vtype")
	tag := r.URL.Query().Get("tag")

	venues := h.Catalog.Venues(vtype, tag)
	h.Logger.Debug("API", fmt.Sprintf("GetVenues: vtype=%q tag=%q matched %d venues", vtype, tag, len(venues)))
	utils.WriteJSON(w, http.StatusOK, venues)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	utils.WriteJSON(w, http.StatusOK, h.Catalog.Events(category))
}

func (h *Handler) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Catalog.RecentActivities())
}

func (h *Handler) GetRecoveryPicks(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Catalog.RecoveryPicks())
}
