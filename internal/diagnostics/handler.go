package diagnostics

import (
	"net/http"

	"sportshub/internal/logger"
	"sportshub/internal/store"
	"sportshub/internal/utils"
)

// maxCollections caps how many collection names the probe reports.
const maxCollections = 10

// maxErrLen caps how much of a probe error leaks into the response body.
const maxErrLen = 50

// Snapshot is the diagnostics response. The database_url field only ever
// reports presence of the configuration value, never its content.
type Snapshot struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Handler struct {
	Store  store.DocumentStore
	URLSet bool
	Logger *logger.Logger
}

func NewHandler(st store.DocumentStore, urlSet bool, log *logger.Logger) *Handler {
	return &Handler{
		Store:  st,
		URLSet: urlSet,
		Logger: log,
	}
}

// Root answers the liveness check.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Sports Hub API running"})
}

// Probe reports store connectivity best-effort. Probe failures end up
// truncated inside the body; this endpoint never returns an HTTP error.
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	snapshot := Snapshot{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store != nil && h.Store.Connected() {
		snapshot.Database = "✅ Connected & Working"
		snapshot.ConnectionStatus = "Connected"

		urlStatus := "❌ Not Set"
		if h.URLSet {
			urlStatus = "✅ Set"
		}
		snapshot.DatabaseURL = &urlStatus

		name := h.Store.Name()
		snapshot.DatabaseName = &name

		names, err := h.Store.ListCollections(r.Context())
		if err != nil {
			h.Logger.Warn("DIAG", "Collection listing failed: "+err.Error())
			snapshot.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxErrLen)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			snapshot.Collections = names
		}
	}

	utils.WriteJSON(w, http.StatusOK, snapshot)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
