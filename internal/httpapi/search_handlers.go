package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
	"jobsearch-engine/internal/scrape/types"
)

type SearchHandler struct {
	CfgVal       *atomic.Value // config.Config
	SearchStatus *atomic.Value // types.SearchStatus
	Hub          *events.Hub
	RunSearch    func(ctx context.Context, cfg config.Config, q types.Query, notify func(string)) ([]domain.JobRecord, error)
}

type searchRequest struct {
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
}

type searchResponse struct {
	Success bool               `json:"success"`
	Jobs    []domain.JobRecord `json:"jobs,omitempty"`
	Count   int                `json:"count"`
	Error   string             `json:"error,omitempty"`
}

func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, searchResponse{Success: false, Error: "invalid JSON: " + err.Error()})
		return
	}

	title := strings.TrimSpace(req.JobTitle)
	if title == "" {
		WriteJSON(w, http.StatusBadRequest, searchResponse{Success: false, Error: "job title is required"})
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	q := types.Query{Title: title, Location: strings.TrimSpace(req.Location)}

	prev := h.SearchStatus.Load().(types.SearchStatus)
	h.SearchStatus.Store(types.SearchStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		LastOkAt:  prev.LastOkAt,
		Running:   true,
	})

	jobs, err := h.RunSearch(r.Context(), cfg, q, h.Hub.Publish)

	now := time.Now().Format(time.RFC3339)
	next := h.SearchStatus.Load().(types.SearchStatus)
	next.Running = false
	next.LastRunAt = now
	next.LastCount = len(jobs)
	if err != nil {
		next.LastError = err.Error()
	} else {
		next.LastError = ""
		next.LastOkAt = now
	}
	h.SearchStatus.Store(next)

	if err != nil {
		WriteJSON(w, http.StatusInternalServerError, searchResponse{Success: false, Error: err.Error()})
		return
	}

	if jobs == nil {
		jobs = []domain.JobRecord{}
	}
	WriteJSON(w, http.StatusOK, searchResponse{Success: true, Jobs: jobs, Count: len(jobs)})
}

func (h SearchHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.SearchStatus.Load().(types.SearchStatus)
	writeJSON(w, st)
}
