package handler

import (
	"net/http"

	"github.com/osse101/incomeengine/internal/activity"
	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/logger"
	"github.com/osse101/incomeengine/internal/niche"
)

// EventsResponse lists stored timed events
type EventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// NichesResponse lists niche popularity
type NichesResponse struct {
	Niches []niche.Popularity `json:"niches"`
}

// LogResponse is a page of the activity log
type LogResponse struct {
	Entries []activity.Entry `json:"entries"`
	Next    int              `json:"next"`
}

// DayHandlers serves the day cycle and read-model routes
type DayHandlers struct {
	service engine.Service
}

// NewDayHandlers creates day handlers
func NewDayHandlers(service engine.Service) *DayHandlers {
	return &DayHandlers{service: service}
}

// HandleState returns a snapshot of the whole engine state
func (h *DayHandlers) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.service.Snapshot())
	}
}

// HandleEndDay closes the current day and returns its report
func (h *DayHandlers) HandleEndDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := h.service.EndDay(r.Context())
		logger.FromContext(r.Context()).Info("End day: success", "day", report.Day, "earned", report.Earned)
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleEvents lists active timed events
func (h *DayHandlers) HandleEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := h.service.Events()
		if events == nil {
			events = []*domain.Event{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: events})
	}
}

// HandleNiches lists niche popularity
func (h *DayHandlers) HandleNiches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, NichesResponse{Niches: h.service.Niches()})
	}
}

// HandleLog returns log entries after the "since" sequence number
func (h *DayHandlers) HandleLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since, ok := GetOptionalIntQueryParam(w, r, "since", 0)
		if !ok {
			return
		}
		entries := h.service.Log(since)
		next := since
		if len(entries) > 0 {
			next = entries[len(entries)-1].Seq
		} else {
			entries = []activity.Entry{}
		}
		respondJSON(w, http.StatusOK, LogResponse{Entries: entries, Next: next})
	}
}
