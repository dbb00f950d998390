package handler

import (
	"net/http"

	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/upgrade"
)

// UpgradeSummary is one catalog upgrade with its ownership
type UpgradeSummary struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Cost             float64        `json:"cost"`
	Repeatable       bool           `json:"repeatable"`
	Owned            int            `json:"owned"`
	ExclusivityGroup string         `json:"exclusivity_group,omitempty"`
	Requires         []string       `json:"requires,omitempty"`
	Provides         map[string]int `json:"provides,omitempty"`
	Consumes         map[string]int `json:"consumes,omitempty"`
}

// UpgradesResponse lists upgrades and the slot ledger
type UpgradesResponse struct {
	Upgrades []UpgradeSummary   `json:"upgrades"`
	Slots    upgrade.SlotLedger `json:"slots"`
}

// UpgradeHandlers serves upgrade and education routes
type UpgradeHandlers struct {
	service engine.Service
}

// NewUpgradeHandlers creates upgrade handlers
func NewUpgradeHandlers(service engine.Service) *UpgradeHandlers {
	return &UpgradeHandlers{service: service}
}

// HandleList returns every upgrade with owned units and the slot ledger
func (h *UpgradeHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := h.service.Snapshot()
		defs := h.service.Catalog().Upgrades()
		resp := UpgradesResponse{
			Upgrades: make([]UpgradeSummary, 0, len(defs)),
			Slots:    h.service.Slots(),
		}
		for _, def := range defs {
			owned := view.Upgrades[def.ID]
			count := owned.Count
			if count == 0 && owned.Purchased {
				count = 1
			}
			resp.Upgrades = append(resp.Upgrades, UpgradeSummary{
				ID:               def.ID,
				Name:             def.Name,
				Cost:             def.Cost,
				Repeatable:       def.Repeatable,
				Owned:            count,
				ExclusivityGroup: def.ExclusivityGroup,
				Requires:         def.Requires,
				Provides:         def.Provides,
				Consumes:         def.Consumes,
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleSlots returns the provides/consumes ledger
func (h *UpgradeHandlers) HandleSlots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.service.Slots())
	}
}

// HandlePurchase buys one unit of an upgrade
func (h *UpgradeHandlers) HandlePurchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "upgradeID")
		if !ok {
			return
		}
		if err := h.service.PurchaseUpgrade(r.Context(), id); err != nil {
			respondServiceError(w, r, "Purchase upgrade", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgUpgradePurchased, Data: h.service.Slots()})
	}
}

// HandleCompleteCourse marks an education course finished
func (h *UpgradeHandlers) HandleCompleteCourse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "courseID")
		if !ok {
			return
		}
		if err := h.service.CompleteCourse(r.Context(), id); err != nil {
			respondServiceError(w, r, "Complete course", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCourseCompleted})
	}
}
