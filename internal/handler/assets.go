package handler

import (
	"net/http"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/engine"
	"github.com/osse101/incomeengine/internal/logger"
)

// LaunchRequest is the body of a launch call
type LaunchRequest struct {
	AssetID string `json:"asset_id" validate:"required,max=64,identifier"`
	NicheID string `json:"niche_id" validate:"omitempty,max=64,identifier"`
}

// AssignNicheRequest is the body of a niche assignment
type AssignNicheRequest struct {
	NicheID string `json:"niche_id" validate:"required,max=64,identifier"`
}

// AssetTypeSummary describes one launchable asset type
type AssetTypeSummary struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	SetupDays  int                `json:"setup_days"`
	SetupCost  float64            `json:"setup_cost"`
	BaseIncome domain.IncomeRange `json:"base_income"`
	MaxLevel   int                `json:"max_level"`
	Actions    int                `json:"actions"`
}

// AssetsResponse lists asset types and owned instances
type AssetsResponse struct {
	Types     []AssetTypeSummary      `json:"types"`
	Instances []*domain.AssetInstance `json:"instances"`
}

// ActionsResponse lists an instance's quality actions
type ActionsResponse struct {
	InstanceID string                `json:"instance_id"`
	Actions    []engine.ActionStatus `json:"actions"`
}

// AssetHandlers serves asset launch, quality and income routes
type AssetHandlers struct {
	service engine.Service
}

// NewAssetHandlers creates asset handlers
func NewAssetHandlers(service engine.Service) *AssetHandlers {
	return &AssetHandlers{service: service}
}

// HandleList returns the catalog's asset types and every owned instance
func (h *AssetHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := h.service.Catalog()
		resp := AssetsResponse{
			Types:     make([]AssetTypeSummary, 0, len(cat.Assets())),
			Instances: h.service.Snapshot().Instances,
		}
		for _, def := range cat.Assets() {
			resp.Types = append(resp.Types, AssetTypeSummary{
				ID:         def.ID,
				Name:       def.Name,
				SetupDays:  def.SetupDays,
				SetupCost:  def.SetupCost,
				BaseIncome: def.BaseIncome,
				MaxLevel:   cat.MaxLevel(def),
				Actions:    len(def.Actions),
			})
		}
		if resp.Instances == nil {
			resp.Instances = []*domain.AssetInstance{}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleLaunch starts a new instance of an asset type
func (h *AssetHandlers) HandleLaunch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LaunchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Launch asset"); err != nil {
			return
		}

		inst, err := h.service.Launch(r.Context(), req.AssetID, req.NicheID)
		if err != nil {
			respondServiceError(w, r, "Launch asset", err)
			return
		}

		logger.FromContext(r.Context()).Info("Launch asset: success", "assetID", req.AssetID, "instanceID", inst.ID)
		respondJSON(w, http.StatusCreated, inst)
	}
}

// HandleIncome returns the last payout breakdown of an instance
func (h *AssetHandlers) HandleIncome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "instanceID")
		if !ok {
			return
		}
		breakdown, err := h.service.Income(id)
		if err != nil {
			respondServiceError(w, r, "Get income", err)
			return
		}
		respondJSON(w, http.StatusOK, breakdown)
	}
}

// HandleActions lists quality actions with availability
func (h *AssetHandlers) HandleActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "instanceID")
		if !ok {
			return
		}
		actions, err := h.service.Actions(id)
		if err != nil {
			respondServiceError(w, r, "List actions", err)
			return
		}
		respondJSON(w, http.StatusOK, ActionsResponse{InstanceID: id, Actions: actions})
	}
}

// HandlePerformAction runs one quality action. Refusals carry the executor
// result in the body.
func (h *AssetHandlers) HandlePerformAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "instanceID")
		if !ok {
			return
		}
		actionID, ok := PathID(w, r, "actionID")
		if !ok {
			return
		}

		res := h.service.PerformQualityAction(r.Context(), id, actionID)
		status := actionStatus(res.Reason)
		if !res.OK {
			logger.FromContext(r.Context()).Info("Quality action refused",
				"instanceID", id, "actionID", actionID, "reason", res.Reason)
		}
		respondJSON(w, status, res)
	}
}

// HandleMultipliers resolves the effect multipliers that apply to an instance
func (h *AssetHandlers) HandleMultipliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "instanceID")
		if !ok {
			return
		}
		mults, err := h.service.Multipliers(id)
		if err != nil {
			respondServiceError(w, r, "Get multipliers", err)
			return
		}
		respondJSON(w, http.StatusOK, mults)
	}
}

// HandleAssignNiche points an instance at a niche
func (h *AssetHandlers) HandleAssignNiche() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "instanceID")
		if !ok {
			return
		}
		var req AssignNicheRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Assign niche"); err != nil {
			return
		}
		if err := h.service.AssignNiche(r.Context(), id, req.NicheID); err != nil {
			respondServiceError(w, r, "Assign niche", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNicheAssigned})
	}
}

func actionStatus(reason domain.FailureReason) int {
	switch reason {
	case domain.ReasonNone:
		return http.StatusOK
	case domain.ReasonUnknownInstance, domain.ReasonUnknownAsset, domain.ReasonUnknownAction:
		return http.StatusNotFound
	case domain.ReasonLocked:
		return http.StatusForbidden
	default:
		return http.StatusConflict
	}
}
