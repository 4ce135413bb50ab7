package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderfolk/tripledger/pkg/response"
)

// Handler handles HTTP requests for budget operations
type Handler struct {
	service *Service
}

// NewHandler creates a new budget handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for budget endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/trip/{tripId}", h.GetByTripID)
	r.Get("/trip/{tripId}/report", h.GetReport)
	r.Delete("/trip/{tripId}", h.Delete)

	return r
}

// Create handles POST /budgets
// @Summary      Create a trip budget
// @Description  Create a budget with category envelopes for a trip
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        request body CreateBudgetRequest true "Budget creation request"
// @Success      201 {object} response.APIResponse{data=BudgetResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /budgets [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	budget, envelopes, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrBudgetExists):
			response.Conflict(w, err.Error())
		case errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrInvalidAllocation),
			errors.Is(err, ErrDuplicateCategory),
			errors.Is(err, ErrEmptyCategory):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to create budget")
		}
		return
	}

	response.JSON(w, http.StatusCreated, &BudgetResponse{Budget: budget, Envelopes: envelopes})
}

// GetByTripID handles GET /budgets/trip/{tripId}
// @Summary      Get a trip's budget
// @Description  Get the budget and envelopes for a trip
// @Tags         budgets
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=BudgetResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/trip/{tripId} [get]
func (h *Handler) GetByTripID(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	budget, envelopes, err := h.service.GetByTripID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get budget")
		return
	}

	response.JSON(w, http.StatusOK, &BudgetResponse{Budget: budget, Envelopes: envelopes})
}

// GetReport handles GET /budgets/trip/{tripId}/report
// @Summary      Get a trip's budget report
// @Description  Roll up expense totals per category against the budget envelopes
// @Tags         budgets
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=Report}
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/trip/{tripId}/report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	report, err := h.service.GetReport(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build budget report")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Delete handles DELETE /budgets/trip/{tripId}
// @Summary      Delete a trip's budget
// @Description  Remove the budget and its envelopes from a trip
// @Tags         budgets
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /budgets/trip/{tripId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	if err := h.service.Delete(r.Context(), tripID); err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete budget")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}
