package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wanderfolk/tripledger/pkg/middleware"
	"github.com/wanderfolk/tripledger/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/trip/{tripId}", h.ListByTrip)
	r.Get("/trip/{tripId}/plan", h.GetPlan)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/pay", h.MarkAsPaid)
	r.Post("/{id}/confirm", h.Confirm)
	r.Post("/{id}/reject", h.Reject)

	return r
}

// GetPlan handles GET /settlements/trip/{tripId}/plan
// @Summary      Get the settle-up plan for a trip
// @Description  Recompute net balances and the suggested transfers that clear them
// @Tags         settlements
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Success      200 {object} response.APIResponse{data=Plan}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/trip/{tripId}/plan [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	viewerID, ok := middleware.GetViewerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	plan, err := h.service.GetPlan(r.Context(), tripID, viewerID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlement plan")
		return
	}

	response.JSON(w, http.StatusOK, plan)
}

// Create handles POST /settlements
// @Summary      Settle up with another trip member
// @Description  Create a settlement covering all outstanding debts between you and another member; direction and amount are derived from the balance
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        request body CreateSettlementRequest true "Settlement creation request"
// @Success      201 {object} response.APIResponse{data=SettlementResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := middleware.GetViewerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	settlement, err := h.service.CreateSettlement(r.Context(), viewerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCannotSettleSelf):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrAlreadySettled):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to create settlement")
		}
		return
	}

	response.JSON(w, http.StatusCreated, settlement.ToResponse())
}

// GetByID handles GET /settlements/{id}
// @Summary      Get settlement by ID
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /settlements/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	settlement, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get settlement")
		return
	}

	response.JSON(w, http.StatusOK, settlement.ToResponse())
}

// ListByTrip handles GET /settlements/trip/{tripId}
// @Summary      List trip settlements
// @Description  List recorded settlements for a trip with pagination
// @Tags         settlements
// @Produce      json
// @Param        tripId path string true "Trip ID"
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} response.APIResponse{data=[]SettlementResponse}
// @Router       /settlements/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	settlements, total, err := h.service.ListByTripID(r.Context(), tripID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list settlements")
		return
	}

	responses := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = s.ToResponse()
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	response.JSONWithMeta(w, http.StatusOK, responses, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

// MarkAsPaid handles POST /settlements/{id}/pay
// @Summary      Mark settlement as paid
// @Description  The payer marks the settlement as paid
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/{id}/pay [post]
func (h *Handler) MarkAsPaid(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.service.MarkAsPaid)
}

// Confirm handles POST /settlements/{id}/confirm
// @Summary      Confirm settlement
// @Description  The receiver confirms the payment arrived; locked splits are marked settled
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/{id}/confirm [post]
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.service.Confirm)
}

// Reject handles POST /settlements/{id}/reject
// @Summary      Reject settlement
// @Description  The receiver rejects the settlement; locked splits are released
// @Tags         settlements
// @Produce      json
// @Param        id path string true "Settlement ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /settlements/{id}/reject [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.service.Reject)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, settlementID, travelerID string) (*Settlement, error)) {
	id := chi.URLParam(r, "id")

	viewerID, ok := middleware.GetViewerID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	settlement, err := fn(r.Context(), id, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSettlementNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotPayer), errors.Is(err, ErrNotReceiver):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrInvalidStatusChange):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to update settlement")
		}
		return
	}

	response.JSON(w, http.StatusOK, settlement.ToResponse())
}
