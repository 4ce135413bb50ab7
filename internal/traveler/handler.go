package traveler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wanderfolk/tripledger/pkg/response"
)

// Handler handles HTTP requests for traveler operations
type Handler struct {
	service *Service
}

// NewHandler creates a new traveler handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for traveler endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /travelers
// @Summary      Register a new traveler
// @Description  Create a traveler profile with username, email and display name
// @Tags         travelers
// @Accept       json
// @Produce      json
// @Param        request body CreateTravelerRequest true "Traveler creation request"
// @Success      201 {object} response.APIResponse{data=TravelerResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /travelers [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTravelerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	traveler, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyInUse) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create traveler")
		return
	}

	response.JSON(w, http.StatusCreated, traveler.ToResponse())
}

// GetByID handles GET /travelers/{id}
// @Summary      Get traveler by ID
// @Description  Get a single traveler profile by ID
// @Tags         travelers
// @Produce      json
// @Param        id path string true "Traveler ID"
// @Success      200 {object} response.APIResponse{data=TravelerResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /travelers/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	traveler, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTravelerNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get traveler")
		return
	}

	response.JSON(w, http.StatusOK, traveler.ToResponse())
}

// List handles GET /travelers
// @Summary      List travelers
// @Description  List traveler profiles with pagination
// @Tags         travelers
// @Produce      json
// @Param        page query int false "Page number"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} response.APIResponse{data=[]TravelerResponse}
// @Router       /travelers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	travelers, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list travelers")
		return
	}

	responses := make([]*TravelerResponse, len(travelers))
	for i, t := range travelers {
		responses[i] = t.ToResponse()
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

// Update handles PUT /travelers/{id}
// @Summary      Update traveler
// @Description  Update a traveler's display name or avatar
// @Tags         travelers
// @Accept       json
// @Produce      json
// @Param        id path string true "Traveler ID"
// @Param        request body UpdateTravelerRequest true "Traveler update request"
// @Success      200 {object} response.APIResponse{data=TravelerResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /travelers/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateTravelerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	traveler, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTravelerNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update traveler")
		return
	}

	response.JSON(w, http.StatusOK, traveler.ToResponse())
}

// Delete handles DELETE /travelers/{id}
// @Summary      Delete traveler
// @Description  Remove a traveler profile
// @Tags         travelers
// @Produce      json
// @Param        id path string true "Traveler ID"
// @Success      200 {object} response.APIResponse
// @Router       /travelers/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.InternalError(w, "Failed to delete traveler")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "traveler deleted"})
}
