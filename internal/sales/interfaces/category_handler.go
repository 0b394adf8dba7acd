package interfaces

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type CategoryServiceInterface interface {
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(context.WithoutCancel(r.Context()))
	if err != nil {
		slog.Error("Error retrieving categories", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(context.WithoutCancel(r.Context()), req.Name)
	if err != nil {
		if salesErrors.IsValidationError(err) {
			slog.Info("Rejected category", "reason", err.Error())
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Error during category creation", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}
