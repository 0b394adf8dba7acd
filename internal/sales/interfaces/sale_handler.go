package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sebuszqo/SalesTracker/internal/sales/domain"
	salesErrors "github.com/sebuszqo/SalesTracker/internal/sales/errors"
)

type SaleServiceInterface interface {
	GetAllSales(ctx context.Context) ([]domain.Sale, error)
	CreateSale(ctx context.Context, sale domain.NewSale) (*domain.Sale, error)
}

type SaleHandler struct {
	service      SaleServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewSaleHandler(
	service SaleServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *SaleHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &SaleHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type createSaleRequest struct {
	CategoryID *int64         `json:"category_id"`
	Value      *domain.Amount `json:"value"`
}

func (h *SaleHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.GetAllSales(context.WithoutCancel(r.Context()))
	if err != nil {
		slog.Error("Error retrieving sales", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	h.respondJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CategoryID == nil || req.Value == nil {
		h.respondError(w, http.StatusBadRequest, salesErrors.ErrMissingSaleFields.Error())
		return
	}

	sale, err := h.service.CreateSale(context.WithoutCancel(r.Context()), domain.NewSale{
		CategoryID: *req.CategoryID,
		Value:      *req.Value,
	})
	if err != nil {
		if salesErrors.IsValidationErrors(err) {
			var validationErrors *salesErrors.ValidationErrors
			errors.As(err, &validationErrors)
			slog.Info("Rejected sale", "reason", err.Error())
			h.respondError(w, http.StatusBadRequest, "Validation errors occurred", validationErrors.Messages())
			return
		}
		if salesErrors.IsValidationError(err) {
			slog.Info("Rejected sale", "reason", err.Error())
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Error during sale creation", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create sale")
		return
	}

	h.respondJSON(w, http.StatusCreated, sale)
}
