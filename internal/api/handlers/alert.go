package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-net/suraksha/internal/api/dto"
	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/utils"
	"github.com/suraksha-net/suraksha/internal/pkg/validator"
)

type AlertHandler struct {
	service   alert.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertHandler(service alert.Service, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{service: service, logger: log, validator: val}
}

// List returns all alerts with pagination and filtering
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := alert.Filter{
		Category: r.URL.Query().Get("category"),
		Severity: r.URL.Query().Get("severity"),
		SourceID: r.URL.Query().Get("source_id"),
	}

	offset := (page - 1) * pageSize
	alerts, total, err := h.service.List(r.Context(), filter, pageSize, offset)
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to list alerts", err))
		return
	}

	dtos := make([]dto.AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(dtos, page, pageSize, total))
}

// Get returns a single alert by ID
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
		} else {
			utils.WriteError(w, errors.Internal("Failed to get alert", err))
		}
		return
	}

	utils.WriteSuccess(w, http.StatusOK, alertDTO(a))
}

// Create ingests a new alert
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	id, err := h.service.Create(r.Context(), alertFromCreateRequest(req))
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to create alert", err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]string{"id": id})
}

// Delete deletes an alert
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
		} else {
			utils.WriteError(w, errors.Internal("Failed to delete alert", err))
		}
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Alert deleted successfully", nil)
}
