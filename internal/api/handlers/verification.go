package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-net/suraksha/internal/api/dto"
	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/utils"
	"github.com/suraksha-net/suraksha/internal/pkg/validator"
)

type VerificationHandler struct {
	service   verification.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewVerificationHandler(service verification.Service, log *logger.Logger, val *validator.Validator) *VerificationHandler {
	return &VerificationHandler{service: service, logger: log, validator: val}
}

// Verify scores an ad-hoc alert without storing it
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	result := h.service.Verify(r.Context(), alertFromPayload(req.Alert))
	utils.WriteSuccess(w, http.StatusOK, dto.NewVerificationResultDTO(result))
}

// VerifyBatch scores several alerts independently, results in input order
func (h *VerificationHandler) VerifyBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	alerts := make([]*alert.EmergencyAlert, len(req.Alerts))
	for i, p := range req.Alerts {
		alerts[i] = alertFromPayload(p)
	}

	results := h.service.VerifyBatch(r.Context(), alerts)
	dtos := make([]dto.VerificationResultDTO, len(results))
	for i, v := range results {
		dtos[i] = dto.NewVerificationResultDTO(v)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// VerifyAlert verifies a stored alert and caches the result
func (h *VerificationHandler) VerifyAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.VerifyAlert(r.Context(), id)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
		} else {
			utils.WriteError(w, errors.Internal("Failed to verify alert", err))
		}
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewVerificationResultDTO(result))
}

// GetResult returns the cached verification result for an alert
func (h *VerificationHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetResult(r.Context(), id)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			utils.WriteError(w, appErr)
		} else {
			utils.WriteError(w, errors.Internal("Failed to get verification result", err))
		}
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewVerificationResultDTO(result))
}

// GetStats returns summary statistics over recent verification results
func (h *VerificationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	stats, err := h.service.Stats(r.Context(), limit)
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to compute verification stats", err))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stats)
}
