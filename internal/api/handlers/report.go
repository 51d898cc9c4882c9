package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/suraksha-net/suraksha/internal/api/dto"
	"github.com/suraksha-net/suraksha/internal/domain/report"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/utils"
	"github.com/suraksha-net/suraksha/internal/pkg/validator"
)

type ReportHandler struct {
	service   report.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewReportHandler(service report.Service, log *logger.Logger, val *validator.Validator) *ReportHandler {
	return &ReportHandler{service: service, logger: log, validator: val}
}

// Create files a misinformation report against an alert
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "id")

	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	rep := &report.Report{
		AlertID:     alertID,
		Reason:      req.Reason,
		Description: req.Description,
		ReporterID:  req.ReporterID,
	}

	needsReview, err := h.service.Submit(r.Context(), rep)
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to submit report", err))
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.SubmitReportResponse{
		ID:          rep.ID,
		NeedsReview: needsReview,
	})
}

// List returns all reports with pagination
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	reports, total, err := h.service.List(r.Context(), pageSize, offset)
	if err != nil {
		utils.WriteError(w, errors.Internal("Failed to list reports", err))
		return
	}

	dtos := make([]dto.ReportDTO, len(reports))
	for i, rep := range reports {
		dtos[i] = dto.ReportDTO{
			ID:          rep.ID,
			AlertID:     rep.AlertID,
			Reason:      rep.Reason,
			Description: rep.Description,
			ReporterID:  rep.ReporterID,
			CreatedAt:   rep.CreatedAt,
		}
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(dtos, page, pageSize, total))
}
