package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/usecase"
	"github.com/anonymous-574/MediQ/pkg/response"
	"github.com/anonymous-574/MediQ/pkg/validator"

	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
	validator    *validator.CustomValidator
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase, validator *validator.CustomValidator) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
		validator:    validator,
	}
}

func (h *QueueHandler) PredictWait(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalCode := vars["code"]
	department := r.URL.Query().Get("department")

	estimate, err := h.queueUsecase.PredictWait(r.Context(), hospitalCode, department)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.ServiceUnavailable(w, "Failed to compute wait estimate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Wait estimate computed", estimate)
}

func (h *QueueHandler) Trend(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalCode := vars["code"]
	department := r.URL.Query().Get("department")

	trend, err := h.queueUsecase.Trend(r.Context(), hospitalCode, department)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.ServiceUnavailable(w, "Failed to compute wait trend")
		}
		return
	}

	response.Success(w, http.StatusOK, "Wait trend computed", trend)
}

func (h *QueueHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitQueueReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.queueUsecase.SubmitReport(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to submit queue report")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Queue report submitted successfully", report)
}

func (h *QueueHandler) ValidateReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reportCode := vars["code"]

	err := h.queueUsecase.ValidateReport(r.Context(), reportCode)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Queue report not found")
		default:
			response.InternalServerError(w, "Failed to validate queue report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue report validated successfully", nil)
}

func (h *QueueHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	hospitalCode := r.URL.Query().Get("hospital")
	if hospitalCode == "" {
		response.Error(w, http.StatusBadRequest, "hospital query parameter is required", nil)
		return
	}

	reports, err := h.queueUsecase.ListReports(r.Context(), hospitalCode)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to list queue reports")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue reports retrieved successfully", reports)
}
