package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anonymous-574/MediQ/internal/delivery/dto"
	"github.com/anonymous-574/MediQ/internal/usecase"
	"github.com/anonymous-574/MediQ/pkg/response"
	"github.com/anonymous-574/MediQ/pkg/validator"
)

type TriageHandler struct {
	triageUsecase usecase.TriageUsecase
	validator     *validator.CustomValidator
}

func NewTriageHandler(triageUsecase usecase.TriageUsecase, validator *validator.CustomValidator) *TriageHandler {
	return &TriageHandler{
		triageUsecase: triageUsecase,
		validator:     validator,
	}
}

// Analyze classifies symptoms and records the result. Empty symptoms are
// not a validation error; the classifier degrades to Unknown.
func (h *TriageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.triageUsecase.Analyze(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to analyze symptoms")
		return
	}

	response.Success(w, http.StatusCreated, "Symptoms analyzed successfully", result)
}

func (h *TriageHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.triageUsecase.History(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get symptom reports")
		return
	}

	response.Success(w, http.StatusOK, "Symptom reports retrieved successfully", history)
}
