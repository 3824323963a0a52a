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

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) CreateSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.CreateSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to create slots")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot batch processed", result)
}

func (h *SlotHandler) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	doctorCode := query.Get("doctor")
	hospitalCode := query.Get("hospital")
	date := query.Get("date")

	slots, err := h.slotUsecase.ListAvailableSlots(r.Context(), doctorCode, hospitalCode, date)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrInvalidSlotDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to list slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) ReleaseSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotCode := vars["slotCode"]

	err := h.slotUsecase.ReleaseSlot(r.Context(), slotCode)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotNotAvailable:
			response.Conflict(w, "Slot is already available")
		default:
			response.InternalServerError(w, "Failed to release slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot released successfully", nil)
}

func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotCode := vars["slotCode"]

	err := h.slotUsecase.DeleteSlot(r.Context(), slotCode)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotNotAvailable:
			response.Conflict(w, "Slot is consumed by an appointment")
		default:
			response.InternalServerError(w, "Failed to delete slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}
