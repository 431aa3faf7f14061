package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asistia/homecare-backend-go/internal/domain/assignment"
	"github.com/asistia/homecare-backend-go/internal/handler/http/response"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Weekly schedule slot mutations
	AddSlot(w http.ResponseWriter, r *http.Request)
	UpdateSlot(w http.ResponseWriter, r *http.Request)
	RemoveSlot(w http.ResponseWriter, r *http.Request)
	SetDayEnabled(w http.ResponseWriter, r *http.Request)

	// Monthly reconciliation
	MonthlyHours(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.Service
}

func NewAssignmentHandler(assignmentService assignment.Service) AssignmentHandler {
	return &assignmentHandlerImpl{assignmentService: assignmentService}
}

func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", result)
}

func (h *assignmentHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.assignmentService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := getBoolQueryParam(r, "active_only", false)

	result, err := h.assignmentService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *assignmentHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	result, err := h.assignmentService.ListByWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *assignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assignmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment updated successfully", result)
}

func (h *assignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

func (h *assignmentHandlerImpl) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req assignment.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "id")
	req.Day = chi.URLParam(r, "day")

	result, err := h.assignmentService.AddSlot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time slot added successfully", result)
}

func (h *assignmentHandlerImpl) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	var req assignment.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "id")
	req.Day = chi.URLParam(r, "day")
	req.SlotID = chi.URLParam(r, "slotID")

	result, err := h.assignmentService.UpdateSlot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time slot updated successfully", result)
}

func (h *assignmentHandlerImpl) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	day := chi.URLParam(r, "day")
	slotID := chi.URLParam(r, "slotID")

	result, err := h.assignmentService.RemoveSlot(r.Context(), id, day, slotID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time slot removed successfully", result)
}

type setDayEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *assignmentHandlerImpl) SetDayEnabled(w http.ResponseWriter, r *http.Request) {
	var req setDayEnabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	id := chi.URLParam(r, "id")
	day := chi.URLParam(r, "day")

	result, err := h.assignmentService.SetDayEnabled(r.Context(), id, day, req.Enabled)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day updated successfully", result)
}

func (h *assignmentHandlerImpl) MonthlyHours(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	now := time.Now()
	month := getIntQueryParam(r, "month", int(now.Month()))
	year := getIntQueryParam(r, "year", now.Year())

	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}
	if year < 2000 || year > 2100 {
		response.BadRequest(w, "year must be between 2000 and 2100", nil)
		return
	}

	result, err := h.assignmentService.MonthlyHours(r.Context(), id, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
