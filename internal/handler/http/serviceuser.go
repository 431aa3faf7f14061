package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asistia/homecare-backend-go/internal/domain/serviceuser"
	"github.com/asistia/homecare-backend-go/internal/handler/http/response"
)

type ServiceUserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type serviceUserHandlerImpl struct {
	serviceUserService serviceuser.Service
}

func NewServiceUserHandler(serviceUserService serviceuser.Service) ServiceUserHandler {
	return &serviceUserHandlerImpl{serviceUserService: serviceUserService}
}

func (h *serviceUserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceuser.CreateServiceUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.serviceUserService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service user created successfully", result)
}

func (h *serviceUserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.serviceUserService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *serviceUserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := getBoolQueryParam(r, "active_only", false)

	result, err := h.serviceUserService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *serviceUserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req serviceuser.UpdateServiceUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.serviceUserService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service user updated successfully", result)
}

func (h *serviceUserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.serviceUserService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service user deleted successfully", nil)
}
