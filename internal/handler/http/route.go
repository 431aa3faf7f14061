package http

import (
	"encoding/json"
	"net/http"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
	"github.com/asistia/homecare-backend-go/internal/handler/http/response"
)

type RouteHandler interface {
	Estimate(w http.ResponseWriter, r *http.Request)
	EstimateExternal(w http.ResponseWriter, r *http.Request)
}

type routeHandlerImpl struct {
	routeService route.Service
}

func NewRouteHandler(routeService route.Service) RouteHandler {
	return &routeHandlerImpl{routeService: routeService}
}

// Estimate produces offline heuristic estimates for an ordered stop list.
func (h *routeHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	var req route.EstimateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.routeService.EstimateHeuristic(r.Context(), req))
}

// EstimateExternal consults the mapping service per segment, degrading to
// per-segment failures rather than failing the request.
func (h *routeHandlerImpl) EstimateExternal(w http.ResponseWriter, r *http.Request) {
	var req route.EstimateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.routeService.EstimateExternal(r.Context(), req))
}
