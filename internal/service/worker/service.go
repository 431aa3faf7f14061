package worker

import (
	"context"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/worker"
)

type workerServiceImpl struct {
	repo worker.Repository
}

func NewWorkerService(repo worker.Repository) worker.Service {
	return &workerServiceImpl{repo: repo}
}

// Create implements worker.Service.
func (s *workerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.repo.Create(ctx, worker.Worker{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		PostalCode:  req.PostalCode,
		City:        req.City,
		WeeklyHours: req.WeeklyHours,
		Active:      true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements worker.Service.
func (s *workerServiceImpl) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(*w), nil
}

// List implements worker.Service.
func (s *workerServiceImpl) List(ctx context.Context, activeOnly bool) ([]worker.WorkerResponse, error) {
	workers, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toResponse(w))
	}

	return responses, nil
}

// Update implements worker.Service.
func (s *workerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w := *existing
	if req.FullName != nil {
		w.FullName = *req.FullName
	}
	if req.Email != nil {
		w.Email = *req.Email
	}
	if req.Phone != nil {
		w.Phone = *req.Phone
	}
	if req.Address != nil {
		w.Address = *req.Address
	}
	if req.PostalCode != nil {
		w.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		w.City = *req.City
	}
	if req.WeeklyHours != nil {
		w.WeeklyHours = *req.WeeklyHours
	}
	if req.Active != nil {
		w.Active = *req.Active
	}

	updated, err := s.repo.Update(ctx, w)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements worker.Service.
func (s *workerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:          w.ID,
		FullName:    w.FullName,
		Email:       w.Email,
		Phone:       w.Phone,
		Address:     w.Address,
		PostalCode:  w.PostalCode,
		City:        w.City,
		WeeklyHours: w.WeeklyHours,
		Active:      w.Active,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.Format(time.RFC3339),
	}
}
