package serviceuser

import (
	"context"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/serviceuser"
)

type serviceUserServiceImpl struct {
	repo serviceuser.Repository
}

func NewServiceUserService(repo serviceuser.Repository) serviceuser.Service {
	return &serviceUserServiceImpl{repo: repo}
}

// Create implements serviceuser.Service.
func (s *serviceUserServiceImpl) Create(ctx context.Context, req serviceuser.CreateServiceUserRequest) (serviceuser.ServiceUserResponse, error) {
	if err := req.Validate(); err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	created, err := s.repo.Create(ctx, serviceuser.ServiceUser{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Notes:      req.Notes,
		Active:     true,
	})
	if err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	return toResponse(created), nil
}

// GetByID implements serviceuser.Service.
func (s *serviceUserServiceImpl) GetByID(ctx context.Context, id string) (serviceuser.ServiceUserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	return toResponse(*u), nil
}

// List implements serviceuser.Service.
func (s *serviceUserServiceImpl) List(ctx context.Context, activeOnly bool) ([]serviceuser.ServiceUserResponse, error) {
	users, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]serviceuser.ServiceUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}

	return responses, nil
}

// Update implements serviceuser.Service.
func (s *serviceUserServiceImpl) Update(ctx context.Context, req serviceuser.UpdateServiceUserRequest) (serviceuser.ServiceUserResponse, error) {
	if err := req.Validate(); err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	u := *existing
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.PostalCode != nil {
		u.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Notes != nil {
		u.Notes = *req.Notes
	}
	if req.Active != nil {
		u.Active = *req.Active
	}

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return serviceuser.ServiceUserResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements serviceuser.Service.
func (s *serviceUserServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toResponse(u serviceuser.ServiceUser) serviceuser.ServiceUserResponse {
	return serviceuser.ServiceUserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Phone:      u.Phone,
		Address:    u.Address,
		PostalCode: u.PostalCode,
		City:       u.City,
		Notes:      u.Notes,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}
